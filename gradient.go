package vg

import (
	"math"
	"sort"
)

// sortedStops returns a defensively sorted copy of stops; Stops values
// constructed by Axial/Radial are expected to already be ordered (§3.1),
// but evaluation does not trust that invariant blindly.
func sortedStops(stops Stops) Stops {
	if len(stops) == 0 {
		return stops
	}
	sorted := make(Stops, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	return sorted
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// lerpColorLinear interpolates between two colors in linear sRGB space,
// which produces perceptually correct gradient blending rather than the
// banding that straight sRGB interpolation gives.
func lerpColorLinear(c1, c2 Color, t float64) Color {
	l1, l2 := c1.toLinear(), c2.toLinear()
	mixed := Color{
		R: l1.R + t*(l2.R-l1.R),
		G: l1.G + t*(l2.G-l1.G),
		B: l1.B + t*(l2.B-l1.B),
		A: l1.A + t*(l2.A-l1.A),
	}
	return mixed.fromLinear()
}

// colorAtOffset returns stops' color at t ∈ ℝ, clamped (padded) to the
// stop range at the ends. Empty stops evaluate to Transparent.
func colorAtOffset(stops Stops, t float64) Color {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortedStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool { return sorted[i].Offset >= t })
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}
	if sorted[idx].Offset == t {
		return sorted[idx].Color
	}

	s0, s1 := sorted[idx-1], sorted[idx]
	if s1.Offset == s0.Offset {
		return s0.Color
	}
	localT := (t - s0.Offset) / (s1.Offset - s0.Offset)
	return lerpColorLinear(s0.Color, s1.Color, localT)
}

// axialColorAt evaluates an Axial(stops, p1, p2) gradient at p by
// projecting p onto the line p1→p2.
func axialColorAt(stops Stops, p1, p2, p P2) Color {
	axis := p2.Sub(p1)
	lenSq := axis.LengthSq()
	if lenSq == 0 {
		return colorAtOffset(stops, 0)
	}
	t := p.Sub(p1).Dot(axis) / lenSq
	return colorAtOffset(stops, t)
}

// radialColorAt evaluates a Radial(stops, focus, center, r) gradient at
// p, per the SVG/Cairo two-circle construction: the focus is the
// degenerate (radius-0) circle, (center, r) the outer circle.
func radialColorAt(stops Stops, focus, center P2, r float64, p P2) Color {
	if r <= 0 {
		return colorAtOffset(stops, 0)
	}
	cf := center.Sub(focus)
	pf := p.Sub(focus)

	a := cf.Dot(cf) - r*r
	b := -2 * pf.Dot(cf)
	c := pf.Dot(pf)

	if a == 0 {
		// Focus lies on the outer circle; degrade to linear distance.
		return colorAtOffset(stops, pf.Length()/r)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return colorAtOffset(stops, 1)
	}
	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	t := t1
	if t1 < 0 || (t2 >= 0 && t2 < t1) {
		t = t2
	}
	if t <= 0 {
		return colorAtOffset(stops, 0)
	}
	return colorAtOffset(stops, 1/t)
}

