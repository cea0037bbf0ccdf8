package vg

import "math"

// DefaultFlattenTolerance is linear_fold's default tol (§4.2).
const DefaultFlattenTolerance = 1e-3

// FlatEvent is one element of the polyline a curve flattens to: either
// a subpath start, a line to a point, or a subpath close.
type FlatEvent interface{ isFlatEvent() }

// FlatSub begins a flattened subpath at P.
type FlatSub struct{ P P2 }

// FlatLine draws a straight line to P in the flattened output.
type FlatLine struct{ P P2 }

// FlatClose closes the current flattened subpath.
type FlatClose struct{}

func (FlatSub) isFlatEvent()   {}
func (FlatLine) isFlatEvent()  {}
func (FlatClose) isFlatEvent() {}

// LinearFold left-folds acc over the polyline p flattens to at
// tolerance tol: curves are recursively bisected until flat, emitting
// only Sub/Line/Close events (§4.2's `linear_fold`). tol<=0 uses
// DefaultFlattenTolerance.
func LinearFold[A any](p Path, tol float64, acc A, f func(A, FlatEvent) A) A {
	if tol <= 0 {
		tol = DefaultFlattenTolerance
	}
	var cur P2
	have := false
	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case Sub:
			acc = f(acc, FlatSub{P: s.P})
			cur, have = s.P, true
		case Line:
			acc = f(acc, FlatLine{P: s.P})
			cur, have = s.P, true
		case Close:
			acc = f(acc, FlatClose{})
		case Qcurve:
			if !have {
				cur = s.P
			}
			acc = flattenQuad(quadBez{P0: cur, P1: s.C, P2: s.P}, tol, acc, f)
			cur, have = s.P, true
		case Ccurve:
			if !have {
				cur = s.P
			}
			acc = flattenCubic(cubicBez{P0: cur, P1: s.C1, P2: s.C2, P3: s.P}, tol, acc, f)
			cur, have = s.P, true
		case Earc:
			if !have {
				cur = s.P
			}
			acc = flattenEarc(cur, s, tol, acc, f)
			cur, have = s.P, true
		}
	}
	return acc
}

func flattenQuad[A any](q quadBez, tol float64, acc A, f func(A, FlatEvent) A) A {
	if flatnessQuad(q, tol) {
		return f(acc, FlatLine{P: q.P2})
	}
	left, right := q.subdivide()
	acc = flattenQuad(left, tol, acc, f)
	return flattenQuad(right, tol, acc, f)
}

func flattenCubic[A any](c cubicBez, tol float64, acc A, f func(A, FlatEvent) A) A {
	if flatnessCubic(c, tol) {
		return f(acc, FlatLine{P: c.P3})
	}
	left, right := c.subdivide()
	acc = flattenCubic(left, tol, acc, f)
	return flattenCubic(right, tol, acc, f)
}

// flattenEarc recursively bisects an elliptic arc by parameter until
// the chord-to-midpoint perpendicular distance is within tol (§4.2).
func flattenEarc[A any](p0 P2, s Earc, tol float64, acc A, f func(A, FlatEvent) A) A {
	params, ok := EarcParams(p0, s.P, s.Large, s.CW, s.Angle, s.Radii)
	if !ok {
		return f(acc, FlatLine{P: s.P})
	}
	return flattenArcRange(params, params.Start, params.End, p0, s.P, tol, acc, f)
}

func flattenArcRange[A any](params ArcParams, t0, t1 float64, p0, p1 P2, tol float64, acc A, f func(A, FlatEvent) A) A {
	mid := params.PointOnArc((t0 + t1) / 2)
	if chordDistance(p0, p1, mid) <= tol {
		return f(acc, FlatLine{P: p1})
	}
	tm := (t0 + t1) / 2
	acc = flattenArcRange(params, t0, tm, p0, mid, tol, acc, f)
	return flattenArcRange(params, tm, t1, mid, p1, tol, acc, f)
}

// chordDistance returns the perpendicular distance from mid to the
// chord p0-p1, or the distance to p0 when the chord is degenerate.
func chordDistance(p0, p1, mid P2) float64 {
	chord := p1.Sub(p0)
	length := chord.Length()
	if length == 0 {
		return mid.Sub(p0).Length()
	}
	cross := chord.X*(mid.Y-p0.Y) - chord.Y*(mid.X-p0.X)
	return math.Abs(cross) / length
}

// SampleEvent is a uniformly arclength-spaced point emitted by Sample.
type SampleEvent struct{ P P2 }

// Sample walks LinearFold and emits one SampleEvent per period of
// arclength along every straight segment, carrying residual distance
// across segments so sampling is uniform along the whole subpath;
// FlatSub resets the residual (§4.2's `sample`).
func Sample[A any](p Path, tol, period float64, acc A, f func(A, SampleEvent) A) A {
	if period <= 0 {
		return acc
	}
	var cur P2
	residual := 0.0
	have := false
	acc = LinearFold(p, tol, acc, func(acc A, ev FlatEvent) A {
		switch e := ev.(type) {
		case FlatSub:
			cur, residual, have = e.P, 0, true
			acc = f(acc, SampleEvent{P: e.P})
		case FlatLine:
			if !have {
				cur, have = e.P, true
				return acc
			}
			seg := e.P.Sub(cur)
			length := seg.Length()
			if length == 0 {
				cur = e.P
				return acc
			}
			dir := seg.Scale(1 / length)
			dist := period - residual
			for dist <= length {
				pt := cur.Add(dir.Scale(dist))
				acc = f(acc, SampleEvent{P: pt})
				dist += period
			}
			residual = length - (dist - period)
			cur = e.P
		case FlatClose:
		}
		return acc
	})
	return acc
}

// CubicEarc approximates the elliptic arc of Earc s (from current
// point p0) as a recursive subdivision into cubic Béziers, each leaf
// meeting the per-level flatness bound (2·sin⁶(Δt/4))/(27·cos²(Δt/4))
// ≤ tol/max(rx,ry), built with the classic tangent-length construction
// l = (4·tan(Δt/4))/3 (§4.2's `cubic_earc`). acc/f receive each leaf
// cubic's (c1, c2, end) control points in order.
func CubicEarc[A any](p0 P2, s Earc, tol float64, acc A, f func(acc A, c1, c2, end P2) A) A {
	params, ok := EarcParams(p0, s.P, s.Large, s.CW, s.Angle, s.Radii)
	if !ok {
		return acc
	}
	rx, ry := math.Abs(s.Radii.X), math.Abs(s.Radii.Y)
	maxR := math.Max(rx, ry)
	tolPrime := tol
	if maxR > 0 {
		tolPrime = tol / maxR
	}
	return cubicEarcRange(params, params.Start, params.End, tolPrime, acc, f)
}

func cubicEarcRange[A any](params ArcParams, t0, t1, tolPrime float64, acc A, f func(acc A, c1, c2, end P2) A) A {
	dt := t1 - t0
	bound := (2 * math.Pow(math.Sin(dt/4), 6)) / (27 * math.Pow(math.Cos(dt/4), 2))
	if bound <= tolPrime {
		c1, c2, end := cubicArcSegment(params, t0, t1)
		return f(acc, c1, c2, end)
	}
	tm := (t0 + t1) / 2
	acc = cubicEarcRange(params, t0, tm, tolPrime, acc, f)
	return cubicEarcRange(params, tm, t1, tolPrime, acc, f)
}

// cubicArcSegment builds one cubic Bézier leaf approximating the arc
// from t0 to t1 using the standard tangent-length construction.
func cubicArcSegment(params ArcParams, t0, t1 float64) (P2, P2, P2) {
	dt := t1 - t0
	l := (4 * math.Tan(dt/4)) / 3

	p0 := params.PointOnArc(t0)
	p1 := params.PointOnArc(t1)
	tan0 := params.Basis.Apply(V2{X: -math.Sin(t0), Y: math.Cos(t0)})
	tan1 := params.Basis.Apply(V2{X: -math.Sin(t1), Y: math.Cos(t1)})

	c1 := p0.Add(tan0.Scale(l))
	c2 := p1.Add(tan1.Scale(l).Neg())
	return c1, c2, p1
}

