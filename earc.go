package vg

import "math"

// epsArc is the epsilon used by all degenerate-arc comparisons in
// earc_params, per §4.2 ("All comparisons against zero use an epsilon
// (1e-9)").
const epsArc = 1e-9

func roundZero(x float64) float64 {
	if math.Abs(x) < epsArc {
		return 0
	}
	return x
}

// ArcParams is the result of earc_params: the ellipse's center, its
// 2x2 basis (rotation+scale) matrix, and the start/end angles of the
// arc on the unit circle in the rotated-and-scaled frame.
type ArcParams struct {
	Center     P2
	Basis      M2
	Start, End float64
}

// EarcParams computes the center parameterization of an elliptic arc
// from p0 to p1 (§4.2). It returns ok=false when rx≈0 or ry≈0
// (degenerate), when the endpoints coincide, or when they are too far
// apart for the given radii — exactly the three cases invariant 3 in
// §8 enumerates.
func EarcParams(p0, p1 P2, large, cw bool, angle float64, radii V2) (ArcParams, bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if roundZero(rx) == 0 || roundZero(ry) == 0 {
		return ArcParams{}, false
	}
	if p0.Approx(p1, epsArc) {
		return ArcParams{}, false
	}

	sinA, cosA := math.Sin(angle), math.Cos(angle)

	// Move to the midpoint-centered, un-rotated frame (standard SVG
	// arc-to-center construction).
	dx2, dy2 := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1p := cosA*dx2 + sinA*dy2
	y1p := -sinA*dx2 + cosA*dy2

	// Endpoints too far apart given (rx, ry): 1/‖p0'p1'‖² − 1/4 < 0 in
	// the radii-normalized frame, i.e. (x1p/rx)² + (y1p/ry)² > 1/4 ⋅ 4.
	// Unlike the SVG construction, this is not corrected by rescaling
	// the radii — it is one of the three conditions that makes the arc
	// unreachable and earc_params return None.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if roundZero(1/(4*lambda)-0.25) < 0 {
		return ArcParams{}, false
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p

	d := 0.0
	if den != 0 {
		v := num / den
		if v < 0 {
			v = 0
		}
		d = math.Sqrt(v)
	}
	// The sign of d realizes the requested (large, cw) combination:
	// negated iff large != cw. (The standard SVG construction negates
	// on large==sweep, but that assumes a y-down screen frame; this
	// package's y-up math convention mirrors the handedness, so the
	// condition mirrors too.)
	if large != cw {
		d = -d
	}

	cxp := d * (rx * y1p / ry)
	cyp := -d * (ry * x1p / rx)

	cx := cosA*cxp - sinA*cyp + (p0.X+p1.X)/2
	cy := sinA*cxp + cosA*cyp + (p0.Y+p1.Y)/2

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry

	t0 := angleBetween(1, 0, ux, uy)
	dt := angleBetween(ux, uy, vx, vy)

	// As above, the sweep-direction correction mirrors the standard
	// SVG one for the same y-up/y-down handedness reason.
	if cw && dt > 0 {
		dt -= 2 * math.Pi
	} else if !cw && dt < 0 {
		dt += 2 * math.Pi
	}
	t1 := t0 + dt

	basis := M2{A: rx * cosA, B: -ry * sinA, C: rx * sinA, D: ry * cosA}

	return ArcParams{Center: Pt(cx, cy), Basis: basis, Start: t0, End: t1}, true
}

func angleBetween(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	lu := math.Hypot(ux, uy)
	lv := math.Hypot(vx, vy)
	cosAngle := dot / (lu * lv)
	cosAngle = math.Max(-1, math.Min(1, cosAngle))
	angle := math.Acos(cosAngle)
	if ux*vy-uy*vx < 0 {
		angle = -angle
	}
	return angle
}

// PointOnArc evaluates the arc's ellipse at parameter t (radians) in
// the rotated-and-scaled frame: center + basis·(cos t, sin t). Used by
// the S3/invariant-4 "p0 and p1 lie on the ellipse" property and by
// bounds/flattening's midpoint sampling.
func (a ArcParams) PointOnArc(t float64) P2 {
	u := V2{X: math.Cos(t), Y: math.Sin(t)}
	v := a.Basis.Apply(u)
	return a.Center.Add(v)
}
