package vg

import "math"

// Transform maps every segment of p through m (§4.2). Line, Qcurve and
// Ccurve endpoints/control points are mapped directly; Earc recovers a
// new angle and radii from the transformed ellipse axes (m.Linear())
// and keeps Large/CW unchanged, since orientation in parameter space
// does not flip under an affine map of the plane.
func (p Path) Transform(m M3) Path {
	out := EmptyPath()
	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case Sub:
			out = out.Sub(m.Apply(s.P))
		case Line:
			out = out.LineTo(m.Apply(s.P))
		case Qcurve:
			out = out.QcurveTo(m.Apply(s.C), m.Apply(s.P))
		case Ccurve:
			out = out.CcurveTo(m.Apply(s.C1), m.Apply(s.C2), m.Apply(s.P))
		case Earc:
			angle, radii := transformEllipse(m.Linear(), s.Angle, s.Radii)
			out = out.EarcTo(s.Large, s.CW, angle, radii, m.Apply(s.P))
		case Close:
			out = out.Close()
		}
	}
	return out
}

// transformEllipse maps the ellipse's axis vectors ax=(rx cos a, rx sin
// a), ay=(-ry sin a, ry cos a) through the 2x2 linear part of an affine
// transform m, per §4.2: angle' = atan2(ax'.y, ax'.x), radii' =
// (‖ax'‖, ‖ay'‖). Non-uniform scaling may leave the result a
// non-axis-aligned ellipse relative to the reported angle; this is the
// known limitation recorded in §9 and DESIGN.md, not special-cased.
func transformEllipse(lin M2, angle float64, radii V2) (float64, V2) {
	sinA, cosA := math.Sin(angle), math.Cos(angle)
	ax := lin.Apply(V2{X: radii.X * cosA, Y: radii.X * sinA})
	ay := lin.Apply(V2{X: -radii.Y * sinA, Y: radii.Y * cosA})
	newAngle := math.Atan2(ax.Y, ax.X)
	return newAngle, Vec(ax.Length(), ay.Length())
}
