package vg

import "math"

// M2 is a 2x2 linear map, used to carry the linear (non-translating) part
// of an M3 — in particular the axis-vector transform of elliptic arcs.
//
//	| a  b |
//	| c  d |
type M2 struct {
	A, B, C, D float64
}

// Apply maps a vector through the linear part only.
func (m M2) Apply(v V2) V2 {
	return V2{X: m.A*v.X + m.B*v.Y, Y: m.C*v.X + m.D*v.Y}
}

// M3 is a 2D affine transformation, stored as the 2x3 row-major matrix
//
//	| a  b  c |
//	| d  e  f |
//
// representing x' = a*x + b*y + c, y' = d*x + e*y + f.
type M3 struct {
	A, B, C float64
	D, E, F float64
}

// Identity is the identity transform.
func Identity() M3 {
	return M3{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// Translate builds a pure translation.
func Translate(v V2) M3 {
	return M3{A: 1, B: 0, C: v.X, D: 0, E: 1, F: v.Y}
}

// ScaleXY builds a non-uniform scale about the origin.
func ScaleXY(sx, sy float64) M3 {
	return M3{A: sx, B: 0, C: 0, D: 0, E: sy, F: 0}
}

// ScaleUniform builds a uniform scale about the origin.
func ScaleUniform(s float64) M3 { return ScaleXY(s, s) }

// Rotate builds a rotation about the origin, angle in radians.
func Rotate(angle float64) M3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return M3{A: c, B: -s, C: 0, D: s, E: c, F: 0}
}

// Shear builds a shear transform.
func Shear(x, y float64) M3 {
	return M3{A: 1, B: x, C: 0, D: y, E: 1, F: 0}
}

// Mul composes m with other, applying other first: (m.Mul(other)).Apply(p)
// == m.Apply(other.Apply(p)).
func (m M3) Mul(other M3) M3 {
	return M3{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply maps a point through the full affine transform.
func (m M3) Apply(p P2) P2 {
	return P2{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// ApplyVector maps a displacement through the linear part only (no
// translation).
func (m M3) ApplyVector(v V2) V2 {
	return V2{X: m.A*v.X + m.B*v.Y, Y: m.D*v.X + m.E*v.Y}
}

// Linear projects m onto its M2 linear part, discarding the translation
// column. Used by the elliptic-arc axis-vector transform in
// Path.Transform (transform.go).
func (m M3) Linear() M2 {
	return M2{A: m.A, B: m.B, C: m.D, D: m.E}
}

// Invert returns the inverse of m, or the identity if m is not invertible.
func (m M3) Invert() M3 {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	inv := 1.0 / det
	return M3{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m M3) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 0 && m.E == 1 && m.F == 0
}
