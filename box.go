package vg

import "math"

// Box2 is an axis-aligned bounding box.
type Box2 struct {
	Min, Max P2
}

// EmptyBox2 is the empty box: it unions away to whatever it is joined with.
var EmptyBox2 = Box2{
	Min: P2{X: math.Inf(1), Y: math.Inf(1)},
	Max: P2{X: math.Inf(-1), Y: math.Inf(-1)},
}

// IsEmpty reports whether b is the empty box.
func (b Box2) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// BoxOfPoints returns the smallest box containing p and q.
func BoxOfPoints(p, q P2) Box2 {
	return Box2{
		Min: P2{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)},
		Max: P2{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)},
	}
}

// BoxOfPoint returns the degenerate box containing just p.
func BoxOfPoint(p P2) Box2 { return Box2{Min: p, Max: p} }

// Union returns the smallest box containing both b and other.
func (b Box2) Union(other Box2) Box2 {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return Box2{
		Min: P2{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y)},
		Max: P2{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y)},
	}
}

// UnionPoint grows b to also contain p.
func (b Box2) UnionPoint(p P2) Box2 { return b.Union(BoxOfPoint(p)) }

// Width returns Max.X - Min.X.
func (b Box2) Width() float64 { return b.Max.X - b.Min.X }

// Height returns Max.Y - Min.Y.
func (b Box2) Height() float64 { return b.Max.Y - b.Min.Y }

// Contains reports whether p lies within b, inclusive of the boundary.
func (b Box2) Contains(p P2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Transform maps b's four corners through m and returns their bounding box.
// Used by invariant 1 (P.bounds(P.tr(m,p)) ⊇ Box2.tr(m, P.bounds(p))).
func (b Box2) Transform(m M3) Box2 {
	if b.IsEmpty() {
		return b
	}
	corners := [4]P2{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
	out := BoxOfPoint(m.Apply(corners[0]))
	for _, c := range corners[1:] {
		out = out.UnionPoint(m.Apply(c))
	}
	return out
}

// Approx reports whether b and other are equal within epsilon.
func (b Box2) Approx(other Box2, epsilon float64) bool {
	return b.Min.Approx(other.Min, epsilon) && b.Max.Approx(other.Max, epsilon)
}
