package vg

import "math"

// Bounds returns the axis-aligned bounding box of p (§4.2). With
// ctrl=true all control points are included, cheaply and
// conservatively; with ctrl=false the box is tight: quadratics and
// cubics track their true extrema (solver.go), elliptic arcs include
// their midpoint sample. Empty paths return EmptyBox2.
func (p Path) Bounds(ctrl bool) Box2 {
	box := EmptyBox2
	var cur P2
	have := false

	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case Sub:
			box = box.UnionPoint(s.P)
			cur, have = s.P, true
		case Line:
			box = box.UnionPoint(s.P)
			cur, have = s.P, true
		case Qcurve:
			if !have {
				cur = s.P
			}
			if ctrl {
				box = box.UnionPoint(cur).UnionPoint(s.C).UnionPoint(s.P)
			} else {
				box = box.Union(quadBez{P0: cur, P1: s.C, P2: s.P}.boundingBox())
			}
			cur, have = s.P, true
		case Ccurve:
			if !have {
				cur = s.P
			}
			if ctrl {
				box = box.UnionPoint(cur).UnionPoint(s.C1).UnionPoint(s.C2).UnionPoint(s.P)
			} else {
				box = box.Union(cubicBez{P0: cur, P1: s.C1, P2: s.C2, P3: s.P}.boundingBox())
			}
			cur, have = s.P, true
		case Earc:
			if !have {
				cur = s.P
			}
			box = box.UnionPoint(cur).UnionPoint(s.P)
			if params, ok := EarcParams(cur, s.P, s.Large, s.CW, s.Angle, s.Radii); ok {
				if ctrl {
					rx, ry := math.Abs(s.Radii.X), math.Abs(s.Radii.Y)
					r := math.Max(rx, ry)
					box = box.Union(Box2{
						Min: Pt(params.Center.X-r, params.Center.Y-r),
						Max: Pt(params.Center.X+r, params.Center.Y+r),
					})
				} else {
					mid := params.PointOnArc((params.Start + params.End) / 2)
					box = box.UnionPoint(mid)
				}
			}
			cur, have = s.P, true
		case Close:
			// Close does not move the current point or add to the box.
		}
	}
	return box
}
