package vg

import "math"

// Builder contract (§4.2): every operation takes an existing Path and
// returns a new one. Absolute variants take a P2; the Rel-suffixed
// twin takes a V2 offset — from the previous subpath's origin for Sub,
// from the current point for everything else.

// ensureSubpath inserts an implicit Sub at the path's origin when p is
// empty or its last segment was Close, satisfying §4.2's "implicit
// Sub(origin) is inserted first" rule for Line/Qcurve/Ccurve/Earc. Close
// itself never calls this — see Close below.
func (p Path) ensureSubpath() Path {
	if p.n == 0 {
		return p.pushSub(P2{})
	}
	if p.lastWasClose {
		return p.pushSub(p.subStart)
	}
	return p
}

// pushSub appends a Sub segment, replacing a still-empty trailing
// subpath rather than stacking two Subs in a row (invariant 2).
func (p Path) pushSub(pt P2) Path {
	head, n := p.head, p.n
	if n > 0 && p.subOpen {
		head = head.prev
		n--
	}
	p.head = &segNode{seg: Sub{P: pt}, prev: head}
	p.n = n + 1
	p.subStart = pt
	p.current = pt
	p.hasCurrent = true
	p.subOpen = true
	p.lastWasClose = false
	return p
}

func (p Path) pushSeg(seg Segment, endpoint P2) Path {
	p.head = &segNode{seg: seg, prev: p.head}
	p.n++
	p.current = endpoint
	p.hasCurrent = true
	p.subOpen = false
	p.lastWasClose = false
	return p
}

// Sub begins a new subpath at pt.
func (p Path) Sub(pt P2) Path { return p.ensureSubpath().pushSub(pt) }

// SubRel begins a new subpath at the previous subpath's origin offset
// by v.
func (p Path) SubRel(v V2) Path {
	origin := P2{}
	if p.hasCurrent {
		origin = p.subStart
	}
	return p.Sub(origin.Add(v))
}

// LineTo draws a straight line to pt.
func (p Path) LineTo(pt P2) Path {
	p = p.ensureSubpath()
	return p.pushSeg(Line{P: pt}, pt)
}

// LineRel draws a straight line to the current point offset by v.
func (p Path) LineRel(v V2) Path { return p.LineTo(p.currentOrOrigin().Add(v)) }

// QcurveTo draws a quadratic Bézier with control point c to pt.
func (p Path) QcurveTo(c, pt P2) Path {
	p = p.ensureSubpath()
	return p.pushSeg(Qcurve{C: c, P: pt}, pt)
}

// QcurveRel is QcurveTo with c and pt given as offsets from the current
// point.
func (p Path) QcurveRel(c, pt V2) Path {
	o := p.currentOrOrigin()
	return p.QcurveTo(o.Add(c), o.Add(pt))
}

// CcurveTo draws a cubic Bézier with control points c1, c2 to pt.
func (p Path) CcurveTo(c1, c2, pt P2) Path {
	p = p.ensureSubpath()
	return p.pushSeg(Ccurve{C1: c1, C2: c2, P: pt}, pt)
}

// CcurveRel is CcurveTo with all three points given as offsets from the
// current point.
func (p Path) CcurveRel(c1, c2, pt V2) Path {
	o := p.currentOrOrigin()
	return p.CcurveTo(o.Add(c1), o.Add(c2), o.Add(pt))
}

// EarcTo draws an elliptic arc to pt, large selecting the 180°+ arc and
// cw the clockwise arc, angle the ellipse's x-axis rotation in radians
// and radii = (rx, ry).
func (p Path) EarcTo(large, cw bool, angle float64, radii V2, pt P2) Path {
	p = p.ensureSubpath()
	return p.pushSeg(Earc{Large: large, CW: cw, Angle: angle, Radii: radii, P: pt}, pt)
}

// EarcRel is EarcTo with pt given as an offset from the current point.
func (p Path) EarcRel(large, cw bool, angle float64, radii V2, pt V2) Path {
	return p.EarcTo(large, cw, angle, radii, p.currentOrOrigin().Add(pt))
}

// Close closes the current subpath. Closing an empty path, a subpath
// that has no segments beyond its own Sub, or repeating Close
// immediately is a no-op: manifesting any of those would produce the
// empty-subpath-between-two-closes sequence invariant 3 forbids. See
// DESIGN.md for the reasoning.
func (p Path) Close() Path {
	if p.n == 0 || p.lastWasClose || p.subOpen {
		return p
	}
	p.head = &segNode{seg: Close{}, prev: p.head}
	p.n++
	p.subOpen = false
	p.lastWasClose = true
	return p
}

func (p Path) currentOrOrigin() P2 {
	if p.hasCurrent {
		return p.current
	}
	return P2{}
}

// --- convenience constructors (§4.2) ---

// Rect appends a rectangle as three lines and a Close (which draws the
// fourth side), starting at (x, y) and going counter-clockwise with Y up.
func (p Path) Rect(x, y, w, h float64) Path {
	return p.Sub(Pt(x, y)).
		LineTo(Pt(x+w, y)).
		LineTo(Pt(x+w, y+h)).
		LineTo(Pt(x, y+h)).
		Close()
}

// Circle appends a full circle of the given center and radius as two
// elliptic arcs (the large=false halves), closed.
func Circle(center P2, radius float64) Path {
	return EmptyPath().Ellipse(center, radius, radius)
}

// Ellipse appends a full ellipse as two elliptic arcs meeting at the
// leftmost and rightmost points, closed. Grounded on
// other_examples/tdewolff-canvas__path.go's two-ArcTo ellipse
// construction, per §4.2's "two Earcs for circle/ellipse".
func (p Path) Ellipse(center P2, rx, ry float64) Path {
	left := Pt(center.X-rx, center.Y)
	right := Pt(center.X+rx, center.Y)
	radii := Vec(rx, ry)
	return p.Sub(left).
		EarcTo(false, true, 0, radii, right).
		EarcTo(false, true, 0, radii, left).
		Close()
}

// EllipseShape is the package-level convenience form of Path.Ellipse on an
// empty path.
func EllipseShape(center P2, rx, ry float64) Path {
	return EmptyPath().Ellipse(center, rx, ry)
}

// RRect appends a rectangle with corners rounded by radius r, as eight
// segments (four lines, four arcs), closed, per §4.2.
func (p Path) RRect(x, y, w, h, r float64) Path {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return p.Rect(x, y, w, h)
	}
	radii := Vec(r, r)
	return p.Sub(Pt(x+r, y)).
		LineTo(Pt(x+w-r, y)).
		EarcTo(false, true, 0, radii, Pt(x+w, y+r)).
		LineTo(Pt(x+w, y+h-r)).
		EarcTo(false, true, 0, radii, Pt(x+w-r, y+h)).
		LineTo(Pt(x+r, y+h)).
		EarcTo(false, true, 0, radii, Pt(x, y+h-r)).
		LineTo(Pt(x, y+r)).
		EarcTo(false, true, 0, radii, Pt(x+r, y)).
		Close()
}
