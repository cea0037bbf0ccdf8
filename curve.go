package vg

import "sort"

// Quadratic and cubic Bézier evaluation, used internally by Bounds,
// LinearFold and CubicEarc. Not part of the public Path segment types —
// those are expressed in terms of control points directly — but the
// same de Casteljau math underlies both.

type quadBez struct{ P0, P1, P2 P2 }

func (q quadBez) eval(t float64) P2 {
	mt := 1 - t
	return P2{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

func (q quadBez) subdivide() (quadBez, quadBez) {
	mid := q.eval(0.5)
	return quadBez{P0: q.P0, P1: q.P0.Lerp(q.P1, 0.5), P2: mid},
		quadBez{P0: mid, P1: q.P1.Lerp(q.P2, 0.5), P2: q.P2}
}

// extrema returns the interior parameter values where the derivative
// vanishes on each axis, so tight bounds of a quadratic include its
// exact extrema (see DESIGN.md's Open Question resolution).
func (q quadBez) extrema() []float64 {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	var result []float64
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

func (q quadBez) boundingBox() Box2 {
	bb := BoxOfPoints(q.P0, q.P2)
	for _, t := range q.extrema() {
		bb = bb.UnionPoint(q.eval(t))
	}
	return bb
}

type cubicBez struct{ P0, P1, P2, P3 P2 }

func (c cubicBez) eval(t float64) P2 {
	mt := 1 - t
	mt2, t2 := mt*mt, t*t
	mt3, t3 := mt2*mt, t2*t
	return P2{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

func (c cubicBez) subdivide() (cubicBez, cubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	return cubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		cubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// extrema implements the Kallay-style stable quadratic solve (solver.go)
// applied to each coordinate of the cubic's derivative, per §4.2.
func (c cubicBez) extrema() []float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result := make([]float64, 0, 4)
	ax, bx, cx := d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X
	result = append(result, SolveQuadraticInUnitInterval(ax, bx, cx)...)
	ay, by, cy := d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y
	result = append(result, SolveQuadraticInUnitInterval(ay, by, cy)...)
	sort.Float64s(result)
	return result
}

func (c cubicBez) boundingBox() Box2 {
	bb := BoxOfPoints(c.P0, c.P3)
	for _, t := range c.extrema() {
		bb = bb.UnionPoint(c.eval(t))
	}
	return bb
}

// flatnessQuad tests a quadratic against the flatness bound
// ‖2P1-P0-P2‖² ≤ 16·tol² (§4.2).
func flatnessQuad(q quadBez, tol float64) bool {
	d := V2{X: 2*q.P1.X - q.P0.X - q.P2.X, Y: 2*q.P1.Y - q.P0.Y - q.P2.Y}
	return d.LengthSq() <= 16*tol*tol
}

// flatnessCubic tests a cubic against the Fischer/Willocks flatness bound:
// max(‖3P1-2P0-P3‖², ‖3P2-2P3-P0‖²) ≤ 16·tol² (§4.2).
func flatnessCubic(c cubicBez, tol float64) bool {
	d1 := V2{X: 3*c.P1.X - 2*c.P0.X - c.P3.X, Y: 3*c.P1.Y - 2*c.P0.Y - c.P3.Y}
	d2 := V2{X: 3*c.P2.X - 2*c.P3.X - c.P0.X, Y: 3*c.P2.Y - 2*c.P3.Y - c.P0.Y}
	bound := 16 * tol * tol
	return d1.LengthSq() <= bound && d2.LengthSq() <= bound
}
