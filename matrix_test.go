package vg

import (
	"math"
	"testing"
)

func TestM3ApplyIdentity(t *testing.T) {
	p := Pt(3, 4)
	if got := Identity().Apply(p); got != p {
		t.Errorf("Identity().Apply(%v) = %v, want %v", p, got, p)
	}
}

func TestM3Translate(t *testing.T) {
	m := Translate(Vec(1, 2))
	got := m.Apply(Pt(0, 0))
	if !got.Approx(Pt(1, 2), 1e-12) {
		t.Errorf("Translate.Apply((0,0)) = %v, want (1,2)", got)
	}
}

func TestM3MulOrderOfOperations(t *testing.T) {
	// m.Mul(other).Apply(p) == m.Apply(other.Apply(p))
	m := Rotate(math.Pi / 2)
	other := Translate(Vec(1, 0))
	p := Pt(1, 0)
	composed := m.Mul(other).Apply(p)
	sequential := m.Apply(other.Apply(p))
	if !composed.Approx(sequential, 1e-9) {
		t.Errorf("Mul composition mismatch: %v vs %v", composed, sequential)
	}
}

func TestM3InvertRoundTrip(t *testing.T) {
	m := Translate(Vec(5, -3)).Mul(Rotate(0.7)).Mul(ScaleXY(2, 3))
	inv := m.Invert()
	p := Pt(4, 9)
	roundTrip := inv.Apply(m.Apply(p))
	if !roundTrip.Approx(p, 1e-9) {
		t.Errorf("Invert round trip = %v, want %v", roundTrip, p)
	}
}

func TestM3InvertSingular(t *testing.T) {
	m := M3{A: 0, B: 0, C: 1, D: 0, E: 0, F: 2}
	if got := m.Invert(); !got.IsIdentity() {
		t.Errorf("Invert() of a singular matrix = %v, want Identity", got)
	}
}

func TestM3IsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity() should report IsIdentity")
	}
	if Translate(Vec(1, 0)).IsIdentity() {
		t.Error("a translation should not report IsIdentity")
	}
}

func TestM3Linear(t *testing.T) {
	m := Translate(Vec(5, 5)).Mul(ScaleXY(2, 3))
	lin := m.Linear()
	v := lin.Apply(Vec(1, 1))
	if !v.Approx(Vec(2, 3), 1e-9) {
		t.Errorf("Linear().Apply((1,1)) = %v, want (2,3) (translation dropped)", v)
	}
}

// invariant 1: P.bounds(P.tr(m,p), ctrl=true) ⊇ Box2.tr(m, P.bounds(p, ctrl=true))
func TestInvariant1BoundsTransformContainment(t *testing.T) {
	p := EmptyPath().Sub(Pt(0, 0)).QcurveTo(Pt(1, 2), Pt(2, 0))
	m := Rotate(0.3).Mul(Translate(Vec(1, -1))).Mul(ScaleXY(1.5, 0.7))

	boundsThenTransform := p.Bounds(true).Transform(m)
	transformThenBounds := p.Transform(m).Bounds(true)

	// transformThenBounds must contain boundsThenTransform (within fp slack).
	eps := 1e-9
	if transformThenBounds.Min.X > boundsThenTransform.Min.X+eps ||
		transformThenBounds.Min.Y > boundsThenTransform.Min.Y+eps ||
		transformThenBounds.Max.X < boundsThenTransform.Max.X-eps ||
		transformThenBounds.Max.Y < boundsThenTransform.Max.Y-eps {
		t.Errorf("bounds(tr(m,p)) = %v does not contain tr(m, bounds(p)) = %v",
			transformThenBounds, boundsThenTransform)
	}
}
