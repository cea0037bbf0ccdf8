package vg

import (
	"math"
	"testing"
)

func TestTransformLine(t *testing.T) {
	p := EmptyPath().Sub(Pt(0, 0)).LineTo(Pt(1, 0))
	got := p.Transform(Translate(Vec(2, 3)))
	want := EmptyPath().Sub(Pt(2, 3)).LineTo(Pt(3, 3))
	if !got.Approx(want, 1e-9) {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}

func TestTransformPreservesSegmentShape(t *testing.T) {
	p := EmptyPath().Sub(Pt(0, 0)).CcurveTo(Pt(1, 2), Pt(3, 4), Pt(5, 0))
	got := p.Transform(Identity())
	if !got.Equal(p) {
		t.Errorf("Transform(Identity()) should be a structural no-op, got %v want %v", got, p)
	}
}

func TestTransformArcUniformScale(t *testing.T) {
	s := Earc{Large: false, CW: true, Angle: 0, Radii: Vec(1, 1), P: Pt(1, 0)}
	p := EmptyPath().Sub(Pt(0, 1)).EarcTo(s.Large, s.CW, s.Angle, s.Radii, s.P)
	got := p.Transform(ScaleUniform(2))
	seg := got.Segments()[1].(Earc)
	if math.Abs(seg.Radii.X-2) > 1e-9 || math.Abs(seg.Radii.Y-2) > 1e-9 {
		t.Errorf("uniform 2x scale of radii (1,1) = %v, want (2,2)", seg.Radii)
	}
}

func TestTransformArcNonUniformScale(t *testing.T) {
	p := EmptyPath().Sub(Pt(0, 1)).EarcTo(false, true, 0, Vec(1, 1), Pt(1, 0))
	got := p.Transform(ScaleXY(3, 1))
	seg := got.Segments()[1].(Earc)
	if math.Abs(seg.Radii.X-3) > 1e-9 {
		t.Errorf("x-radius after 3x scale on x = %v, want 3", seg.Radii.X)
	}
	if math.Abs(seg.Radii.Y-1) > 1e-9 {
		t.Errorf("y-radius after unchanged y scale = %v, want 1", seg.Radii.Y)
	}
}

func TestTransformArcRotation(t *testing.T) {
	p := EmptyPath().Sub(Pt(1, 0)).EarcTo(false, true, 0, Vec(2, 1), Pt(0, 1))
	got := p.Transform(Rotate(math.Pi / 2))
	seg := got.Segments()[1].(Earc)
	if math.Abs(seg.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("angle after a pi/2 rotation = %v, want pi/2", seg.Angle)
	}
	if math.Abs(seg.Radii.X-2) > 1e-9 || math.Abs(seg.Radii.Y-1) > 1e-9 {
		t.Errorf("radii should be unchanged by a pure rotation, got %v", seg.Radii)
	}
}
