package vg

import "testing"

func TestPrimitiveKindAndColorValue(t *testing.T) {
	p := Const(Red).(Primitive)
	if p.Kind() != PrimConst {
		t.Errorf("Kind() = %v, want PrimConst", p.Kind())
	}
	if p.ColorValue() != Red {
		t.Errorf("ColorValue() = %v, want Red", p.ColorValue())
	}
}

func TestPrimitiveAxialAccessors(t *testing.T) {
	stops := Stops{{Offset: 0, Color: Red}, {Offset: 1, Color: Blue}}
	p1, p2 := Pt(0, 0), Pt(10, 0)
	img := Axial(stops, p1, p2).(Primitive)
	if img.Kind() != PrimAxial {
		t.Errorf("Kind() = %v, want PrimAxial", img.Kind())
	}
	gotP1, gotP2 := img.AxialEndpoints()
	if gotP1 != p1 || gotP2 != p2 {
		t.Errorf("AxialEndpoints() = (%v, %v), want (%v, %v)", gotP1, gotP2, p1, p2)
	}
	if got := img.GradientStops(); len(got) != 2 {
		t.Errorf("GradientStops() len = %d, want 2", len(got))
	}
}

func TestPrimitiveRadialAccessors(t *testing.T) {
	stops := Stops{{Offset: 0, Color: Red}, {Offset: 1, Color: Blue}}
	focus, center := Pt(1, 1), Pt(0, 0)
	img := RadialFocus(stops, focus, center, 5).(Primitive)
	if img.Kind() != PrimRadial {
		t.Errorf("Kind() = %v, want PrimRadial", img.Kind())
	}
	gotFocus, gotCenter, gotRadius := img.RadialGeometry()
	if gotFocus != focus || gotCenter != center || gotRadius != 5 {
		t.Errorf("RadialGeometry() = (%v, %v, %v), want (%v, %v, 5)", gotFocus, gotCenter, gotRadius, focus, center)
	}
}

func TestPrimitiveRasterAccessors(t *testing.T) {
	r := newSolidRaster(2, 2, Red)
	bounds := BoxOfPoints(Pt(0, 0), Pt(2, 2))
	img := RasterImage(bounds, r).(Primitive)
	if img.Kind() != PrimRaster {
		t.Errorf("Kind() = %v, want PrimRaster", img.Kind())
	}
	gotBounds, gotRaster := img.RasterData()
	if gotBounds != bounds {
		t.Errorf("RasterData() bounds = %v, want %v", gotBounds, bounds)
	}
	if !gotRaster.Equal(r) {
		t.Error("RasterData() raster should equal the original")
	}
}

func TestTrKindAndAccessors(t *testing.T) {
	move := Move(Vec(1, 2), Const(Red)).(Tr)
	if move.Kind() != KindMove {
		t.Errorf("Kind() = %v, want KindMove", move.Kind())
	}
	if move.Vec() != Vec(1, 2) {
		t.Errorf("Vec() = %v, want (1,2)", move.Vec())
	}

	rot := Rot(1.5, Const(Red)).(Tr)
	if rot.Kind() != KindRot {
		t.Errorf("Kind() = %v, want KindRot", rot.Kind())
	}
	if rot.Angle() != 1.5 {
		t.Errorf("Angle() = %v, want 1.5", rot.Angle())
	}

	scale := ScaleImage(3, Const(Red)).(Tr)
	if scale.Kind() != KindScale {
		t.Errorf("Kind() = %v, want KindScale", scale.Kind())
	}
	if scale.Scale() != 3 {
		t.Errorf("Scale() = %v, want 3", scale.Scale())
	}

	m := Translate(Vec(4, 5))
	matrix := TrMatrix(m, Const(Red)).(Tr)
	if matrix.Kind() != KindMatrix {
		t.Errorf("Kind() = %v, want KindMatrix", matrix.Kind())
	}
	if matrix.Matrix() != m {
		t.Errorf("Matrix() = %v, want %v", matrix.Matrix(), m)
	}
}
