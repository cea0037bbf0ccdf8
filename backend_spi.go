package vg

// This file is the backend SPI (§4.5): the minimal surface exposed to
// code outside this package that implements a rendering backend. It
// exists because Primitive and Tr keep their discriminant and payload
// fields unexported — this file, plus the Segment types, Path.Segments,
// Tr.Matrix (image.go) and EarcParams (already exported), make up that
// surface.

// Kind reports which of the four Primitive leaf shapes p is.
func (p Primitive) Kind() PrimitiveKind { return p.kind }

// ColorValue returns p's color; valid when p.Kind() == PrimConst.
func (p Primitive) ColorValue() Color { return p.color }

// GradientStops returns p's gradient stops; valid for PrimAxial and
// PrimRadial.
func (p Primitive) GradientStops() Stops { return p.stops }

// AxialEndpoints returns the two endpoints of an axial gradient; valid
// for PrimAxial.
func (p Primitive) AxialEndpoints() (P2, P2) { return p.p1, p.p2 }

// RadialGeometry returns the focus, center and radius of a radial
// gradient; valid for PrimRadial.
func (p Primitive) RadialGeometry() (focus, center P2, radius float64) {
	return p.focus, p.center, p.radius
}

// RasterData returns the bounds and sample buffer of a raster
// primitive; valid for PrimRaster.
func (p Primitive) RasterData() (Box2, Raster) { return p.bounds, p.raster }

// TrKind discriminates the four Tr constructor shapes.
type TrKind = transformKind

const (
	KindMove   TrKind = trMove
	KindRot    TrKind = trRot
	KindScale  TrKind = trScale
	KindMatrix TrKind = trMatrix
)

// Kind reports which constructor built t.
func (t Tr) Kind() TrKind { return t.kind }

// Vec returns t's translation vector; valid when t.Kind() == KindMove.
func (t Tr) Vec() V2 { return t.vec }

// Angle returns t's rotation angle; valid when t.Kind() == KindRot.
func (t Tr) Angle() float64 { return t.angle }

// Scale returns t's uniform scale factor; valid when t.Kind() == KindScale.
func (t Tr) Scale() float64 { return t.scale }
