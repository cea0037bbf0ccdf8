package vg

import "github.com/monstasat/vg/meta"

// Blender selects how two images combine in a Blend node (§3.4).
type Blender int

const (
	Over Blender = iota
	Atop
	In
	Out
	Plus
	Copy
	Xor
)

// Image is an immutable, structurally shared node in a compositional
// image tree (§3.4). The interface is sealed — isImage is unexported,
// so only this package can introduce new node kinds.
type Image interface {
	isImage()
}

// PrimitiveKind discriminates the four Primitive leaf shapes.
type PrimitiveKind int

const (
	PrimConst PrimitiveKind = iota
	PrimAxial
	PrimRadial
	PrimRaster
)

// Primitive is a leaf image: a uniform color, a gradient, or a raster
// sample mapped onto a box. Backends outside this package read it
// through the Kind, ColorValue, GradientStops, AxialEndpoints,
// RadialGeometry and RasterData accessors in backend_spi.go rather than
// this struct's fields directly.
type Primitive struct {
	kind PrimitiveKind

	color         Color // PrimConst
	stops         Stops // PrimAxial, PrimRadial
	p1, p2        P2    // PrimAxial
	focus, center P2
	radius        float64 // PrimRadial
	bounds        Box2    // PrimRaster
	raster        Raster  // PrimRaster
}

func (Primitive) isImage() {}

// Const builds a uniform-color image.
func Const(c Color) Image { return Primitive{kind: PrimConst, color: c} }

// Void is the distinguished transparent image; equal by value to
// Const(Transparent).
var Void = Const(Transparent)

// IsVoid reports whether img is a uniform-color primitive whose color is
// Transparent. It compares values, not identity, so Void and any
// Const(Transparent) both report true.
func IsVoid(img Image) bool {
	p, ok := img.(Primitive)
	return ok && p.kind == PrimConst && p.color == Transparent
}

// Axial builds a linear gradient along p1 to p2.
func Axial(stops Stops, p1, p2 P2) Image {
	return Primitive{kind: PrimAxial, stops: sortedStops(stops), p1: p1, p2: p2}
}

// Radial builds a radial gradient of the given center and radius, with
// focus defaulting to center when not otherwise specified via
// RadialFocus.
func Radial(stops Stops, center P2, radius float64) Image {
	return Primitive{kind: PrimRadial, stops: sortedStops(stops), focus: center, center: center, radius: radius}
}

// RadialFocus builds a radial gradient with an off-center focus point.
func RadialFocus(stops Stops, focus, center P2, radius float64) Image {
	return Primitive{kind: PrimRadial, stops: sortedStops(stops), focus: focus, center: center, radius: radius}
}

// RasterImage maps r onto bounds.
func RasterImage(bounds Box2, r Raster) Image {
	return Primitive{kind: PrimRaster, bounds: bounds, raster: r}
}

// Cut clips img to the interior of p interpreted under area.
type Cut struct {
	Area  Area
	Path  Path
	Image Image
}

func (Cut) isImage() {}

// CutWith clips img to p under area (default Anz when area is the zero
// value — callers wanting Anz explicitly should just pass vg.Anz).
func CutWith(area Area, p Path, img Image) Image {
	return Cut{Area: area, Path: p, Image: img}
}

// CutPath clips img to the non-zero-winding interior of p.
func CutPath(p Path, img Image) Image {
	return Cut{Area: Anz, Path: p, Image: img}
}

// Blend places Src atop Dst using Blender, with an optional global
// alpha (HasAlpha=false means "use the source's inherent alpha only").
type Blend struct {
	Blender  Blender
	Alpha    float64
	HasAlpha bool
	Src, Dst Image
}

func (Blend) isImage() {}

// BlendOver places src atop dst with the default Over blender and no
// global alpha override.
func BlendOver(src, dst Image) Image {
	return Blend{Blender: Over, Src: src, Dst: dst}
}

// BlendWith places src atop dst using blender, with global alpha.
func BlendWith(blender Blender, alpha float64, src, dst Image) Image {
	return Blend{Blender: blender, Alpha: alpha, HasAlpha: true, Src: src, Dst: dst}
}

// transformKind discriminates Tr's four transform shapes.
type transformKind int

const (
	trMove transformKind = iota
	trRot
	trScale
	trMatrix
)

// Tr applies an affine transform to the geometry of an image (§4.3:
// "Tr composes on the outside").
type Tr struct {
	kind   transformKind
	vec    V2
	angle  float64
	scale  float64
	matrix M3
	Image  Image
}

func (Tr) isImage() {}

// Move translates img by v.
func Move(v V2, img Image) Image { return Tr{kind: trMove, vec: v, Image: img} }

// Rot rotates img by angle radians about the origin.
func Rot(angle float64, img Image) Image { return Tr{kind: trRot, angle: angle, Image: img} }

// ScaleImage uniformly scales img by s about the origin.
func ScaleImage(s float64, img Image) Image { return Tr{kind: trScale, scale: s, Image: img} }

// TrMatrix applies the general affine transform m to img.
func TrMatrix(m M3, img Image) Image { return Tr{kind: trMatrix, matrix: m, Image: img} }

// Matrix returns the M3 this Tr node applies, regardless of which
// constructor built it.
func (t Tr) Matrix() M3 {
	switch t.kind {
	case trMove:
		return Translate(t.vec)
	case trRot:
		return Rotate(t.angle)
	case trScale:
		return ScaleUniform(t.scale)
	default:
		return t.matrix
	}
}

// Meta annotates Image with metadata; purely informational, it never
// changes how Image renders (§4.3).
type Meta struct {
	Meta  meta.Meta
	Image Image
}

func (Meta) isImage() {}

// Tag attaches m to img.
func Tag(m meta.Meta, img Image) Image { return Meta{Meta: m, Image: img} }
