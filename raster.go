package vg

import (
	"bytes"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Raster is an opaque raster sample buffer, as referenced by
// Primitive(Raster(bounds, raster)) (§3.4). It wraps a CPU pixel
// buffer; the core never decodes, rasterizes, or resamples on its own
// initiative — Resample exists purely as a convenience a backend may
// call, not something the driver invokes.
type Raster struct {
	pix *image.RGBA
}

// NewRaster wraps an existing *image.RGBA. The image is used directly,
// without copying.
func NewRaster(pix *image.RGBA) Raster { return Raster{pix: pix} }

// Bounds returns the raster's pixel bounds.
func (r Raster) Bounds() image.Rectangle {
	if r.pix == nil {
		return image.Rectangle{}
	}
	return r.pix.Bounds()
}

// Image exposes the underlying *image.RGBA for backend consumption.
func (r Raster) Image() *image.RGBA { return r.pix }

// Resample scales r to the given pixel size using a high-quality
// interpolation kernel, returning a new Raster.
func (r Raster) Resample(w, h int) Raster {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if r.pix != nil {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), r.pix, r.pix.Bounds(), draw.Over, nil)
	}
	return Raster{pix: dst}
}

// Equal reports whether r and other have identical dimensions and pixel
// bytes — the strict variant of Raster equality (§3.1).
func (r Raster) Equal(other Raster) bool {
	return r.Compare(other) == 0
}

// Compare defines a total order over rasters: first by bounds, then by
// raw pixel bytes.
func (r Raster) Compare(other Raster) int {
	rb, ob := r.Bounds(), other.Bounds()
	if rb.Dx() != ob.Dx() {
		return cmpInt(rb.Dx(), ob.Dx())
	}
	if rb.Dy() != ob.Dy() {
		return cmpInt(rb.Dy(), ob.Dy())
	}
	var rp, op []byte
	if r.pix != nil {
		rp = r.pix.Pix
	}
	if other.pix != nil {
		op = other.pix.Pix
	}
	return bytes.Compare(rp, op)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
