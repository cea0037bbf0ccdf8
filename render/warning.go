package render

import "github.com/monstasat/vg"

// Warning is a non-fatal condition a Target reports through
// Renderer.Warn (§4.4). The interface is sealed — isWarning is
// unexported.
type Warning interface {
	isWarning()
}

// UnsupportedCut reports an Area the backend cannot honor for a cut.
type UnsupportedCut struct {
	Area  vg.Area
	Image vg.Image
}

func (UnsupportedCut) isWarning() {}

// UnsupportedGlyphCut reports an Area the backend cannot honor for a
// glyph cut.
type UnsupportedGlyphCut struct {
	Area  vg.Area
	Image vg.Image
}

func (UnsupportedGlyphCut) isWarning() {}

// OtherWarning is a backend-specific warning message.
type OtherWarning struct {
	Message string
}

func (OtherWarning) isWarning() {}
