package vg

import (
	"image/color"
	"math"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// NativeColor converts c to the standard color.Color interface.
func (c Color) NativeColor() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// ColorFromNative converts a standard color.Color to Color.
func ColorFromNative(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{R: float64(r) / 65535, G: float64(g) / 65535, B: float64(b) / 65535, A: float64(a) / 65535}
}

// sRGBToLinear converts one sRGB component to linear light (the EOTF).
func sRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// linearToSRGB converts one linear-light component to sRGB (the OETF).
func linearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// toLinear converts c's RGB channels from sRGB to linear light; alpha
// is already linear and passes through unchanged.
func (c Color) toLinear() Color {
	return Color{R: sRGBToLinear(c.R), G: sRGBToLinear(c.G), B: sRGBToLinear(c.B), A: c.A}
}

// fromLinear is the inverse of toLinear.
func (c Color) fromLinear() Color {
	return Color{R: linearToSRGB(c.R), G: linearToSRGB(c.G), B: linearToSRGB(c.B), A: c.A}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1.0} }

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// Hex creates a color from a hex string. Supports "RGB", "RGBA",
// "RRGGBB", "RRGGBBAA", with or without a leading "#".
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{R: 0, G: 0, B: 0, A: 1}
	}

	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: float64(a) / 255}
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Premultiply returns a premultiplied color.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply returns an unpremultiplied color.
func (c Color) Unpremultiply() Color {
	if c.A == 0 {
		return Color{}
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// Lerp performs linear interpolation between two colors in straight
// (non-premultiplied) space.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Approx reports whether c and other are equal within epsilon on each
// channel.
func (c Color) Approx(other Color, epsilon float64) bool {
	return math.Abs(c.R-other.R) <= epsilon &&
		math.Abs(c.G-other.G) <= epsilon &&
		math.Abs(c.B-other.B) <= epsilon &&
		math.Abs(c.A-other.A) <= epsilon
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// HSL creates a color from HSL values: h is hue in [0, 360), s is
// saturation in [0, 1], l is lightness in [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}

// Stop is one (offset, color) pair of a gradient. Offset lies in [0, 1].
type Stop struct {
	Offset float64
	Color  Color
}

// Stops is an ordered sequence of Stop with non-decreasing offsets.
type Stops []Stop
