package raster

import "image/color"

var (
	White = RGB(0xFF, 0xFF, 0xFF)
	Black = RGB(0x00, 0x00, 0x00)
	Red   = RGB(0xD6, 0x27, 0x28)
	Green = RGB(0x00, 0x80, 0x00)
	Blue  = RGB(0x1F, 0x77, 0xB4)
	Gray  = RGB(0x88, 0x88, 0x88)
)

func RGB(r, g, b uint8) color.RGBA     { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: a} }

// WithOpacity returns c with its alpha set from a 0..1 opacity.
func WithOpacity(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(opacity*255 + 0.5)
	return c
}

// Over composites src (straight alpha) over dst.
func Over(dst, src color.RGBA) color.RGBA {
	switch src.A {
	case 0xFF:
		return src
	case 0:
		return dst
	}
	a := uint32(src.A)
	inv := 255 - a
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*inv + 127) / 255)
	}
	return color.RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(a + (uint32(dst.A)*inv+127)/255),
	}
}
