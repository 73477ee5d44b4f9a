package raster

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the bitmap font used for labels.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// Text draws s with its baseline at y, starting at x.
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	if s == "" {
		return
	}
	tinyfont.WriteLine(c, Font, int16(x), int16(y), s, col)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(Font, s)
	return int(outbox)
}

// LineHeight returns the vertical advance between text lines.
func LineHeight() int {
	return int(Font.GetYAdvance())
}
