package raster

import (
	"image"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

// Canvas is an RGBA pixel target. All drawing is clipped to its bounds.
//
// It satisfies drivers.Displayer so tinyfont can render glyphs into it.
type Canvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*Canvas)(nil)

// NewCanvas allocates a w x h canvas cleared to white.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	c.Clear(White)
	return c
}

// CanvasFrom draws into an existing image without clearing it. A non-zero
// origin is rebased to (0, 0).
func CanvasFrom(img *image.RGBA) *Canvas {
	if img == nil {
		img = image.NewRGBA(image.Rectangle{})
	}
	if img.Rect.Min != (image.Point{}) {
		img = img.SubImage(img.Rect).(*image.RGBA)
		img.Rect = img.Rect.Sub(img.Rect.Min)
	}
	return &Canvas{img: img}
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the backing image. Callers must not resize it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// MaxDim is the largest width or height drivers.Displayer can report.
const MaxDim = math.MaxInt16

// Size implements drivers.Displayer. Dimensions beyond MaxDim are clamped.
func (c *Canvas) Size() (x, y int16) {
	return int16(clampInt(c.Width(), 0, MaxDim)), int16(clampInt(c.Height(), 0, MaxDim))
}

// SetPixel implements drivers.Displayer. It overwrites the pixel.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.Set(int(x), int(y), col)
}

// Display implements drivers.Displayer. A canvas has nothing to flush.
func (c *Canvas) Display() error { return nil }

func (c *Canvas) Set(x, y int, col color.RGBA) {
	if !c.inBounds(x, y) {
		return
	}
	off := c.img.PixOffset(x, y)
	p := c.img.Pix[off : off+4 : off+4]
	p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
}

func (c *Canvas) At(x, y int) color.RGBA {
	if !c.inBounds(x, y) {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x, y)
}

// Blend composites col over the existing pixel.
func (c *Canvas) Blend(x, y int, col color.RGBA) {
	if !c.inBounds(x, y) {
		return
	}
	if col.A == 0xFF {
		c.Set(x, y, col)
		return
	}
	c.Set(x, y, Over(c.img.RGBAAt(x, y), col))
}

func (c *Canvas) Clear(col color.RGBA) {
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// FillRectangle fills [x, x+width) x [y, y+height) with col, blending when
// col is translucent.
func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	x0 := clampInt(int(x), 0, c.Width())
	y0 := clampInt(int(y), 0, c.Height())
	x1 := clampInt(int(x)+int(width), 0, c.Width())
	y1 := clampInt(int(y)+int(height), 0, c.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.Blend(px, py, col)
		}
	}
	return nil
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width() && y < c.Height()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
