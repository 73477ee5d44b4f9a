package raster

import (
	"image/color"
	"math"
	"testing"
)

func countNot(c *Canvas, bg color.RGBA) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func TestSetPixelClips(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Set(-1, 0, Black)
	c.Set(4, 0, Black)
	c.Set(0, 3, Black)
	c.SetPixel(1, 1, Black)
	if got := countNot(c, White); got != 1 {
		t.Fatalf("changed pixels=%d, want 1", got)
	}
	if c.At(1, 1) != Black {
		t.Fatalf("pixel (1,1)=%v", c.At(1, 1))
	}
	if w, h := c.Size(); w != 4 || h != 3 {
		t.Fatalf("Size()=%d,%d", w, h)
	}
}

func TestSizeClampsToInt16(t *testing.T) {
	c := NewCanvas(MaxDim+10, 1)
	w, h := c.Size()
	if w != MaxDim || h != 1 {
		t.Fatalf("Size()=%d,%d, want %d,1", w, h, MaxDim)
	}
}

func TestOver(t *testing.T) {
	got := Over(White, WithOpacity(Black, 0.25))
	// 255 * (1 - 64/255) rounds to 191.
	if got.R != 191 || got.G != 191 || got.B != 191 || got.A != 0xFF {
		t.Fatalf("Over=%v", got)
	}
	if Over(White, Black) != Black {
		t.Fatalf("opaque src should replace dst")
	}
	if Over(White, RGBA(1, 2, 3, 0)) != White {
		t.Fatalf("transparent src should keep dst")
	}
}

func TestLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(1, 1, 8, 5, Black)
	if c.At(1, 1) != Black || c.At(8, 5) != Black {
		t.Fatalf("line endpoints not drawn")
	}
	// Bresenham touches exactly max(dx, dy)+1 pixels.
	if got := countNot(c, White); got != 8 {
		t.Fatalf("line pixels=%d, want 8", got)
	}
}

func TestClipLine(t *testing.T) {
	r := Rect{Max: Pt(10, 10)}
	a, b, ok := ClipLine(Pt(-5, 5), Pt(15, 5), r)
	if !ok || a != Pt(0, 5) || b != Pt(10, 5) {
		t.Fatalf("horizontal clip=%v %v %v", a, b, ok)
	}
	if _, _, ok := ClipLine(Pt(-5, -5), Pt(-1, -1), r); ok {
		t.Fatalf("outside segment should be rejected")
	}
	if _, _, ok := ClipLine(Pt(1, 1), Pt(2, math.Inf(-1)), r); ok {
		t.Fatalf("non-finite segment should be rejected")
	}
}

func TestFillPolygonTranslucent(t *testing.T) {
	c := NewCanvas(10, 10)
	square := []Point{Pt(2, 2), Pt(6, 2), Pt(6, 6), Pt(2, 6)}
	fill := WithOpacity(Black, 0.25)
	c.FillPolygon(square, fill)

	if got := countNot(c, White); got != 16 {
		t.Fatalf("covered pixels=%d, want 16", got)
	}
	want := Over(White, fill)
	if c.At(2, 2) != want || c.At(5, 5) != want {
		t.Fatalf("fill color=%v, want %v", c.At(2, 2), want)
	}
	if c.At(6, 6) != White {
		t.Fatalf("right/bottom edge should be exclusive")
	}
}

func TestFillTriangleSharedEdge(t *testing.T) {
	c := NewCanvas(8, 8)
	fill := WithOpacity(Black, 0.5)
	c.FillPolygon([]Point{Pt(0, 0), Pt(8, 0), Pt(0, 8)}, fill)
	c.FillPolygon([]Point{Pt(8, 0), Pt(8, 8), Pt(0, 8)}, fill)
	want := Over(White, fill)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if c.At(x, y) != want {
				t.Fatalf("pixel (%d,%d)=%v, want single coverage %v", x, y, c.At(x, y), want)
			}
		}
	}
}

func TestStrokePolygon(t *testing.T) {
	c := NewCanvas(10, 10)
	c.StrokePolygon([]Point{Pt(1, 1), Pt(8, 1), Pt(8, 8), Pt(1, 8)}, Black)
	for _, p := range [][2]int{{1, 1}, {8, 1}, {8, 8}, {1, 8}, {4, 1}, {1, 4}} {
		if c.At(p[0], p[1]) != Black {
			t.Fatalf("outline missing at %v", p)
		}
	}
	if c.At(4, 4) != White {
		t.Fatalf("interior should stay empty")
	}
}

func TestMarker(t *testing.T) {
	c := NewCanvas(9, 9)
	c.Marker(Pt(4, 4), 2, Red)
	for _, p := range [][2]int{{2, 2}, {6, 6}, {2, 6}, {6, 2}, {4, 4}} {
		if c.At(p[0], p[1]) != Red {
			t.Fatalf("marker missing at %v", p)
		}
	}
	if got := countNot(c, White); got != 9 {
		t.Fatalf("marker pixels=%d, want 9", got)
	}
}

func TestTextDrawsGlyphs(t *testing.T) {
	c := NewCanvas(64, 24)
	c.Text(2, 16, "-z 42", Black)
	if countNot(c, White) == 0 {
		t.Fatalf("text left the canvas blank")
	}
	if TextWidth("42") <= 0 {
		t.Fatalf("TextWidth should be positive")
	}
	if TextWidth("4242") <= TextWidth("42") {
		t.Fatalf("TextWidth should grow with the string")
	}
	if LineHeight() <= 0 {
		t.Fatalf("LineHeight should be positive")
	}
}

func TestFillRectangleClamps(t *testing.T) {
	c := NewCanvas(5, 5)
	_ = c.FillRectangle(-2, -2, 4, 4, Black)
	if got := countNot(c, White); got != 4 {
		t.Fatalf("rect pixels=%d, want 4", got)
	}
}
