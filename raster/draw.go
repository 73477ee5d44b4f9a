package raster

import (
	"image/color"
	"math"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned rectangle in canvas pixels. Max is inclusive.
type Rect struct {
	Min, Max Point
}

// Line draws a 1px line between integer endpoints (Bresenham).
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Blend(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// LineF draws a line between float endpoints after clipping it to clip.
// Non-finite endpoints draw nothing.
func (c *Canvas) LineF(a, b Point, clip Rect, col color.RGBA) {
	a, b, ok := ClipLine(a, b, clip)
	if !ok {
		return
	}
	c.Line(round(a.X), round(a.Y), round(b.X), round(b.Y), col)
}

// Marker draws an "x" of the given half-size centred on p.
func (c *Canvas) Marker(p Point, half int, col color.RGBA) {
	if !finite(p) {
		return
	}
	x, y := round(p.X), round(p.Y)
	c.Line(x-half, y-half, x+half, y+half, col)
	c.Line(x-half, y+half, x+half, y-half, col)
}

// ClipLine clips segment a-b to r (Liang-Barsky). ok is false when nothing
// of the segment lies inside r.
func ClipLine(a, b Point, r Rect) (Point, Point, bool) {
	if !finite(a) || !finite(b) {
		return Point{}, Point{}, false
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a.X - r.Min.X, r.Max.X - a.X, a.Y - r.Min.Y, r.Max.Y - a.Y}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return Point{}, Point{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return Point{}, Point{}, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return Point{}, Point{}, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	ca := Point{X: a.X + u1*dx, Y: a.Y + u1*dy}
	cb := Point{X: a.X + u2*dx, Y: a.Y + u2*dy}
	return r.clamp(ca), r.clamp(cb), true
}

func (r Rect) clamp(p Point) Point {
	p.X = math.Min(math.Max(p.X, r.Min.X), r.Max.X)
	p.Y = math.Min(math.Max(p.Y, r.Min.Y), r.Max.Y)
	return p
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
