package raster

import (
	"image/color"
	"math"
	"sort"
)

// FillPolygon fills pts with col using the even-odd rule. A pixel is
// covered when its centre (x+0.5, y+0.5) is inside. Translucent colors are
// blended once per pixel.
func (c *Canvas) FillPolygon(pts []Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		if !finite(p) {
			return
		}
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	y0 := clampInt(int(math.Floor(minY)), 0, c.Height())
	y1 := clampInt(int(math.Ceil(maxY)), 0, c.Height())
	xs := make([]float64, 0, len(pts))
	for y := y0; y < y1; y++ {
		cy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			// Half-open in y so shared vertices are counted once.
			if (a.Y <= cy && b.Y > cy) || (b.Y <= cy && a.Y > cy) {
				t := (cy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			// Pixel x is covered when x+0.5 lies in [xs[i], xs[i+1]).
			xa := int(math.Ceil(xs[i] - 0.5))
			xb := int(math.Ceil(xs[i+1] - 0.5))
			xa = clampInt(xa, 0, c.Width())
			xb = clampInt(xb, 0, c.Width())
			for x := xa; x < xb; x++ {
				c.Blend(x, y, col)
			}
		}
	}
}

// StrokePolygon outlines the closed polygon pts.
func (c *Canvas) StrokePolygon(pts []Point, col color.RGBA) {
	if len(pts) < 2 {
		return
	}
	clip := Rect{Max: Point{X: float64(c.Width() - 1), Y: float64(c.Height() - 1)}}
	for i := range pts {
		c.LineF(pts[i], pts[(i+1)%len(pts)], clip, col)
	}
}
