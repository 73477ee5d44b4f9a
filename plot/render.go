package plot

import (
	"fmt"
	"image/color"
	"math"

	"depthlab/raster"
)

// viewport is the pixel rectangle the data range maps onto.
type viewport struct {
	x0, y0 int // top-left
	pw, ph int
}

func newViewport(f *Figure, w, h int) viewport {
	top := marginTop
	if f.Title == "" {
		top = marginTop / 2
	}
	return viewport{
		x0: marginLeft,
		y0: top,
		pw: w - marginLeft - marginRight,
		ph: h - top - marginBottom,
	}
}

func (v viewport) rect() raster.Rect {
	return raster.Rect{
		Min: raster.Pt(float64(v.x0), float64(v.y0)),
		Max: raster.Pt(float64(v.x0+v.pw-1), float64(v.y0+v.ph-1)),
	}
}

// toPixel maps data coordinates into canvas pixels. Y grows downwards.
func (f *Figure) toPixel(v viewport, x, y float64) raster.Point {
	px := float64(v.x0) + (x-f.XMin)/(f.XMax-f.XMin)*float64(v.pw-1)
	py := float64(v.y0) + (f.YMax-y)/(f.YMax-f.YMin)*float64(v.ph-1)
	return raster.Pt(px, py)
}

func (f *Figure) drawGrid(c *raster.Canvas, v viewport) {
	xPxPerUnit := float64(v.pw-1) / (f.XMax - f.XMin)
	yPxPerUnit := float64(v.ph-1) / (f.YMax - f.YMin)

	for _, x := range Ticks(f.XMin, f.XMax, niceStep(60/xPxPerUnit)) {
		p := f.toPixel(v, x, f.YMin)
		ix := int(math.Round(p.X))
		c.Line(ix, v.y0, ix, v.y0+v.ph-1, colorGrid)
		label := fmtAxis(x)
		c.Text(ix-raster.TextWidth(label)/2, v.y0+v.ph+raster.LineHeight(), label, colorLabel)
	}
	for _, y := range Ticks(f.YMin, f.YMax, niceStep(40/yPxPerUnit)) {
		p := f.toPixel(v, f.XMin, y)
		iy := int(math.Round(p.Y))
		c.Line(v.x0, iy, v.x0+v.pw-1, iy, colorGrid)
		label := fmtAxis(y)
		c.Text(v.x0-raster.TextWidth(label)-4, iy+raster.LineHeight()/3, label, colorLabel)
	}
}

func (f *Figure) drawAxes(c *raster.Canvas, v viewport) {
	if f.XMin <= 0 && f.XMax >= 0 {
		ix := int(math.Round(f.toPixel(v, 0, 0).X))
		c.Line(ix, v.y0, ix, v.y0+v.ph-1, colorAxis)
	}
	if f.YMin <= 0 && f.YMax >= 0 {
		iy := int(math.Round(f.toPixel(v, 0, 0).Y))
		c.Line(v.x0, iy, v.x0+v.pw-1, iy, colorAxis)
	}
}

func (f *Figure) drawSeries(c *raster.Canvas, v viewport, s Series, col color.RGBA) {
	clip := v.rect()
	switch s.Style {
	case StyleScatter:
		for i := 0; i < s.len(); i++ {
			p := f.toPixel(v, s.Xs[i], s.Ys[i])
			if !clip.Contains(p) {
				continue
			}
			c.Marker(p, markerHalf, col)
		}
	default:
		prevOK := false
		var prev raster.Point
		for i := 0; i < s.len(); i++ {
			x, y := s.Xs[i], s.Ys[i]
			if !isFinite(x) || !isFinite(y) {
				prevOK = false
				continue
			}
			cur := f.toPixel(v, x, y)
			if prevOK {
				c.LineF(prev, cur, clip, col)
			} else if clip.Contains(cur) {
				c.Set(int(math.Round(cur.X)), int(math.Round(cur.Y)), col)
			}
			prev = cur
			prevOK = true
		}
	}
}

func (f *Figure) drawFrame(c *raster.Canvas, v viewport) {
	x1 := v.x0 + v.pw - 1
	y1 := v.y0 + v.ph - 1
	c.Line(v.x0, v.y0, x1, v.y0, colorFrame)
	c.Line(x1, v.y0, x1, y1, colorFrame)
	c.Line(x1, y1, v.x0, y1, colorFrame)
	c.Line(v.x0, y1, v.x0, v.y0, colorFrame)
}

func (f *Figure) drawLabels(c *raster.Canvas, v viewport) {
	lh := raster.LineHeight()
	if f.Title != "" {
		c.Text(v.x0+(v.pw-raster.TextWidth(f.Title))/2, v.y0-lh/2, f.Title, raster.Black)
	}
	if f.XLabel != "" {
		c.Text(v.x0+(v.pw-raster.TextWidth(f.XLabel))/2, v.y0+v.ph+2*lh+2, f.XLabel, raster.Black)
	}
	if f.YLabel != "" {
		c.Text(2, v.y0+lh, f.YLabel, raster.Black)
	}
}

func (f *Figure) drawLegend(c *raster.Canvas, v viewport) {
	var labeled []int
	maxW := 0
	for i, s := range f.Series {
		if s.Label == "" {
			continue
		}
		labeled = append(labeled, i)
		if w := raster.TextWidth(s.Label); w > maxW {
			maxW = w
		}
	}
	if len(labeled) == 0 {
		return
	}

	lh := raster.LineHeight()
	const swatch = 14
	boxW := swatch + 10 + maxW
	boxH := len(labeled)*lh + 6
	if boxW > v.pw-4 || boxH > v.ph-4 {
		return
	}
	x := v.x0 + v.pw - boxW - 4
	y := v.y0 + 4

	_ = c.FillRectangle(int16(x), int16(y), int16(boxW), int16(boxH), colorLegend)
	c.StrokePolygon([]raster.Point{
		raster.Pt(float64(x), float64(y)),
		raster.Pt(float64(x+boxW-1), float64(y)),
		raster.Pt(float64(x+boxW-1), float64(y+boxH-1)),
		raster.Pt(float64(x), float64(y+boxH-1)),
	}, colorAxis)

	for row, i := range labeled {
		s := f.Series[i]
		col := s.Color
		if col == (color.RGBA{}) {
			col = palette[i%len(palette)]
		}
		cy := y + 3 + row*lh + lh/2
		if s.Style == StyleScatter {
			c.Marker(raster.Pt(float64(x+4+swatch/2), float64(cy)), markerHalf, col)
		} else {
			c.Line(x+4, cy, x+4+swatch, cy, col)
		}
		c.Text(x+8+swatch, cy+lh/3, s.Label, raster.Black)
	}
}

// Ticks returns the multiples of step inside [lo, hi].
func Ticks(lo, hi, step float64) []float64 {
	if !(step > 0) || !isFinite(lo) || !isFinite(hi) || lo > hi {
		return nil
	}
	var out []float64
	start := math.Ceil(lo/step) * step
	for i := 0; ; i++ {
		t := start + float64(i)*step
		if t > hi+step*1e-9 {
			break
		}
		if math.Abs(t) < step*1e-9 {
			t = 0
		}
		out = append(out, t)
	}
	return out
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	frac := raw / pow
	switch {
	case frac <= 1:
		return 1 * pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000 || av < 0.01:
		return fmt.Sprintf("%.2g", v)
	case av >= 10 || av == math.Trunc(av):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
