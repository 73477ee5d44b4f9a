// Package plot renders simple 2D line and scatter charts onto a raster
// canvas.
package plot

import (
	"errors"
	"image/color"
	"math"

	"depthlab/raster"
)

// ErrEmptyRange reports axis limits with min >= max or non-finite bounds.
var ErrEmptyRange = errors.New("plot: empty axis range")

// Style selects how a series is drawn.
type Style uint8

const (
	StyleLine Style = iota
	StyleScatter
)

// Series is one data set. Xs and Ys must have equal length; extra values
// in the longer slice are ignored.
type Series struct {
	Label string
	Xs    []float64
	Ys    []float64
	Style Style
	Color color.RGBA
}

func (s Series) len() int {
	if len(s.Xs) < len(s.Ys) {
		return len(s.Xs)
	}
	return len(s.Ys)
}

// Figure is a single set of axes.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	XMin, XMax float64
	YMin, YMax float64

	Series []Series
}

var (
	colorBG     = raster.White
	colorFrame  = raster.RGB(0x33, 0x33, 0x33)
	colorGrid   = raster.RGB(0xE4, 0xE4, 0xE4)
	colorAxis   = raster.RGB(0xAA, 0xAA, 0xAA)
	colorLabel  = raster.RGB(0x44, 0x44, 0x44)
	colorLegend = raster.RGBA(0xFF, 0xFF, 0xFF, 0xE0)
)

var palette = []color.RGBA{
	raster.Blue,
	raster.Red,
	raster.RGB(0x2C, 0xA0, 0x2C),
	raster.RGB(0xFF, 0x7F, 0x0E),
}

const (
	marginLeft   = 52
	marginRight  = 14
	marginTop    = 24
	marginBottom = 38
	markerHalf   = 2
)

// AutoRange sets the limits to cover every finite point with a 5% pad.
func (f *Figure) AutoRange() {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range f.Series {
		for i := 0; i < s.len(); i++ {
			x, y := s.Xs[i], s.Ys[i]
			if !isFinite(x) || !isFinite(y) {
				continue
			}
			xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
			ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		}
	}
	f.XMin, f.XMax = padRange(xmin, xmax)
	f.YMin, f.YMax = padRange(ymin, ymax)
}

func padRange(lo, hi float64) (float64, float64) {
	if lo > hi {
		return -1, 1
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

func (f *Figure) validRange() bool {
	return isFinite(f.XMin) && isFinite(f.XMax) && isFinite(f.YMin) && isFinite(f.YMax) &&
		f.XMin < f.XMax && f.YMin < f.YMax
}

// Render draws the figure over the whole canvas. With an invalid range only
// the frame and labels are drawn and ErrEmptyRange is returned.
func (f *Figure) Render(c *raster.Canvas) error {
	c.Clear(colorBG)
	v := newViewport(f, c.Width(), c.Height())
	if v.pw < 2 || v.ph < 2 {
		return ErrEmptyRange
	}

	ok := f.validRange()
	if ok {
		f.drawGrid(c, v)
		f.drawAxes(c, v)
		for i, s := range f.Series {
			col := s.Color
			if col == (color.RGBA{}) {
				col = palette[i%len(palette)]
			}
			f.drawSeries(c, v, s, col)
		}
	}
	f.drawFrame(c, v)
	f.drawLabels(c, v)
	if !ok {
		return ErrEmptyRange
	}
	f.drawLegend(c, v)
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
