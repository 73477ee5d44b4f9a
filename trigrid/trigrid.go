// Package trigrid draws triangles over a labelled integer pixel grid, for
// checking rasterization coverage by eye.
package trigrid

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"

	"depthlab/raster"
)

var ErrInvalidGrid = errors.New("trigrid: invalid grid")

var (
	colorRows = raster.Green
	colorCols = raster.Blue
	colorText = raster.Black
	colorFill = raster.WithOpacity(raster.Black, 0.25)
	colorEdge = raster.Black
)

// Grid is the visible range of grid cells and how it is laid out on the
// canvas. It is a value type; build it with NewGrid.
type Grid struct {
	Min, Max image.Point
	Margin   int // cells of padding around the range
	Scale    int // canvas pixels per cell
}

func NewGrid(min, max image.Point, margin, scale int) (Grid, error) {
	if max.X <= min.X || max.Y <= min.Y {
		return Grid{}, fmt.Errorf("%w: bounds %v-%v are empty", ErrInvalidGrid, min, max)
	}
	if scale <= 0 {
		return Grid{}, fmt.Errorf("%w: scale %d must be positive", ErrInvalidGrid, scale)
	}
	if margin < 0 {
		return Grid{}, fmt.Errorf("%w: margin %d must not be negative", ErrInvalidGrid, margin)
	}
	return Grid{Min: min, Max: max, Margin: margin, Scale: scale}, nil
}

// Fit returns the smallest grid containing every triangle.
func Fit(margin, scale int, tris ...Triangle) (Grid, error) {
	if len(tris) == 0 {
		return Grid{}, fmt.Errorf("%w: no triangles", ErrInvalidGrid)
	}
	b := tris[0].Bounds()
	for _, t := range tris[1:] {
		b = b.Union(t.Bounds())
	}
	if b.Dx() == 0 {
		b.Max.X++
	}
	if b.Dy() == 0 {
		b.Max.Y++
	}
	return NewGrid(b.Min, b.Max, margin, scale)
}

// Coord maps grid coordinates to canvas pixels.
func (g Grid) Coord(x, y float64) raster.Point {
	return raster.Pt(
		(float64(g.Margin)+x-float64(g.Min.X))*float64(g.Scale),
		(float64(g.Margin)+y-float64(g.Min.Y))*float64(g.Scale),
	)
}

// Size returns the canvas size that fits the grid plus margins.
func (g Grid) Size() (w, h int) {
	w = (g.Max.X - g.Min.X + 2*g.Margin) * g.Scale
	h = (g.Max.Y - g.Min.Y + 2*g.Margin) * g.Scale
	return w, h
}

// Triangle is three vertices in grid coordinates.
type Triangle [3]raster.Point

// Bounds returns the integer cell range that encloses t.
func (t Triangle) Bounds() image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range t {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// Render clears c and draws the grid, its labels and the triangles.
func Render(c *raster.Canvas, g Grid, tris ...Triangle) {
	c.Clear(raster.White)
	clip := raster.Rect{Max: raster.Pt(float64(c.Width()-1), float64(c.Height()-1))}
	x0, x1 := float64(g.Min.X), float64(g.Max.X)
	y0, y1 := float64(g.Min.Y), float64(g.Max.Y)

	for y := g.Min.Y; y <= g.Max.Y; y++ {
		c.LineF(g.Coord(x0, float64(y)), g.Coord(x1, float64(y)), clip, colorRows)
	}
	for x := g.Min.X; x <= g.Max.X; x++ {
		c.LineF(g.Coord(float64(x), y0), g.Coord(float64(x), y1), clip, colorCols)
	}

	// Column labels sit above the first row, row labels left of the first
	// column, each inside its cell.
	for x := g.Min.X; x < g.Max.X; x++ {
		p := g.Coord(float64(x)+0.30, y0-0.25)
		c.Text(int(p.X), int(p.Y), strconv.Itoa(x), colorText)
	}
	for y := g.Min.Y; y < g.Max.Y; y++ {
		p := g.Coord(x0-0.75, float64(y)+0.7)
		c.Text(int(p.X), int(p.Y), strconv.Itoa(y), colorText)
	}

	for _, t := range tris {
		pts := []raster.Point{g.Coord(t[0].X, t[0].Y), g.Coord(t[1].X, t[1].Y), g.Coord(t[2].X, t[2].Y)}
		c.FillPolygon(pts, colorFill)
		c.StrokePolygon(pts, colorEdge)
	}
}
