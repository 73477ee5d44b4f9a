package zbuf

import (
	"image/color"
	"math"

	"depthlab/depth"
	"depthlab/raster"
)

// Vec3 is an eye-space position. The camera looks down -Z.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Triangle is a flat-colored eye-space triangle.
type Triangle struct {
	V     [3]Vec3
	Color color.RGBA
}

// Renderer draws triangles into a canvas through a depth buffer.
//
// Create it once per frame size and reuse it.
type Renderer struct {
	Params  depth.Params
	FOVYRad float64
	Depth   *Buffer
}

type screenVert struct {
	x, y float64 // pixels
	d    float64 // encoded depth
}

// Draw rasterizes tris in order and returns how many were not rejected.
// Triangles with any vertex outside [-far, -near] are dropped whole.
func (r *Renderer) Draw(c *raster.Canvas, tris ...Triangle) (int, error) {
	w, h := r.Depth.Size()
	if cw := c.Width(); cw < w {
		w = cw
	}
	if ch := c.Height(); ch < h {
		h = ch
	}
	fov := r.FOVYRad
	if fov <= 0 {
		fov = 1
	}
	f := 1 / math.Tan(fov/2)
	aspect := float64(w) / float64(h)

	drawn := 0
	for _, t := range tris {
		var sv [3]screenVert
		ok := true
		for i, v := range t.V {
			if v.Z > -r.Params.Near() || v.Z < -r.Params.Far() {
				ok = false
				break
			}
			d, err := r.Params.Encode(v.Z)
			if err != nil {
				return drawn, err
			}
			invW := 1 / -v.Z
			ndcX := f / aspect * v.X * invW
			ndcY := f * v.Y * invW
			sv[i] = screenVert{
				x: (ndcX*0.5 + 0.5) * float64(w),
				y: (1 - (ndcY*0.5 + 0.5)) * float64(h),
				d: d,
			}
		}
		if !ok {
			continue
		}
		r.fill(c, w, h, sv, t.Color)
		drawn++
	}
	return drawn, nil
}

func (r *Renderer) fill(c *raster.Canvas, w, h int, v [3]screenVert, col color.RGBA) {
	area := edgeFn(v[0].x, v[0].y, v[1].x, v[1].y, v[2].x, v[2].y)
	if area == 0 {
		return
	}
	minX := clampInt(int(math.Floor(min3(v[0].x, v[1].x, v[2].x))), 0, w-1)
	maxX := clampInt(int(math.Ceil(max3(v[0].x, v[1].x, v[2].x))), 0, w-1)
	minY := clampInt(int(math.Floor(min3(v[0].y, v[1].y, v[2].y))), 0, h-1)
	maxY := clampInt(int(math.Ceil(max3(v[0].y, v[1].y, v[2].y))), 0, h-1)
	invArea := 1 / area

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			a0 := edgeFn(v[1].x, v[1].y, v[2].x, v[2].y, px, py) * invArea
			a1 := edgeFn(v[2].x, v[2].y, v[0].x, v[0].y, px, py) * invArea
			a2 := edgeFn(v[0].x, v[0].y, v[1].x, v[1].y, px, py) * invArea
			if a0 < 0 || a1 < 0 || a2 < 0 {
				continue
			}
			d := a0*v[0].d + a1*v[1].d + a2*v[2].d
			if !r.Depth.Test(x, y, d) {
				continue
			}
			c.Set(x, y, col)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y float64) float64 {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
