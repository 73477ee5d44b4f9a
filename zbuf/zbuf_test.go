package zbuf

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"depthlab/depth"
	"depthlab/raster"
)

func mustParams(t *testing.T, near, far float64) depth.Params {
	t.Helper()
	p, err := depth.NewParams(near, far)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	return p
}

// wall covers the whole view at depth z for a 90 degree FOV.
func wall(z float64, c color.RGBA) Triangle {
	s := -z * 8
	return Triangle{V: [3]Vec3{V3(-s, -s, z), V3(s, -s, z), V3(0, s, z)}, Color: c}
}

func newRenderer(t *testing.T, bits int) (*Renderer, *raster.Canvas) {
	t.Helper()
	buf, err := NewBuffer(64, 64, bits)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	return &Renderer{Params: mustParams(t, 1, 50), FOVYRad: math.Pi / 2, Depth: buf}, raster.NewCanvas(64, 64)
}

func TestBufferQuantize(t *testing.T) {
	b, err := NewBuffer(1, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		d    float64
		want uint32
	}{
		{-1, 0},
		{-2, 0},
		{math.NaN(), 0},
		{-0.5, 1},
		{0, 2},
		{0.99, 3},
		{1, 3},
		{5, 3},
	}
	for _, tc := range cases {
		if got := b.Quantize(tc.d); got != tc.want {
			t.Errorf("Quantize(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}

func TestBufferTestAndClear(t *testing.T) {
	b, err := NewBuffer(2, 2, 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Level(0, 0); ok {
		t.Fatalf("fresh buffer reports a level")
	}
	if !b.Test(0, 0, -1) {
		t.Fatalf("far plane fragment rejected on empty pixel")
	}
	if b.Test(0, 0, -1) {
		t.Fatalf("equal level passed")
	}
	if !b.Test(0, 0, 0.5) {
		t.Fatalf("nearer fragment rejected")
	}
	if b.Test(0, 0, 0) {
		t.Fatalf("farther fragment passed")
	}
	if b.Test(5, 0, 1) {
		t.Fatalf("out of range fragment passed")
	}
	b.Clear()
	if _, ok := b.Level(0, 0); ok {
		t.Fatalf("Clear left a level")
	}
}

func TestNewBufferRejectsBits(t *testing.T) {
	for _, bits := range []int{0, depth.MaxBits + 1} {
		if _, err := NewBuffer(4, 4, bits); !errors.Is(err, depth.ErrInvalidParams) {
			t.Errorf("bits=%d: err = %v", bits, err)
		}
	}
	if _, err := NewBuffer(0, 4, 8); err == nil {
		t.Errorf("zero width accepted")
	}
}

func TestNearerWinsRegardlessOfOrder(t *testing.T) {
	red := raster.RGB(255, 0, 0)
	blue := raster.RGB(0, 0, 255)
	for _, order := range [][2]Triangle{
		{wall(-20, blue), wall(-5, red)},
		{wall(-5, red), wall(-20, blue)},
	} {
		r, c := newRenderer(t, 16)
		n, err := r.Draw(c, order[0], order[1])
		if err != nil {
			t.Fatalf("Draw: %v", err)
		}
		if n != 2 {
			t.Fatalf("drawn = %d, want 2", n)
		}
		if got := c.At(32, 32); got != red {
			t.Fatalf("center = %v, want red", got)
		}
	}
}

func TestLowPrecisionTies(t *testing.T) {
	red := raster.RGB(255, 0, 0)
	blue := raster.RGB(0, 0, 255)

	// At 4 bits both surfaces land on level 0; the first one keeps the pixel.
	r, c := newRenderer(t, 4)
	if _, err := r.Draw(c, wall(-40.5, blue), wall(-40, red)); err != nil {
		t.Fatal(err)
	}
	if got := c.At(32, 32); got != blue {
		t.Fatalf("4-bit center = %v, want blue (tie kept)", got)
	}

	r, c = newRenderer(t, 24)
	if _, err := r.Draw(c, wall(-40.5, blue), wall(-40, red)); err != nil {
		t.Fatal(err)
	}
	if got := c.At(32, 32); got != red {
		t.Fatalf("24-bit center = %v, want red", got)
	}
}

func TestDrawRejectsOutsideClipRange(t *testing.T) {
	r, c := newRenderer(t, 8)
	n, err := r.Draw(c, wall(-0.5, raster.Black), wall(-60, raster.Black))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("drawn = %d, want 0", n)
	}
	if got := c.At(32, 32); got != raster.White {
		t.Fatalf("canvas touched: %v", got)
	}
}

func TestInterpolatedDepthMatchesEncode(t *testing.T) {
	// A plane tilted in depth: encoded depth is affine in screen space, so the
	// stored level must equal the level of the exact eye-space depth on the ray.
	r, c := newRenderer(t, 16)
	tri := Triangle{
		V:     [3]Vec3{V3(-40, -40, -10), V3(40, -40, -10), V3(0, 40, -30)},
		Color: raster.Black,
	}
	if _, err := r.Draw(c, tri); err != nil {
		t.Fatal(err)
	}
	x, y := 32, 40
	got, ok := r.Depth.Level(x, y)
	if !ok {
		t.Fatalf("pixel (%d,%d) not covered", x, y)
	}
	// Ray through the pixel center for f=1, aspect 1; only y matters.
	ry := 1 - (float64(y)+0.5)/32
	// Plane through the three vertices: z = -10 - (y+40)/4; intersect with
	// (rx*t, ry*t, -t): -t = -10 - (ry*t+40)/4.
	tt := 20 / (1 - ry/4)
	want, err := r.Params.Encode(-tt)
	if err != nil {
		t.Fatal(err)
	}
	if lvl := r.Depth.Quantize(want); absDiff(lvl, got) > 1 {
		t.Fatalf("level = %d, want %d (+-1)", got, lvl)
	}
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
