package zbuf

import (
	"fmt"
	"math"

	"depthlab/depth"
)

// Buffer stores one quantized depth level per pixel.
//
// Cells hold level+1 so that 0 means "nothing drawn yet".
type Buffer struct {
	w, h  int
	bits  int
	cells []uint32
}

// NewBuffer allocates a w x h buffer with 2^bits levels.
func NewBuffer(w, h, bits int) (*Buffer, error) {
	if bits < 1 || bits > depth.MaxBits {
		return nil, fmt.Errorf("%w: bits=%d out of range [1,%d]", depth.ErrInvalidParams, bits, depth.MaxBits)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("zbuf: invalid size %dx%d", w, h)
	}
	return &Buffer{w: w, h: h, bits: bits, cells: make([]uint32, w*h)}, nil
}

func (b *Buffer) Size() (w, h int) { return b.w, b.h }
func (b *Buffer) Bits() int        { return b.bits }

func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// Quantize maps an encoded depth in [-1, 1] to its buffer level.
func (b *Buffer) Quantize(d float64) uint32 {
	n := uint32(1) << b.bits
	if math.IsNaN(d) || d <= -1 {
		return 0
	}
	q := math.Floor((d + 1) / 2 * float64(n))
	if q >= float64(n) {
		return n - 1
	}
	return uint32(q)
}

// Test stores d at (x, y) and reports true when it is strictly nearer than
// what the pixel already holds. Equal levels fail, so the first surface
// drawn keeps a tied pixel.
func (b *Buffer) Test(x, y int, d float64) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	idx := y*b.w + x
	q := b.Quantize(d) + 1
	if q <= b.cells[idx] {
		return false
	}
	b.cells[idx] = q
	return true
}

// Level returns the stored level at (x, y). ok is false for untouched or
// out-of-range pixels.
func (b *Buffer) Level(x, y int) (level uint32, ok bool) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return 0, false
	}
	c := b.cells[y*b.w+x]
	if c == 0 {
		return 0, false
	}
	return c - 1, true
}
