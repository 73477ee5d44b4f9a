package depth

import "fmt"

// MaxBits bounds Levels so the sample slice stays reasonably sized.
const MaxBits = 24

// Levels returns the 2^bits encoded values a depth buffer of that precision
// can hold, evenly spaced over [-1, 1) with the upper endpoint excluded.
func Levels(bits int) ([]float64, error) {
	if bits < 1 || bits > MaxBits {
		return nil, fmt.Errorf("%w: bits=%d out of range [1,%d]", ErrInvalidParams, bits, MaxBits)
	}
	n := 1 << bits
	step := 2.0 / float64(n)
	out := make([]float64, n)
	for i := range out {
		out[i] = -1 + float64(i)*step
	}
	return out, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Steps decodes every level of a bits-deep buffer. The result lists the
// eye-space depths a buffer of that precision can represent exactly.
func (p Params) Steps(bits int) ([]float64, error) {
	ds, err := Levels(bits)
	if err != nil {
		return nil, err
	}
	return p.DecodeAll(ds)
}
