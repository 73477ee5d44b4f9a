package depth

import (
	"errors"
	"math"
)

// ErrSingular reports a matrix with a zero (or non-finite) determinant.
var ErrSingular = errors.New("depth: singular matrix")

// Vec2 is a homogeneous 1D point: X is the value, W the divisor.
type Vec2 struct {
	X, W float64
}

// Mat2 is a row-major 2x2 matrix.
type Mat2 [4]float64

func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[1]*v.W,
		W: m[2]*v.X + m[3]*v.W,
	}
}

func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		m[0]*o[0] + m[1]*o[2], m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2], m[2]*o[1] + m[3]*o[3],
	}
}

func (m Mat2) Det() float64 { return m[0]*m[3] - m[1]*m[2] }

// Inverse returns the algebraic inverse of m.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Mat2{}, ErrSingular
	}
	inv := 1 / det
	return Mat2{
		m[3] * inv, -m[1] * inv,
		-m[2] * inv, m[0] * inv,
	}, nil
}

func Mat2Identity() Mat2 { return Mat2{1, 0, 0, 1} }

// Divide performs the homogeneous divide X/W.
func (v Vec2) Divide() (float64, error) {
	if v.W == 0 {
		return 0, ErrNonFinite
	}
	r := v.X / v.W
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrNonFinite
	}
	return r, nil
}
