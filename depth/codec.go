package depth

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParams reports near/far values that do not describe a
	// valid view volume.
	ErrInvalidParams = errors.New("depth: invalid projection parameters")

	// ErrNonFinite reports a homogeneous divide by zero or a result that
	// is NaN or infinite.
	ErrNonFinite = errors.New("depth: non-finite result")
)

// MinSeparation is the smallest accepted (far-near)/far. Closer planes
// cancel out in the matrix terms and encode garbage.
const MinSeparation = 1e-12

// Params holds validated clip-plane distances and the matrices derived from
// them. The zero value is not usable; construct with NewParams.
type Params struct {
	near, far float64
	m, inv    Mat2
}

// NewParams validates near and far and precomputes the projection matrix
// and its inverse.
func NewParams(near, far float64) (Params, error) {
	if !isFinite(near) || !isFinite(far) {
		return Params{}, fmt.Errorf("%w: near=%v far=%v must be finite", ErrInvalidParams, near, far)
	}
	if near <= 0 || far <= 0 {
		return Params{}, fmt.Errorf("%w: near=%v far=%v must be positive", ErrInvalidParams, near, far)
	}
	if near >= far {
		return Params{}, fmt.Errorf("%w: near=%v must be less than far=%v", ErrInvalidParams, near, far)
	}
	if (far-near)/far < MinSeparation {
		return Params{}, fmt.Errorf("%w: near=%v far=%v too close to resolve", ErrInvalidParams, near, far)
	}

	nf := near - far
	m := Mat2{
		-(near + far) / nf, -2 * near * far / nf,
		-1, 0,
	}
	inv, err := m.Inverse()
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return Params{near: near, far: far, m: m, inv: inv}, nil
}

func (p Params) Near() float64 { return p.near }
func (p Params) Far() float64  { return p.far }

// Matrix returns the encode matrix.
func (p Params) Matrix() Mat2 { return p.m }

// InverseMatrix returns the decode matrix.
func (p Params) InverseMatrix() Mat2 { return p.inv }

// Valid reports whether p came from NewParams.
func (p Params) Valid() bool { return p.near > 0 && p.far > p.near }

// Encode maps eye-space z to encoded depth d.
func (p Params) Encode(z float64) (float64, error) {
	if !p.Valid() {
		return 0, ErrInvalidParams
	}
	d, err := p.m.MulVec(Vec2{X: z, W: 1}).Divide()
	if err != nil {
		return 0, fmt.Errorf("encode z=%v: %w", z, err)
	}
	return d, nil
}

// Decode maps encoded depth d back to eye-space z.
func (p Params) Decode(d float64) (float64, error) {
	if !p.Valid() {
		return 0, ErrInvalidParams
	}
	z, err := p.inv.MulVec(Vec2{X: d, W: 1}).Divide()
	if err != nil {
		return 0, fmt.Errorf("decode d=%v: %w", d, err)
	}
	return z, nil
}

// EncodeAll encodes every element of zs into a new slice. It stops at the
// first element that fails.
func (p Params) EncodeAll(zs []float64) ([]float64, error) {
	return p.mapAll(zs, p.Encode)
}

// DecodeAll decodes every element of ds into a new slice. It stops at the
// first element that fails.
func (p Params) DecodeAll(ds []float64) ([]float64, error) {
	return p.mapAll(ds, p.Decode)
}

func (p Params) mapAll(in []float64, fn func(float64) (float64, error)) ([]float64, error) {
	out := make([]float64, len(in))
	for i, v := range in {
		r, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// Encode is a convenience wrapper around NewParams and Params.Encode.
func Encode(z, near, far float64) (float64, error) {
	p, err := NewParams(near, far)
	if err != nil {
		return 0, err
	}
	return p.Encode(z)
}

// Decode is a convenience wrapper around NewParams and Params.Decode.
func Decode(d, near, far float64) (float64, error) {
	p, err := NewParams(near, far)
	if err != nil {
		return 0, err
	}
	return p.Decode(d)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
