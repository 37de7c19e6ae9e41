// SPDX-License-Identifier: MIT
// Package vector - VectorN, the runtime-sized vector.
//
// Purpose:
//   - Carry vectors whose dimension is only known at run time (N-spheres,
//     orthotopes, matrix products).
//   - Keep the same method surface as Vector2/Vector3, with explicit size
//     checks: binary operations return ErrDimensionMismatch instead of
//     silently truncating.
//
// Ownership:
//   - A VectorN exclusively owns its backing slice. Constructors copy their
//     input, Values returns a copy, and every pure operation allocates.
//   - A *VectorN is not safe for concurrent mutation; distinct instances are
//     fully independent.

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// VectorN is a vector of Size() > 0 float64 components.
type VectorN struct {
	values []float64 // len == size, never shared
}

// Range is an inclusive [Min, Max] bound used by VectorN.ClampValues.
type Range struct {
	Min, Max float64
}

var _ fmt.Stringer = (*VectorN)(nil)

// NewVectorN copies values into a new vector.
// Returns ErrEmptyVector when no values are given.
func NewVectorN(values ...float64) (*VectorN, error) {
	if len(values) == 0 {
		return nil, vectorErrorf(opNew, ErrEmptyVector)
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return &VectorN{values: buf}, nil
}

// NewVectorNZero returns the zero vector of the given size.
// Returns ErrEmptyVector when size ≤ 0.
func NewVectorNZero(size int) (*VectorN, error) {
	if size <= 0 {
		return nil, vectorErrorf(opNew, ErrEmptyVector)
	}

	return &VectorN{values: make([]float64, size)}, nil
}

// FromVector2 lifts v into a VectorN of size 2.
func FromVector2(v Vector2) *VectorN { return &VectorN{values: []float64{v.X, v.Y}} }

// FromVector3 lifts v into a VectorN of size 3.
func FromVector3(v Vector3) *VectorN { return &VectorN{values: []float64{v.X, v.Y, v.Z}} }

// Size returns the fixed dimension.
func (v *VectorN) Size() int { return len(v.values) }

// At returns component i or ErrOutOfRange.
func (v *VectorN) At(i int) (float64, error) {
	if i < 0 || i >= len(v.values) {
		return 0, fmt.Errorf("VectorN.%s(%d): %w", opAt, i, ErrOutOfRange)
	}

	return v.values[i], nil
}

// Set stores x at component i or returns ErrOutOfRange.
func (v *VectorN) Set(i int, x float64) error {
	if i < 0 || i >= len(v.values) {
		return fmt.Errorf("VectorN.%s(%d): %w", opSet, i, ErrOutOfRange)
	}
	v.values[i] = x

	return nil
}

// Values returns a copy of the components.
func (v *VectorN) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)

	return out
}

// Clone returns an independent copy.
func (v *VectorN) Clone() *VectorN {
	return &VectorN{values: v.Values()}
}

// Fill sets every component to x.
func (v *VectorN) Fill(x float64) {
	for i := range v.values {
		v.values[i] = x
	}
}

// checkSize returns ErrDimensionMismatch tagged with op when sizes differ.
func (v *VectorN) checkSize(op string, o *VectorN) error {
	if len(v.values) != len(o.values) {
		return fmt.Errorf("%s(%d vs %d): %w", op, len(v.values), len(o.values), ErrDimensionMismatch)
	}

	return nil
}

// zipWith applies f pairwise after a size check.
func (v *VectorN) zipWith(op string, o *VectorN, f func(a, b float64) float64) (*VectorN, error) {
	if err := v.checkSize(op, o); err != nil {
		return nil, err
	}
	out := make([]float64, len(v.values))
	for i := range out {
		out[i] = f(v.values[i], o.values[i])
	}

	return &VectorN{values: out}, nil
}

// mapEach applies f to every component into a fresh vector.
func (v *VectorN) mapEach(f func(a float64) float64) *VectorN {
	out := make([]float64, len(v.values))
	for i, a := range v.values {
		out[i] = f(a)
	}

	return &VectorN{values: out}
}

// ---------- arithmetic ----------

// Add returns v + o. Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) Add(o *VectorN) (*VectorN, error) {
	return v.zipWith(opAdd, o, func(a, b float64) float64 { return a + b })
}

// Sub returns v − o. Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) Sub(o *VectorN) (*VectorN, error) {
	return v.zipWith(opSub, o, func(a, b float64) float64 { return a - b })
}

// Mul returns the componentwise product. Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) Mul(o *VectorN) (*VectorN, error) {
	return v.zipWith(opMul, o, func(a, b float64) float64 { return a * b })
}

// Div returns the componentwise quotient. Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) Div(o *VectorN) (*VectorN, error) {
	return v.zipWith(opDiv, o, func(a, b float64) float64 { return a / b })
}

// Scale returns s·v.
func (v *VectorN) Scale(s float64) *VectorN {
	return v.mapEach(func(a float64) float64 { return a * s })
}

// DivScalar returns v/s.
func (v *VectorN) DivScalar(s float64) *VectorN {
	return v.mapEach(func(a float64) float64 { return a / s })
}

// Neg returns −v.
func (v *VectorN) Neg() *VectorN {
	return v.mapEach(func(a float64) float64 { return -a })
}

// Dot returns Σ vᵢ·oᵢ. Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) Dot(o *VectorN) (float64, error) {
	if err := v.checkSize(opDot, o); err != nil {
		return 0, err
	}
	var sum float64
	for i, a := range v.values {
		sum += a * o.values[i]
	}

	return sum, nil
}

// Cross is not defined for arbitrary dimensions and always returns
// ErrNotImplemented. Use Vector3.Cross or Vector2.Cross instead.
func (v *VectorN) Cross(_ *VectorN) (*VectorN, error) {
	return nil, vectorErrorf(opCross, ErrNotImplemented)
}

// ---------- metric ----------

// LengthSquared returns Σ vᵢ².
func (v *VectorN) LengthSquared() float64 {
	var sum float64
	for _, a := range v.values {
		sum += a * a
	}

	return sum
}

// Length returns the Euclidean norm.
func (v *VectorN) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// DistanceSquared returns |v − o|². Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) DistanceSquared(o *VectorN) (float64, error) {
	if err := v.checkSize(opDistance, o); err != nil {
		return 0, err
	}
	var sum, d float64
	for i, a := range v.values {
		d = a - o.values[i]
		sum += d * d
	}

	return sum, nil
}

// Distance returns |v − o|. Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) Distance(o *VectorN) (float64, error) {
	sq, err := v.DistanceSquared(o)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// IsNormalized reports LengthSquared() == 1 exactly.
func (v *VectorN) IsNormalized() bool { return v.LengthSquared() == 1 }

// Equal reports equal sizes and exactly equal components.
func (v *VectorN) Equal(o *VectorN) bool {
	return v.ApproxEqual(o, 0)
}

// ApproxEqual reports equal sizes and components within eps.
func (v *VectorN) ApproxEqual(o *VectorN, eps float64) bool {
	if len(v.values) != len(o.values) {
		return false
	}
	for i, a := range v.values {
		if !numeric.NearlyEqual(a, o.values[i], eps) {
			return false
		}
	}

	return true
}

// ---------- elementwise ----------

// Abs returns the componentwise absolute value.
func (v *VectorN) Abs() *VectorN { return v.mapEach(math.Abs) }

// Sign returns the per-component sign (−1, 0, +1).
func (v *VectorN) Sign() *VectorN { return v.mapEach(sign) }

// Pow raises each component to the real power p.
func (v *VectorN) Pow(p float64) *VectorN {
	return v.mapEach(func(a float64) float64 { return math.Pow(a, p) })
}

func (v *VectorN) apply(f func(float64) float64) {
	for i, a := range v.values {
		v.values[i] = f(a)
	}
}

// CeilValues rounds each component up in place.
func (v *VectorN) CeilValues() { v.apply(math.Ceil) }

// FloorValues rounds each component down in place.
func (v *VectorN) FloorValues() { v.apply(math.Floor) }

// RoundValues rounds each component half-to-even in place.
func (v *VectorN) RoundValues() { v.apply(math.RoundToEven) }

// ClampValues clamps component i to ranges[i] in place.
// Returns ErrDimensionMismatch unless len(ranges) == Size(); v is untouched then.
func (v *VectorN) ClampValues(ranges ...Range) error {
	if len(ranges) != len(v.values) {
		return fmt.Errorf("%s(%d vs %d): %w", opClampValues, len(v.values), len(ranges), ErrDimensionMismatch)
	}
	for i, r := range ranges {
		v.values[i] = numeric.Clamp(v.values[i], r.Min, r.Max)
	}

	return nil
}

// ClampValuesUniform clamps every component to [lo, hi] in place.
func (v *VectorN) ClampValuesUniform(lo, hi float64) {
	v.apply(func(a float64) float64 { return numeric.Clamp(a, lo, hi) })
}

func (v *VectorN) rescale(target func(float64) float64) {
	f := lengthFactor(v.LengthSquared(), target)
	for i := range v.values {
		v.values[i] *= f
	}
}

// CeilLength rescales v to ceil(|v|); the zero vector is untouched.
func (v *VectorN) CeilLength() { v.rescale(math.Ceil) }

// FloorLength rescales v to floor(|v|).
func (v *VectorN) FloorLength() { v.rescale(math.Floor) }

// RoundLength rescales v to |v| rounded half-to-even.
func (v *VectorN) RoundLength() { v.rescale(math.RoundToEven) }

// ClampLength rescales v so that lo ≤ |v| ≤ hi.
func (v *VectorN) ClampLength(lo, hi float64) {
	v.rescale(func(l float64) float64 { return numeric.Clamp(l, lo, hi) })
}

// Normalize rescales v to the given length in place.
// A zero vector stays zero. Returns ErrZeroLength when length == 0.
func (v *VectorN) Normalize(length float64) error {
	if length == 0 {
		return vectorErrorf(opNormalize, ErrZeroLength)
	}
	v.rescale(func(float64) float64 { return length })

	return nil
}

// Normalized returns a copy of v rescaled to the given length.
func (v *VectorN) Normalized(length float64) (*VectorN, error) {
	c := v.Clone()
	if err := c.Normalize(length); err != nil {
		return nil, err
	}

	return c, nil
}

// ---------- modulo & interpolation ----------

// PosMod applies Congruence(·, m, true) to each component.
func (v *VectorN) PosMod(m float64) *VectorN {
	return v.mapEach(func(a float64) float64 { return numeric.Congruence(a, m, true) })
}

// NegMod applies Congruence(·, m, false) to each component.
func (v *VectorN) NegMod(m float64) *VectorN {
	return v.mapEach(func(a float64) float64 { return numeric.Congruence(a, m, false) })
}

// PosModv applies Congruence with a per-component modulus.
// Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) PosModv(m *VectorN) (*VectorN, error) {
	return v.zipWith(opModv, m, func(a, b float64) float64 { return numeric.Congruence(a, b, true) })
}

// NegModv applies Congruence with a per-component modulus, negative range.
// Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) NegModv(m *VectorN) (*VectorN, error) {
	return v.zipWith(opModv, m, func(a, b float64) float64 { return numeric.Congruence(a, b, false) })
}

// Lerp interpolates toward to by t clamped to [0, 1].
// Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) Lerp(to *VectorN, t float64) (*VectorN, error) {
	return v.LerpUnclamped(to, numeric.Clamp(t, 0, 1))
}

// LerpUnclamped interpolates toward to by t.
// Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) LerpUnclamped(to *VectorN, t float64) (*VectorN, error) {
	return v.zipWith(opLerp, to, func(a, b float64) float64 { return numeric.LerpUnclamped(a, b, t) })
}

// LerpRand interpolates toward to by one ratio drawn from rng.
// Returns ErrDimensionMismatch when sizes differ.
func (v *VectorN) LerpRand(to *VectorN, rng numeric.Rand) (*VectorN, error) {
	return v.LerpUnclamped(to, rng.Float64())
}

// String renders "(v0, v1, ..., vn)".
func (v *VectorN) String() string { return formatTuple(v.values...) }
