// SPDX-License-Identifier: MIT
// Package geometry - Orthotope, the axis-aligned box in N dimensions.

package geometry

import (
	"strings"

	"github.com/katalvlaran/lvmath/vector"
)

// Orthotope spans [originᵢ, originᵢ + lengthᵢ] on each of its Dimension()
// axes. It owns private copies of its origin and lengths. The zero Orthotope
// has dimension 0 and contains no point.
type Orthotope struct {
	origin  *vector.VectorN
	lengths []float64
}

// NewOrthotope returns the box with the given lower corner and side lengths.
// Errors:
//   - ErrNilVector for a nil origin.
//   - ErrDimensionMismatch when len(lengths) != origin.Size().
//   - ErrNegativeExtent when a length is negative.
func NewOrthotope(origin *vector.VectorN, lengths ...float64) (Orthotope, error) {
	if origin == nil {
		return Orthotope{}, geometryErrorf(opNewOrthotope, ErrNilVector)
	}
	if len(lengths) != origin.Size() {
		return Orthotope{}, geometryErrorf(opNewOrthotope, ErrDimensionMismatch)
	}
	for _, l := range lengths {
		if l < 0 {
			return Orthotope{}, geometryErrorf(opNewOrthotope, ErrNegativeExtent)
		}
	}
	ls := make([]float64, len(lengths))
	copy(ls, lengths)

	return Orthotope{origin: origin.Clone(), lengths: ls}, nil
}

// Dimension returns the number of axes.
func (o Orthotope) Dimension() int { return len(o.lengths) }

// Origin returns a copy of the lower corner.
func (o Orthotope) Origin() *vector.VectorN { return cloneOf(o.origin) }

// SetOrigin moves the box. The dimension cannot change.
func (o *Orthotope) SetOrigin(origin *vector.VectorN) error {
	if origin == nil {
		return geometryErrorf(opSetOrigin, ErrNilVector)
	}
	if origin.Size() != o.Dimension() {
		return geometryErrorf(opSetOrigin, ErrDimensionMismatch)
	}
	o.origin = origin.Clone()

	return nil
}

// Length returns the side length along axis i.
// Returns ErrOutOfRange for i outside [0, Dimension).
func (o Orthotope) Length(i int) (float64, error) {
	if i < 0 || i >= o.Dimension() {
		return 0, geometryErrorf(opLength, ErrOutOfRange)
	}

	return o.lengths[i], nil
}

// SetLength sets the side length along axis i.
func (o *Orthotope) SetLength(i int, l float64) error {
	if i < 0 || i >= o.Dimension() {
		return geometryErrorf(opSetExtent, ErrOutOfRange)
	}

	return setExtent(&o.lengths[i], l)
}

// Lengths returns a copy of all side lengths.
func (o Orthotope) Lengths() []float64 {
	ls := make([]float64, len(o.lengths))
	copy(ls, o.lengths)

	return ls
}

// Volume returns the product of the side lengths.
func (o Orthotope) Volume() float64 {
	v := 1.0
	for _, l := range o.lengths {
		v *= l
	}

	return v
}

// IsIn reports whether pt lies in the closed box.
// Returns ErrDimensionMismatch when pt has another dimension.
func (o Orthotope) IsIn(pt *vector.VectorN) (bool, error) {
	p, lo, err := o.coords(pt)
	if err != nil {
		return false, err
	}
	for i, l := range o.lengths {
		if !within(p[i], lo[i], l) {
			return false, nil
		}
	}

	return true, nil
}

// Contains is IsIn.
func (o Orthotope) Contains(pt *vector.VectorN) (bool, error) { return o.IsIn(pt) }

// Has reports whether pt lies on the boundary: inside the closed box with at
// least one coordinate on a face.
func (o Orthotope) Has(pt *vector.VectorN) (bool, error) {
	in, err := o.IsIn(pt)
	if err != nil || !in {
		return false, err
	}
	p, lo, _ := o.coords(pt)
	for i, l := range o.lengths {
		if onEdge(p[i], lo[i], l) {
			return true, nil
		}
	}

	return false, nil
}

// coords returns the components of pt and of the origin after a size check.
func (o Orthotope) coords(pt *vector.VectorN) (p, lo []float64, err error) {
	if pt == nil {
		return nil, nil, geometryErrorf(opOrthotopeQuery, ErrNilVector)
	}
	if pt.Size() != o.Dimension() {
		return nil, nil, geometryErrorf(opOrthotopeQuery, ErrDimensionMismatch)
	}

	return pt.Values(), o.origin.Values(), nil
}

// Equal reports whether dimension, origin and every length match exactly.
func (o Orthotope) Equal(other Orthotope) bool {
	if o.Dimension() != other.Dimension() {
		return false
	}
	for i := len(o.lengths) - 1; i >= 0; i-- {
		if o.lengths[i] != other.lengths[i] {
			return false
		}
	}

	return equalVec(o.origin, other.origin)
}

// String renders "Origin : (…) | Lengths : (…)".
func (o Orthotope) String() string {
	var b strings.Builder
	b.WriteString("Origin : ")
	b.WriteString(tupleOf(o.origin))
	b.WriteString(" | Lengths : (")
	for i, l := range o.lengths {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(l))
	}
	b.WriteByte(')')

	return b.String()
}
