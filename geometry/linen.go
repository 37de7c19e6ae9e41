// SPDX-License-Identifier: MIT
// Package geometry - LineN, the parametric line in N dimensions.
//
// Ownership: a LineN holds private copies of its origin and direction;
// accessors return copies as well. The zero LineN has dimension 0 and no
// points.

package geometry

import (
	"github.com/katalvlaran/lvmath/vector"
)

// LineN is an infinite line point(t) = origin + t·direction in Dimension()
// dimensions.
type LineN struct {
	origin    *vector.VectorN
	direction *vector.VectorN
}

// NewLineN returns the line through origin along direction.
// Errors:
//   - ErrNilVector for a nil argument.
//   - ErrDimensionMismatch when the sizes differ.
//   - ErrZeroDirection when direction is the zero vector.
func NewLineN(origin, direction *vector.VectorN) (LineN, error) {
	if origin == nil || direction == nil {
		return LineN{}, geometryErrorf(opNewLineN, ErrNilVector)
	}
	if origin.Size() != direction.Size() {
		return LineN{}, geometryErrorf(opNewLineN, ErrDimensionMismatch)
	}
	if direction.LengthSquared() == 0 {
		return LineN{}, geometryErrorf(opNewLineN, ErrZeroDirection)
	}

	return LineN{origin: origin.Clone(), direction: direction.Clone()}, nil
}

// Dimension returns the size of the ambient space.
func (l LineN) Dimension() int { return dimOf(l.origin) }

// Origin returns a copy of the point at t = 0.
func (l LineN) Origin() *vector.VectorN { return cloneOf(l.origin) }

// Direction returns a copy of the direction vector.
func (l LineN) Direction() *vector.VectorN { return cloneOf(l.direction) }

// GetPoint returns origin + t·direction, nil for the zero LineN.
func (l LineN) GetPoint(t float64) *vector.VectorN {
	if l.Dimension() == 0 {
		return nil
	}
	o, d := l.origin.Values(), l.direction.Values()
	for i := range o {
		o[i] += t * d[i]
	}
	pt, _ := vector.NewVectorN(o...)

	return pt
}

// IsParallel reports whether the directions are collinear, comparing the
// cross-multiplied ratios dᵢ·eⱼ == dⱼ·eᵢ for every pair i < j (exact).
// Returns ErrDimensionMismatch when the dimensions differ.
//
// Complexity: O(n²).
func (l LineN) IsParallel(other LineN) (bool, error) {
	if l.Dimension() != other.Dimension() {
		return false, geometryErrorf(opIsParallel, ErrDimensionMismatch)
	}
	d, e := valuesOf(l.direction), valuesOf(other.direction)
	var i, j int
	for i = 0; i < len(d); i++ {
		for j = i + 1; j < len(d); j++ {
			if d[i]*e[j] != d[j]*e[i] {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether dimensions, origins and directions match exactly.
func (l LineN) Equal(other LineN) bool {
	return equalVec(l.origin, other.origin) && equalVec(l.direction, other.direction)
}

// String renders "Origin : (…) | Direction : (…)".
func (l LineN) String() string {
	return "Origin : " + tupleOf(l.origin) + " | Direction : " + tupleOf(l.direction)
}
