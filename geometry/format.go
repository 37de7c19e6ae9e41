// SPDX-License-Identifier: MIT

package geometry

import (
	"strconv"

	"github.com/katalvlaran/lvmath/vector"
)

// formatFloat renders v in the shortest form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// The N-dimensional shapes keep their points as *vector.VectorN. In a zero
// value that pointer is nil and the shape has dimension 0; the helpers below
// give nil the meaning of the empty vector.

// dimOf returns the size of v, 0 for nil.
func dimOf(v *vector.VectorN) int {
	if v == nil {
		return 0
	}

	return v.Size()
}

// cloneOf returns a copy of v, nil for nil.
func cloneOf(v *vector.VectorN) *vector.VectorN {
	if v == nil {
		return nil
	}

	return v.Clone()
}

// valuesOf returns a copy of the components of v, nil for nil.
func valuesOf(v *vector.VectorN) []float64 {
	if v == nil {
		return nil
	}

	return v.Values()
}

// equalVec compares exactly; two empty vectors are equal.
func equalVec(a, b *vector.VectorN) bool {
	if dimOf(a) != dimOf(b) {
		return false
	}
	if dimOf(a) == 0 {
		return true
	}

	return a.Equal(b)
}

// tupleOf renders v as "(v0, …, vn)", "()" for nil.
func tupleOf(v *vector.VectorN) string {
	if v == nil {
		return "()"
	}

	return v.String()
}
