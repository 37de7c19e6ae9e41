// SPDX-License-Identifier: MIT
// Package matrix - structural predicates and equality.
//
// Comparisons are exact by default. Pass WithEpsilon(eps) to accept
// |x − y| ≤ eps instead. NaN never compares equal to anything, itself included.
// Predicates never fail: a nil or non-square input simply answers false.

package matrix

import "math"

// within reports |x − y| ≤ eps, exact when eps == 0.
func within(x, y, eps float64) bool {
	if x == y {
		return true
	}

	return eps > 0 && math.Abs(x-y) <= eps
}

// IsSquare reports Rows == Cols for a non-nil m.
func IsSquare(m Matrix) bool {
	return !isNil(m) && m.Rows() == m.Cols()
}

// squareData returns the n×n buffer of m, or ok == false when m is nil,
// rectangular or unreadable.
func squareData(m Matrix) (data []float64, n int, ok bool) {
	if !IsSquare(m) {
		return nil, 0, false
	}
	d, err := asDense(m)
	if err != nil {
		return nil, 0, false
	}

	return d.data, d.r, true
}

// IsSymmetric reports m[i,j] == m[j,i] for all i, j.
// Complexity: O(n²) over the strict upper triangle.
func IsSymmetric(m Matrix, opts ...Option) bool {
	a, n, ok := squareData(m)
	if !ok {
		return false
	}
	eps := gatherOptions(opts...).eps
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !within(a[i*n+j], a[j*n+i], eps) {
				return false
			}
		}
	}

	return true
}

// IsSkewSymmetric reports m[i,j] == −m[j,i] for all i, j; the diagonal must be zero.
func IsSkewSymmetric(m Matrix, opts ...Option) bool {
	a, n, ok := squareData(m)
	if !ok {
		return false
	}
	eps := gatherOptions(opts...).eps
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if !within(a[i*n+j], -a[j*n+i], eps) {
				return false
			}
		}
	}

	return true
}

// IsInvertible reports whether m is square with a non-zero determinant.
// A NaN determinant counts as non-zero, matching det != 0.
func IsInvertible(m Matrix) bool {
	a, n, ok := squareData(m)
	if !ok {
		return false
	}

	return newLaplaceScratch(n).laplace(a, n) != 0
}

// Equal reports identical shapes and elementwise equality (exact unless
// WithEpsilon is given). Nil operands are never equal.
func Equal(a, b Matrix, opts ...Option) bool {
	if isNil(a) || isNil(b) || a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	eps := gatherOptions(opts...).eps
	for idx, v := range da.data {
		if !within(v, db.data[idx], eps) {
			return false
		}
	}

	return true
}

// ApproxEqual is Equal with tolerance |eps|. A non-finite eps yields false.
func ApproxEqual(a, b Matrix, eps float64) bool {
	eps = math.Abs(eps)
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return false
	}

	return Equal(a, b, WithEpsilon(eps))
}
