// SPDX-License-Identifier: MIT
// Package matrix - transpose of square matrices.
//
// Transpose swaps values[i,j] and values[j,i] in place; Transposed returns a
// transposed copy. Both are square-only: a rectangular transpose would have to
// change the receiver's shape, which in-place semantics cannot express.

package matrix

import "fmt"

// transposeSquare swaps the strict upper and lower triangles of the n×n block a.
func transposeSquare(a []float64, n int) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a[i*n+j], a[j*n+i] = a[j*n+i], a[i*n+j]
		}
	}
}

// Transpose transposes the square matrix m in place.
// MAIN DESCRIPTION:
//   - *Dense swaps its flat buffer directly; other implementations go
//     through At/Set over the upper triangle.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; At/Set failures of foreign implementations.
//
// Complexity:
//   - Time O(n²), Space O(1).
func Transpose(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if d, ok := m.(*Dense); ok {
		transposeSquare(d.data, d.r)

		return nil
	}

	n := m.Rows()
	var i, j int
	var a, b float64
	var err error
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if a, err = m.At(i, j); err != nil {
				return matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if b, err = m.At(j, i); err != nil {
				return matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			if err = m.Set(i, j, b); err != nil {
				return matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
			if err = m.Set(j, i, a); err != nil {
				return matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return nil
}

// Transposed returns mᵀ as a new matrix, leaving m unchanged.
// Errors: ErrNilMatrix, ErrNonSquare.
func Transposed(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opTransposed, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTransposed, err)
	}
	res := newDenseLike(d.r, d.c, m)
	copy(res.data, d.data)
	transposeSquare(res.data, res.r)

	return res, nil
}
