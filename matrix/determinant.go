// SPDX-License-Identifier: MIT
// Package matrix - determinant by recursive Laplace expansion.
//
// Purpose:
//   - Determinant: 1×1 value, 2×2 ad − bc, otherwise cofactor expansion along
//     row 0: det = Σ_j a[0,j] · (−1)^j · det(minor(0,j)).
//   - Minor: the (n−1)×(n−1) submatrix without one row and one column.
//
// Complexity:
//   - O(n!) time. This is the exact-arithmetic reference kernel; the O(n³)
//     Doolittle variant lives in matrix/ops (DeterminantLU) under its own name.
//   - Space O(n²): one scratch buffer per minor order, reused across siblings.
//
// Notes:
//   - There is no zero-skip: a NaN/Inf entry anywhere propagates into the result
//     even when its row-0 coefficient is zero.

package matrix

import "fmt"

// laplaceScratch holds one reusable minor buffer per order 1..n-1.
// buf[k] has length k*k. Not safe for concurrent use; parallel callers own one each.
// Expanding an order-k block only writes buf[k-1], buf[k-2], ..., so a caller
// may fill buf[n-1] itself and recurse on it.
type laplaceScratch struct {
	buf [][]float64
}

// newLaplaceScratch prepares buffers for expanding an n×n matrix.
func newLaplaceScratch(n int) *laplaceScratch {
	s := &laplaceScratch{buf: make([][]float64, n)}
	var k int
	for k = 1; k < n; k++ {
		s.buf[k] = make([]float64, k*k)
	}

	return s
}

// fillMinor writes src (n×n, row-major) without row r and column c into dst ((n-1)×(n-1)).
func fillMinor(dst, src []float64, n, r, c int) {
	var i, j, k int
	for i = 0; i < n; i++ {
		if i == r {
			continue
		}
		for j = 0; j < n; j++ {
			if j == c {
				continue
			}
			dst[k] = src[i*n+j]
			k++
		}
	}
}

// laplace returns the determinant of the n×n row-major block a.
//
// Implementation:
//   - Stage 1: closed forms for n == 1 and n == 2.
//   - Stage 2: for each column j of row 0, fill the order-(n−1) scratch with
//     minor(0,j) and recurse; recursion only touches smaller buffers, so the
//     sibling loop may overwrite buf[n−1] freely.
//
// Determinism:
//   - Fixed column order; identical inputs give bit-identical output.
func (s *laplaceScratch) laplace(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}
	minor := s.buf[n-1]
	det := ZeroSum
	sign := 1.0
	var j int
	for j = 0; j < n; j++ {
		fillMinor(minor, a, n, 0, j)
		det += a[j] * s.laplace(minor, n-1) * sign
		sign = -sign
	}

	return det
}

// minorDet returns det(minor(r,c)) of the n×n block a, n ≥ 2.
func (s *laplaceScratch) minorDet(a []float64, n, r, c int) float64 {
	dst := s.buf[n-1]
	fillMinor(dst, a, n, r, c)

	return s.laplace(dst, n-1)
}

// Determinant computes det(m) by Laplace expansion along row 0.
// MAIN DESCRIPTION:
//   - Square-only; 1×1 returns the single value, 2×2 returns ad − bc.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: snapshot to *Dense (no copy for *Dense).
//   - Stage 3: recursive expansion with per-order scratch buffers.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²).
//
// AI-Hints:
//   - For n beyond ~10 prefer ops.DeterminantLU; results then differ in the last
//     bits and near-singular inputs may disagree on exact zero.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return newLaplaceScratch(d.r).laplace(d.data, d.r), nil
}

// Minor returns m without row r and column c.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrOutOfRange when r or c is outside [0, n).
//   - ErrInvalidDimensions for a 1×1 input (the minor would be empty).
func Minor(m Matrix, r, c int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if r < 0 || r >= n || c < 0 || c >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", r, c, ErrOutOfRange))
	}
	if n == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	keep := func(skip int) []int {
		idx := make([]int, 0, n-1)
		for k := 0; k < n; k++ {
			if k != skip {
				idx = append(idx, k)
			}
		}

		return idx
	}
	res, err := d.Induced(keep(r), keep(c))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}
