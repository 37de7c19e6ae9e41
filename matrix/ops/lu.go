// SPDX-License-Identifier: MIT

// Package ops provides O(n³) factorizations on top of lvmath/matrix:
//
//   - LU (Doolittle), DeterminantLU, InverseLU.
//   - QR (Householder), DeterminantQR, LeastSquares.
//   - EigenSym (cyclic-by-pivot Jacobi) for symmetric matrices.
//
// The LU and QR determinants agree with matrix.Determinant up to rounding on
// well-conditioned input. LU does not pivot, so a zero leading principal minor
// fails with matrix.ErrSingular even when the matrix itself is invertible
// (e.g. [[0,1],[1,0]]); DeterminantQR has no such restriction.
package ops

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
)

// ZeroPivot is the sentinel for detecting a zero pivot.
const ZeroPivot = 0.0

// ZeroSum is the initial accumulator of substitution sums.
const ZeroSum = 0.0

const (
	opLU            = "LU"
	opDeterminantLU = "DeterminantLU"
	opInverseLU     = "InverseLU"
)

// decompose runs Doolittle on the n×n row-major block a and returns the packed
// factors: U on and above the diagonal, L (unit diagonal implied) below it.
//
// Implementation:
//   - Stage 1: for pivot row i, compute U[i][j], j ≥ i.
//   - Stage 2: guard U[i][i] == 0 → ErrSingular.
//   - Stage 3: compute L[j][i], j > i.
//
// Complexity: O(n³) time, O(n²) space.
func decompose(a []float64, n int) ([]float64, error) {
	lu := make([]float64, n*n)
	var (
		i, j, k int
		sum     float64
		pivot   float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lu[i*n+k] * lu[k*n+j]
			}
			lu[i*n+j] = a[i*n+j] - sum
		}
		pivot = lu[i*n+i]
		if pivot == ZeroPivot {
			return nil, fmt.Errorf("zero pivot at %d: %w", i, matrix.ErrSingular)
		}
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lu[j*n+k] * lu[k*n+i]
			}
			lu[j*n+i] = (a[j*n+i] - sum) / pivot
		}
	}

	return lu, nil
}

// squareValues validates m and returns its row-major entries and order.
func squareValues(op string, m matrix.Matrix) ([]float64, int, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	a, n, _, err := values(op, m)

	return a, n, err
}

// values snapshots the row-major entries of a non-nil m.
func values(op string, m matrix.Matrix) ([]float64, int, int, error) {
	r, c := m.Rows(), m.Cols()
	a := make([]float64, r*c)
	var i, j int
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if a[i*c+j], err = m.At(i, j); err != nil {
				return nil, 0, 0, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	return a, r, c, nil
}

// LU performs Doolittle decomposition A = L·U of a square matrix.
// L is unit lower triangular, U upper triangular.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrSingular on a zero pivot.
func LU(m matrix.Matrix) (L, U *matrix.Dense, err error) {
	a, n, err := squareValues(opLU, m)
	if err != nil {
		return nil, nil, err
	}
	lu, err := decompose(a, n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLU, err)
	}

	l := make([]float64, n*n)
	u := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		l[i*n+i] = 1
		for j = 0; j < n; j++ {
			if j < i {
				l[i*n+j] = lu[i*n+j]
			} else {
				u[i*n+j] = lu[i*n+j]
			}
		}
	}
	if L, err = matrix.NewDenseFromValues(n, n, l...); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLU, err)
	}
	if U, err = matrix.NewDenseFromValues(n, n, u...); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLU, err)
	}

	return L, U, nil
}

// DeterminantLU returns det(m) as the product of U's diagonal.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrSingular on a zero pivot; no pivoting is attempted.
//
// Complexity: O(n³).
func DeterminantLU(m matrix.Matrix) (float64, error) {
	a, n, err := squareValues(opDeterminantLU, m)
	if err != nil {
		return 0, err
	}
	lu, err := decompose(a, n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDeterminantLU, err)
	}
	det := 1.0
	var i int
	for i = 0; i < n; i++ {
		det *= lu[i*n+i]
	}

	return det, nil
}
