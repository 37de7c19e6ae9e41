// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// NormZero is the zero column norm that skips a Householder step.
const NormZero = 0.0

const (
	opQR            = "QR"
	opDeterminantQR = "DeterminantQR"
	opLeastSquares  = "LeastSquares"
)

// householder reduces the r×c block a (r ≥ c) to upper-triangular R in place
// and returns Qᵀ (r×r, row-major) together with the number of reflections
// applied. Entries below the diagonal of R are stored as exact zeros.
//
// Implementation:
//   - Stage 1: per column k, norm of a[k:r][k]; a zero column is skipped.
//   - Stage 2: v = a[k:r][k] − α·e_k with α = −sign(a[k][k])·norm, so v[k]
//     never cancels and vᵀv > 0.
//   - Stage 3: A ← (I − 2vvᵀ/vᵀv)·A on columns k..c−1, then the same for Qᵀ.
//
// Complexity: O(r²·c) time, O(r²) space.
func householder(a []float64, r, c int) ([]float64, int) {
	qt := make([]float64, r*r)
	var i, j, k int
	for i = 0; i < r; i++ {
		qt[i*r+i] = 1
	}
	steps := c
	if r-1 < steps {
		steps = r - 1
	}

	v := make([]float64, r)
	var (
		flips                  int
		norm, alpha, beta, sum float64
	)
	for k = 0; k < steps; k++ {
		norm = NormZero
		for i = k; i < r; i++ {
			norm += a[i*c+k] * a[i*c+k]
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue
		}
		alpha = -math.Copysign(norm, a[k*c+k])
		for i = k; i < r; i++ {
			v[i] = a[i*c+k]
		}
		v[k] -= alpha
		beta = NormZero
		for i = k; i < r; i++ {
			beta += v[i] * v[i]
		}
		beta = 2 / beta

		for j = k + 1; j < c; j++ {
			sum = NormZero
			for i = k; i < r; i++ {
				sum += v[i] * a[i*c+j]
			}
			sum *= beta
			for i = k; i < r; i++ {
				a[i*c+j] -= sum * v[i]
			}
		}
		a[k*c+k] = alpha
		for i = k + 1; i < r; i++ {
			a[i*c+k] = 0
		}

		for j = 0; j < r; j++ {
			sum = NormZero
			for i = k; i < r; i++ {
				sum += v[i] * qt[i*r+j]
			}
			sum *= beta
			for i = k; i < r; i++ {
				qt[i*r+j] -= sum * v[i]
			}
		}
		flips++
	}

	return qt, flips
}

// tallValues validates m for QR (non-nil, rows ≥ cols) and snapshots it.
func tallValues(op string, m matrix.Matrix) ([]float64, int, int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	if m.Rows() < m.Cols() {
		return nil, 0, 0, fmt.Errorf("%s: %dx%d has fewer rows than columns: %w",
			op, m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}

	return values(op, m)
}

// QR factors m = Q·R with Householder reflections.
// MAIN DESCRIPTION:
//   - m is r×c with r ≥ c; Q is r×r orthogonal, R is r×c upper triangular.
//   - m is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - matrix.ErrDimensionMismatch when m has fewer rows than columns.
//
// Complexity: O(r²·c) time, O(r²) memory.
func QR(m matrix.Matrix) (Q, R *matrix.Dense, err error) {
	a, r, c, err := tallValues(opQR, m)
	if err != nil {
		return nil, nil, err
	}
	qt, _ := householder(a, r, c)

	q := make([]float64, r*r)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			q[i*r+j] = qt[j*r+i]
		}
	}
	if Q, err = matrix.NewDenseFromValues(r, r, q...); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opQR, err)
	}
	if R, err = matrix.NewDenseFromValues(r, c, a...); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opQR, err)
	}

	return Q, R, nil
}

// DeterminantQR returns det(m) = (−1)^reflections · ∏ R[i,i].
// Unlike DeterminantLU it needs no non-zero leading minors; a singular m
// yields 0 (up to rounding) and no error.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n³).
func DeterminantQR(m matrix.Matrix) (float64, error) {
	a, n, err := squareValues(opDeterminantQR, m)
	if err != nil {
		return 0, err
	}
	_, flips := householder(a, n, n)
	det := 1.0
	if flips%2 == 1 {
		det = -1
	}
	var i int
	for i = 0; i < n; i++ {
		det *= a[i*n+i]
	}

	return det, nil
}

// LeastSquares returns the x minimizing |a·x − b| for a tall a (rows ≥ cols).
// For a square invertible a this is the solution of a·x = b.
//
// Implementation:
//   - Stage 1: Householder QR of a, y = Qᵀ·b.
//   - Stage 2: back substitution R[:c,:c]·x = y[:c].
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - matrix.ErrDimensionMismatch for a wide a, or b nil or of size ≠ rows.
//   - matrix.ErrSingular when a is rank deficient (a zero on R's diagonal).
//
// Complexity: O(r²·c).
func LeastSquares(a matrix.Matrix, b *vector.VectorN) (*vector.VectorN, error) {
	data, r, c, err := tallValues(opLeastSquares, a)
	if err != nil {
		return nil, err
	}
	if b == nil || b.Size() != r {
		return nil, fmt.Errorf("%s: right-hand side does not match %d rows: %w",
			opLeastSquares, r, matrix.ErrDimensionMismatch)
	}
	qt, _ := householder(data, r, c)

	rhs := b.Values()
	y := make([]float64, c)
	var i, k int
	var sum float64
	for i = 0; i < c; i++ {
		sum = ZeroSum
		for k = 0; k < r; k++ {
			sum += qt[i*r+k] * rhs[k]
		}
		y[i] = sum
	}

	x := make([]float64, c)
	for i = c - 1; i >= 0; i-- {
		if data[i*c+i] == ZeroPivot {
			return nil, fmt.Errorf("%s: rank deficient at column %d: %w", opLeastSquares, i, matrix.ErrSingular)
		}
		sum = y[i]
		for k = i + 1; k < c; k++ {
			sum -= data[i*c+k] * x[k]
		}
		x[i] = sum / data[i*c+i]
	}

	return vector.NewVectorN(x...)
}
