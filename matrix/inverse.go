// SPDX-License-Identifier: MIT
// Package matrix - classical inverse adj(A) / det(A).
//
// Purpose:
//   - Inverted returns A⁻¹; Invert overwrites A with A⁻¹.
//   - Both share one failure policy: det(A) == 0 yields ErrSingular (which
//     matches numeric.ErrDivideByZero) and Invert leaves A untouched.
//
// Notes:
//   - The determinant is exact Laplace expansion, so "singular" means an exact
//     zero; near-singular inputs invert into large but finite values.
//   - A singular request is logged at debug level on the shared lvmath logger.

package matrix

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmath"
)

// inverseData computes adj(a)/det(a) for the n×n block a.
// Returns ErrSingular (unwrapped) when det(a) == 0.
func inverseData(a []float64, n int, o Options) ([]float64, error) {
	det := newLaplaceScratch(n).laplace(a, n)
	if det == 0 {
		return nil, ErrSingular
	}
	adj, err := cofactorData(a, n, o)
	if err != nil {
		return nil, err
	}
	transposeSquare(adj, n)
	for idx := range adj {
		adj[idx] /= det
	}

	return adj, nil
}

// logSingular reports a refused inversion.
func logSingular(op string, n int) {
	lvmath.Logger().Debug("matrix: singular inversion refused",
		zap.String("op", op),
		zap.Int("order", n),
	)
}

// Inverted returns the inverse of m as adjugate / determinant.
// MAIN DESCRIPTION:
//   - Square-only; m is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; snapshot to *Dense.
//   - Stage 2: det via Laplace; zero → ErrSingular.
//   - Stage 3: adjugate (parallel per options) divided elementwise by det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - O(n² · (n−1)!) dominated by the cofactor matrix.
//
// AI-Hints:
//   - ops.InverseLU is the O(n³) alternative with the same sentinel on failure.
func Inverted(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverted, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverted, err)
	}
	data, err := inverseData(d.data, d.r, gatherOptions(opts...))
	if err != nil {
		if errors.Is(err, ErrSingular) {
			logSingular(opInverted, d.r)
		}

		return nil, matrixErrorf(opInverted, err)
	}
	res := newDenseLike(d.r, d.c, m)
	res.data = data

	return res, nil
}

// Invert replaces m with its inverse. Validation and singularity are checked
// before the first write, so on ErrNonSquare or ErrSingular m is unchanged.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func Invert(m Matrix, opts ...Option) error {
	inv, err := Inverted(m, opts...)
	if err != nil {
		return matrixErrorf(opInvert, err)
	}
	if d, ok := m.(*Dense); ok {
		copy(d.data, inv.data)

		return nil
	}

	n := inv.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, inv.data[i*n+j]); err != nil {
				return matrixErrorf(opInvert, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}
