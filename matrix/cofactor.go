// SPDX-License-Identifier: MIT
// Package matrix - cofactor and adjugate.
//
// Purpose:
//   - Cofactor: C[i,j] = (−1)^(i+j) · det(minor(i,j)).
//   - Adjugate: Cᵀ, the numerator of the classical inverse adj(A)/det(A).
//
// Concurrency:
//   - The n² minor determinants are independent. With WithParallelCofactor and
//     n ≥ threshold they are evaluated one row per goroutine through an
//     errgroup capped at Options.Workers(); every goroutine owns its scratch and
//     writes a disjoint row, so the output is bit-identical to the sequential path.
//
// Complexity:
//   - O(n² · (n−1)!) time, O(n²) space per worker.

package matrix

import "golang.org/x/sync/errgroup"

// cofactorRow fills row i of the n×n cofactor matrix of a into out.
func cofactorRow(s *laplaceScratch, a []float64, n, i int, out []float64) {
	var j int
	for j = 0; j < n; j++ {
		v := s.minorDet(a, n, i, j)
		if (i+j)%2 == 1 {
			v = -v
		}
		out[i*n+j] = v
	}
}

// cofactorData returns the row-major cofactor matrix of the n×n block a.
// A 1×1 block yields [1], so that adj(A)/det(A) also inverts scalars.
func cofactorData(a []float64, n int, o Options) ([]float64, error) {
	out := make([]float64, n*n)
	if n == 1 {
		out[0] = 1

		return out, nil
	}

	if !o.parallelCofactor || n < o.parallelThreshold || o.workers < 2 {
		s := newLaplaceScratch(n)
		var i int
		for i = 0; i < n; i++ {
			cofactorRow(s, a, n, i, out)
		}

		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			cofactorRow(newLaplaceScratch(n), a, n, i, out)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Cofactor returns the matrix of signed minor determinants of m.
// MAIN DESCRIPTION:
//   - C[i,j] = (−1)^(i+j) · det(minor(i,j)); 1×1 input yields [[1]].
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; snapshot to *Dense.
//   - Stage 2: sequential or errgroup fan-out per options.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// AI-Hints:
//   - WithParallelCofactor pays off from n ≈ 5; below that goroutine startup dominates.
func Cofactor(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	data, err := cofactorData(d.data, d.r, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	res := newDenseLike(d.r, d.c, m)
	res.data = data

	return res, nil
}

// Adjugate returns Transpose(Cofactor(m)).
// Errors: ErrNilMatrix, ErrNonSquare.
func Adjugate(m Matrix, opts ...Option) (*Dense, error) {
	res, err := Cofactor(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	transposeSquare(res.data, res.r)

	return res, nil
}
