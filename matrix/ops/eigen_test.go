// SPDX-License-Identifier: MIT
package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/matrix/ops"
	"github.com/katalvlaran/lvmath/numeric"
)

func TestEigenSym_TwoByTwo(t *testing.T) {
	t.Parallel()
	vals, vecs, err := ops.EigenSym(mustValues(t, 2, 2, 1, 1, 2), 1e-12, 10)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 3}, vals, 1e-12)

	// columns are ±(1,−1)/√2 and ±(1,1)/√2
	col0, err := vecs.Col(0)
	require.NoError(t, err)
	col1, err := vecs.Col(1)
	require.NoError(t, err)
	require.InDelta(t, 0, col0[0]+col0[1], 1e-12)
	require.InDelta(t, 0, col1[0]-col1[1], 1e-12)
	require.InDelta(t, 1/math.Sqrt2, math.Abs(col1[0]), 1e-12)
}

func TestEigenSym_Decomposes(t *testing.T) {
	t.Parallel()
	a := mustValues(t, 4,
		4, 1, -2, 2,
		1, 2, 0, 1,
		-2, 0, 3, -2,
		2, 1, -2, -1,
	)
	vals, vecs, err := ops.EigenSym(a, 1e-12, 500)
	require.NoError(t, err)
	require.Len(t, vals, 4)

	requireOrthogonal(t, vecs)
	var trace float64
	for i, lambda := range vals {
		if i > 0 {
			require.LessOrEqual(t, vals[i-1], lambda)
		}
		trace += lambda

		// A·v = λ·v for every column
		col, err := vecs.Col(i)
		require.NoError(t, err)
		av, err := matrix.MulVec(a, mustVector(t, col...))
		require.NoError(t, err)
		lv := mustVector(t, col...).Scale(lambda)
		require.Truef(t, av.ApproxEqual(lv, 1e-9), "λ=%v: %v vs %v", lambda, av, lv)
	}
	require.InDelta(t, 8, trace, 1e-10)

	det, err := matrix.Determinant(a)
	require.NoError(t, err)
	require.InDelta(t, det, vals[0]*vals[1]*vals[2]*vals[3], 1e-8)
}

func TestEigenSym_Diagonal(t *testing.T) {
	t.Parallel()
	vals, vecs, err := ops.EigenSym(mustValues(t, 3, 5, 0, 0, 0, -1, 0, 0, 0, 2), 0, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 2, 5}, vals)
	require.Equal(t, []float64{0, 0, 1, 1, 0, 0, 0, 1, 0}, vecs.Values())
}

func TestEigenSym_Errors(t *testing.T) {
	t.Parallel()
	sym := mustValues(t, 3, 4, 1, 2, 1, 3, 0.5, 2, 0.5, 1)

	_, _, err := ops.EigenSym(sym, 1e-12, 1)
	require.ErrorIs(t, err, ops.ErrNoConvergence)

	_, _, err = ops.EigenSym(mustValues(t, 2, 1, 2, 3, 4), 1e-12, 10)
	require.ErrorIs(t, err, ops.ErrNotSymmetric)
	require.ErrorIs(t, err, numeric.ErrInvalidArgument)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = ops.EigenSym(rect, 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	for _, bad := range []struct {
		tol  float64
		iter int
	}{{-1, 10}, {math.NaN(), 10}, {1e-12, 0}} {
		_, _, err = ops.EigenSym(sym, bad.tol, bad.iter)
		require.ErrorIs(t, err, ops.ErrBadParameter)
	}
}
