// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/matrix/ops"
)

func mustValues(t *testing.T, n int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromValues(n, n, vals...)
	require.NoError(t, err)

	return m
}

func TestLU_Reconstructs(t *testing.T) {
	t.Parallel()
	a := mustValues(t, 3, 4, 7, 2, 3, 6, 1, 2, 5, 3)
	L, U, err := ops.LU(a)
	require.NoError(t, err)

	// L unit lower, U upper
	var i, j int
	for i = 0; i < 3; i++ {
		l, _ := L.At(i, i)
		require.Equal(t, 1.0, l)
		for j = 0; j < i; j++ {
			u, _ := U.At(i, j)
			require.Zero(t, u)
		}
	}
	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	require.True(t, matrix.ApproxEqual(a, prod, 1e-12))
}

func TestDeterminantLU_MatchesLaplace(t *testing.T) {
	t.Parallel()
	a := mustValues(t, 4, 1, 0, 2, -1, 3, 1, 0, 5, 2, 1, 4, -3, 1, 0, 5, 1)
	want, err := matrix.Determinant(a)
	require.NoError(t, err)
	got, err := ops.DeterminantLU(a)
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-9)
}

func TestInverseLU_MatchesAdjugate(t *testing.T) {
	t.Parallel()
	a := mustValues(t, 3, 4, 7, 2, 3, 6, 1, 2, 5, 3)
	want, err := matrix.Inverted(a)
	require.NoError(t, err)
	got, err := ops.InverseLU(a)
	require.NoError(t, err)
	require.True(t, matrix.ApproxEqual(want, got, 1e-12))
}

func TestLU_Errors(t *testing.T) {
	t.Parallel()
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = ops.LU(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// invertible, but the leading pivot is zero without row exchanges
	swap := mustValues(t, 2, 0, 1, 1, 0)
	_, err = ops.DeterminantLU(swap)
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = ops.InverseLU(swap)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = ops.InverseLU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
