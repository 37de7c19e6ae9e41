// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/numeric"
)

func TestNewDense_ZeroFilledAndShape(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	m.Do(func(i, j int, v float64) bool {
		require.Zerof(t, v, "element [%d,%d]", i, j)
		return true
	})
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		require.ErrorIs(t, err, numeric.ErrInvalidArgument)
	}
}

func TestNewDenseFromValues_BadShape(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDenseFromValues(2, 2, 1, 2, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromValues_CopiesInput(t *testing.T) {
	t.Parallel()
	vals := []float64{1, 2, 3, 4}
	m := MustValues(t, 2, 2, vals...)
	vals[0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	fromRows, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, fromRows))
}

func TestAtSet_OutOfRange(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSet_NaNPolicy(t *testing.T) {
	t.Parallel()
	strict, err := matrix.NewDense(2, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	// Clone carries the policy.
	clone := strict.Clone()
	require.ErrorIs(t, clone.Set(1, 1, math.Inf(1)), matrix.ErrNaNInf)

	loose := MustDense(t, 2, 2)
	require.NoError(t, loose.Set(0, 0, math.NaN()))
}

func TestApply_PolicyAndOrder(t *testing.T) {
	t.Parallel()
	m := MustValues(t, 2, 2, 1, 2, 3, 4)
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, []float64{10, 20, 30, 40}, m.Values())

	strict, err := matrix.NewDense(1, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	err = strict.Apply(func(_, j int, _ float64) float64 { return 1 / float64(j) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDo_EarlyStop(t *testing.T) {
	t.Parallel()
	m := MustValues(t, 2, 2, 1, 2, 3, 4)
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 2
	})
	require.Equal(t, []float64{1, 2}, seen)
}

func TestRowCol(t *testing.T) {
	t.Parallel()
	m := MustValues(t, 2, 3, 1, 2, 3, 4, 5, 6)
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	row[0] = 100 // copies never alias storage
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))
}

func TestString(t *testing.T) {
	t.Parallel()
	m := MustValues(t, 2, 2, 1, 2, 3.5, -4)
	require.Equal(t, "[1, 2]\n[3.5, -4]\n", m.String())
}

func TestInduced(t *testing.T) {
	t.Parallel()
	m := MustValues(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	sub, err := m.Induced([]int{2, 0}, []int{1})
	require.NoError(t, err)
	require.Equal(t, []float64{8, 2}, sub.Values())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestHash(t *testing.T) {
	t.Parallel()
	a := MustValues(t, 2, 2, 0, 1, 2, 3)
	b := MustValues(t, 2, 2, math.Copysign(0, -1), 1, 2, 3)
	require.Equal(t, a.Hash(), b.Hash())

	flat := MustValues(t, 1, 4, 0, 1, 2, 3)
	require.NotEqual(t, a.Hash(), flat.Hash(), "shape takes part in the hash")
}

func TestMatInterop(t *testing.T) {
	t.Parallel()
	src := f64.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	m := matrix.NewDenseFromMat3(src)
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))
	back, err := m.Mat3()
	require.NoError(t, err)
	require.Equal(t, src, back)

	_, err = m.Mat4()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	id4 := matrix.NewDenseFromMat4(f64.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1})
	require.True(t, matrix.Equal(id4, MustIdentity(t, 4)))
}
