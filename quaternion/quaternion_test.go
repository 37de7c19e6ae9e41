// SPDX-License-Identifier: MIT
package quaternion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvmath"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/quaternion"
	"github.com/katalvlaran/lvmath/vector"
)

const tol = 1e-12

var (
	qi = quaternion.New(0, 1, 0, 0)
	qj = quaternion.New(0, 0, 1, 0)
	qk = quaternion.New(0, 0, 0, 1)
)

// MustAxisAngle builds a rotation quaternion or fails the test.
func MustAxisAngle(t *testing.T, axis vector.Vector3, angle float64) quaternion.Quaternion {
	t.Helper()
	q, err := quaternion.FromAxisAngle(axis, angle)
	require.NoError(t, err)

	return q
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()
	for _, q := range []quaternion.Quaternion{
		quaternion.New(2, -3, 5, 7),
		quaternion.New(0.5, 0.25, -1.5, 8),
		qk,
	} {
		require.True(t, quaternion.Identity.Mul(q).Equal(q), "1·q")
		require.True(t, q.Mul(quaternion.Identity).Equal(q), "q·1")
	}
}

func TestMul_HamiltonRules(t *testing.T) {
	t.Parallel()
	minusOne := quaternion.New(-1, 0, 0, 0)
	tests := []struct {
		name       string
		a, b, want quaternion.Quaternion
	}{
		{"ij = k", qi, qj, qk},
		{"jk = i", qj, qk, qi},
		{"ki = j", qk, qi, qj},
		{"ji = -k", qj, qi, qk.Neg()},
		{"ii = -1", qi, qi, minusOne},
		{"jj = -1", qj, qj, minusOne},
		{"kk = -1", qk, qk, minusOne},
	}
	for _, tc := range tests {
		require.Truef(t, tc.a.Mul(tc.b).Equal(tc.want), "%s: got %v", tc.name, tc.a.Mul(tc.b))
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	p := quaternion.New(1, 2, 3, 4)
	q := quaternion.New(-1, 0.5, 2, -3)
	require.Equal(t, quaternion.New(0, 2.5, 5, 1), p.Add(q))
	require.Equal(t, quaternion.New(2, 1.5, 1, 7), p.Sub(q))
	require.Equal(t, quaternion.New(2, 4, 6, 8), p.Scale(2))
	require.Equal(t, quaternion.New(1, -2, -3, -4), p.Conjugate())
	require.Equal(t, 30.0, p.NormSquared())
	require.Equal(t, 5.0, quaternion.New(1, 2, 2, 4).Norm())

	require.Equal(t, vector.NewVector3(2, 3, 4), p.Vector())
	require.Equal(t, 1.0, p.Scalar())
	p.SetVector(vector.NewVector3(-1, -1, -1))
	require.Equal(t, quaternion.New(1, -1, -1, -1), p)
	require.Equal(t, quaternion.New(7, 1, 2, 3), quaternion.FromScalarVector(7, vector.NewVector3(1, 2, 3)))
}

func TestInverse(t *testing.T) {
	t.Parallel()
	q := quaternion.New(1, 2, 3, 4)
	inv, err := q.Inverse()
	require.NoError(t, err)
	require.True(t, q.Mul(inv).ApproxEqual(quaternion.Identity, tol))
	require.True(t, inv.Mul(q).ApproxEqual(quaternion.Identity, tol))
	require.True(t, inv.ApproxEqual(q.Conjugate().Scale(1.0/30), tol))

	div, err := q.Div(q)
	require.NoError(t, err)
	require.True(t, div.ApproxEqual(quaternion.Identity, tol))

	unit, err := q.Normalized()
	require.NoError(t, err)
	require.InDelta(t, 1, unit.Norm(), tol)

	var zero quaternion.Quaternion
	_, err = zero.Inverse()
	require.ErrorIs(t, err, quaternion.ErrZeroNorm)
	require.ErrorIs(t, err, numeric.ErrDivideByZero)
	_, err = q.Div(zero)
	require.ErrorIs(t, err, quaternion.ErrZeroNorm)
	_, err = zero.Normalized()
	require.ErrorIs(t, err, quaternion.ErrZeroNorm)
	_, err = zero.RotationMatrix()
	require.ErrorIs(t, err, quaternion.ErrZeroNorm)
}

func TestRotate(t *testing.T) {
	t.Parallel()
	got, err := qi.Rotated(math.Pi/2, vector.NewVector3(0, 0, 1))
	require.NoError(t, err)
	require.True(t, got.ApproxEqual(qj, tol), "i turned a quarter about z is j, got %v", got)
	require.True(t, qi.Equal(quaternion.New(0, 1, 0, 0)), "Rotated leaves the receiver")

	// the axis is normalised
	scaled, err := qi.Rotated(math.Pi/2, vector.NewVector3(0, 0, 5))
	require.NoError(t, err)
	require.True(t, scaled.ApproxEqual(got, tol))

	// the scalar part is invariant
	q := quaternion.New(3, 1, 2, 3)
	require.NoError(t, q.Rotate(1.1, vector.NewVector3(1, -2, 0.5)))
	require.InDelta(t, 3, q.A, tol)
	require.InDelta(t, math.Sqrt(14), q.Vector().Length(), 1e-12)

	before := q
	err = q.Rotate(1, vector.Zero3)
	require.ErrorIs(t, err, quaternion.ErrZeroAxis)
	require.ErrorIs(t, err, numeric.ErrInvalidArgument)
	require.Equal(t, before, q)
	_, err = quaternion.FromAxisAngle(vector.Zero3, 1)
	require.ErrorIs(t, err, quaternion.ErrZeroAxis)
}

func TestRotateVectorAndMatrix(t *testing.T) {
	t.Parallel()
	rz := MustAxisAngle(t, vector.NewVector3(0, 0, 1), math.Pi/2)
	v, err := rz.RotateVector(vector.NewVector3(1, 0, 0))
	require.NoError(t, err)
	require.True(t, v.ApproxEqual(vector.NewVector3(0, 1, 0), tol), "got %v", v)

	// a non-unit quaternion describes the same rotation
	v, err = rz.Scale(3).RotateVector(vector.NewVector3(1, 0, 0))
	require.NoError(t, err)
	require.True(t, v.ApproxEqual(vector.NewVector3(0, 1, 0), tol))

	m, err := rz.RotationMatrix()
	require.NoError(t, err)
	want, err := matrix.NewDenseFromValues(3, 3,
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	)
	require.NoError(t, err)
	require.True(t, matrix.ApproxEqual(want, m, tol), "got\n%v", m)

	r := MustAxisAngle(t, vector.NewVector3(1, 2, -2), 0.7)
	m, err = r.RotationMatrix()
	require.NoError(t, err)
	p := vector.NewVector3(0.3, -1.2, 2.5)
	byQuat, err := r.RotateVector(p)
	require.NoError(t, err)
	byMat, err := matrix.MulVec(m, vector.FromVector3(p))
	require.NoError(t, err)
	require.True(t, byMat.ApproxEqual(vector.FromVector3(byQuat), tol))

	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.InDelta(t, 1, det, 1e-12)
}

func TestEqualityHashString(t *testing.T) {
	t.Parallel()
	a := quaternion.New(0, 1, 2, 3)
	b := quaternion.New(math.Copysign(0, -1), 1, 2, 3)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), quaternion.New(1, 0, 2, 3).Hash())
	require.True(t, a.ApproxEqual(quaternion.New(1e-13, 1, 2, 3), tol))
	require.False(t, a.Equal(quaternion.New(1e-13, 1, 2, 3)))

	require.Equal(t, "1 - 2i + 3j - 4k", quaternion.New(1, -2, 3, -4).String())
	require.Equal(t, "1 + 0i + 0j + 0k", quaternion.Identity.String())
	require.True(t, quaternion.Identity.IsUnit())
}

// Not parallel: swaps the package-wide logger.
func TestZeroNorm_Logged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lvmath.SetLogger(zap.New(core))
	defer lvmath.SetLogger(nil)

	_, err := quaternion.Quaternion{}.Inverse()
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("quaternion: zero-norm division refused").
		FilterField(zap.String("op", "Inverse")).Len())
}
