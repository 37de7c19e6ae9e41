// SPDX-License-Identifier: MIT
package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/geometry"
	"github.com/katalvlaran/lvmath/vector"
)

const tol = 1e-12

// v2 and v3 shorten vector literals in tables.
func v2(x, y float64) vector.Vector2    { return vector.NewVector2(x, y) }
func v3(x, y, z float64) vector.Vector3 { return vector.NewVector3(x, y, z) }

// MustVectorN builds a VectorN or fails the test.
func MustVectorN(t *testing.T, values ...float64) *vector.VectorN {
	t.Helper()
	v, err := vector.NewVectorN(values...)
	require.NoError(t, err)

	return v
}

// MustLine3 builds a Line3 or fails the test.
func MustLine3(t *testing.T, origin, direction vector.Vector3) geometry.Line3 {
	t.Helper()
	l, err := geometry.NewLine3(origin, direction)
	require.NoError(t, err)

	return l
}

// MustLineN builds a LineN or fails the test.
func MustLineN(t *testing.T, origin, direction []float64) geometry.LineN {
	t.Helper()
	l, err := geometry.NewLineN(MustVectorN(t, origin...), MustVectorN(t, direction...))
	require.NoError(t, err)

	return l
}

// MustCircle builds a Circle or fails the test.
func MustCircle(t *testing.T, origin vector.Vector2, r float64) geometry.Circle {
	t.Helper()
	c, err := geometry.NewCircle(origin, r)
	require.NoError(t, err)

	return c
}

// requireNear2 asserts |got − want| ≤ tol per component.
func requireNear2(t *testing.T, want, got vector.Vector2) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, tol), "want %v, got %v", want, got)
}

// requireNear3 asserts |got − want| ≤ tol per component.
func requireNear3(t *testing.T, want, got vector.Vector3) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, tol), "want %v, got %v", want, got)
}
