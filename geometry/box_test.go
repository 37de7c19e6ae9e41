// SPDX-License-Identifier: MIT
package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/geometry"
	"github.com/katalvlaran/lvmath/vector"
)

func TestRectangle(t *testing.T) {
	t.Parallel()
	r, err := geometry.NewRectangle(v2(0, 0), 4, 2)
	require.NoError(t, err)
	require.Equal(t, 8.0, r.Area())
	require.Equal(t, 12.0, r.Perimeter())

	tests := []struct {
		p      vector.Vector2
		in, on bool
	}{
		{v2(2, 1), true, false},
		{v2(4, 2), true, true},
		{v2(2, 0), true, true},
		{v2(0, 1), true, true},
		{v2(4.1, 1), false, false},
		{v2(5, 0), false, false},
		{v2(2, -0.5), false, false},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.in, r.IsIn(tc.p), "IsIn%v", tc.p)
		require.Equalf(t, tc.in, r.Contains(tc.p), "Contains%v", tc.p)
		require.Equalf(t, tc.on, r.Has(tc.p), "Has%v", tc.p)
	}

	require.ErrorIs(t, r.SetWidth(-1), geometry.ErrNegativeExtent)
	require.ErrorIs(t, r.SetHeight(-1), geometry.ErrNegativeExtent)
	require.NoError(t, r.SetWidth(1))
	r.SetOrigin(v2(-1, -1))
	require.True(t, r.IsIn(v2(0, 1)))
	require.Equal(t, "Origin : (-1, -1) | Width : 1 | Height : 2", r.String())

	_, err = geometry.NewRectangle(v2(0, 0), 1, -2)
	require.ErrorIs(t, err, geometry.ErrNegativeExtent)
}

func TestRectParallelepiped(t *testing.T) {
	t.Parallel()
	b, err := geometry.NewRectParallelepiped(v3(0, 0, 0), 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 6.0, b.Volume())
	require.Equal(t, 22.0, b.SurfaceArea())

	require.True(t, b.IsIn(v3(0.5, 1, 1)))
	require.False(t, b.Has(v3(0.5, 1, 1)))
	require.True(t, b.Has(v3(0.5, 1, 3)))
	require.True(t, b.Has(v3(1, 2, 3)))
	require.False(t, b.Has(v3(2, 0, 0)))
	require.False(t, b.Contains(v3(0, 0, 3.5)))

	require.ErrorIs(t, b.SetLength(-3), geometry.ErrNegativeExtent)
	require.Equal(t, 3.0, b.Length())
	require.NoError(t, b.SetHeight(0))
	require.Equal(t, 6.0, b.SurfaceArea())

	_, err = geometry.NewRectParallelepiped(v3(0, 0, 0), 1, 1, -1)
	require.ErrorIs(t, err, geometry.ErrNegativeExtent)
	require.Equal(t, "Origin : (0, 0, 0) | Width : 1 | Height : 0 | Length : 3", b.String())
}

func TestOrthotope(t *testing.T) {
	t.Parallel()
	o, err := geometry.NewOrthotope(MustVectorN(t, 0, 0, 0, 0), 1, 2, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, o.Dimension())
	require.Equal(t, 2.0, o.Volume())

	in, err := o.IsIn(MustVectorN(t, 0.5, 1.5, 0.5, 0.5))
	require.NoError(t, err)
	require.True(t, in)
	on, err := o.Has(MustVectorN(t, 0.5, 1.5, 0.5, 0.5))
	require.NoError(t, err)
	require.False(t, on)
	on, err = o.Has(MustVectorN(t, 1, 1.5, 0.5, 0.5))
	require.NoError(t, err)
	require.True(t, on)
	on, err = o.Has(MustVectorN(t, 1, 2.5, 0.5, 0.5))
	require.NoError(t, err)
	require.False(t, on, "outside points are never on the boundary")

	_, err = o.Contains(MustVectorN(t, 0, 0))
	require.ErrorIs(t, err, geometry.ErrDimensionMismatch)

	l, err := o.Length(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, l)
	_, err = o.Length(4)
	require.ErrorIs(t, err, geometry.ErrOutOfRange)
	require.ErrorIs(t, o.SetLength(0, -1), geometry.ErrNegativeExtent)
	require.NoError(t, o.SetLength(0, 3))
	require.Equal(t, []float64{3, 2, 1, 1}, o.Lengths())

	lengths := []float64{1, 1}
	sq, err := geometry.NewOrthotope(MustVectorN(t, 0, 0), lengths...)
	require.NoError(t, err)
	lengths[0] = 9
	require.Equal(t, 1.0, sq.Volume(), "constructor copies its lengths")
	require.Equal(t, "Origin : (0, 0) | Lengths : (1, 1)", sq.String())

	twin, err := geometry.NewOrthotope(MustVectorN(t, 0, 0), 1, 1)
	require.NoError(t, err)
	require.True(t, sq.Equal(twin))
	require.False(t, sq.Equal(o))

	_, err = geometry.NewOrthotope(MustVectorN(t, 0, 0), 1)
	require.ErrorIs(t, err, geometry.ErrDimensionMismatch)
	_, err = geometry.NewOrthotope(MustVectorN(t, 0), -1)
	require.ErrorIs(t, err, geometry.ErrNegativeExtent)
	_, err = geometry.NewOrthotope(nil)
	require.ErrorIs(t, err, geometry.ErrNilVector)
}
