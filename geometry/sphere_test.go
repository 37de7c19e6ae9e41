// SPDX-License-Identifier: MIT
package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/geometry"
	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

func TestCircle_CircleIntersect(t *testing.T) {
	t.Parallel()
	h := math.Sqrt(3) / 2
	tests := []struct {
		name  string
		other geometry.Circle
		kind  geometry.IntersectionKind
		pts   []vector.Vector2
	}{
		{"two points", MustCircle(t, v2(1, 0), 1), geometry.KindTwo, []vector.Vector2{v2(0.5, h), v2(0.5, -h)}},
		{"external tangent", MustCircle(t, v2(2, 0), 1), geometry.KindOne, []vector.Vector2{v2(1, 0)}},
		{"internal tangent", MustCircle(t, v2(0, 0.5), 0.5), geometry.KindOne, []vector.Vector2{v2(0, 1)}},
		{"too far", MustCircle(t, v2(3, 0), 1), geometry.KindNone, nil},
		{"nested", MustCircle(t, v2(0.1, 0), 0.2), geometry.KindNone, nil},
		{"concentric", MustCircle(t, v2(0, 0), 2), geometry.KindNone, nil},
		{"identical", geometry.UnitCircle, geometry.KindInfinite, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := geometry.UnitCircle.CircleIntersect(tc.other)
			require.Equal(t, tc.kind, got.Kind)
			require.Len(t, got.Points, len(tc.pts))
			for i := range tc.pts {
				requireNear2(t, tc.pts[i], got.Points[i])
			}
		})
	}

	dot := MustCircle(t, v2(3, 3), 0)
	got := dot.CircleIntersect(dot)
	require.Equal(t, geometry.KindOne, got.Kind)
	require.Equal(t, []vector.Vector2{v2(3, 3)}, got.Points)
}

func TestCircle_LineIntersect(t *testing.T) {
	t.Parallel()
	got := geometry.UnitCircle.LineIntersect(geometry.Line2AxisX)
	require.Equal(t, geometry.KindTwo, got.Kind)
	require.ElementsMatch(t, []vector.Vector2{v2(1, 0), v2(-1, 0)}, got.Points)

	tangent, err := geometry.NewLine2Cartesian(0, 1, 1) // y = 1
	require.NoError(t, err)
	got = geometry.UnitCircle.LineIntersect(tangent)
	require.Equal(t, geometry.KindOne, got.Kind)
	require.Equal(t, []vector.Vector2{v2(0, 1)}, got.Points)

	miss := geometry.NewLine2Normal(0, 2) // x = 2
	require.Equal(t, geometry.KindNone, geometry.UnitCircle.LineIntersect(miss).Kind)

	shifted := MustCircle(t, v2(2, 1), 1)
	diag := geometry.NewLine2SlopeIntercept(1, -1) // through the centre
	got = shifted.LineIntersect(diag)
	require.Equal(t, geometry.KindTwo, got.Kind)
	for _, p := range got.Points {
		require.True(t, shifted.ContainsWithin(p, tol))
		require.True(t, diag.ContainsWithin(p, tol))
	}
}

func TestCircle_Measures(t *testing.T) {
	t.Parallel()
	c := MustCircle(t, v2(1, -2), 3)
	require.Equal(t, 6.0, c.Diameter())
	require.InDelta(t, 9*math.Pi, c.Area(), tol)
	require.InDelta(t, 6*math.Pi, c.Perimeter(), tol)

	require.NoError(t, c.SetArea(math.Pi))
	require.Equal(t, 1.0, c.Radius())
	require.NoError(t, c.SetPerimeter(4*math.Pi))
	require.Equal(t, 2.0, c.Radius())
	require.NoError(t, c.SetDiameter(3))
	require.Equal(t, 1.5, c.Radius())

	for name, set := range map[string]func(float64) error{
		"radius":    c.SetRadius,
		"diameter":  c.SetDiameter,
		"area":      c.SetArea,
		"perimeter": c.SetPerimeter,
	} {
		err := set(-1)
		require.ErrorIsf(t, err, geometry.ErrNegativeRadius, name)
		require.ErrorIsf(t, err, numeric.ErrInvalidArgument, name)
	}
	require.Equal(t, 1.5, c.Radius(), "rejected setters leave the radius alone")

	_, err := geometry.NewCircle(v2(0, 0), -0.5)
	require.ErrorIs(t, err, geometry.ErrNegativeRadius)
	require.Equal(t, "(x - 1)² + (y - -2)² = 1.5²", c.String())
}

func TestCircle_PointsAndArc(t *testing.T) {
	t.Parallel()
	require.True(t, geometry.UnitCircle.Contains(v2(0, 1)))
	require.True(t, geometry.UnitCircle.Contains(v2(-1, 0)))
	require.False(t, geometry.UnitCircle.Contains(v2(1, 1)))

	c := MustCircle(t, v2(1, 1), 2)
	p := c.GetPoint(math.Pi / 3)
	requireNear2(t, v2(2, 1+math.Sqrt(3)), p)
	require.True(t, c.ContainsWithin(p, tol))

	arc, err := geometry.UnitCircle.GetArc(0, math.Pi, 3)
	require.NoError(t, err)
	require.Len(t, arc, 3)
	requireNear2(t, v2(1, 0), arc[0])
	requireNear2(t, v2(0, 1), arc[1])
	requireNear2(t, v2(-1, 0), arc[2])

	single, err := geometry.UnitCircle.GetArc(math.Pi/2, math.Pi, 1)
	require.NoError(t, err)
	require.Len(t, single, 1)
	requireNear2(t, v2(0, 1), single[0])

	_, err = geometry.UnitCircle.GetArc(0, 1, 0)
	require.ErrorIs(t, err, geometry.ErrPointCount)
}

func TestSphere(t *testing.T) {
	t.Parallel()
	s := geometry.UnitSphere
	require.InDelta(t, 4*math.Pi, s.Area(), tol)
	require.InDelta(t, 4*math.Pi/3, s.Volume(), tol)
	require.Equal(t, 2.0, s.Diameter())

	require.True(t, s.AreAntipodal(v3(1, 0, 0), v3(-1, 0, 0)))
	require.True(t, s.AreAntipodal(v3(0, 0, 1), v3(0, 0, -1)))
	require.False(t, s.AreAntipodal(v3(1, 0, 0), v3(0, 1, 0)))
	require.False(t, s.AreAntipodal(v3(2, 0, 0), v3(-2, 0, 0)), "points must lie on the sphere")

	requireNear3(t, v3(0, 0, 1), s.GetPoint(0, math.Pi/2))
	requireNear3(t, v3(0, 1, 0), s.GetPoint(math.Pi/2, 0))

	require.NoError(t, s.SetVolume(36*math.Pi)) // r = 3
	require.InDelta(t, 3, s.Radius(), tol)
	require.NoError(t, s.SetArea(16*math.Pi)) // r = 2
	require.InDelta(t, 2, s.Radius(), tol)
	require.ErrorIs(t, s.SetVolume(-1), geometry.ErrNegativeRadius)
	require.Equal(t, 1.0, geometry.UnitSphere.Radius(), "UnitSphere is copied by value")

	_, err := geometry.NewSphere(v3(0, 0, 0), -1)
	require.ErrorIs(t, err, geometry.ErrNegativeRadius)
	require.Equal(t, "(x - 0)² + (y - 0)² + (z - 0)² = 1²", geometry.UnitSphere.String())
}

func TestSphere_LineIntersect(t *testing.T) {
	t.Parallel()
	got := geometry.UnitSphere.LineIntersect(geometry.Line3AxisX)
	require.Equal(t, geometry.KindTwo, got.Kind)
	require.Equal(t, []vector.Vector3{v3(-1, 0, 0), v3(1, 0, 0)}, got.Points)

	got = geometry.UnitSphere.LineIntersect(MustLine3(t, v3(0, 0, 1), v3(1, 0, 0)))
	require.Equal(t, geometry.KindOne, got.Kind)
	require.Equal(t, []vector.Vector3{v3(0, 0, 1)}, got.Points)

	got = geometry.UnitSphere.LineIntersect(MustLine3(t, v3(0, 0, 2), v3(1, 1, 0)))
	require.Equal(t, geometry.KindNone, got.Kind)
}

func TestNSphere_Measures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		dim          int
		r            float64
		volume, area float64
	}{
		{1, 3, 6, 2},
		{2, 2, 4 * math.Pi, 4 * math.Pi},
		{3, 1, 4 * math.Pi / 3, 4 * math.Pi},
		{4, 1, math.Pi * math.Pi / 2, 2 * math.Pi * math.Pi},
		{5, 1, 8 * math.Pi * math.Pi / 15, 8 * math.Pi * math.Pi / 3},
	}
	for _, tc := range tests {
		origin, err := vector.NewVectorNZero(tc.dim)
		require.NoError(t, err)
		s, err := geometry.NewNSphere(origin, tc.r)
		require.NoError(t, err)
		require.Equal(t, tc.dim, s.Dimension())
		require.InDeltaf(t, tc.volume, s.Volume(), 1e-9, "volume, n=%d", tc.dim)
		require.InDeltaf(t, tc.area, s.Area(), 1e-9, "area, n=%d", tc.dim)
	}
}

func TestNSphere_Setters(t *testing.T) {
	t.Parallel()
	s, err := geometry.NewNSphere(MustVectorN(t, 0, 0, 0, 0, 0), 1.7)
	require.NoError(t, err)
	v, a := s.Volume(), s.Area()

	require.NoError(t, s.SetRadius(9))
	require.NoError(t, s.SetVolume(v))
	require.InDelta(t, 1.7, s.Radius(), 1e-12)
	require.NoError(t, s.SetRadius(9))
	require.NoError(t, s.SetArea(a))
	require.InDelta(t, 1.7, s.Radius(), 1e-12)
	require.NoError(t, s.SetDiameter(1))
	require.Equal(t, 0.5, s.Radius())

	require.ErrorIs(t, s.SetRadius(-1), geometry.ErrNegativeRadius)
	require.ErrorIs(t, s.SetArea(-1), geometry.ErrNegativeRadius)
	require.ErrorIs(t, s.SetOrigin(MustVectorN(t, 1, 2)), geometry.ErrDimensionMismatch)
	require.NoError(t, s.SetOrigin(MustVectorN(t, 1, 2, 3, 4, 5)))

	line, err := geometry.NewNSphere(MustVectorN(t, 0), 1)
	require.NoError(t, err)
	require.ErrorIs(t, line.SetArea(2), geometry.ErrUnderdetermined)
	require.NoError(t, line.SetVolume(5))
	require.InDelta(t, 2.5, line.Radius(), 1e-12)

	_, err = geometry.NewNSphere(nil, 1)
	require.ErrorIs(t, err, geometry.ErrNilVector)
	_, err = geometry.NewNSphere(MustVectorN(t, 0), -1)
	require.ErrorIs(t, err, geometry.ErrNegativeRadius)
}

func TestNSphere_PointsAndLines(t *testing.T) {
	t.Parallel()
	s, err := geometry.NewNSphere(MustVectorN(t, 0, 0, 0), 1)
	require.NoError(t, err)

	ok, err := s.Contains(MustVectorN(t, 0, 1, 0))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.Contains(MustVectorN(t, 0, 1, 1))
	require.NoError(t, err)
	require.False(t, ok)
	_, err = s.Contains(MustVectorN(t, 0, 1))
	require.ErrorIs(t, err, geometry.ErrDimensionMismatch)

	p, err := s.GetPoint(0, 1.234)
	require.NoError(t, err)
	require.True(t, p.Equal(MustVectorN(t, 1, 0, 0)))
	p, err = s.GetPoint(math.Pi/2, math.Pi/2)
	require.NoError(t, err)
	require.True(t, p.ApproxEqual(MustVectorN(t, 0, 0, 1), tol))
	ok, err = s.ContainsWithin(p, tol)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = s.GetPoint(0)
	require.ErrorIs(t, err, geometry.ErrDimensionMismatch)

	got, err := s.LineIntersect(MustLineN(t, []float64{0, 0, 0}, []float64{1, 0, 0}))
	require.NoError(t, err)
	require.Equal(t, geometry.KindTwo, got.Kind)
	require.True(t, got.Points[0].Equal(MustVectorN(t, -1, 0, 0)))
	require.True(t, got.Points[1].Equal(MustVectorN(t, 1, 0, 0)))

	got, err = s.LineIntersect(MustLineN(t, []float64{0, 0, 5}, []float64{1, 0, 0}))
	require.NoError(t, err)
	require.Equal(t, geometry.KindNone, got.Kind)

	_, err = s.LineIntersect(MustLineN(t, []float64{0, 0}, []float64{1, 0}))
	require.ErrorIs(t, err, geometry.ErrDimensionMismatch)

	require.Equal(t, "Origin : (0, 0, 0) | Radius : 1", s.String())
	twin, err := geometry.NewNSphere(MustVectorN(t, 0, 0, 0), 1)
	require.NoError(t, err)
	require.True(t, s.Equal(twin))
}
