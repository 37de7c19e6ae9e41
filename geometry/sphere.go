// SPDX-License-Identifier: MIT
// Package geometry - Sphere.
//
// Same contract as Circle: the radius is stored, Diameter/Area/Volume are
// derived, setters reject negative values with ErrNegativeRadius.
// Area is the surface area 4πr².

package geometry

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// Sphere is the set of points at distance Radius from Origin.
type Sphere struct {
	origin vector.Vector3
	radius float64
}

// UnitSphere is centred on the origin with radius 1.
var UnitSphere = Sphere{radius: 1}

// NewSphere returns the sphere of the given origin and radius.
// Returns ErrNegativeRadius for radius < 0.
func NewSphere(origin vector.Vector3, radius float64) (Sphere, error) {
	if radius < 0 {
		return Sphere{}, geometryErrorf(opNewSphere, ErrNegativeRadius)
	}

	return Sphere{origin: origin, radius: radius}, nil
}

// Origin returns the centre.
func (s Sphere) Origin() vector.Vector3 { return s.origin }

// SetOrigin moves the centre.
func (s *Sphere) SetOrigin(origin vector.Vector3) { s.origin = origin }

// Radius returns r.
func (s Sphere) Radius() float64 { return s.radius }

// SetRadius sets r.
func (s *Sphere) SetRadius(r float64) error {
	if r < 0 {
		return geometryErrorf(opSetRadius, ErrNegativeRadius)
	}
	s.radius = r

	return nil
}

// Diameter returns 2r.
func (s Sphere) Diameter() float64 { return 2 * s.radius }

// SetDiameter sets r = d/2.
func (s *Sphere) SetDiameter(d float64) error {
	if d < 0 {
		return geometryErrorf(opSetDiameter, ErrNegativeRadius)
	}
	s.radius = d / 2

	return nil
}

// Area returns the surface area 4πr².
func (s Sphere) Area() float64 { return 4 * math.Pi * s.radius * s.radius }

// SetArea sets r = √(a/4π).
func (s *Sphere) SetArea(a float64) error {
	if a < 0 {
		return geometryErrorf(opSetArea, ErrNegativeRadius)
	}
	s.radius = math.Sqrt(a / (4 * math.Pi))

	return nil
}

// Volume returns 4πr³/3.
func (s Sphere) Volume() float64 { return 4 * math.Pi * s.radius * s.radius * s.radius / 3 }

// SetVolume sets r = ∛(3v/4π).
func (s *Sphere) SetVolume(v float64) error {
	if v < 0 {
		return geometryErrorf(opSetVolume, ErrNegativeRadius)
	}
	s.radius = math.Cbrt(3 * v / (4 * math.Pi))

	return nil
}

// Contains reports whether pt is on the sphere: |pt − o|² == r² exactly.
func (s Sphere) Contains(pt vector.Vector3) bool {
	return pt.DistanceSquared(s.origin) == s.radius*s.radius
}

// ContainsWithin reports whether pt is within eps of the sphere.
func (s Sphere) ContainsWithin(pt vector.Vector3, eps float64) bool {
	return numeric.NearlyEqual(pt.Distance(s.origin), s.radius, eps)
}

// AreAntipodal reports whether p1 and p2 are both on the sphere and a
// diameter apart (exact).
func (s Sphere) AreAntipodal(p1, p2 vector.Vector3) bool {
	return s.Contains(p1) && s.Contains(p2) && p1.Distance(p2) == s.Diameter()
}

// GetPoint returns the point at azimuth phi and elevation th (see
// vector.SphericToCartesian).
func (s Sphere) GetPoint(phi, th float64) vector.Vector3 {
	return s.origin.Add(vector.SphericToCartesian(vector.Vector3{X: s.radius, Y: phi, Z: th}))
}

// LineIntersect returns the points where line meets the sphere, ordered by
// increasing line parameter.
// Implementation:
//   - Solves |o + t·d − c|² = r², i.e. (d·d)t² + 2d·(o − c)t + |o − c|² − r² = 0.
//
// Complexity: O(1).
func (s Sphere) LineIntersect(line Line3) Intersection[vector.Vector3] {
	d := line.Direction()
	oc := line.Origin().Sub(s.origin)
	t1, t2, kind := solveQuadratic(d.Dot(d), 2*d.Dot(oc), oc.Dot(oc)-s.radius*s.radius)
	switch kind {
	case KindOne:
		return onePoint(line.GetPoint(t1))
	case KindTwo:
		return twoPoints(line.GetPoint(t1), line.GetPoint(t2))
	default:
		return noIntersection[vector.Vector3]()
	}
}

// Equal reports whether origin and radius match exactly.
func (s Sphere) Equal(other Sphere) bool {
	return s.origin.Equal(other.origin) && s.radius == other.radius
}

// String renders "(x - ox)² + (y - oy)² + (z - oz)² = r²".
func (s Sphere) String() string {
	return "(x - " + formatFloat(s.origin.X) + ")² + (y - " + formatFloat(s.origin.Y) +
		")² + (z - " + formatFloat(s.origin.Z) + ")² = " + formatFloat(s.radius) + "²"
}

// solveQuadratic returns the real roots of a·t² + b·t + c (a > 0) in
// increasing order together with their count as a kind.
func solveQuadratic(a, b, c float64) (t1, t2 float64, kind IntersectionKind) {
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return 0, 0, KindNone
	case disc == 0:
		t1 = -b / (2 * a)
		return t1, t1, KindOne
	}
	sq := math.Sqrt(disc)

	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), KindTwo
}
