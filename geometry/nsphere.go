// SPDX-License-Identifier: MIT
// Package geometry - NSphere, the sphere in N ≥ 1 dimensions.
//
// Measures (n = Dimension, closed forms with the even/odd split):
//
//	n even:  V = (2π)^(n/2)·rⁿ / n!!        S = (2π)^(n/2)·rⁿ⁻¹ / (n−2)!!
//	n odd:   V = 2(2π)^((n−1)/2)·rⁿ / n!!   S = 2(2π)^((n−1)/2)·rⁿ⁻¹ / (n−2)!!
//
// V is the volume of the enclosed n-ball and S (Area) the measure of its
// boundary, with (−1)!! = 0!! = 1. For n = 2, 3 they reduce to the circle and
// sphere formulas. In one dimension the boundary is two points, S = 2 for
// every r, and SetArea reports ErrUnderdetermined.
//
// GetPoint uses hyperspherical coordinates: with angles φ₁…φₙ₋₁,
//
//	x₁ = r·cos φ₁, x₂ = r·sin φ₁·cos φ₂, …, xₙ = r·sin φ₁⋯sin φₙ₋₁.

package geometry

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// NSphere is the set of points at distance Radius from Origin in
// Dimension() dimensions. It owns a private copy of its origin. The zero
// NSphere has dimension 0: its origin cannot be set, its boundary measure is
// 0 and it meets no line.
type NSphere struct {
	origin *vector.VectorN
	radius float64
}

// NewNSphere returns the N-sphere of the given origin and radius.
// Returns ErrNilVector for a nil origin, ErrNegativeRadius for radius < 0.
func NewNSphere(origin *vector.VectorN, radius float64) (NSphere, error) {
	if origin == nil {
		return NSphere{}, geometryErrorf(opNewNSphere, ErrNilVector)
	}
	if radius < 0 {
		return NSphere{}, geometryErrorf(opNewNSphere, ErrNegativeRadius)
	}

	return NSphere{origin: origin.Clone(), radius: radius}, nil
}

// Dimension returns the size of the ambient space.
func (s NSphere) Dimension() int { return dimOf(s.origin) }

// Origin returns a copy of the centre.
func (s NSphere) Origin() *vector.VectorN { return cloneOf(s.origin) }

// SetOrigin moves the centre. The dimension cannot change.
func (s *NSphere) SetOrigin(origin *vector.VectorN) error {
	if err := s.checkPoint(opSetOrigin, origin); err != nil {
		return err
	}
	s.origin = origin.Clone()

	return nil
}

// Radius returns r.
func (s NSphere) Radius() float64 { return s.radius }

// SetRadius sets r.
func (s *NSphere) SetRadius(r float64) error {
	if r < 0 {
		return geometryErrorf(opSetRadius, ErrNegativeRadius)
	}
	s.radius = r

	return nil
}

// Diameter returns 2r.
func (s NSphere) Diameter() float64 { return 2 * s.radius }

// SetDiameter sets r = d/2.
func (s *NSphere) SetDiameter(d float64) error {
	if d < 0 {
		return geometryErrorf(opSetDiameter, ErrNegativeRadius)
	}
	s.radius = d / 2

	return nil
}

// Volume returns the volume of the enclosed n-ball.
func (s NSphere) Volume() float64 {
	n := s.Dimension()

	return ballCoefficient(n, n) * numeric.PosPow(s.radius, n)
}

// SetVolume sets r = ⁿ√(v / Vₙ(1)). Returns ErrUnderdetermined in zero
// dimensions, ErrNegativeRadius for v < 0.
func (s *NSphere) SetVolume(v float64) error {
	if v < 0 {
		return geometryErrorf(opSetVolume, ErrNegativeRadius)
	}
	n := s.Dimension()
	if n == 0 {
		return geometryErrorf(opSetVolume, ErrUnderdetermined)
	}
	s.radius = numeric.NRoot(v/ballCoefficient(n, n), float64(n))

	return nil
}

// Area returns the measure of the boundary (n−1)-sphere.
func (s NSphere) Area() float64 {
	n := s.Dimension()
	if n == 0 {
		return 0
	}

	return ballCoefficient(n, n-2) * numeric.PosPow(s.radius, n-1)
}

// SetArea sets r = ⁿ⁻¹√(a / Sₙ(1)). Returns ErrUnderdetermined in zero or
// one dimension, ErrNegativeRadius for a < 0.
func (s *NSphere) SetArea(a float64) error {
	if a < 0 {
		return geometryErrorf(opSetArea, ErrNegativeRadius)
	}
	n := s.Dimension()
	if n <= 1 {
		return geometryErrorf(opSetArea, ErrUnderdetermined)
	}
	s.radius = numeric.NRoot(a/ballCoefficient(n, n-2), float64(n-1))

	return nil
}

// ballCoefficient returns (2π)^(n/2)/k!! for even n and 2(2π)^((n−1)/2)/k!!
// for odd n.
func ballCoefficient(n, k int) float64 {
	df, _ := numeric.DoubleFactorial(k) // k ≥ −1 for n ≥ 1
	if n%2 == 0 {
		return numeric.PosPow(2*math.Pi, n/2) / df
	}

	return 2 * numeric.PosPow(2*math.Pi, (n-1)/2) / df
}

// checkPoint validates a point argument against the sphere's dimension.
func (s NSphere) checkPoint(op string, pt *vector.VectorN) error {
	if pt == nil {
		return geometryErrorf(op, ErrNilVector)
	}
	if pt.Size() != s.Dimension() {
		return geometryErrorf(op, ErrDimensionMismatch)
	}

	return nil
}

// Contains reports whether pt is on the sphere: |pt − o|² == r² exactly.
// Returns ErrDimensionMismatch when pt has another dimension.
func (s NSphere) Contains(pt *vector.VectorN) (bool, error) {
	if err := s.checkPoint(opContains, pt); err != nil {
		return false, err
	}
	d2, _ := pt.DistanceSquared(s.origin)

	return d2 == s.radius*s.radius, nil
}

// ContainsWithin reports whether pt is within eps of the sphere.
func (s NSphere) ContainsWithin(pt *vector.VectorN, eps float64) (bool, error) {
	if err := s.checkPoint(opContains, pt); err != nil {
		return false, err
	}
	d, _ := pt.Distance(s.origin)

	return numeric.NearlyEqual(d, s.radius, eps), nil
}

// GetPoint returns the point at the given hyperspherical angles.
// Returns ErrDimensionMismatch unless exactly Dimension()−1 angles are given.
func (s NSphere) GetPoint(angles ...float64) (*vector.VectorN, error) {
	n := s.Dimension()
	if len(angles) != n-1 {
		return nil, geometryErrorf(opGetPoint, ErrDimensionMismatch)
	}
	vals := s.origin.Values()
	prod := s.radius
	var sin, cos float64
	for i, phi := range angles {
		sin, cos = math.Sincos(phi)
		vals[i] += prod * cos
		prod *= sin
	}
	vals[n-1] += prod

	return vector.NewVectorN(vals...)
}

// LineIntersect returns the points where line meets the sphere, ordered by
// increasing line parameter. Returns ErrDimensionMismatch when the line
// lives in another dimension.
//
// Complexity: O(n).
func (s NSphere) LineIntersect(line LineN) (Intersection[*vector.VectorN], error) {
	if line.Dimension() != s.Dimension() {
		return Intersection[*vector.VectorN]{}, geometryErrorf(opLineIntersect, ErrDimensionMismatch)
	}
	if s.Dimension() == 0 {
		return noIntersection[*vector.VectorN](), nil
	}
	d := line.direction
	oc, _ := line.origin.Sub(s.origin)
	b, _ := d.Dot(oc)
	t1, t2, kind := solveQuadratic(d.LengthSquared(), 2*b, oc.LengthSquared()-s.radius*s.radius)
	switch kind {
	case KindOne:
		return onePoint(line.GetPoint(t1)), nil
	case KindTwo:
		return twoPoints(line.GetPoint(t1), line.GetPoint(t2)), nil
	default:
		return noIntersection[*vector.VectorN](), nil
	}
}

// Equal reports whether dimension, origin and radius match exactly.
func (s NSphere) Equal(other NSphere) bool {
	return s.radius == other.radius && equalVec(s.origin, other.origin)
}

// String renders "Origin : (…) | Radius : r".
func (s NSphere) String() string {
	return "Origin : " + tupleOf(s.origin) + " | Radius : " + formatFloat(s.radius)
}
