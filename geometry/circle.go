// SPDX-License-Identifier: MIT
// Package geometry - Circle.
//
// The radius is the only stored measure; Diameter, Area and Perimeter are
// derived and their setters recompute the radius. Every setter rejects a
// negative value with ErrNegativeRadius and leaves the circle untouched.

package geometry

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// Circle is the set of points at distance Radius from Origin.
type Circle struct {
	origin vector.Vector2
	radius float64
}

// UnitCircle is the trigonometric circle: origin (0, 0), radius 1.
var UnitCircle = Circle{radius: 1}

// NewCircle returns the circle of the given origin and radius.
// Returns ErrNegativeRadius for radius < 0.
func NewCircle(origin vector.Vector2, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, geometryErrorf(opNewCircle, ErrNegativeRadius)
	}

	return Circle{origin: origin, radius: radius}, nil
}

// Origin returns the centre.
func (c Circle) Origin() vector.Vector2 { return c.origin }

// SetOrigin moves the centre.
func (c *Circle) SetOrigin(origin vector.Vector2) { c.origin = origin }

// Radius returns r.
func (c Circle) Radius() float64 { return c.radius }

// SetRadius sets r.
func (c *Circle) SetRadius(r float64) error {
	if r < 0 {
		return geometryErrorf(opSetRadius, ErrNegativeRadius)
	}
	c.radius = r

	return nil
}

// Diameter returns 2r.
func (c Circle) Diameter() float64 { return 2 * c.radius }

// SetDiameter sets r = d/2.
func (c *Circle) SetDiameter(d float64) error {
	if d < 0 {
		return geometryErrorf(opSetDiameter, ErrNegativeRadius)
	}
	c.radius = d / 2

	return nil
}

// Area returns πr².
func (c Circle) Area() float64 { return math.Pi * c.radius * c.radius }

// SetArea sets r = √(a/π).
func (c *Circle) SetArea(a float64) error {
	if a < 0 {
		return geometryErrorf(opSetArea, ErrNegativeRadius)
	}
	c.radius = math.Sqrt(a / math.Pi)

	return nil
}

// Perimeter returns 2πr.
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.radius }

// SetPerimeter sets r = p/(2π).
func (c *Circle) SetPerimeter(p float64) error {
	if p < 0 {
		return geometryErrorf(opSetPerimeter, ErrNegativeRadius)
	}
	c.radius = p / (2 * math.Pi)

	return nil
}

// Contains reports whether pt is on the circle: |pt − o|² == r² exactly.
func (c Circle) Contains(pt vector.Vector2) bool {
	return pt.DistanceSquared(c.origin) == c.radius*c.radius
}

// ContainsWithin reports whether pt is within eps of the circle.
func (c Circle) ContainsWithin(pt vector.Vector2, eps float64) bool {
	return numeric.NearlyEqual(pt.Distance(c.origin), c.radius, eps)
}

// GetPoint returns the point of the circle at the given angle from +x.
func (c Circle) GetPoint(angle float64) vector.Vector2 {
	return c.origin.Add(vector.PolarToCartesian(vector.Vector2{X: c.radius, Y: angle}))
}

// GetArc samples n points evenly from angle from to angle to, both included.
// n == 1 yields the point at from. Returns ErrPointCount for n < 1.
func (c Circle) GetArc(from, to float64, n int) ([]vector.Vector2, error) {
	if n < 1 {
		return nil, geometryErrorf(opGetArc, ErrPointCount)
	}
	pts := make([]vector.Vector2, n)
	if n == 1 {
		pts[0] = c.GetPoint(from)
		return pts, nil
	}
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		pts[i] = c.GetPoint(from + step*float64(i))
	}
	pts[n-1] = c.GetPoint(to)

	return pts, nil
}

// LineIntersect returns the points where line meets the circle.
//   - KindTwo for a secant, ordered along line.Direction().
//   - KindOne for a tangent (the foot of the perpendicular from the centre).
//   - KindNone when the line passes farther than r from the centre.
//
// Implementation:
//   - Stage 1: d = signed distance from the centre to the line; the foot of
//     the perpendicular is o − d·n.
//   - Stage 2: the discriminant r² − d² selects the kind; the two points are
//     foot ± √(r² − d²)·direction.
//
// Complexity: O(1).
func (c Circle) LineIntersect(line Line2) Intersection[vector.Vector2] {
	d := line.SignedDistance(c.origin)
	disc := c.radius*c.radius - d*d
	if disc < 0 {
		return noIntersection[vector.Vector2]()
	}
	foot := c.origin.Sub(line.Normal().Scale(d))
	if disc == 0 {
		return onePoint(foot)
	}
	h := line.Direction().Scale(math.Sqrt(disc))

	return twoPoints(foot.Sub(h), foot.Add(h))
}

// CircleIntersect returns the points shared with other.
//   - KindInfinite for identical circles of positive radius.
//   - KindNone for distinct concentric circles and for circles too far apart
//     or nested.
//   - KindOne for tangent circles, KindTwo otherwise.
//
// Implementation:
//   - Stage 1: D = |o₂ − o₁|. The radical line crosses the centre line at
//     distance a = (r₁² − r₂² + D²)/(2D) from o₁.
//   - Stage 2: h² = r₁² − a² is the discriminant; the points are
//     mid ± h·perp, with perp the unit normal of the centre line, the +h
//     point first.
//
// Complexity: O(1).
func (c Circle) CircleIntersect(other Circle) Intersection[vector.Vector2] {
	delta := other.origin.Sub(c.origin)
	dist2 := delta.LengthSquared()
	if dist2 == 0 {
		switch {
		case c.radius != other.radius:
			logDegenerate("Circle.CircleIntersect", KindNone)
			return noIntersection[vector.Vector2]()
		case c.radius == 0:
			return onePoint(c.origin)
		default:
			logDegenerate("Circle.CircleIntersect", KindInfinite)
			return infiniteIntersection[vector.Vector2]()
		}
	}

	dist := math.Sqrt(dist2)
	r1, r2 := c.radius*c.radius, other.radius*other.radius
	a := (r1 - r2 + dist2) / (2 * dist)
	h2 := r1 - a*a
	if h2 < 0 {
		return noIntersection[vector.Vector2]()
	}
	unit := delta.DivScalar(dist)
	mid := c.origin.Add(unit.Scale(a))
	if h2 == 0 {
		return onePoint(mid)
	}
	off := vector.Vector2{X: -unit.Y, Y: unit.X}.Scale(math.Sqrt(h2))

	return twoPoints(mid.Add(off), mid.Sub(off))
}

// Equal reports whether origin and radius match exactly.
func (c Circle) Equal(other Circle) bool {
	return c.origin.Equal(other.origin) && c.radius == other.radius
}

// String renders "(x - ox)² + (y - oy)² = r²".
func (c Circle) String() string {
	return "(x - " + formatFloat(c.origin.X) + ")² + (y - " + formatFloat(c.origin.Y) +
		")² = " + formatFloat(c.radius) + "²"
}
