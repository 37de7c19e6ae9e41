// SPDX-License-Identifier: MIT
// Package geometry - Line3, the infinite parametric line in space.
//
// Representation:
//   - point(t) = origin + t·direction, direction ≠ 0. Neither field is
//     normalised, so GetPoint(1) is exactly origin + direction.
//
// Intersection:
//   - Solves origin₁ + t·d₁ = origin₂ + T·d₂ on the x/y subsystem, falling back
//     to x/z then y/z when that 2×2 subsystem is singular, and validates the
//     remaining axis. All three subsystems are singular exactly when the
//     directions are parallel.
//   - The remaining-axis check is exact in Intersection; IntersectionWithin
//     takes a tolerance.

package geometry

import (
	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// Line3 is an infinite line in space.
type Line3 struct {
	origin    vector.Vector3
	direction vector.Vector3
}

// Axis lines through the coordinate origin.
var (
	Line3AxisX = Line3{direction: vector.Vector3{X: 1}}
	Line3AxisY = Line3{direction: vector.Vector3{Y: 1}}
	Line3AxisZ = Line3{direction: vector.Vector3{Z: 1}}
)

// subsystem names the two solved axes (u, v) and the validated one (w).
type subsystem struct{ u, v, w int }

// Tried in order: x/y, x/z, y/z.
var subsystems = [...]subsystem{{0, 1, 2}, {0, 2, 1}, {1, 2, 0}}

// NewLine3 returns the line through origin along direction.
// Returns ErrZeroDirection when direction is the zero vector.
func NewLine3(origin, direction vector.Vector3) (Line3, error) {
	if direction.LengthSquared() == 0 {
		return Line3{}, geometryErrorf(opNewLine3, ErrZeroDirection)
	}

	return Line3{origin: origin, direction: direction}, nil
}

// NewLine3FromPoints returns the line through a (t = 0) and b (t = 1).
// Returns ErrZeroDirection when a == b.
func NewLine3FromPoints(a, b vector.Vector3) (Line3, error) {
	return NewLine3(a, b.Sub(a))
}

// Origin returns the point at t = 0.
func (l Line3) Origin() vector.Vector3 { return l.origin }

// SetOrigin moves the line so that it passes through origin at t = 0.
func (l *Line3) SetOrigin(origin vector.Vector3) { l.origin = origin }

// Direction returns the direction vector.
func (l Line3) Direction() vector.Vector3 { return l.direction }

// SetDirection replaces the direction. Returns ErrZeroDirection (l unchanged)
// for the zero vector.
func (l *Line3) SetDirection(direction vector.Vector3) error {
	if direction.LengthSquared() == 0 {
		return geometryErrorf(opSetDirection, ErrZeroDirection)
	}
	l.direction = direction

	return nil
}

// GetPoint returns origin + t·direction.
func (l Line3) GetPoint(t float64) vector.Vector3 {
	return l.origin.Add(l.direction.Scale(t))
}

// Contains reports whether pt lies exactly on the line.
func (l Line3) Contains(pt vector.Vector3) bool {
	return pt.Sub(l.origin).Cross(l.direction).Equal(vector.Zero3)
}

// ContainsWithin reports whether pt lies within eps of the line.
func (l Line3) ContainsWithin(pt vector.Vector3, eps float64) bool {
	// |(pt − o) × d| / |d| is the distance to the line.
	dist := pt.Sub(l.origin).Cross(l.direction).Length() / l.direction.Length()

	return numeric.IsZero(dist, eps)
}

// IsParallel reports whether the directions are collinear, i.e. their
// component ratios agree (exact cross product == 0).
func (l Line3) IsParallel(other Line3) bool {
	return l.direction.Cross(other.direction).Equal(vector.Zero3)
}

// IsSecant reports whether the lines meet in exactly one point.
func (l Line3) IsSecant(other Line3) bool {
	return l.Intersection(other).Kind == KindOne
}

// IsCoplanar reports whether both lines lie in a common plane: they are
// parallel or they cross.
func (l Line3) IsCoplanar(other Line3) bool {
	return l.IsParallel(other) || l.IsSecant(other)
}

// Intersection returns the common points of l and other with exact checks.
//   - KindOne: the crossing point, computed on l.
//   - KindInfinite: same line.
//   - KindNone: distinct parallel or skew lines.
func (l Line3) Intersection(other Line3) Intersection[vector.Vector3] {
	return l.intersect(other, 0)
}

// IntersectionWithin is Intersection with the remaining-axis check and the
// coincidence test relaxed to |Δ| ≤ eps.
func (l Line3) IntersectionWithin(other Line3, eps float64) Intersection[vector.Vector3] {
	return l.intersect(other, eps)
}

// intersect implements Intersection.
// Implementation:
//   - Stage 1: pick the first subsystem (u, v) with a non-zero determinant
//     and solve t·d₁ − T·d₂ = o₂ − o₁ on it by Cramer's rule.
//   - Stage 2: the lines meet iff both parametrisations agree on axis w.
//   - Stage 3: no subsystem left → parallel; coincident iff o₂ lies on l.
//
// Complexity: O(1).
func (l Line3) intersect(other Line3, eps float64) Intersection[vector.Vector3] {
	o1, d1 := components3(l.origin), components3(l.direction)
	o2, d2 := components3(other.origin), components3(other.direction)

	var (
		s          subsystem
		det, t, tt float64
		bu, bv     float64
	)
	for _, s = range subsystems {
		det = d2[s.u]*d1[s.v] - d1[s.u]*d2[s.v]
		if det == 0 {
			continue
		}
		bu, bv = o2[s.u]-o1[s.u], o2[s.v]-o1[s.v]
		t = (d2[s.u]*bv - bu*d2[s.v]) / det
		tt = (d1[s.u]*bv - bu*d1[s.v]) / det
		if !numeric.NearlyEqual(o1[s.w]+t*d1[s.w], o2[s.w]+tt*d2[s.w], eps) {
			return noIntersection[vector.Vector3]() // skew
		}

		return onePoint(l.GetPoint(t))
	}

	if l.ContainsWithin(other.origin, eps) {
		logDegenerate("Line3.Intersection", KindInfinite)
		return infiniteIntersection[vector.Vector3]()
	}
	logDegenerate("Line3.Intersection", KindNone)

	return noIntersection[vector.Vector3]()
}

// components3 returns v as an indexable array.
func components3(v vector.Vector3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Rotate turns the direction by phi radians about the z axis (azimuthal);
// the origin is kept.
func (l *Line3) Rotate(phi float64) {
	// Azimuthal is always a valid AngleType.
	_ = l.direction.Rotate(phi, vector.Azimuthal)
}

// Rotated returns the line with its direction turned azimuthally by phi.
func (l Line3) Rotated(phi float64) Line3 {
	l.Rotate(phi)

	return l
}

// Equal reports whether origin and direction match exactly. Two
// parametrisations of one line are not Equal; compare point sets with
// Intersection(other).Kind == KindInfinite.
func (l Line3) Equal(other Line3) bool {
	return l.origin.Equal(other.origin) && l.direction.Equal(other.direction)
}

// String renders "Origin : (x, y, z) | Direction : (dx, dy, dz)".
func (l Line3) String() string {
	return "Origin : " + l.origin.String() + " | Direction : " + l.direction.String()
}
