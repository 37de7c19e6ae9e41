// SPDX-License-Identifier: MIT
// Package geometry - Line2, the infinite line in the plane.
//
// Representation:
//   - A unit normal n and an offset p, the line being {x : n·x = p}.
//   - (n, p) and (−n, −p) describe the same line; Equal accounts for that.
//
// Views:
//   - CartesianForm  (a, b, c) for a·x + b·y = c, with (a, b) = n and c = p.
//   - NormalForm     (φ, p) with n = (cos φ, sin φ).
//   - SlopeIntercept (m, q) for y = m·x + q. Vertical lines have n.Y == 0 and
//     give infinite or NaN values (IEEE-754); this is not an error.
//
// The zero Line2 has no normal and is not a line; build one through a
// constructor.

package geometry

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// Line2 is an infinite line in the plane.
type Line2 struct {
	n vector.Vector2 // unit normal
	p float64        // offset: n·x = p on the line
}

// Axis lines.
var (
	// Line2AxisX is the line y = 0.
	Line2AxisX = Line2{n: vector.Vector2{X: 0, Y: 1}}
	// Line2AxisY is the line x = 0.
	Line2AxisY = Line2{n: vector.Vector2{X: 1, Y: 0}}
)

// NewLine2 returns the line normal·x = offset. The normal is rescaled to unit
// length and the offset with it. Returns ErrZeroDirection for a zero normal.
func NewLine2(normal vector.Vector2, offset float64) (Line2, error) {
	var l Line2
	if err := l.SetCartesianForm(normal.X, normal.Y, offset); err != nil {
		return Line2{}, geometryErrorf(opNewLine2, ErrZeroDirection)
	}

	return l, nil
}

// NewLine2FromPoints returns the line through a and b.
// Returns ErrZeroDirection when a == b.
func NewLine2FromPoints(a, b vector.Vector2) (Line2, error) {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return Line2{}, geometryErrorf(opNewLine2, ErrZeroDirection)
	}
	n := vector.Vector2{X: -d.Y / length, Y: d.X / length}

	return Line2{n: n, p: n.Dot(a)}, nil
}

// NewLine2SlopeIntercept returns the line y = m·x + q. m must be finite.
func NewLine2SlopeIntercept(m, q float64) Line2 {
	var l Line2
	l.SetSlopeInterceptForm(m, q)

	return l
}

// NewLine2Cartesian returns the line a·x + b·y = c.
// Returns ErrZeroDirection when a == b == 0.
func NewLine2Cartesian(a, b, c float64) (Line2, error) {
	var l Line2
	if err := l.SetCartesianForm(a, b, c); err != nil {
		return Line2{}, err
	}

	return l, nil
}

// NewLine2Normal returns the line whose normal makes angle phi with +x and
// lies at signed distance p from the origin.
func NewLine2Normal(phi, p float64) Line2 {
	var l Line2
	l.SetNormalForm(phi, p)

	return l
}

// Normal returns the unit normal n.
func (l Line2) Normal() vector.Vector2 { return l.n }

// Offset returns p, the signed distance of the line from the origin along n.
func (l Line2) Offset() float64 { return l.p }

// Direction returns the unit direction, n turned a quarter turn counter-clockwise.
func (l Line2) Direction() vector.Vector2 { return vector.Vector2{X: -l.n.Y, Y: l.n.X} }

// Origin returns the point of the line closest to the coordinate origin.
func (l Line2) Origin() vector.Vector2 { return l.n.Scale(l.p) }

// CartesianForm returns (a, b, c) with a·x + b·y = c and a² + b² = 1.
func (l Line2) CartesianForm() (a, b, c float64) { return l.n.X, l.n.Y, l.p }

// SetCartesianForm replaces the line with a·x + b·y = c.
// Returns ErrZeroDirection (l unchanged) when a == b == 0.
func (l *Line2) SetCartesianForm(a, b, c float64) error {
	length := math.Hypot(a, b)
	if length == 0 {
		return geometryErrorf(opSetCartesian, ErrZeroDirection)
	}
	l.n = vector.Vector2{X: a / length, Y: b / length}
	l.p = c / length

	return nil
}

// NormalForm returns (φ, p): the angle of the normal and the offset.
func (l Line2) NormalForm() (phi, p float64) { return l.n.Angle(), l.p }

// SetNormalForm replaces the line with cos φ·x + sin φ·y = p.
func (l *Line2) SetNormalForm(phi, p float64) {
	sin, cos := math.Sincos(phi)
	l.n = vector.Vector2{X: cos, Y: sin}
	l.p = p
}

// SlopeInterceptForm returns (m, q) with y = m·x + q.
// Vertical lines yield ±Inf or NaN.
func (l Line2) SlopeInterceptForm() (m, q float64) {
	return -l.n.X / l.n.Y, l.p / l.n.Y
}

// SetSlopeInterceptForm replaces the line with y = m·x + q. m must be finite.
func (l *Line2) SetSlopeInterceptForm(m, q float64) {
	// −m·x + y = q
	length := math.Hypot(m, 1)
	l.n = vector.Vector2{X: -m / length, Y: 1 / length}
	l.p = q / length
}

// SignedDistance returns n·pt − p: positive on the side n points to.
func (l Line2) SignedDistance(pt vector.Vector2) float64 { return l.n.Dot(pt) - l.p }

// Distance returns the distance from pt to the line.
func (l Line2) Distance(pt vector.Vector2) float64 { return math.Abs(l.SignedDistance(pt)) }

// Contains reports whether pt lies exactly on the line.
func (l Line2) Contains(pt vector.Vector2) bool { return l.n.Dot(pt) == l.p }

// ContainsWithin reports whether pt lies within eps of the line.
func (l Line2) ContainsWithin(pt vector.Vector2, eps float64) bool {
	return numeric.NearlyEqual(l.n.Dot(pt), l.p, eps)
}

// IsParallel reports whether both normals are collinear (exact cross product).
// A line is parallel to itself.
func (l Line2) IsParallel(other Line2) bool { return l.n.Cross(other.n) == 0 }

// IsSecant reports whether the lines cross in exactly one point.
func (l Line2) IsSecant(other Line2) bool { return !l.IsParallel(other) }

// Intersection solves the 2×2 system n₁·x = p₁, n₂·x = p₂.
//   - KindOne with the crossing point for secant lines.
//   - KindInfinite when both describe the same line.
//   - KindNone for distinct parallel lines.
func (l Line2) Intersection(other Line2) Intersection[vector.Vector2] {
	det := l.n.Cross(other.n)
	if det == 0 {
		kind := KindNone
		if l.coincident(other) {
			kind = KindInfinite
		}
		logDegenerate("Line2.Intersection", kind)
		if kind == KindInfinite {
			return infiniteIntersection[vector.Vector2]()
		}

		return noIntersection[vector.Vector2]()
	}

	return onePoint(vector.Vector2{
		X: (l.p*other.n.Y - other.p*l.n.Y) / det,
		Y: (l.n.X*other.p - other.n.X*l.p) / det,
	})
}

// coincident assumes parallel normals and compares offsets with matching sign.
func (l Line2) coincident(other Line2) bool {
	if l.n.Dot(other.n) < 0 {
		return l.p == -other.p
	}

	return l.p == other.p
}

// Rotate turns the line by phi radians about the coordinate origin.
func (l *Line2) Rotate(phi float64) { l.n.Rotate(phi) }

// Rotated returns the line turned by phi radians about the coordinate origin.
func (l Line2) Rotated(phi float64) Line2 {
	l.Rotate(phi)

	return l
}

// Equal reports whether both values describe the same point set, comparing
// (n, p) exactly up to a common sign flip.
func (l Line2) Equal(other Line2) bool {
	if l.n.Equal(other.n) && l.p == other.p {
		return true
	}

	return l.n.Equal(other.n.Neg()) && l.p == -other.p
}

// ApproxEqual is Equal with every component compared within eps.
func (l Line2) ApproxEqual(other Line2, eps float64) bool {
	if l.n.ApproxEqual(other.n, eps) && numeric.NearlyEqual(l.p, other.p, eps) {
		return true
	}

	return l.n.ApproxEqual(other.n.Neg(), eps) && numeric.NearlyEqual(l.p, -other.p, eps)
}

// String renders "Origin : (x, y) | Direction : (dx, dy)".
func (l Line2) String() string {
	return "Origin : " + l.Origin().String() + " | Direction : " + l.Direction().String()
}
