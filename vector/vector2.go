// SPDX-License-Identifier: MIT
// Package vector - Vector2, the fixed two-dimensional value type.

package vector

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// Vector2 is a point or direction in the plane.
type Vector2 struct {
	X, Y float64
}

// Named shorthands.
var (
	Zero2   = Vector2{0, 0}
	One2    = Vector2{1, 1}
	NegOne2 = Vector2{-1, -1}
	Up2     = Vector2{0, 1}
	Down2   = Vector2{0, -1}
	Left2   = Vector2{-1, 0}
	Right2  = Vector2{1, 0}
)

// NewVector2 returns (x, y).
func NewVector2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// ---------- arithmetic ----------

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v − o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Mul returns the componentwise product.
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }

// Div returns the componentwise quotient (IEEE-754 on zero components).
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

// Scale returns s·v.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// DivScalar returns v/s.
func (v Vector2) DivScalar(s float64) Vector2 { return Vector2{v.X / s, v.Y / s} }

// Neg returns −v.
func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

// Dot returns the scalar product.
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product, x1·y2 − y1·x2.
func (v Vector2) Cross(o Vector2) float64 { return v.X*o.Y - v.Y*o.X }

// ---------- metric ----------

// Length returns the Euclidean norm.
func (v Vector2) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// LengthSquared returns x² + y².
func (v Vector2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Distance returns |v − o|.
func (v Vector2) Distance(o Vector2) float64 { return math.Sqrt(v.DistanceSquared(o)) }

// DistanceSquared returns |v − o|².
func (v Vector2) DistanceSquared(o Vector2) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y

	return dx*dx + dy*dy
}

// IsNormalized reports LengthSquared() == 1 exactly.
func (v Vector2) IsNormalized() bool { return v.LengthSquared() == 1 }

// Equal reports exact component equality.
func (v Vector2) Equal(o Vector2) bool { return v.X == o.X && v.Y == o.Y }

// ApproxEqual reports componentwise equality within eps.
func (v Vector2) ApproxEqual(o Vector2, eps float64) bool {
	return numeric.NearlyEqual(v.X, o.X, eps) && numeric.NearlyEqual(v.Y, o.Y, eps)
}

// ---------- angles ----------

// Angle returns atan2(y, x), the angle to the positive x axis.
func (v Vector2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleTo returns the signed angle from v to o.
func (v Vector2) AngleTo(o Vector2) float64 { return math.Atan2(v.Cross(o), v.Dot(o)) }

// AngleToPoint returns the angle of the segment from v to point p.
func (v Vector2) AngleToPoint(p Vector2) float64 { return p.Sub(v).Angle() }

// Rotate turns v counter-clockwise by phi radians in place.
func (v *Vector2) Rotate(phi float64) {
	sin, cos := math.Sincos(phi)
	x, y := v.X, v.Y
	v.X = x*cos - y*sin
	v.Y = x*sin + y*cos
}

// Rotated returns v turned counter-clockwise by phi radians.
func (v Vector2) Rotated(phi float64) Vector2 {
	v.Rotate(phi)

	return v
}

// ---------- elementwise ----------

// Abs returns (|x|, |y|).
func (v Vector2) Abs() Vector2 { return Vector2{math.Abs(v.X), math.Abs(v.Y)} }

// Sign returns the per-component sign (−1, 0, +1).
func (v Vector2) Sign() Vector2 { return Vector2{sign(v.X), sign(v.Y)} }

// Pow raises each component to the real power p.
func (v Vector2) Pow(p float64) Vector2 { return Vector2{math.Pow(v.X, p), math.Pow(v.Y, p)} }

// CeilValues rounds each component up in place.
func (v *Vector2) CeilValues() { v.X, v.Y = math.Ceil(v.X), math.Ceil(v.Y) }

// FloorValues rounds each component down in place.
func (v *Vector2) FloorValues() { v.X, v.Y = math.Floor(v.X), math.Floor(v.Y) }

// RoundValues rounds each component half-to-even in place.
func (v *Vector2) RoundValues() { v.X, v.Y = math.RoundToEven(v.X), math.RoundToEven(v.Y) }

// ClampValues clamps each component to its own range in place.
func (v *Vector2) ClampValues(minX, maxX, minY, maxY float64) {
	v.X = numeric.Clamp(v.X, minX, maxX)
	v.Y = numeric.Clamp(v.Y, minY, maxY)
}

// ClampValuesUniform clamps both components to [lo, hi] in place.
func (v *Vector2) ClampValuesUniform(lo, hi float64) { v.ClampValues(lo, hi, lo, hi) }

// ---------- length rescaling (direction kept; zero vector untouched) ----------

func (v *Vector2) rescale(target func(float64) float64) {
	f := lengthFactor(v.LengthSquared(), target)
	v.X *= f
	v.Y *= f
}

// CeilLength rescales v to ceil(|v|).
func (v *Vector2) CeilLength() { v.rescale(math.Ceil) }

// FloorLength rescales v to floor(|v|).
func (v *Vector2) FloorLength() { v.rescale(math.Floor) }

// RoundLength rescales v to |v| rounded half-to-even.
func (v *Vector2) RoundLength() { v.rescale(math.RoundToEven) }

// ClampLength rescales v so that lo ≤ |v| ≤ hi.
func (v *Vector2) ClampLength(lo, hi float64) {
	v.rescale(func(l float64) float64 { return numeric.Clamp(l, lo, hi) })
}

// Normalize rescales v to the given length in place.
// A zero vector stays zero. Returns ErrZeroLength when length == 0.
func (v *Vector2) Normalize(length float64) error {
	if length == 0 {
		return vectorErrorf(opNormalize, ErrZeroLength)
	}
	v.rescale(func(float64) float64 { return length })

	return nil
}

// Normalized returns v rescaled to the given length.
func (v Vector2) Normalized(length float64) (Vector2, error) {
	err := v.Normalize(length)

	return v, err
}

// ---------- modulo & interpolation ----------

// PosMod applies Congruence(·, m, true) to each component.
func (v Vector2) PosMod(m float64) Vector2 {
	return Vector2{numeric.Congruence(v.X, m, true), numeric.Congruence(v.Y, m, true)}
}

// NegMod applies Congruence(·, m, false) to each component.
func (v Vector2) NegMod(m float64) Vector2 {
	return Vector2{numeric.Congruence(v.X, m, false), numeric.Congruence(v.Y, m, false)}
}

// PosModv applies Congruence with a per-component modulus.
func (v Vector2) PosModv(m Vector2) Vector2 {
	return Vector2{numeric.Congruence(v.X, m.X, true), numeric.Congruence(v.Y, m.Y, true)}
}

// NegModv applies Congruence with a per-component modulus, negative range.
func (v Vector2) NegModv(m Vector2) Vector2 {
	return Vector2{numeric.Congruence(v.X, m.X, false), numeric.Congruence(v.Y, m.Y, false)}
}

// Lerp interpolates toward to by t clamped to [0, 1].
func (v Vector2) Lerp(to Vector2, t float64) Vector2 {
	return v.LerpUnclamped(to, numeric.Clamp(t, 0, 1))
}

// LerpUnclamped interpolates toward to by t.
func (v Vector2) LerpUnclamped(to Vector2, t float64) Vector2 {
	return Vector2{numeric.LerpUnclamped(v.X, to.X, t), numeric.LerpUnclamped(v.Y, to.Y, t)}
}

// LerpRand interpolates toward to by a ratio drawn from rng.
func (v Vector2) LerpRand(to Vector2, rng numeric.Rand) Vector2 {
	return v.LerpUnclamped(to, rng.Float64())
}

// ---------- coordinates ----------

// CartesianToPolar returns (r, θ) packed as a Vector2.
func CartesianToPolar(v Vector2) Vector2 { return Vector2{v.Length(), v.Angle()} }

// PolarToCartesian converts (r, θ) back to (x, y).
func PolarToCartesian(p Vector2) Vector2 {
	sin, cos := math.Sincos(p.Y)

	return Vector2{p.X * cos, p.X * sin}
}

// String renders "(x, y)".
func (v Vector2) String() string { return formatTuple(v.X, v.Y) }
