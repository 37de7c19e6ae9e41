// SPDX-License-Identifier: MIT
// Package vector - Vector3, the fixed three-dimensional value type.
//
// Angle conventions:
//   - Azimuthal angle φ = atan2(y, x), measured in the xy plane.
//   - Polar angle θ = atan2(z, |(x, y)|), the elevation above the xy plane.
//   - Per-axis angles follow the right-hand frame used by Rotate/RotateAxis:
//     about X the reference is −z, about Y it is +z, about Z it is +x.

package vector

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// AngleType selects the spherical angle used by Angle and Rotate.
type AngleType int

const (
	// Azimuthal is the angle in the xy plane.
	Azimuthal AngleType = iota
	// Polar is the elevation above the xy plane.
	Polar
)

// Axis selects a coordinate axis for AxisAngle and RotateAxis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vector3 is a point or direction in space.
type Vector3 struct {
	X, Y, Z float64
}

// Named shorthands.
var (
	Zero3   = Vector3{0, 0, 0}
	One3    = Vector3{1, 1, 1}
	NegOne3 = Vector3{-1, -1, -1}
	Up3     = Vector3{0, 1, 0}
	Down3   = Vector3{0, -1, 0}
	Left3   = Vector3{-1, 0, 0}
	Right3  = Vector3{1, 0, 0}
	Front3  = Vector3{0, 0, 1}
	Back3   = Vector3{0, 0, -1}
)

// NewVector3 returns (x, y, z).
func NewVector3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// ---------- arithmetic ----------

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v − o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns the componentwise product.
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Div returns the componentwise quotient.
func (v Vector3) Div(o Vector3) Vector3 { return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// Scale returns s·v.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// DivScalar returns v/s.
func (v Vector3) DivScalar(s float64) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }

// Neg returns −v.
func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product.
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the vector product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// ---------- metric ----------

// Length returns the Euclidean norm.
func (v Vector3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// LengthSquared returns x² + y² + z².
func (v Vector3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Distance returns |v − o|.
func (v Vector3) Distance(o Vector3) float64 { return math.Sqrt(v.DistanceSquared(o)) }

// DistanceSquared returns |v − o|².
func (v Vector3) DistanceSquared(o Vector3) float64 { return v.Sub(o).LengthSquared() }

// IsNormalized reports LengthSquared() == 1 exactly.
func (v Vector3) IsNormalized() bool { return v.LengthSquared() == 1 }

// Equal reports exact component equality.
func (v Vector3) Equal(o Vector3) bool { return v.X == o.X && v.Y == o.Y && v.Z == o.Z }

// ApproxEqual reports componentwise equality within eps.
func (v Vector3) ApproxEqual(o Vector3, eps float64) bool {
	return numeric.NearlyEqual(v.X, o.X, eps) &&
		numeric.NearlyEqual(v.Y, o.Y, eps) &&
		numeric.NearlyEqual(v.Z, o.Z, eps)
}

// XY drops the z component.
func (v Vector3) XY() Vector2 { return Vector2{v.X, v.Y} }

// ---------- angles ----------

// Azimuth returns atan2(y, x).
func (v Vector3) Azimuth() float64 { return math.Atan2(v.Y, v.X) }

// Elevation returns atan2(z, |(x, y)|).
func (v Vector3) Elevation() float64 { return math.Atan2(v.Z, math.Hypot(v.X, v.Y)) }

// Angle returns the azimuthal or polar angle of v.
// Returns ErrUnknownAngleType for any other AngleType.
func (v Vector3) Angle(t AngleType) (float64, error) {
	switch t {
	case Azimuthal:
		return v.Azimuth(), nil
	case Polar:
		return v.Elevation(), nil
	default:
		return 0, vectorErrorf(opAngle, ErrUnknownAngleType)
	}
}

// AxisAngle returns the angle of v around the given axis.
// Returns ErrUnknownAxis for any other Axis.
func (v Vector3) AxisAngle(a Axis) (float64, error) {
	switch a {
	case AxisX:
		return math.Atan2(v.Y, -v.Z), nil
	case AxisY:
		return math.Atan2(v.X, v.Z), nil
	case AxisZ:
		return math.Atan2(v.Y, v.X), nil
	default:
		return 0, vectorErrorf(opAngle, ErrUnknownAxis)
	}
}

// AngleTo returns the unsigned angle between v and o in [0, π].
func (v Vector3) AngleTo(o Vector3) float64 {
	return math.Atan2(v.Cross(o).Length(), v.Dot(o))
}

// Rotate turns v by phi radians in place.
//   - Azimuthal: counter-clockwise about the z axis.
//   - Polar: the elevation grows by phi, keeping length and azimuth.
//
// The zero vector is left unchanged. Returns ErrUnknownAngleType for any
// other AngleType (v untouched).
func (v *Vector3) Rotate(phi float64, t AngleType) error {
	if t != Azimuthal && t != Polar {
		return vectorErrorf(opRotate, ErrUnknownAngleType)
	}
	if v.LengthSquared() == 0 {
		return nil
	}
	if t == Azimuthal {
		sin, cos := math.Sincos(phi)
		x, y := v.X, v.Y
		v.X = x*cos - y*sin
		v.Y = x*sin + y*cos

		return nil
	}
	s := CartesianToSpheric(*v)
	s.Z += phi
	*v = SphericToCartesian(s)

	return nil
}

// Rotated returns v turned by phi radians (see Rotate).
func (v Vector3) Rotated(phi float64, t AngleType) (Vector3, error) {
	err := v.Rotate(phi, t)

	return v, err
}

// RotateAxis turns v by phi radians about the given axis in place; the
// component along that axis is kept. Returns ErrUnknownAxis for any other
// Axis (v untouched).
func (v *Vector3) RotateAxis(phi float64, a Axis) error {
	angle, err := v.AxisAngle(a)
	if err != nil {
		return vectorErrorf(opRotate, ErrUnknownAxis)
	}
	if v.LengthSquared() == 0 {
		return nil
	}
	angle += phi
	sin, cos := math.Sincos(angle)
	switch a {
	case AxisX:
		l := math.Hypot(v.Y, v.Z)
		v.Y, v.Z = sin*l, -cos*l
	case AxisY:
		l := math.Hypot(v.X, v.Z)
		v.X, v.Z = sin*l, cos*l
	case AxisZ:
		l := math.Hypot(v.X, v.Y)
		v.X, v.Y = cos*l, sin*l
	}

	return nil
}

// RotatedAxis returns v turned by phi radians about the given axis.
func (v Vector3) RotatedAxis(phi float64, a Axis) (Vector3, error) {
	err := v.RotateAxis(phi, a)

	return v, err
}

// ---------- elementwise ----------

// Abs returns (|x|, |y|, |z|).
func (v Vector3) Abs() Vector3 { return Vector3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// Sign returns the per-component sign (−1, 0, +1).
func (v Vector3) Sign() Vector3 { return Vector3{sign(v.X), sign(v.Y), sign(v.Z)} }

// Pow raises each component to the real power p.
func (v Vector3) Pow(p float64) Vector3 {
	return Vector3{math.Pow(v.X, p), math.Pow(v.Y, p), math.Pow(v.Z, p)}
}

// CeilValues rounds each component up in place.
func (v *Vector3) CeilValues() { v.X, v.Y, v.Z = math.Ceil(v.X), math.Ceil(v.Y), math.Ceil(v.Z) }

// FloorValues rounds each component down in place.
func (v *Vector3) FloorValues() { v.X, v.Y, v.Z = math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z) }

// RoundValues rounds each component half-to-even in place.
func (v *Vector3) RoundValues() {
	v.X, v.Y, v.Z = math.RoundToEven(v.X), math.RoundToEven(v.Y), math.RoundToEven(v.Z)
}

// ClampValues clamps each component to its own range in place.
func (v *Vector3) ClampValues(minX, maxX, minY, maxY, minZ, maxZ float64) {
	v.X = numeric.Clamp(v.X, minX, maxX)
	v.Y = numeric.Clamp(v.Y, minY, maxY)
	v.Z = numeric.Clamp(v.Z, minZ, maxZ)
}

// ClampValuesUniform clamps all components to [lo, hi] in place.
func (v *Vector3) ClampValuesUniform(lo, hi float64) { v.ClampValues(lo, hi, lo, hi, lo, hi) }

func (v *Vector3) rescale(target func(float64) float64) {
	f := lengthFactor(v.LengthSquared(), target)
	v.X *= f
	v.Y *= f
	v.Z *= f
}

// CeilLength rescales v to ceil(|v|); the zero vector is untouched.
func (v *Vector3) CeilLength() { v.rescale(math.Ceil) }

// FloorLength rescales v to floor(|v|).
func (v *Vector3) FloorLength() { v.rescale(math.Floor) }

// RoundLength rescales v to |v| rounded half-to-even.
func (v *Vector3) RoundLength() { v.rescale(math.RoundToEven) }

// ClampLength rescales v so that lo ≤ |v| ≤ hi.
func (v *Vector3) ClampLength(lo, hi float64) {
	v.rescale(func(l float64) float64 { return numeric.Clamp(l, lo, hi) })
}

// Normalize rescales v to the given length in place.
// A zero vector stays zero. Returns ErrZeroLength when length == 0.
func (v *Vector3) Normalize(length float64) error {
	if length == 0 {
		return vectorErrorf(opNormalize, ErrZeroLength)
	}
	v.rescale(func(float64) float64 { return length })

	return nil
}

// Normalized returns v rescaled to the given length.
func (v Vector3) Normalized(length float64) (Vector3, error) {
	err := v.Normalize(length)

	return v, err
}

// ---------- modulo & interpolation ----------

func (v Vector3) congruence(m Vector3, isPos bool) Vector3 {
	return Vector3{
		numeric.Congruence(v.X, m.X, isPos),
		numeric.Congruence(v.Y, m.Y, isPos),
		numeric.Congruence(v.Z, m.Z, isPos),
	}
}

// PosMod applies Congruence(·, m, true) to each component.
func (v Vector3) PosMod(m float64) Vector3 { return v.congruence(Vector3{m, m, m}, true) }

// NegMod applies Congruence(·, m, false) to each component.
func (v Vector3) NegMod(m float64) Vector3 { return v.congruence(Vector3{m, m, m}, false) }

// PosModv applies Congruence with a per-component modulus.
func (v Vector3) PosModv(m Vector3) Vector3 { return v.congruence(m, true) }

// NegModv applies Congruence with a per-component modulus, negative range.
func (v Vector3) NegModv(m Vector3) Vector3 { return v.congruence(m, false) }

// Lerp interpolates toward to by t clamped to [0, 1].
func (v Vector3) Lerp(to Vector3, t float64) Vector3 {
	return v.LerpUnclamped(to, numeric.Clamp(t, 0, 1))
}

// LerpUnclamped interpolates toward to by t.
func (v Vector3) LerpUnclamped(to Vector3, t float64) Vector3 {
	return Vector3{
		numeric.LerpUnclamped(v.X, to.X, t),
		numeric.LerpUnclamped(v.Y, to.Y, t),
		numeric.LerpUnclamped(v.Z, to.Z, t),
	}
}

// LerpRand interpolates toward to by a ratio drawn from rng.
func (v Vector3) LerpRand(to Vector3, rng numeric.Rand) Vector3 {
	return v.LerpUnclamped(to, rng.Float64())
}

// String renders "(x, y, z)".
func (v Vector3) String() string { return formatTuple(v.X, v.Y, v.Z) }
