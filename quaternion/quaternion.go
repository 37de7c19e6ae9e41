// SPDX-License-Identifier: MIT
// Package quaternion - the Quaternion value type.
//
// Method conventions follow the vector package: pure methods use value
// receivers, Rotate mutates through a pointer and Rotated wraps it.
// Equal compares exactly; ApproxEqual takes an eps.

package quaternion

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// Quaternion is a + b·i + c·j + d·k.
type Quaternion struct {
	A, B, C, D float64
}

// Identity is the multiplicative identity 1 + 0i + 0j + 0k.
var Identity = Quaternion{A: 1}

// New returns a + b·i + c·j + d·k.
func New(a, b, c, d float64) Quaternion { return Quaternion{A: a, B: b, C: c, D: d} }

// FromScalarVector returns a + v.X·i + v.Y·j + v.Z·k.
func FromScalarVector(a float64, v vector.Vector3) Quaternion {
	return Quaternion{A: a, B: v.X, C: v.Y, D: v.Z}
}

// FromVector returns the pure quaternion 0 + v.
func FromVector(v vector.Vector3) Quaternion { return FromScalarVector(0, v) }

// FromAxisAngle returns the unit rotation (cos(θ/2), sin(θ/2)·axis/|axis|).
// Returns ErrZeroAxis for a zero axis.
func FromAxisAngle(axis vector.Vector3, angle float64) (Quaternion, error) {
	l := axis.Length()
	if l == 0 {
		return Quaternion{}, quaternionErrorf(opFromAxisAngle, ErrZeroAxis)
	}
	sin, cos := math.Sincos(angle / 2)

	return FromScalarVector(cos, axis.Scale(sin/l)), nil
}

// Scalar returns the real part a.
func (q Quaternion) Scalar() float64 { return q.A }

// Vector returns the imaginary part (b, c, d).
func (q Quaternion) Vector() vector.Vector3 { return vector.Vector3{X: q.B, Y: q.C, Z: q.D} }

// SetVector replaces the imaginary part with v.
func (q *Quaternion) SetVector(v vector.Vector3) { q.B, q.C, q.D = v.X, v.Y, v.Z }

// Add returns q + o.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.A + o.A, q.B + o.B, q.C + o.C, q.D + o.D}
}

// Sub returns q − o.
func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{q.A - o.A, q.B - o.B, q.C - o.C, q.D - o.D}
}

// Neg returns −q.
func (q Quaternion) Neg() Quaternion { return Quaternion{-q.A, -q.B, -q.C, -q.D} }

// Scale returns s·q.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.A * s, q.B * s, q.C * s, q.D * s}
}

// Mul returns the Hamilton product q·o. It is not commutative.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		A: q.A*o.A - q.B*o.B - q.C*o.C - q.D*o.D,
		B: q.A*o.B + q.B*o.A + q.C*o.D - q.D*o.C,
		C: q.A*o.C + q.C*o.A + q.D*o.B - q.B*o.D,
		D: q.A*o.D + q.D*o.A + q.B*o.C - q.C*o.B,
	}
}

// Div returns q·o⁻¹. Returns ErrZeroNorm when o is zero.
func (q Quaternion) Div(o Quaternion) (Quaternion, error) {
	inv, err := o.inverse(opDiv)
	if err != nil {
		return Quaternion{}, err
	}

	return q.Mul(inv), nil
}

// Conjugate returns (a, −b, −c, −d).
func (q Quaternion) Conjugate() Quaternion { return Quaternion{q.A, -q.B, -q.C, -q.D} }

// NormSquared returns a² + b² + c² + d².
func (q Quaternion) NormSquared() float64 { return q.A*q.A + q.B*q.B + q.C*q.C + q.D*q.D }

// Norm returns √(a² + b² + c² + d²).
func (q Quaternion) Norm() float64 { return math.Sqrt(q.NormSquared()) }

// Inverse returns conjugate / normSquared.
// Returns ErrZeroNorm for the zero quaternion.
func (q Quaternion) Inverse() (Quaternion, error) { return q.inverse(opInverse) }

func (q Quaternion) inverse(op string) (Quaternion, error) {
	n2 := q.NormSquared()
	if n2 == 0 {
		logZeroNorm(op)
		return Quaternion{}, quaternionErrorf(op, ErrZeroNorm)
	}

	return q.Conjugate().Scale(1 / n2), nil
}

// Normalized returns q / |q|. Returns ErrZeroNorm for the zero quaternion.
func (q Quaternion) Normalized() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		logZeroNorm(opNormalized)
		return Quaternion{}, quaternionErrorf(opNormalized, ErrZeroNorm)
	}

	return q.Scale(1 / n), nil
}

// IsUnit reports whether the norm is exactly 1.
func (q Quaternion) IsUnit() bool { return q.NormSquared() == 1 }

// Rotate replaces q with r·q·r⁻¹ where r = FromAxisAngle(axis, angle).
// Returns ErrZeroAxis (q untouched) for a zero axis.
func (q *Quaternion) Rotate(angle float64, axis vector.Vector3) error {
	r, err := FromAxisAngle(axis, angle)
	if err != nil {
		return quaternionErrorf(opRotate, ErrZeroAxis)
	}
	// r is a unit quaternion: r⁻¹ == conj(r).
	*q = r.Mul(*q).Mul(r.Conjugate())

	return nil
}

// Rotated returns q turned by angle about axis (see Rotate).
func (q Quaternion) Rotated(angle float64, axis vector.Vector3) (Quaternion, error) {
	err := q.Rotate(angle, axis)

	return q, err
}

// RotateVector applies the rotation q to v: the vector part of q·(0, v)·q⁻¹.
// q need not be unit; a zero q is ErrZeroNorm.
func (q Quaternion) RotateVector(v vector.Vector3) (vector.Vector3, error) {
	inv, err := q.inverse(opRotateVector)
	if err != nil {
		return vector.Vector3{}, err
	}

	return q.Mul(FromVector(v)).Mul(inv).Vector(), nil
}

// Equal reports exact equality of all four components.
func (q Quaternion) Equal(o Quaternion) bool {
	return q.A == o.A && q.B == o.B && q.C == o.C && q.D == o.D
}

// ApproxEqual reports |qᵢ − oᵢ| ≤ eps for every component.
func (q Quaternion) ApproxEqual(o Quaternion, eps float64) bool {
	return numeric.NearlyEqual(q.A, o.A, eps) && numeric.NearlyEqual(q.B, o.B, eps) &&
		numeric.NearlyEqual(q.C, o.C, eps) && numeric.NearlyEqual(q.D, o.D, eps)
}

// Hash returns an xxhash digest of the four components (−0 folded onto +0).
func (q Quaternion) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range [...]float64{q.A, q.B, q.C, q.D} {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// String renders "a + bi + cj + dk", folding negative parts into "-".
func (q Quaternion) String() string {
	var b strings.Builder
	b.WriteString(formatFloat(q.A))
	var v float64
	for _, part := range [...]struct {
		v    float64
		unit byte
	}{{q.B, 'i'}, {q.C, 'j'}, {q.D, 'k'}} {
		v = part.v
		if v < 0 {
			b.WriteString(" - ")
			v = -v
		} else {
			b.WriteString(" + ")
		}
		b.WriteString(formatFloat(v))
		b.WriteByte(part.unit)
	}

	return b.String()
}

// formatFloat renders v in the shortest form that round-trips.
// −0 prints as 0.
func formatFloat(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
