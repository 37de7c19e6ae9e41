// SPDX-License-Identifier: MIT
// Package numeric - clamping and floor-division arithmetic.

package numeric

import "math"

const (
	opEuclideanRemainderInt = "EuclideanRemainderInt"
	opCongruenceInt         = "CongruenceInt"
)

// Clamp returns lo if v ≤ lo, hi if v ≥ hi, else v.
// The bounds are not reordered: with lo > hi the result is always lo.
func Clamp(v, lo, hi float64) float64 {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}

	return v
}

// EuclideanQuotient returns floor(a/b).
func EuclideanQuotient(a, b float64) float64 {
	return math.Floor(a / b)
}

// EuclideanRemainder returns a − floor(a/b)·b.
// The result carries the sign of b (floor-division modulo), unlike math.Mod
// which truncates toward zero.
//
//	EuclideanRemainder(-1, 3) == 2   // math.Mod(-1, 3) == -1
func EuclideanRemainder(a, b float64) float64 {
	return a - EuclideanQuotient(a, b)*b
}

// Congruence is the canonical wrap-around "mod" of the module.
// For b > 0:
//   - isPos == true  ⇒ result in [0, b)
//   - isPos == false ⇒ result in (−b, 0]
//
// The negative representative is the positive one shifted by −b, except that
// an exact multiple of b maps to 0 in both modes. A remainder that rounds up
// to |b| (tiny negative a) is folded back to 0 to keep the half-open range.
func Congruence(a, b float64, isPos bool) float64 {
	r := EuclideanRemainder(a, b)
	if math.Abs(r) >= math.Abs(b) {
		r = 0
	}
	if isPos || r == 0 {
		return r
	}

	return r - b
}

// EuclideanQuotientInt returns floor(a/b) for integers.
// Returns ErrZeroModulus when b == 0.
func EuclideanQuotientInt(a, b int) (int, error) {
	if b == 0 {
		return 0, numericErrorf("EuclideanQuotientInt", ErrZeroModulus)
	}
	q := a / b
	// Go truncates toward zero; step down when the signs differ and there is a remainder.
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q, nil
}

// EuclideanRemainderInt returns a − floor(a/b)·b for integers (sign of b).
// Returns ErrZeroModulus when b == 0.
func EuclideanRemainderInt(a, b int) (int, error) {
	q, err := EuclideanQuotientInt(a, b)
	if err != nil {
		return 0, numericErrorf(opEuclideanRemainderInt, ErrZeroModulus)
	}

	return a - q*b, nil
}

// CongruenceInt is the integer counterpart of Congruence.
// Returns ErrZeroModulus when b == 0.
func CongruenceInt(a, b int, isPos bool) (int, error) {
	r, err := EuclideanRemainderInt(a, b)
	if err != nil {
		return 0, numericErrorf(opCongruenceInt, ErrZeroModulus)
	}
	if isPos || r == 0 {
		return r, nil
	}

	return r - b, nil
}
