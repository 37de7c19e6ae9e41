// SPDX-License-Identifier: MIT
// Package numeric - linear interpolation.

package numeric

// Lerp interpolates between a and b by t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return LerpUnclamped(a, b, Clamp(t, 0, 1))
}

// LerpUnclamped interpolates between a and b by t without clamping, so
// t outside [0, 1] extrapolates along the same line.
func LerpUnclamped(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpRand interpolates between a and b by a ratio drawn from rng in [0, 1).
// rng is never shared implicitly; pass the same seeded generator to get
// reproducible sequences (see NewRand).
func LerpRand(a, b float64, rng Rand) float64 {
	return LerpUnclamped(a, b, rng.Float64())
}
