// SPDX-License-Identifier: MIT
// Package numeric - explicit-epsilon comparisons.
//
// lvmath compares floats exactly by default (Equal, Contains, Has). The
// helpers here back the *Within / ApproxEqual companions that take an
// explicit tolerance instead.

package numeric

import "math"

// DefaultEpsilon is a convenience tolerance for callers of the *Within helpers.
const DefaultEpsilon = 1e-9

// NearlyEqual reports |a − b| ≤ eps. A negative eps is used by magnitude.
// NaN never compares equal; equal infinities do.
func NearlyEqual(a, b, eps float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= math.Abs(eps)
}

// IsZero reports |v| ≤ eps.
func IsZero(v, eps float64) bool {
	return NearlyEqual(v, 0, eps)
}
