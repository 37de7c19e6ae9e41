// SPDX-License-Identifier: MIT
// Package numeric - integer powers, roots and factorials.
//
// Complexity:
//   - PosPow / NegPow / Pow: O(|n|) multiplications or divisions. They are kept
//     as repeated products (not math.Pow) so integer powers of exactly
//     representable values stay exact.
//   - Factorial / DoubleFactorial: O(n).

package numeric

import "math"

const (
	opFactorial       = "Factorial"
	opDoubleFactorial = "DoubleFactorial"
)

// PosPow returns a raised to n by repeated multiplication.
// n ≤ 0 yields the empty product 1.
func PosPow(a float64, n int) float64 {
	pow := 1.0
	for i := 0; i < n; i++ {
		pow *= a
	}

	return pow
}

// NegPow returns a raised to −n by repeated division, i.e. 1/aⁿ.
// n ≤ 0 yields 1. a == 0 with n > 0 gives +Inf (IEEE-754).
func NegPow(a float64, n int) float64 {
	pow := 1.0
	for i := 0; i < n; i++ {
		pow /= a
	}

	return pow
}

// Pow returns aⁿ for any integer n, dispatching to PosPow or NegPow.
func Pow(a float64, n int) float64 {
	if n < 0 {
		return NegPow(a, -n)
	}

	return PosPow(a, n)
}

// NRoot returns the n-th root of v computed as exp(log(v)/n).
// v < 0 gives NaN; v == 0 gives 0 for n > 0. No error is reported.
func NRoot(v, n float64) float64 {
	return math.Exp(math.Log(v) / n)
}

// Factorial returns n! as a float64 (exact up to 22!, rounded beyond).
// Returns ErrNegativeFactorial for n < 0.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, numericErrorf(opFactorial, ErrNegativeFactorial)
	}
	fact := 1.0
	for i := 2; i <= n; i++ {
		fact *= float64(i)
	}

	return fact, nil
}

// DoubleFactorial returns n!! = n·(n−2)·(n−4)… down to 1 or 2.
// By convention 0!! = 1 and (−1)!! = 1; n < −1 returns ErrNegativeFactorial.
func DoubleFactorial(n int) (float64, error) {
	if n < -1 {
		return 0, numericErrorf(opDoubleFactorial, ErrNegativeFactorial)
	}
	fact := 1.0
	for i := n; i > 1; i -= 2 {
		fact *= float64(i)
	}

	return fact, nil
}
