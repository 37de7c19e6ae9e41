// SPDX-License-Identifier: MIT

// Package numeric is the scalar layer every other lvmath package builds on.
//
// What lives here:
//   - Clamp, floor-division quotient/remainder and Congruence (the canonical
//     "mod" used for wrap-around vector components);
//   - Lerp / LerpUnclamped / LerpRand with an injected generator;
//   - integer powers by repeated multiplication (PosPow, NegPow, Pow),
//     NRoot, Factorial and DoubleFactorial;
//   - the two error families shared by the whole module
//     (ErrInvalidArgument, ErrDivideByZero);
//   - NearlyEqual / IsZero for explicit-epsilon comparisons.
//
// Determinism:
//   - No package-level random generator. Callers pass a Rand; NewRand builds a
//     seeded *rand.Rand with the seed==0 ⇒ default-seed policy.
//
// Domain notes:
//   - NRoot(v, n) is exp(log(v)/n): NaN for v < 0 and 0 for v == 0 (n > 0).
//     This is a documented restriction, not an error.
//   - Float quotients by zero follow IEEE-754 (±Inf / NaN); the int variants
//     return ErrDivideByZero instead.
package numeric
