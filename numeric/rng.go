// SPDX-License-Identifier: MIT
// Package numeric - random sources for LerpRand and friends.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences across platforms.
//   - Encapsulation: a single factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Give each goroutine its own generator
//     (DeriveRand) instead of sharing one.

package numeric

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed == 0.
const DefaultSeed int64 = 1

// Rand is the minimal generator surface consumed by the Lerp helpers.
// *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
}

var _ Rand = (*rand.Rand)(nil)

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveRand returns an independent generator for stream id derived from a
// base seed, for callers that fan work out across goroutines.
// The seed is mixed with a SplitMix64 finalizer to decorrelate nearby ids.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	z := uint64(seed) + (stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31

	return NewRand(int64(z))
}
