// SPDX-License-Identifier: MIT
// Package vector - content hashing.
//
// Hash digests the IEEE-754 bit patterns with xxhash. Values that compare
// Equal hash alike (−0 is folded onto +0); NaN components hash by bit
// pattern, matching the fact that NaN never compares Equal.

package vector

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// hashFloats digests vals in order.
func hashFloats(vals ...float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range vals {
		if v == 0 {
			v = 0 // fold −0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:]) // Digest.Write never fails
	}

	return d.Sum64()
}

// Hash returns a content hash of v.
func (v Vector2) Hash() uint64 { return hashFloats(v.X, v.Y) }

// Hash returns a content hash of v.
func (v Vector3) Hash() uint64 { return hashFloats(v.X, v.Y, v.Z) }

// Hash returns a content hash of v; the size takes part through the number
// of digested components.
func (v *VectorN) Hash() uint64 { return hashFloats(v.values...) }
