// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash returns an xxhash digest of the shape and the row-major entries.
// Matrices that are Equal (exact) hash alike: −0 is folded onto +0. The
// numeric policy does not take part.
func (m *Dense) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.r))
	_, _ = d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.c))
	_, _ = d.Write(buf[:])
	for _, v := range m.data {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
