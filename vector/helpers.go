// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"strconv"
	"strings"
)

// sign returns −1, 0 or +1 with the sign of v; NaN stays NaN.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	case v == 0:
		return 0
	default:
		return math.NaN()
	}
}

// lengthFactor returns the factor that rescales a vector of length l to
// length target(l). Zero-length vectors are left alone (factor 1).
func lengthFactor(sq float64, target func(l float64) float64) float64 {
	if sq == 0 {
		return 1
	}
	l := math.Sqrt(sq)

	return target(l) / l
}

// formatFloat renders v in the shortest form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatTuple renders "(v0, v1, ..., vn)".
func formatTuple(vals ...float64) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(v))
	}
	b.WriteByte(')')

	return b.String()
}
