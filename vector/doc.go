// SPDX-License-Identifier: MIT

// Package vector provides the vector algebra of lvmath.
//
// Two shapes of vector live here:
//
//	Vector2, Vector3 — fixed-size value types with exported fields. Dimension
//	                   mismatches are impossible by construction.
//	VectorN          — heap-backed, runtime-sized (Size() > 0). Every binary
//	                   operation checks sizes and returns ErrDimensionMismatch.
//
// Method conventions:
//   - Pure methods use value receivers and return a new vector.
//   - In-place methods (Normalize, Rotate, CeilValues, ClampLength, …) use
//     pointer receivers; their pure counterparts (Normalized, Rotated) are
//     copy-then-mutate wrappers, so both share one implementation.
//   - Equal and IsNormalized compare floats exactly; ApproxEqual takes an eps.
//   - Cross on VectorN is not defined and returns ErrNotImplemented.
//
// Interop: Vec2/Vec3 convert to golang.org/x/image/math/f64, Hash returns an
// xxhash digest of the IEEE-754 bits (−0 and +0 hash alike).
package vector
