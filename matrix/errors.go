// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// NOTE ON NAMING & FAMILIES
// -------------------------
// Every message is prefixed with "matrix: ..." for grep-ability. Each sentinel
// wraps exactly one lvmath family, so
//
//	errors.Is(err, numeric.ErrInvalidArgument) // shape/index/config problems
//	errors.Is(err, numeric.ErrDivideByZero)    // singular input
//
// classifies any matrix failure without naming the concrete sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> square requirement -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0: %w", numeric.ErrInvalidArgument)

	// ErrBadShape is returned when the number of supplied values does not
	// match rows*cols, or when row slices are ragged.
	ErrBadShape = fmt.Errorf("matrix: value count does not match shape: %w", numeric.ErrInvalidArgument)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", numeric.ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", numeric.ErrInvalidArgument)

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (determinant, cofactor, inverse, power, transpose).
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", numeric.ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy
	// (see WithValidateNaNInf).
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", numeric.ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("matrix: nil matrix: %w", numeric.ErrInvalidArgument)

	// ErrBadConfig indicates an options document that cannot be turned into Options.
	ErrBadConfig = fmt.Errorf("matrix: invalid options: %w", numeric.ErrInvalidArgument)

	// ErrSingular is returned when the determinant (or an LU pivot) is zero and
	// an inverse was requested.
	ErrSingular = fmt.Errorf("matrix: singular matrix: %w", numeric.ErrDivideByZero)
)
