// SPDX-License-Identifier: MIT
// Package numeric: error families shared by all lvmath packages.
//
// Every sentinel defined anywhere in the module wraps exactly one of the two
// families below, so callers can classify any failure with a single
// errors.Is check without knowing which package produced it:
//
//	errors.Is(err, numeric.ErrInvalidArgument) // precondition violated
//	errors.Is(err, numeric.ErrDivideByZero)    // singular / undefined result

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the family of precondition violations: negative
	// extents, out-of-range indices, mismatched dimensions, non-square input.
	ErrInvalidArgument = errors.New("lvmath: invalid argument")

	// ErrDivideByZero is the family of singular or undefined results: inverting
	// a zero-determinant matrix, normalizing to a zero target length.
	ErrDivideByZero = errors.New("lvmath: division by zero")
)

var (
	// ErrNegativeFactorial is returned by Factorial and DoubleFactorial for n < 0.
	ErrNegativeFactorial = fmt.Errorf("numeric: factorial of a negative number: %w", ErrInvalidArgument)

	// ErrZeroModulus is returned by the integer Euclidean helpers when b == 0.
	ErrZeroModulus = fmt.Errorf("numeric: zero modulus: %w", ErrDivideByZero)
)

// numericErrorf wraps err with an operation tag ("Op: underlying").
func numericErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
