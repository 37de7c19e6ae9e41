// SPDX-License-Identifier: MIT
// Package vector: sentinel errors.
//
// Every sentinel wraps one lvmath family (numeric.ErrInvalidArgument or
// numeric.ErrDivideByZero). Methods add call-site context via vectorErrorf;
// callers match with errors.Is.

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

var (
	// ErrDimensionMismatch indicates two VectorN operands of different Size.
	ErrDimensionMismatch = fmt.Errorf("vector: dimension mismatch: %w", numeric.ErrInvalidArgument)

	// ErrOutOfRange indicates an index outside [0, Size).
	ErrOutOfRange = fmt.Errorf("vector: index out of range: %w", numeric.ErrInvalidArgument)

	// ErrEmptyVector indicates a VectorN constructed with no components.
	ErrEmptyVector = fmt.Errorf("vector: size must be > 0: %w", numeric.ErrInvalidArgument)

	// ErrZeroLength indicates Normalize/Normalized asked for a target length of 0.
	ErrZeroLength = fmt.Errorf("vector: normalization target length is zero: %w", numeric.ErrDivideByZero)

	// ErrNotImplemented marks the N-dimensional cross product, which has no
	// general definition.
	ErrNotImplemented = fmt.Errorf("vector: operation not implemented: %w", numeric.ErrInvalidArgument)

	// ErrUnknownAngleType indicates an AngleType outside {Azimuthal, Polar}.
	ErrUnknownAngleType = fmt.Errorf("vector: unknown angle type: %w", numeric.ErrInvalidArgument)

	// ErrUnknownAxis indicates an Axis outside {AxisX, AxisY, AxisZ}.
	ErrUnknownAxis = fmt.Errorf("vector: unknown axis: %w", numeric.ErrInvalidArgument)
)

// Operation tags used in error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDiv         = "Div"
	opDot         = "Dot"
	opCross       = "Cross"
	opDistance    = "Distance"
	opLerp        = "Lerp"
	opModv        = "Modv"
	opNormalize   = "Normalize"
	opAt          = "At"
	opSet         = "Set"
	opNew         = "NewVectorN"
	opClampValues = "ClampValues"
	opAngle       = "Angle"
	opRotate      = "Rotate"
)

// vectorErrorf wraps err with an operation tag ("Op: underlying").
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
