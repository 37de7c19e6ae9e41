// SPDX-License-Identifier: MIT

package quaternion

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmath"
	"github.com/katalvlaran/lvmath/numeric"
)

var (
	// ErrZeroNorm indicates an operation that divides by the norm of the zero
	// quaternion.
	ErrZeroNorm = fmt.Errorf("quaternion: zero norm: %w", numeric.ErrDivideByZero)

	// ErrZeroAxis indicates a rotation about the zero vector.
	ErrZeroAxis = fmt.Errorf("quaternion: rotation axis is the zero vector: %w", numeric.ErrInvalidArgument)
)

const (
	opInverse        = "Inverse"
	opDiv            = "Div"
	opNormalized     = "Normalized"
	opFromAxisAngle  = "FromAxisAngle"
	opRotate         = "Rotate"
	opRotateVector   = "RotateVector"
	opRotationMatrix = "RotationMatrix"
)

// quaternionErrorf wraps err with an operation tag ("Op: underlying").
func quaternionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// logZeroNorm reports a refused division by a zero norm.
func logZeroNorm(op string) {
	lvmath.Logger().Debug("quaternion: zero-norm division refused", zap.String("op", op))
}
