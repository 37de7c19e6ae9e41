// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

var (
	// ErrNotSymmetric is returned by EigenSym when m[i,j] and m[j,i] differ by
	// more than the tolerance.
	ErrNotSymmetric = fmt.Errorf("ops: matrix is not symmetric: %w", numeric.ErrInvalidArgument)

	// ErrNoConvergence is returned when EigenSym exhausts its rotation budget
	// before every off-diagonal entry drops to the tolerance.
	ErrNoConvergence = fmt.Errorf("ops: eigen decomposition did not converge: %w", numeric.ErrInvalidArgument)

	// ErrBadParameter flags a negative or NaN tolerance or a non-positive
	// iteration cap.
	ErrBadParameter = fmt.Errorf("ops: invalid parameter: %w", numeric.ErrInvalidArgument)
)
