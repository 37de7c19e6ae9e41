// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/lvmath/matrix"
)

// RotationMatrix returns the 3×3 rotation matrix of q/|q|, so that
// RotationMatrix()·v equals RotateVector(v).
// Returns ErrZeroNorm for the zero quaternion.
//
// Complexity: O(1).
func (q Quaternion) RotationMatrix() (*matrix.Dense, error) {
	u, err := q.Normalized()
	if err != nil {
		return nil, quaternionErrorf(opRotationMatrix, ErrZeroNorm)
	}
	a, b, c, d := u.A, u.B, u.C, u.D

	return matrix.NewDenseFromValues(3, 3,
		1-2*(c*c+d*d), 2*(b*c-a*d), 2*(b*d+a*c),
		2*(b*c+a*d), 1-2*(b*b+d*d), 2*(c*d-a*b),
		2*(b*d-a*c), 2*(c*d+a*b), 1-2*(b*b+c*c),
	)
}

