// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
)

// InverseLU returns m⁻¹ by solving L·U·x = eᵢ for every basis column.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square and non-nil.
//	Stage 2 (Decompose): packed Doolittle factors.
//	Stage 3 (Execute): per column, forward substitution on L (unit diagonal),
//	                   then backward substitution on U.
//	Stage 4 (Finalize): assemble columns row-major.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func InverseLU(m matrix.Matrix) (*matrix.Dense, error) {
	a, n, err := squareValues(opInverseLU, m)
	if err != nil {
		return nil, err
	}
	lu, err := decompose(a, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverseLU, err)
	}

	inv := make([]float64, n*n)
	y := make([]float64, n)
	var (
		col, i, k int
		sum       float64
	)
	for col = 0; col < n; col++ {
		// L·y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lu[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// U·x = y, x written straight into column col
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += lu[i*n+k] * inv[k*n+col]
			}
			inv[i*n+col] = (y[i] - sum) / lu[i*n+i]
		}
	}

	res, err := matrix.NewDenseFromValues(n, n, inv...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverseLU, err)
	}

	return res, nil
}
