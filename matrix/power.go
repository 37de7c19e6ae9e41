// SPDX-License-Identifier: MIT

package matrix

// Pow returns mⁿ by repeated multiplication starting from the identity.
// For n < 0 the base is m⁻¹ and the product has |n| factors; Pow(m, 0) is I
// even when m is singular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when n < 0 and det(m) == 0.
//
// Complexity: O(|n| · k³) for a k×k matrix, plus one inverse when n < 0.
func Pow(m Matrix, n int, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	var base Matrix = m
	if n < 0 {
		inv, err := Inverted(m, opts...)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		base = inv
		n = -n
	}

	res, err := Identity(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if d, ok := m.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
	}
	var k int
	for k = 0; k < n; k++ {
		if res, err = Mul(res, base); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return res, nil
}
