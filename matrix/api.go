// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points; each delegates to a canonical kernel.
//   - Facades never change loop orders or the numeric policy of the kernels.
//
// AI-Hints:
//   - Use Identity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n ≤ 0.
func Identity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	var i int
	for i = 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewIdentity is an alias of Identity.
func NewIdentity(n int) (*Dense, error) { return Identity(n) }

// NewZeros returns a zero-initialized rows×cols matrix.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// CloneMatrix returns m.Clone(); nil stays nil.
func CloneMatrix(m Matrix) Matrix {
	if isNil(m) {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero matrix shaped like m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity of the same order as the square matrix m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.Rows())
}

// ---------- Aliases (1:1 with kernels) ----------

// Sum is an alias for Add.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transposed.
func T(m Matrix) (*Dense, error) { return Transposed(m) }

// ScaleBy is an alias for Scale.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// InverseOf is an alias for Inverted.
func InverseOf(m Matrix, opts ...Option) (*Dense, error) { return Inverted(m, opts...) }
