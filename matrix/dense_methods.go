// SPDX-License-Identifier: MIT
// Package matrix - method sugar on *Dense.
//
// Every method forwards to the package-level kernel of the same name, so
// a.Mul(b) and Mul(a, b) share one implementation and one error surface.
// Mutating methods (Transpose, Invert) change the receiver; the "-ed"
// counterparts return a new matrix.

package matrix

import "github.com/katalvlaran/lvmath/vector"

// Add returns m + b.
func (m *Dense) Add(b Matrix) (*Dense, error) { return Add(m, b) }

// Sub returns m − b.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return Sub(m, b) }

// Mul returns m × b.
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }

// Div returns m × b⁻¹.
func (m *Dense) Div(b Matrix, opts ...Option) (*Dense, error) { return Div(m, b, opts...) }

// Scale returns alpha·m.
func (m *Dense) Scale(alpha float64) (*Dense, error) { return Scale(m, alpha) }

// DivScalar returns m / s.
func (m *Dense) DivScalar(s float64) (*Dense, error) { return DivScalar(m, s) }

// MulVec returns m·v.
func (m *Dense) MulVec(v *vector.VectorN) (*vector.VectorN, error) { return MulVec(m, v) }

// Determinant returns det(m).
func (m *Dense) Determinant() (float64, error) { return Determinant(m) }

// Minor returns m without row r and column c.
func (m *Dense) Minor(r, c int) (*Dense, error) { return Minor(m, r, c) }

// Cofactor returns the cofactor matrix.
func (m *Dense) Cofactor(opts ...Option) (*Dense, error) { return Cofactor(m, opts...) }

// Adjugate returns the transposed cofactor matrix.
func (m *Dense) Adjugate(opts ...Option) (*Dense, error) { return Adjugate(m, opts...) }

// Inverted returns m⁻¹.
func (m *Dense) Inverted(opts ...Option) (*Dense, error) { return Inverted(m, opts...) }

// Invert replaces m with m⁻¹.
func (m *Dense) Invert(opts ...Option) error { return Invert(m, opts...) }

// Pow returns mⁿ.
func (m *Dense) Pow(n int, opts ...Option) (*Dense, error) { return Pow(m, n, opts...) }

// Transpose transposes m in place (square only).
func (m *Dense) Transpose() error { return Transpose(m) }

// Transposed returns mᵀ (square only).
func (m *Dense) Transposed() (*Dense, error) { return Transposed(m) }

// IsSquare reports Rows == Cols.
func (m *Dense) IsSquare() bool { return IsSquare(m) }

// IsSymmetric reports m == mᵀ.
func (m *Dense) IsSymmetric(opts ...Option) bool { return IsSymmetric(m, opts...) }

// IsSkewSymmetric reports m == −mᵀ.
func (m *Dense) IsSkewSymmetric(opts ...Option) bool { return IsSkewSymmetric(m, opts...) }

// IsInvertible reports a square m with det(m) != 0.
func (m *Dense) IsInvertible() bool { return IsInvertible(m) }

// Equal reports elementwise equality with b.
func (m *Dense) Equal(b Matrix, opts ...Option) bool { return Equal(m, b, opts...) }

// ApproxEqual reports elementwise equality with b within |eps|.
func (m *Dense) ApproxEqual(b Matrix, eps float64) bool { return ApproxEqual(m, b, eps) }
