// SPDX-License-Identifier: MIT
// Package matrix - elementwise and product kernels on any Matrix.
//
// Purpose:
//   - Add, Sub, Mul, Scale, DivScalar, Div, MulVec and AllClose.
//   - Every kernel validates through validators.go, allocates one fresh *Dense
//     and never mutates its operands.
//
// Notes:
//   - *Dense operands take a flat-slice fast path; anything else goes through
//     At/Set in fixed i→j order. Both paths produce identical results.
//   - No zero-skipping: IEEE-754 propagation (0·NaN = NaN, 0·Inf = NaN) is kept.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/vector"
)

// ZeroSum is the initial accumulator of dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDiv         = "Div"
	opScale       = "Scale"
	opDivScalar   = "DivScalar"
	opMulVec      = "MulVec"
	opAllClose    = "AllClose"
	opTranspose   = "Transpose"
	opTransposed  = "Transposed"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverted    = "Inverted"
	opInvert      = "Invert"
	opPow         = "Pow"
	opIdentity    = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the cause via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a *Dense snapshot
// read through At. Callers must not mutate the result unless they own m.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	res := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*c+j] = v
		}
	}

	return res, nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result.
//   - Stage 2: flat loop when both are *Dense, otherwise i→j via At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDenseLike(rows, cols, a)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns the elementwise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the elementwise difference a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep both operands *Dense for the cache-friendly path.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseLike(aRows, bCols, a)

	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// mapScalar builds a fresh matrix with out[i,j] = f(m[i,j]).
func mapScalar(m Matrix, opTag string, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDenseLike(d.r, d.c, m)
	for idx, v := range d.data {
		res.data[idx] = f(v)
	}

	return res, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return mapScalar(m, opScale, func(v float64) float64 { return v * alpha })
}

// DivScalar returns m / s elementwise. Division by zero follows IEEE-754
// (±Inf or NaN entries), it is not an error.
func DivScalar(m Matrix, s float64) (*Dense, error) {
	return mapScalar(m, opDivScalar, func(v float64) float64 { return v / s })
}

// Div returns a · b⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (b), ErrDimensionMismatch (a.Cols != b.Rows),
//     ErrSingular when det(b) == 0.
func Div(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	inv, err := Inverted(b, opts...)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	res, err := Mul(a, inv)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return res, nil
}

// MulVec returns m·v as a new vector of length m.Rows().
//
// Errors:
//   - ErrNilMatrix (nil m or v), ErrDimensionMismatch (v.Size() != m.Cols()).
//
// Complexity: O(r*c).
func MulVec(m Matrix, v *vector.VectorN) (*vector.VectorN, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	x := v.Values()
	out := make([]float64, d.r)
	var i, j, base int
	var sum float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		sum = ZeroSum
		for j = 0; j < d.c; j++ {
			sum += d.data[base+j] * x[j]
		}
		out[i] = sum
	}

	return vector.NewVectorN(out...)
}

// AllClose checks elementwise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are normalized to their absolute value; NaN or ±Inf
// tolerances yield ErrNaNInf. A NaN entry on either side never compares close.
// Time: O(r*c). Space: O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx, av := range da.data {
		bv := db.data[idx]
		if av == bv {
			continue // covers equal infinities
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}
