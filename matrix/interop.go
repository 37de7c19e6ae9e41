// SPDX-License-Identifier: MIT
// Package matrix - conversions to golang.org/x/image/math/f64.
//
// f64.Mat3 and f64.Mat4 are row-major like Dense, so conversion is a plain copy.

package matrix

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

const (
	opMat3 = "Mat3"
	opMat4 = "Mat4"
)

// Mat3 returns m as an f64.Mat3. Errors: ErrDimensionMismatch unless m is 3×3.
func (m *Dense) Mat3() (f64.Mat3, error) {
	var out f64.Mat3
	if m.r != 3 || m.c != 3 {
		return out, matrixErrorf(opMat3, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}
	copy(out[:], m.data)

	return out, nil
}

// Mat4 returns m as an f64.Mat4. Errors: ErrDimensionMismatch unless m is 4×4.
func (m *Dense) Mat4() (f64.Mat4, error) {
	var out f64.Mat4
	if m.r != 4 || m.c != 4 {
		return out, matrixErrorf(opMat4, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}
	copy(out[:], m.data)

	return out, nil
}

// NewDenseFromMat3 builds a 3×3 Dense from a.
func NewDenseFromMat3(a f64.Mat3) *Dense {
	data := make([]float64, len(a))
	copy(data, a[:])

	return &Dense{r: 3, c: 3, data: data}
}

// NewDenseFromMat4 builds a 4×4 Dense from a.
func NewDenseFromMat4(a f64.Mat4) *Dense {
	data := make([]float64, len(a))
	copy(data, a[:])

	return &Dense{r: 4, c: 4, data: data}
}
