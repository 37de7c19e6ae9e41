// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

func ExampleInverted() {
	m, _ := matrix.NewDenseFromValues(2, 2,
		1, 2,
		3, 4,
	)
	inv, _ := matrix.Inverted(m)
	fmt.Print(inv)
	// Output:
	// [-2, 1]
	// [1.5, -0.5]
}

func ExampleDeterminant() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})
	det, _ := matrix.Determinant(m)
	fmt.Println(det)
	// Output: 9
}

func ExampleInvert_singular() {
	m, _ := matrix.NewDense(2, 2) // all zeros
	err := matrix.Invert(m)
	fmt.Println(errors.Is(err, matrix.ErrSingular), errors.Is(err, numeric.ErrDivideByZero))
	// Output: true true
}

// Power iteration: repeated MulVec with renormalisation converges to the
// dominant eigenpair of a symmetric matrix.
func ExampleMulVec() {
	a, _ := matrix.NewDenseFromValues(2, 2,
		2, 1,
		1, 2,
	)
	v, _ := vector.NewVectorN(1, 0)

	var lambda float64
	for iter := 0; iter < 40; iter++ {
		w, _ := matrix.MulVec(a, v)
		lambda = w.Length()
		_ = w.Normalize(1)
		v = w
	}
	vals := v.Values()
	fmt.Printf("λ ≈ %.5f\n", lambda)
	fmt.Printf("(%.4f, %.4f)\n", vals[0], vals[1])
	// Output:
	// λ ≈ 3.00000
	// (0.7071, 0.7071)
}
