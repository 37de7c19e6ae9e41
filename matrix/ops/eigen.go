// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvmath/matrix"
)

const opEigenSym = "EigenSym"

// offPivot returns the position and magnitude of the largest off-diagonal
// entry of the symmetric n×n block a, scanning the strict upper triangle.
func offPivot(a []float64, n int) (p, q int, largest float64) {
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v = math.Abs(a[i*n+j]); v > largest {
				largest, p, q = v, i, j
			}
		}
	}

	return p, q, largest
}

// rotate applies the Jacobi rotation that zeroes a[p,q] to a (both
// triangles) and accumulates it into the eigenvector block v.
func rotate(a, v []float64, n, p, q int) {
	app, aqq, apq := a[p*n+p], a[q*n+q], a[p*n+q]
	theta := (aqq - app) / (2 * apq)
	t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	if math.IsInf(theta*theta, 1) {
		t = 1 / (2 * math.Abs(theta))
	}
	if theta < 0 {
		t = -t
	}
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	var r int
	var x, y float64
	for r = 0; r < n; r++ {
		if r == p || r == q {
			continue
		}
		x, y = a[r*n+p], a[r*n+q]
		a[r*n+p] = c*x - s*y
		a[p*n+r] = a[r*n+p]
		a[r*n+q] = s*x + c*y
		a[q*n+r] = a[r*n+q]
	}
	a[p*n+p] = app - t*apq
	a[q*n+q] = aqq + t*apq
	a[p*n+q], a[q*n+p] = 0, 0

	for r = 0; r < n; r++ {
		x, y = v[r*n+p], v[r*n+q]
		v[r*n+p] = c*x - s*y
		v[r*n+q] = s*x + c*y
	}
}

// EigenSym diagonalizes a real symmetric matrix with Jacobi rotations.
// MAIN DESCRIPTION:
//   - Returns the eigenvalues in ascending order and a matrix whose column i
//     is the unit eigenvector of values[i]; the columns are orthonormal.
//   - tol bounds both the symmetry check |m[i,j] − m[j,i]| and the final
//     off-diagonal magnitude; maxIter caps the number of rotations.
//
// Implementation:
//   - Stage 1: validate parameters, squareness and symmetry.
//   - Stage 2: repeatedly rotate away the largest off-diagonal entry.
//   - Stage 3: sort the diagonal and permute the eigenvector columns.
//
// Errors:
//   - ErrBadParameter for tol < 0, NaN tol or maxIter < 1.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNotSymmetric.
//   - ErrNoConvergence when maxIter rotations are not enough.
//
// Complexity: O(n) per rotation plus O(n²) per pivot search; a full solve
// typically needs a few n² rotations.
func EigenSym(m matrix.Matrix, tol float64, maxIter int) ([]float64, *matrix.Dense, error) {
	if math.IsNaN(tol) || tol < 0 || maxIter < 1 {
		return nil, nil, fmt.Errorf("%s: tol=%v maxIter=%d: %w", opEigenSym, tol, maxIter, ErrBadParameter)
	}
	a, n, err := squareValues(opEigenSym, m)
	if err != nil {
		return nil, nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]-a[j*n+i]) > tol {
				return nil, nil, fmt.Errorf("%s: [%d,%d]: %w", opEigenSym, i, j, ErrNotSymmetric)
			}
		}
	}

	v := make([]float64, n*n)
	for i = 0; i < n; i++ {
		v[i*n+i] = 1
	}
	for iter := 0; ; iter++ {
		p, q, largest := offPivot(a, n)
		if largest <= tol {
			break
		}
		if iter == maxIter {
			return nil, nil, fmt.Errorf("%s: %d rotations: %w", opEigenSym, maxIter, ErrNoConvergence)
		}
		rotate(a, v, n, p, q)
	}

	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return a[order[x]*n+order[x]] < a[order[y]*n+order[y]] })

	vals := make([]float64, n)
	vecs := make([]float64, n*n)
	for j = 0; j < n; j++ {
		vals[j] = a[order[j]*n+order[j]]
		for i = 0; i < n; i++ {
			vecs[i*n+j] = v[i*n+order[j]]
		}
	}
	res, err := matrix.NewDenseFromValues(n, n, vecs...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigenSym, err)
	}

	return vals, res, nil
}
