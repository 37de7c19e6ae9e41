// Package matrix is the dense linear-algebra engine of lvmath.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only policy (WithValidateNaNInf).
//   - Kernels on the Matrix interface: Add, Sub, Mul, Scale, DivScalar, Div,
//     MulVec, Transpose/Transposed, Determinant, Minor, Cofactor, Adjugate,
//     Inverted/Invert and Pow. *Dense operands take flat-slice fast paths.
//   - Predicates: IsSquare, IsSymmetric, IsSkewSymmetric, IsInvertible, Equal.
//   - Functional options, optionally decoded from YAML with LoadOptions.
//   - Hashing (xxhash) and golang.org/x/image/math/f64 Mat3/Mat4 interop.
//
// The determinant is a recursive Laplace expansion, exponential in n; the
// inverse is adj(A)/det(A). Both are exact-reference algorithms for the small
// matrices of geometry code. matrix/ops adds O(n³) LU and QR counterparts,
// least squares and a symmetric eigensolver.
//
// Errors wrap lvmath's two families: shape and index problems match
// numeric.ErrInvalidArgument, a singular inverse matches numeric.ErrDivideByZero.
package matrix
