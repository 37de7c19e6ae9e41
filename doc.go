// Package lvmath is an in-memory toolkit for linear algebra and computational
// geometry: scalar helpers, fixed and arbitrary-dimension vectors, dense
// matrices with exact cofactor-based inversion, lines, spheres, boxes and
// quaternions.
//
// 🚀 What is inside?
//
//	numeric/    — clamp, Euclidean division & congruence, lerp, integer powers, n-th roots, factorials
//	vector/     — Vector2, Vector3 (value types) and VectorN (heap-backed, size checked)
//	matrix/     — Dense row-major matrix: arithmetic, Laplace determinant, cofactor,
//	              adjugate, inverse, powers, transpose, structural predicates
//	geometry/   — Line2/Line3/LineN, Circle/Sphere/NSphere, Rectangle/RectParallelepiped/Orthotope
//	quaternion/ — Hamilton product, conjugate, inverse, axis-angle rotation
//
// ✨ Conventions
//
//   - Values are float64 everywhere; no generic numeric parameterisation.
//   - Precondition violations return sentinel errors (errors.Is friendly);
//     public surfaces never panic on user input.
//   - Every error wraps exactly one family: numeric.ErrInvalidArgument or
//     numeric.ErrDivideByZero.
//   - Equality and containment are exact by default; *Within / ApproxEqual
//     companions take an explicit epsilon.
//   - Nothing is logged unless SetLogger is called.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromValues(2, 2, 4, 7, 2, 6)
//	inv, _ := a.Inverted()   // [[0.6, -0.7], [-0.2, 0.4]]
//
//	go get github.com/katalvlaran/lvmath
package lvmath
