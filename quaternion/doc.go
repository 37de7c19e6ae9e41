// Package quaternion provides the quaternion algebra of lvmath: the Hamilton
// product, conjugate and inverse, and axis-angle rotation.
//
// A Quaternion a + b·i + c·j + d·k is a plain value type with exported
// fields; Vector() views (b, c, d) as a vector.Vector3.
//
// Rotation:
//
//	r  = (cos(θ/2), sin(θ/2)·axis)   axis normalised first
//	q' = r · q · r⁻¹
//
// Errors:
//   - ErrZeroNorm (numeric.ErrDivideByZero) from Inverse, Div, Normalized and
//     RotateVector on the zero quaternion.
//   - ErrZeroAxis (numeric.ErrInvalidArgument) for a zero rotation axis.
//
// RotationMatrix converts a rotation to a 3×3 *matrix.Dense.
package quaternion
