// Package geometry provides lines, spheres and axis-aligned boxes in 2, 3 and
// N dimensions, built on the vector package.
//
// Shapes:
//
//	Line2, Line3, LineN                 — infinite lines
//	Circle, Sphere, NSphere             — round shapes (radius ≥ 0)
//	Rectangle, RectParallelepiped,
//	Orthotope                           — axis-aligned boxes (extents ≥ 0)
//
// Intersections:
//   - Every intersection query returns an Intersection[P]: its Kind is one of
//     KindNone, KindOne, KindTwo or KindInfinite and Points holds the finite
//     solutions (empty for None and Infinite).
//   - Parallel and coincident cases are reported through Kind and logged at
//     debug level on the shared lvmath logger; they are not errors.
//
// Exactness:
//   - Contains, Has, IsIn and Equal compare floats exactly, so a point
//     computed through trigonometry may fail Contains by one ulp. Use the
//     *Within companions with an explicit tolerance for computed input.
//
// Errors:
//   - Negative radii or extents: ErrNegativeRadius / ErrNegativeExtent.
//   - Zero line directions: ErrZeroDirection.
//   - Mixed dimensions on the N-dimensional shapes: ErrDimensionMismatch.
//
// All sentinels wrap numeric.ErrInvalidArgument.
package geometry
