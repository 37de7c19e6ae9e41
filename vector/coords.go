// SPDX-License-Identifier: MIT
// Package vector - spherical and cylindrical coordinates.
//
// Triples are packed into a Vector3:
//
//	spheric   (ρ, φ, θ) — radius, azimuth, elevation
//	cylindric (r, φ, z) — radial distance, azimuth, height
//
// θ is the elevation above the xy plane, so SphericToCartesian is the exact
// inverse of CartesianToSpheric (up to rounding) and both cylindric
// conversions agree with them.

package vector

import "math"

// CartesianToSpheric returns (ρ, φ, θ) with ρ = |v|, φ = atan2(y, x),
// θ = atan2(z, |(x, y)|).
func CartesianToSpheric(v Vector3) Vector3 {
	return Vector3{v.Length(), v.Azimuth(), v.Elevation()}
}

// SphericToCartesian converts (ρ, φ, θ) to (ρ·cosφ·cosθ, ρ·sinφ·cosθ, ρ·sinθ).
func SphericToCartesian(s Vector3) Vector3 {
	sinPhi, cosPhi := math.Sincos(s.Y)
	sinTh, cosTh := math.Sincos(s.Z)

	return Vector3{s.X * cosPhi * cosTh, s.X * sinPhi * cosTh, s.X * sinTh}
}

// CartesianToCylindric returns (|(x, y)|, atan2(y, x), z).
func CartesianToCylindric(v Vector3) Vector3 {
	return Vector3{math.Hypot(v.X, v.Y), v.Azimuth(), v.Z}
}

// CylindricToCartesian converts (r, φ, z) to (r·cosφ, r·sinφ, z).
func CylindricToCartesian(c Vector3) Vector3 {
	sin, cos := math.Sincos(c.Y)

	return Vector3{c.X * cos, c.X * sin, c.Z}
}

// SphericToCylindric converts (ρ, φ, θ) to (ρ·cosθ, φ, ρ·sinθ).
func SphericToCylindric(s Vector3) Vector3 {
	sin, cos := math.Sincos(s.Z)

	return Vector3{s.X * cos, s.Y, s.X * sin}
}

// CylindricToSpheric converts (r, φ, z) to (|(r, z)|, φ, atan2(z, r)).
func CylindricToSpheric(c Vector3) Vector3 {
	return Vector3{math.Hypot(c.X, c.Z), c.Y, math.Atan2(c.Z, c.X)}
}
