// SPDX-License-Identifier: MIT
// Package vector - conversions to golang.org/x/image/math/f64.

package vector

import "golang.org/x/image/math/f64"

// Vec2 returns v as an f64.Vec2.
func (v Vector2) Vec2() f64.Vec2 { return f64.Vec2{v.X, v.Y} }

// FromVec2 builds a Vector2 from an f64.Vec2.
func FromVec2(a f64.Vec2) Vector2 { return Vector2{a[0], a[1]} }

// Vec3 returns v as an f64.Vec3.
func (v Vector3) Vec3() f64.Vec3 { return f64.Vec3{v.X, v.Y, v.Z} }

// FromVec3 builds a Vector3 from an f64.Vec3.
func FromVec3(a f64.Vec3) Vector3 { return Vector3{a[0], a[1], a[2]} }
