// SPDX-License-Identifier: MIT
// Package geometry - axis-aligned boxes: Rectangle, RectParallelepiped.
//
// A box spans [origin, origin + extent] on every axis; all extents are ≥ 0
// (ErrNegativeExtent). IsIn (alias Contains) is the closed-box test, Has is
// the boundary test. Both compare exactly.

package geometry

import (
	"github.com/katalvlaran/lvmath/vector"
)

// Rectangle spans [X, X+Width] × [Y, Y+Height] from its origin corner.
type Rectangle struct {
	origin        vector.Vector2
	width, height float64
}

// NewRectangle returns the rectangle with the given lower corner and extents.
// Returns ErrNegativeExtent when width or height is negative.
func NewRectangle(origin vector.Vector2, width, height float64) (Rectangle, error) {
	if width < 0 || height < 0 {
		return Rectangle{}, geometryErrorf(opNewRectangle, ErrNegativeExtent)
	}

	return Rectangle{origin: origin, width: width, height: height}, nil
}

// Origin returns the lower corner.
func (r Rectangle) Origin() vector.Vector2 { return r.origin }

// SetOrigin moves the rectangle.
func (r *Rectangle) SetOrigin(origin vector.Vector2) { r.origin = origin }

// Width returns the extent along x.
func (r Rectangle) Width() float64 { return r.width }

// SetWidth sets the extent along x.
func (r *Rectangle) SetWidth(w float64) error {
	if w < 0 {
		return geometryErrorf(opSetExtent, ErrNegativeExtent)
	}
	r.width = w

	return nil
}

// Height returns the extent along y.
func (r Rectangle) Height() float64 { return r.height }

// SetHeight sets the extent along y.
func (r *Rectangle) SetHeight(h float64) error {
	if h < 0 {
		return geometryErrorf(opSetExtent, ErrNegativeExtent)
	}
	r.height = h

	return nil
}

// Area returns width·height.
func (r Rectangle) Area() float64 { return r.width * r.height }

// Perimeter returns 2·(width + height).
func (r Rectangle) Perimeter() float64 { return 2*r.width + 2*r.height }

// IsIn reports whether pt lies in the closed rectangle.
func (r Rectangle) IsIn(pt vector.Vector2) bool {
	return within(pt.X, r.origin.X, r.width) && within(pt.Y, r.origin.Y, r.height)
}

// Contains is IsIn.
func (r Rectangle) Contains(pt vector.Vector2) bool { return r.IsIn(pt) }

// Has reports whether pt lies on the boundary.
func (r Rectangle) Has(pt vector.Vector2) bool {
	return (within(pt.X, r.origin.X, r.width) && onEdge(pt.Y, r.origin.Y, r.height)) ||
		(within(pt.Y, r.origin.Y, r.height) && onEdge(pt.X, r.origin.X, r.width))
}

// Equal reports whether origin and extents match exactly.
func (r Rectangle) Equal(other Rectangle) bool {
	return r.origin.Equal(other.origin) && r.width == other.width && r.height == other.height
}

// String renders "Origin : (x, y) | Width : w | Height : h".
func (r Rectangle) String() string {
	return "Origin : " + r.origin.String() + " | Width : " + formatFloat(r.width) +
		" | Height : " + formatFloat(r.height)
}

// RectParallelepiped spans [X, X+Width] × [Y, Y+Height] × [Z, Z+Length].
type RectParallelepiped struct {
	origin                vector.Vector3
	width, height, length float64
}

// NewRectParallelepiped returns the box with the given lower corner and
// extents. Returns ErrNegativeExtent when any extent is negative.
func NewRectParallelepiped(origin vector.Vector3, width, height, length float64) (RectParallelepiped, error) {
	if width < 0 || height < 0 || length < 0 {
		return RectParallelepiped{}, geometryErrorf(opNewRectPar, ErrNegativeExtent)
	}

	return RectParallelepiped{origin: origin, width: width, height: height, length: length}, nil
}

// Origin returns the lower corner.
func (b RectParallelepiped) Origin() vector.Vector3 { return b.origin }

// SetOrigin moves the box.
func (b *RectParallelepiped) SetOrigin(origin vector.Vector3) { b.origin = origin }

// Width returns the extent along x.
func (b RectParallelepiped) Width() float64 { return b.width }

// Height returns the extent along y.
func (b RectParallelepiped) Height() float64 { return b.height }

// Length returns the extent along z.
func (b RectParallelepiped) Length() float64 { return b.length }

// SetWidth sets the extent along x.
func (b *RectParallelepiped) SetWidth(w float64) error { return setExtent(&b.width, w) }

// SetHeight sets the extent along y.
func (b *RectParallelepiped) SetHeight(h float64) error { return setExtent(&b.height, h) }

// SetLength sets the extent along z.
func (b *RectParallelepiped) SetLength(l float64) error { return setExtent(&b.length, l) }

// Volume returns width·height·length.
func (b RectParallelepiped) Volume() float64 { return b.width * b.height * b.length }

// SurfaceArea returns 2·(wh + wl + hl).
func (b RectParallelepiped) SurfaceArea() float64 {
	return 2 * (b.width*b.height + b.width*b.length + b.height*b.length)
}

// IsIn reports whether pt lies in the closed box.
func (b RectParallelepiped) IsIn(pt vector.Vector3) bool {
	return within(pt.X, b.origin.X, b.width) &&
		within(pt.Y, b.origin.Y, b.height) &&
		within(pt.Z, b.origin.Z, b.length)
}

// Contains is IsIn.
func (b RectParallelepiped) Contains(pt vector.Vector3) bool { return b.IsIn(pt) }

// Has reports whether pt lies on one of the six faces.
func (b RectParallelepiped) Has(pt vector.Vector3) bool {
	if !b.IsIn(pt) {
		return false
	}

	return onEdge(pt.X, b.origin.X, b.width) ||
		onEdge(pt.Y, b.origin.Y, b.height) ||
		onEdge(pt.Z, b.origin.Z, b.length)
}

// Equal reports whether origin and extents match exactly.
func (b RectParallelepiped) Equal(other RectParallelepiped) bool {
	return b.origin.Equal(other.origin) &&
		b.width == other.width && b.height == other.height && b.length == other.length
}

// String renders "Origin : (x, y, z) | Width : w | Height : h | Length : l".
func (b RectParallelepiped) String() string {
	return "Origin : " + b.origin.String() + " | Width : " + formatFloat(b.width) +
		" | Height : " + formatFloat(b.height) + " | Length : " + formatFloat(b.length)
}

// within reports lo ≤ x ≤ lo + extent.
func within(x, lo, extent float64) bool { return x >= lo && x <= lo+extent }

// onEdge reports x == lo or x == lo + extent.
func onEdge(x, lo, extent float64) bool { return x == lo || x == lo+extent }

// setExtent stores v into *dst unless it is negative.
func setExtent(dst *float64, v float64) error {
	if v < 0 {
		return geometryErrorf(opSetExtent, ErrNegativeExtent)
	}
	*dst = v

	return nil
}
