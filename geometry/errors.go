// SPDX-License-Identifier: MIT
// Package geometry: sentinel errors.
//
// Every sentinel wraps numeric.ErrInvalidArgument. Methods add the operation
// tag with geometryErrorf; callers match with errors.Is.

package geometry

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

var (
	// ErrNegativeRadius indicates a negative radius, or a negative diameter,
	// area, perimeter or volume given to a setter that derives the radius.
	ErrNegativeRadius = fmt.Errorf("geometry: radius must be >= 0: %w", numeric.ErrInvalidArgument)

	// ErrNegativeExtent indicates a negative box width, height, length or side.
	ErrNegativeExtent = fmt.Errorf("geometry: extent must be >= 0: %w", numeric.ErrInvalidArgument)

	// ErrZeroDirection indicates a line direction (or Line2 normal) of length 0,
	// including a line requested through two identical points.
	ErrZeroDirection = fmt.Errorf("geometry: direction is the zero vector: %w", numeric.ErrInvalidArgument)

	// ErrDimensionMismatch indicates N-dimensional operands of different sizes.
	ErrDimensionMismatch = fmt.Errorf("geometry: dimension mismatch: %w", numeric.ErrInvalidArgument)

	// ErrNilVector indicates a nil *vector.VectorN argument.
	ErrNilVector = fmt.Errorf("geometry: nil vector: %w", numeric.ErrInvalidArgument)

	// ErrOutOfRange indicates an axis index outside [0, Dimension).
	ErrOutOfRange = fmt.Errorf("geometry: axis out of range: %w", numeric.ErrInvalidArgument)

	// ErrPointCount indicates GetArc was asked for fewer than one point.
	ErrPointCount = fmt.Errorf("geometry: point count must be >= 1: %w", numeric.ErrInvalidArgument)

	// ErrUnderdetermined indicates a measure that does not depend on the
	// radius (the "area" of a 1-sphere is always 2 points).
	ErrUnderdetermined = fmt.Errorf("geometry: measure does not determine the radius: %w", numeric.ErrInvalidArgument)
)

// Operation tags used in error wrapping.
const (
	opNewLine2       = "NewLine2"
	opNewLine3       = "NewLine3"
	opNewLineN       = "NewLineN"
	opSetCartesian   = "Line2.SetCartesianForm"
	opSetDirection   = "SetDirection"
	opIsParallel     = "LineN.IsParallel"
	opNewCircle      = "NewCircle"
	opNewSphere      = "NewSphere"
	opNewNSphere     = "NewNSphere"
	opSetRadius      = "SetRadius"
	opSetDiameter    = "SetDiameter"
	opSetArea        = "SetArea"
	opSetPerimeter   = "SetPerimeter"
	opSetVolume      = "SetVolume"
	opSetOrigin      = "SetOrigin"
	opGetArc         = "Circle.GetArc"
	opGetPoint       = "NSphere.GetPoint"
	opContains       = "Contains"
	opLineIntersect  = "NSphere.LineIntersect"
	opNewRectangle   = "NewRectangle"
	opNewRectPar     = "NewRectParallelepiped"
	opNewOrthotope   = "NewOrthotope"
	opSetExtent      = "SetExtent"
	opLength         = "Orthotope.Length"
	opOrthotopeQuery = "Orthotope.IsIn"
)

// geometryErrorf wraps err with an operation tag ("Op: underlying").
func geometryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
