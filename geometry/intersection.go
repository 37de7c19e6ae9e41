// SPDX-License-Identifier: MIT

package geometry

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmath"
)

// IntersectionKind classifies the solution set of an intersection query.
type IntersectionKind uint8

const (
	// KindNone: the shapes do not meet.
	KindNone IntersectionKind = iota
	// KindOne: a single point (secant lines, tangent line or circle).
	KindOne
	// KindTwo: two distinct points (secant line or circle).
	KindTwo
	// KindInfinite: the shapes coincide (same line, same circle).
	KindInfinite
)

// String returns the lower-case kind name.
func (k IntersectionKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindOne:
		return "one"
	case KindTwo:
		return "two"
	case KindInfinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Intersection is the result of an intersection query. Points holds exactly
// as many points as Kind names (0, 1 or 2); it is empty for KindInfinite.
type Intersection[P any] struct {
	Kind   IntersectionKind
	Points []P
}

// Exists reports whether the shapes share at least one point.
func (x Intersection[P]) Exists() bool { return x.Kind != KindNone }

// First returns the first point, if any.
func (x Intersection[P]) First() (P, bool) {
	if len(x.Points) == 0 {
		var zero P
		return zero, false
	}

	return x.Points[0], true
}

func noIntersection[P any]() Intersection[P] { return Intersection[P]{Kind: KindNone} }

func infiniteIntersection[P any]() Intersection[P] { return Intersection[P]{Kind: KindInfinite} }

func onePoint[P any](p P) Intersection[P] {
	return Intersection[P]{Kind: KindOne, Points: []P{p}}
}

func twoPoints[P any](a, b P) Intersection[P] {
	return Intersection[P]{Kind: KindTwo, Points: []P{a, b}}
}

// logDegenerate reports a parallel, concentric or coincident configuration.
func logDegenerate(op string, kind IntersectionKind) {
	lvmath.Logger().Debug("geometry: degenerate intersection",
		zap.String("op", op),
		zap.Stringer("kind", kind),
	)
}
