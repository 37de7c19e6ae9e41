// SPDX-License-Identifier: MIT
package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvmath"
	"github.com/katalvlaran/lvmath/geometry"
)

// Not parallel: swaps the package-wide logger.
func TestDegenerateIntersection_Logged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lvmath.SetLogger(zap.New(core))
	defer lvmath.SetLogger(nil)

	got := geometry.Line2AxisX.Intersection(geometry.NewLine2SlopeIntercept(0, 1))
	require.Equal(t, geometry.KindNone, got.Kind)

	entries := logs.FilterMessage("geometry: degenerate intersection").
		FilterField(zap.String("op", "Line2.Intersection")).All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "none", entries[0].ContextMap()["kind"])
}
