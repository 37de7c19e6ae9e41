// SPDX-License-Identifier: MIT

package lvmath

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger shared by lvmath and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Only zap.DebugLevel is used: degenerate numeric events such as a singular
// inversion, parallel or coincident intersections and zero-norm quaternion
// inverses. No package ever logs on a success path.
//
// Example:
//
//	l, _ := zap.NewDevelopment()
//	lvmath.SetLogger(l)
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages call this to share the
// same configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
