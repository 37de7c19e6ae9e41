// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction and the
// algebra kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state; the parallel cofactor path
//     produces bit-identical results to the sequential one.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error);
//     user-supplied documents go through LoadOptions, which returns ErrBadConfig.
//
// Notes:
//   - Comparisons are exact by default (eps = 0). WithEpsilon opts a single
//     call into tolerant comparison; nothing changes globally.
//   - validateNaNInf is a per-Dense policy fixed at construction and carried
//     by Clone; kernels writing results never consult it.
package matrix

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by Equal / IsSymmetric / IsSkewSymmetric.
	// Zero means exact comparison.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles finite-only enforcement in Set and Apply.
	// Off: IEEE-754 values (including ±Inf from DivScalar(0)) are legal entries.
	DefaultValidateNaNInf = false

	// DefaultParallelCofactor keeps cofactor expansion on the calling goroutine.
	DefaultParallelCofactor = false

	// DefaultParallelThreshold is the smallest order n for which the parallel
	// cofactor path actually fans out when enabled. Below it the n² minors are
	// too cheap to amortize goroutine startup.
	DefaultParallelThreshold = 5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicThresholdInvalid = "matrix: WithParallelCofactor: threshold must be >= 1"
	panicWorkersInvalid   = "matrix: WithWorkers: workers must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps               float64 // >= 0; DefaultEpsilon
	validateNaNInf    bool    // DefaultValidateNaNInf
	parallelCofactor  bool    // DefaultParallelCofactor
	parallelThreshold int     // >= 1; DefaultParallelThreshold
	workers           int     // >= 1; runtime.GOMAXPROCS(0) when unset
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance used by structural comparisons
// (Equal, IsSymmetric, IsSkewSymmetric).
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes NewDense produce matrices whose Set/Apply reject
// NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the IEEE-754 permissive policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithParallelCofactor evaluates the n² minor determinants of Cofactor,
// Adjugate and Inverted concurrently once n ≥ threshold.
// Panics if threshold < 1.
func WithParallelCofactor(threshold int) Option {
	if threshold < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) {
		o.parallelCofactor = true
		o.parallelThreshold = threshold
	}
}

// WithWorkers caps the number of goroutines used by the parallel cofactor path.
// Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithSequential disables the parallel cofactor path.
func WithSequential() Option {
	return func(o *Options) { o.parallelCofactor = false }
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		validateNaNInf:    DefaultValidateNaNInf,
		parallelCofactor:  DefaultParallelCofactor,
		parallelThreshold: DefaultParallelThreshold,
		workers:           0,
	}
}

// gatherOptions applies opts over the defaults and finalizes derived fields.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// NewMatrixOptions resolves opts into an Options value (exported for
// callers that want to inspect the effective configuration).
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-only enforcement is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ParallelCofactor reports whether the parallel cofactor path is enabled and
// the threshold at which it engages.
func (o Options) ParallelCofactor() (enabled bool, threshold int) {
	return o.parallelCofactor, o.parallelThreshold
}

// Workers returns the goroutine cap of the parallel cofactor path.
func (o Options) Workers() int { return o.workers }
