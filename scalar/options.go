// SPDX-License-Identifier: MIT

// Package scalar: functional configuration for tolerance-based predicates.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Safe by construction: option constructors panic on nonsensical values
//     (programmer error); predicates themselves never panic.
//   - Single source of truth: defaults live in the constants below.
package scalar

import "math"

// Numeric policy.
const (
	// DefaultEpsilon is the distance below which IsCloseTo reports two values
	// as close.
	DefaultEpsilon = 1e-6

	// AlmostZeroAbs2 is the squared-magnitude threshold used by IsAlmostZero.
	AlmostZeroAbs2 = 1e-12

	// DefaultPrecision is the number of fractional digits used by String.
	DefaultPrecision = 2
)

const panicEpsilonInvalid = "scalar: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance used by IsCloseTo.
// Panics when eps is negative, NaN or ±Inf.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions resolves opts on top of the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
