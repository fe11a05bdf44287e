// SPDX-License-Identifier: MIT

// Package convex: functional configuration of the Assembler.
//
// Design goals (shared with package matrix):
//   - Deterministic behavior: no global state.
//   - Safe by construction: With* constructors panic on nonsensical values
//     (programmer error), never on data.
package convex

import (
	"math"
)

// ---------- Defaults ----------

const (
	// DefaultEpsilon is the magnitude at or below which an entry is treated as
	// zero by the balancing scans. Zero means only exact zeros are skipped.
	DefaultEpsilon = 0.0
)

const (
	panicRuleNil        = "convex: WithExponentRule: rule must be non-nil"
	panicEpsilonInvalid = "convex: WithEpsilon: eps must be finite, non-negative"
)

// Option configures an Assembler. Options are applied in order; last writer wins.
type Option func(*Options)

// Options stores the effective Assembler configuration.
type Options struct {
	rule ExponentRule
	eps  float64
	kick []float64
}

// WithExponentRule replaces GeometricMeanExponent as the balancing rule.
// Panics if rule is nil.
func WithExponentRule(rule ExponentRule) Option {
	if rule == nil {
		panic(panicRuleNil)
	}

	return func(o *Options) { o.rule = rule }
}

// WithEpsilon sets the zero threshold of the balancing scans.
// Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithKickStarter seeds the assembler with an initial X (copied).
// Equivalent to calling SetKickStarter right after construction.
func WithKickStarter(x []float64) Option {
	cp := append([]float64(nil), x...)

	return func(o *Options) { o.kick = cp }
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		rule: GeometricMeanExponent,
		eps:  DefaultEpsilon,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
