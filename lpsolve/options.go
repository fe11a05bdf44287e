// SPDX-License-Identifier: MIT

package lpsolve

import "math"

// DefaultTolerance is passed to lp.Simplex as the optimality tolerance on the
// reduced costs.
const DefaultTolerance = 1e-10

const panicToleranceInvalid = "lpsolve: WithTolerance: tol must be finite, non-negative"

// Option configures a Simplex solver.
type Option func(*Simplex)

// WithTolerance overrides DefaultTolerance. Panics on negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(s *Simplex) { s.tol = tol }
}
