// SPDX-License-Identifier: MIT

// Package lpsolve adapts gonum's simplex method to the convex.Solver
// interface, for problems without a quadratic term.
//
// The assembled problem
//
//	minimize   Cᵀx
//	s.t.       AE·x = BE
//	           AI·x ≤ BI
//
// with free x is converted to standard form by lp.Convert (x = xp − xn,
// one slack per inequality row) and solved by lp.Simplex. Only X is
// reported; LE and LI are left untouched because the gonum simplex does not
// expose multipliers.
package lpsolve
