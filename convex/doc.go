// SPDX-License-Identifier: MIT

// Package convex prepares linear and quadratic optimization problems for a
// solver.
//
// An Assembler accumulates three kinds of blocks supplied incrementally by a
// modeling layer:
//
//	equalities    AE·x  = BE
//	inequalities  AI·x ≤ BI   (each row tagged with a provenance Entity)
//	objective     minimize ½xᵀQx + Cᵀx   (or Cᵀx when Q is absent)
//
// After every mutation the shapes are validated: the variable count n is
// derived from AE, then AI, then Q, then C, and every present block must
// agree with it. Violations are configuration errors (errors.Is
// ErrConfiguration) and leave the Assembler unusable.
//
// Balance rescales every constraint row, and the objective as a whole, by a
// power of ten chosen from the row's magnitude range. Scaling a row by a
// nonzero constant leaves the solution set unchanged; equality rows with a
// negative right-hand side are additionally negated so that BE ≥ 0.
//
// Build freezes the blocks into a Problem and returns a fresh Solution whose
// X, LE and LI vectors are filled by an external Solver. Slack vectors
// SE = BE − AE·X and SI = BI − AI·X are derived on demand.
//
// Example:
//
//	a := convex.NewAssembler()
//	_ = a.AppendEqualities(ae, be)
//	_ = a.AppendInequalities(ai, bi, "capacity")
//	_ = a.SetObjective(c)
//	_ = a.Balance()
//	problem, sol, err := a.Build()
//
// An Assembler and its Solutions are not safe for concurrent use; solve
// independent problems with independent instances.
package convex
