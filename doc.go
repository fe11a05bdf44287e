// Package convexprep prepares linear and quadratic optimization problems for
// a solver.
//
// What it does:
//
//	• Accumulates equality, inequality and objective blocks incrementally,
//	  validating shapes after every append.
//	• Tags inequality rows with the constraint that produced them, so
//	  multipliers can be mapped back after solving.
//	• Balances rows by powers of ten to improve numerical conditioning
//	  without changing the solution set.
//	• Tracks X, LE and LI for an external solver and derives slacks.
//
// Subpackages:
//
//	matrix/   dense row-major storage, stacking, magnitude folds, kernels
//	convex/   Assembler, Problem, Solution, balancing, Solver interface
//	lpsolve/  a convex.Solver backed by gonum's simplex method
//
// Quick example:
//
//	a := convex.NewAssembler()
//	_ = a.AppendEqualities(ae, be)
//	_ = a.AppendInequalities(ai, bi, "capacity")
//	_ = a.SetObjective(c)
//	_ = a.Balance()
//	sol, err := convex.Solve(ctx, a, lpsolve.New())
package convexprep
