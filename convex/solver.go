// SPDX-License-Identifier: MIT

package convex

import (
	"context"

	"github.com/golang/glog"
)

const opSolve = "Solve"

// Solver is the external solving algorithm. It reads the Problem and
// reports its results by writing X, LE and LI of the Solution.
// Implementations must not modify the Problem's blocks.
type Solver interface {
	Solve(ctx context.Context, p *Problem, s *Solution) error
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(ctx context.Context, p *Problem, s *Solution) error

// Solve calls f(ctx, p, s).
func (f SolverFunc) Solve(ctx context.Context, p *Problem, s *Solution) error { return f(ctx, p, s) }

// Solve builds a from its current state and runs solver on the result.
// The Solution is returned together with any solver error so that partial
// results stay inspectable.
func Solve(ctx context.Context, a *Assembler, solver Solver) (*Solution, error) {
	p, s, err := a.Build()
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return s, opErrorf(opSolve, err)
	}
	if err = solver.Solve(ctx, p, s); err != nil {
		glog.V(1).Infof("convex: solver failed: %v", err)

		return s, opErrorf(opSolve, err)
	}

	return s, nil
}
