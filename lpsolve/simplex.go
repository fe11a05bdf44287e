// SPDX-License-Identifier: MIT

package lpsolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/convexprep/convex"
	"github.com/katalvlaran/convexprep/matrix"
)

var (
	// ErrQuadraticObjective is returned for problems with a Q block.
	ErrQuadraticObjective = errors.New("lpsolve: quadratic objective not supported")

	// ErrNoObjective is returned for problems without C.
	ErrNoObjective = errors.New("lpsolve: problem has no objective")

	// ErrNoConstraints is returned for problems with neither equalities nor
	// inequalities; a free linear objective is unbounded or trivial.
	ErrNoConstraints = errors.New("lpsolve: problem has no constraints")

	// ErrTooManyEqualities is returned when the standard form would have more
	// rows than columns, a shape lp.Simplex does not accept.
	ErrTooManyEqualities = errors.New("lpsolve: more equality rows than standard-form variables")
)

// Simplex is a convex.Solver backed by gonum's lp.Simplex.
// The zero value is not usable; construct with New.
type Simplex struct {
	tol float64
}

var _ convex.Solver = (*Simplex)(nil)

// New returns a Simplex solver configured by opts.
func New(opts ...Option) *Simplex {
	s := &Simplex{tol: DefaultTolerance}
	for _, o := range opts {
		o(s)
	}

	return s
}

// Solve minimizes Cᵀx subject to the problem's constraints and writes the
// minimizer into sol's X.
// MAIN DESCRIPTION:
//   - Stage 1: reject shapes lp.Simplex cannot take (Q present, no C, no
//     constraints, too many equality rows). lp.Simplex panics on bad shapes,
//     so they are checked here.
//   - Stage 2: copy blocks into gonum matrices and call lp.Convert.
//   - Stage 3: lp.Simplex on the standard form; X = xp − xn.
//
// Errors:
//   - ErrQuadraticObjective, ErrNoObjective, ErrNoConstraints,
//     ErrTooManyEqualities, ctx.Err(), and lp.ErrInfeasible, lp.ErrUnbounded
//     and friends from gonum (wrapped; match with errors.Is).
func (s *Simplex) Solve(ctx context.Context, p *convex.Problem, sol *convex.Solution) error {
	if p.IsQuadratic() {
		return ErrQuadraticObjective
	}
	if p.C() == nil {
		return ErrNoObjective
	}
	if !p.HasEqualities() && !p.HasInequalities() {
		return ErrNoConstraints
	}
	n, me, mi := p.VariableCount(), p.CountEqualities(), p.CountInequalities()
	if me > 2*n {
		return fmt.Errorf("%w: %d rows, %d columns", ErrTooManyEqualities, me+mi, 2*n+mi)
	}

	c, err := matrix.ColumnValues(p.C())
	if err != nil {
		return fmt.Errorf("lpsolve: C: %w", err)
	}

	var (
		g, a mat.Matrix // must stay untyped nil when absent
		h, b []float64
	)
	if p.HasInequalities() {
		if g, h, err = toGonum(p.AI(), p.BI()); err != nil {
			return fmt.Errorf("lpsolve: inequalities: %w", err)
		}
	}
	if p.HasEqualities() {
		if a, b, err = toGonum(p.AE(), p.BE()); err != nil {
			return fmt.Errorf("lpsolve: equalities: %w", err)
		}
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	cNew, aNew, bNew := lp.Convert(c, g, h, a, b)
	opt, xt, err := lp.Simplex(cNew, aNew, bNew, s.tol, nil)
	if err != nil {
		return fmt.Errorf("lpsolve: simplex: %w", err)
	}

	x := make([]float64, n)
	for j := range x {
		x[j] = xt[j] - xt[n+j]
	}
	if err = sol.FillX(x); err != nil {
		return err
	}
	glog.V(1).Infof("lpsolve: optimum %g at n=%d m_e=%d m_i=%d", opt, n, me, mi)

	return nil
}

// toGonum copies a coefficient block and its right-hand side into gonum types.
// *matrix.Dense is copied row by row; other implementations go through At.
func toGonum(coef, rhs matrix.Matrix) (*mat.Dense, []float64, error) {
	vals, err := matrix.ColumnValues(rhs)
	if err != nil {
		return nil, nil, err
	}
	r, c := coef.Rows(), coef.Cols()
	data := make([]float64, 0, r*c)

	if d, ok := coef.(*matrix.Dense); ok {
		var row []float64
		for i := 0; i < r; i++ {
			if row, err = d.Row(i); err != nil {
				return nil, nil, err
			}
			data = append(data, row...)
		}

		return mat.NewDense(r, c, data), vals, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = coef.At(i, j); err != nil {
				return nil, nil, err
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(r, c, data), vals, nil
}
