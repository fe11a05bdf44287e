// SPDX-License-Identifier: MIT

// Package convex: solution state.
//
// A Solution owns three vectors filled by a Solver:
//   - X  (n)   primal variables,
//   - LE (m_e) multipliers of the equality rows,
//   - LI (m_i) multipliers of the inequality rows.
//
// Each is allocated lazily, as zeros (X from the kick-starter when set), on
// first access; later accesses return the same slice.

package convex

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/convexprep/matrix"
)

const (
	opSetX                = "Solution.SetX"
	opSetLE               = "Solution.SetLE"
	opSetLI               = "Solution.SetLI"
	opFillX               = "Solution.FillX"
	opSlackEqualities     = "Solution.SlackEqualities"
	opSlackInequalities   = "Solution.SlackInequalities"
	opDualInequalitiesFor = "Solution.DualInequalitiesFor"
	opObjective           = "Solution.Objective"
)

// Solution holds the variable and multiplier vectors for one Problem.
type Solution struct {
	problem *Problem
	x       []float64
	le      []float64
	li      []float64
}

func newSolution(p *Problem) *Solution {
	return &Solution{problem: p}
}

// Problem returns the problem this solution belongs to.
func (s *Solution) Problem() *Problem { return s.problem }

// X returns the owned variable vector, allocating it on first call.
func (s *Solution) X() []float64 {
	if s.x == nil {
		s.x = make([]float64, s.problem.n)
		copy(s.x, s.problem.kick)
	}

	return s.x
}

// LE returns the owned equality-multiplier vector, allocating it on first call.
func (s *Solution) LE() []float64 {
	if s.le == nil {
		s.le = make([]float64, s.problem.CountEqualities())
	}

	return s.le
}

// LI returns the owned inequality-multiplier vector, allocating it on first call.
func (s *Solution) LI() []float64 {
	if s.li == nil {
		s.li = make([]float64, s.problem.CountInequalities())
	}

	return s.li
}

// SetX sets X[i]. Errors: matrix.ErrOutOfRange.
func (s *Solution) SetX(i int, v float64) error { return setAt(opSetX, s.X(), i, v) }

// SetLE sets LE[i]. Errors: matrix.ErrOutOfRange.
func (s *Solution) SetLE(i int, v float64) error { return setAt(opSetLE, s.LE(), i, v) }

// SetLI sets LI[i]. Errors: matrix.ErrOutOfRange.
func (s *Solution) SetLI(i int, v float64) error { return setAt(opSetLI, s.LI(), i, v) }

// FillX overwrites X with values.
// Errors: matrix.ErrDimensionMismatch when len(values) != n.
func (s *Solution) FillX(values []float64) error {
	x := s.X()
	if len(values) != len(x) {
		return opErrorf(opFillX, fmt.Errorf("got %d values for %d variables: %w", len(values), len(x), matrix.ErrDimensionMismatch))
	}
	copy(x, values)

	return nil
}

// ResetX zeroes X (the kick-starter is not reapplied).
func (s *Solution) ResetX() { zero(s.X()) }

// ResetLE zeroes LE.
func (s *Solution) ResetLE() { zero(s.LE()) }

// ResetLI zeroes LI.
func (s *Solution) ResetLI() { zero(s.LI()) }

// SlackEqualities returns SE = BE − AE·X as a fresh slice.
// Returns ErrUnavailable when the problem has no equality block.
func (s *Solution) SlackEqualities() ([]float64, error) {
	return s.slack(opSlackEqualities, s.problem.ae, s.problem.be)
}

// SlackInequalities returns SI = BI − AI·X as a fresh slice.
// Returns ErrUnavailable when the problem has no inequality block.
// A negative entry marks a violated row.
func (s *Solution) SlackInequalities() ([]float64, error) {
	return s.slack(opSlackInequalities, s.problem.ai, s.problem.bi)
}

// SlackInequalitiesFor returns SI restricted to rows, in the given order.
// Errors: ErrUnavailable, matrix.ErrOutOfRange.
func (s *Solution) SlackInequalitiesFor(rows ...int) ([]float64, error) {
	si, err := s.SlackInequalities()
	if err != nil {
		return nil, err
	}

	return gather(opSlackInequalities, si, rows)
}

// DualInequalitiesFor returns LI restricted to rows, in the given order.
// Typically rows comes from Problem.RowsFor.
// Errors: matrix.ErrOutOfRange.
func (s *Solution) DualInequalitiesFor(rows ...int) ([]float64, error) {
	return gather(opDualInequalitiesFor, s.LI(), rows)
}

// DualsFor returns the inequality multipliers of every row tagged with e,
// in row order. An entity with no rows yields an empty result.
func (s *Solution) DualsFor(e Entity) []float64 {
	rows := s.problem.RowsFor(e)
	li := s.LI()
	out := make([]float64, len(rows))
	for k, i := range rows {
		out[k] = li[i]
	}

	return out
}

// Objective evaluates ½xᵀQx + Cᵀx at the current X.
// Returns ErrUnavailable when the problem has no objective.
func (s *Solution) Objective() (float64, error) {
	p := s.problem
	if !p.HasObjective() {
		return 0, opErrorf(opObjective, ErrUnavailable)
	}
	x := s.X()
	var val float64
	if p.c != nil {
		c, err := matrix.ColumnValues(p.c)
		if err != nil {
			return 0, opErrorf(opObjective, err)
		}
		val = floats.Dot(c, x)
	}
	if p.q != nil {
		qx, err := matrix.MatVec(p.q, x)
		if err != nil {
			return 0, opErrorf(opObjective, err)
		}
		val += 0.5 * floats.Dot(x, qx)
	}

	return val, nil
}

// Snapshot returns a deep copy of X, LE and LI sharing the same Problem.
// Vectors not yet allocated stay unallocated in the copy.
func (s *Solution) Snapshot() *Solution {
	return &Solution{
		problem: s.problem,
		x:       copyFloats(s.x),
		le:      copyFloats(s.le),
		li:      copyFloats(s.li),
	}
}

// slack computes rhs − coef·X.
func (s *Solution) slack(op string, coef, rhs *matrix.Dense) ([]float64, error) {
	if coef == nil || rhs == nil {
		return nil, opErrorf(op, ErrUnavailable)
	}
	ax, err := matrix.MatVec(coef, s.X())
	if err != nil {
		return nil, opErrorf(op, err)
	}
	out, err := matrix.ColumnValues(rhs)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	floats.Sub(out, ax)

	return out, nil
}

func setAt(op string, v []float64, i int, val float64) error {
	if i < 0 || i >= len(v) {
		return opErrorf(op, fmt.Errorf("index %d of %d: %w", i, len(v), matrix.ErrOutOfRange))
	}
	v[i] = val

	return nil
}

// gather copies v[rows[k]] into a fresh slice, preserving order.
func gather(op string, v []float64, rows []int) ([]float64, error) {
	if len(rows) == 0 {
		return []float64{}, nil
	}
	if len(v) == 0 {
		return nil, opErrorf(op, fmt.Errorf("row %d of 0: %w", rows[0], matrix.ErrOutOfRange))
	}
	column, err := matrix.NewColumn(v, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, opErrorf(op, err)
	}
	picked, err := matrix.SelectRows(column, rows)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	out, err := matrix.ColumnValues(picked)
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return out, nil
}

func zero(v []float64) {
	for i := range v {
		v[i] = 0
	}
}
