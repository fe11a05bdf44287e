// SPDX-License-Identifier: MIT

// Package convex: the problem assembler.
//
// Purpose:
//   - Accumulate equality, inequality and objective blocks supplied
//     incrementally, validating after every mutation.
//   - Never mutate caller-supplied matrices: first blocks are adopted by copy,
//     later blocks are stacked into freshly allocated matrices.
//
// Ownership:
//   - Stored blocks are never modified in place once stored. Stacking and
//     balancing replace them with new matrices, so Copy and Build may share
//     them safely.

package convex

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/convexprep/matrix"
)

const (
	opAppendEqualities   = "AppendEqualities"
	opAppendInequalities = "AppendInequalities"
	opSetObjective       = "SetObjective"
	opSetQuadratic       = "SetQuadraticObjective"
	opSetKickStarter     = "SetKickStarter"
	opVariableCount      = "VariableCount"
	opBuild              = "Build"
	opFromBlocks         = "FromBlocks"
)

// Assembler accumulates the blocks of one optimization problem.
// The zero value is not usable; construct with NewAssembler or FromBlocks.
type Assembler struct {
	ae, be *matrix.Dense // AE·x = BE
	ai, bi *matrix.Dense // AI·x ≤ BI
	q, c   *matrix.Dense // ½xᵀQx + Cᵀx

	provenance []Entity // one per AI row

	eqScale   []float64 // nil until the first Balance
	ineqScale []float64
	objScale  float64

	kick []float64

	opts   Options
	broken error // first configuration error; poisons every later mutation
}

// NewAssembler returns an empty Assembler configured by opts.
func NewAssembler(opts ...Option) *Assembler {
	o := gatherOptions(opts...)

	return &Assembler{
		objScale: 1,
		kick:     o.kick,
		opts:     o,
	}
}

// FromBlocks builds an Assembler from a complete set of blocks at once.
// MAIN DESCRIPTION:
//   - Two-phase alternative to the incremental API: collect everything, then
//     validate once. Observable behavior matches the equivalent sequence of
//     AppendEqualities, AppendInequalities and SetQuadraticObjective or
//     SetObjective calls.
//
// Behavior highlights:
//   - A nil coefficient block skips its pair; a nil right-hand side next to a
//     present coefficient block becomes zeros.
//   - Q nil and C nil leaves the objective absent.
//
// Errors:
//   - Any configuration error of the underlying operations, tagged FromBlocks.
func FromBlocks(b Blocks, opts ...Option) (*Assembler, error) {
	a := NewAssembler(opts...)
	if !isNilMatrix(b.AE) {
		if err := a.AppendEqualities(b.AE, b.BE); err != nil {
			return nil, opErrorf(opFromBlocks, err)
		}
	}
	if !isNilMatrix(b.AI) {
		if err := a.AppendInequalities(b.AI, b.BI, b.Provenance...); err != nil {
			return nil, opErrorf(opFromBlocks, err)
		}
	}
	switch {
	case !isNilMatrix(b.Q):
		if err := a.SetQuadraticObjective(b.Q, b.C); err != nil {
			return nil, opErrorf(opFromBlocks, err)
		}
	case !isNilMatrix(b.C):
		if err := a.SetObjective(b.C); err != nil {
			return nil, opErrorf(opFromBlocks, err)
		}
	}

	return a, nil
}

// ---------- Mutations ----------

// AppendEqualities adds the rows AE·x = BE.
// MAIN DESCRIPTION:
//   - First call adopts a copy of the pair; later calls stack AE below the
//     stored AE and BE below the stored BE, preserving row order.
//
// Implementation:
//   - Stage 1: check the incoming pair on its own (non-nil AE, BE n×1 with
//     AE.Rows rows, AE.Cols equal to the established variable count).
//   - Stage 2: copy or stack.
//   - Stage 3: revalidate the whole assembler.
//
// Behavior highlights:
//   - be == nil means a zero right-hand side.
//   - A zero-row AE is accepted and changes nothing.
//
// Errors:
//   - ErrConfiguration with ErrNilBlock, ErrColumnMismatch, ErrRowMismatch or
//     ErrNotColumnVector; ErrAssemblerBroken after an earlier failure.
func (a *Assembler) AppendEqualities(ae, be matrix.Matrix) error {
	if err := a.usable(opAppendEqualities); err != nil {
		return err
	}
	ae2, be2, err := a.prepareRows(ae, be)
	if err != nil {
		return a.fail(opAppendEqualities, err)
	}
	if ae2 == nil {
		return a.revalidate(opAppendEqualities)
	}
	ae3, be3, err := stackPair(a.ae, a.be, ae2, be2)
	if err != nil {
		return a.fail(opAppendEqualities, err)
	}
	a.ae, a.be = ae3, be3
	if a.eqScale != nil {
		a.eqScale = appendOnes(a.eqScale, ae2.Rows())
	}

	return a.revalidate(opAppendEqualities)
}

// AppendInequalities adds the rows AI·x ≤ BI, optionally tagged with one
// provenance Entity per row.
// Follows the same stacking rule as AppendEqualities.
//
// Provenance policy:
//   - Omitted provenance is recorded as nil entries, one per row, so the
//     provenance length always equals AI.Rows() even when tagged and untagged
//     blocks are mixed.
//   - Supplied provenance must have exactly ai.Rows() entries.
//
// Errors:
//   - As AppendEqualities, plus ErrProvenanceLength.
func (a *Assembler) AppendInequalities(ai, bi matrix.Matrix, provenance ...Entity) error {
	if err := a.usable(opAppendInequalities); err != nil {
		return err
	}
	ai2, bi2, err := a.prepareRows(ai, bi)
	if err != nil {
		return a.fail(opAppendInequalities, err)
	}
	if len(provenance) != 0 && len(provenance) != ai.Rows() {
		return a.fail(opAppendInequalities,
			fmt.Errorf("%w: got %d, want %d", ErrProvenanceLength, len(provenance), ai.Rows()))
	}
	if ai2 == nil {
		return a.revalidate(opAppendInequalities)
	}
	ai3, bi3, err := stackPair(a.ai, a.bi, ai2, bi2)
	if err != nil {
		return a.fail(opAppendInequalities, err)
	}
	a.ai, a.bi = ai3, bi3
	if len(provenance) == 0 {
		a.provenance = append(a.provenance, make([]Entity, ai2.Rows())...)
	} else {
		a.provenance = append(a.provenance, provenance...)
	}
	if a.ineqScale != nil {
		a.ineqScale = appendOnes(a.ineqScale, ai2.Rows())
	}

	return a.revalidate(opAppendInequalities)
}

// SetObjective replaces the objective with the linear term Cᵀx.
// Any previously set Q is cleared.
// Errors: ErrNilBlock, ErrNotColumnVector, ErrColumnMismatch (C.Rows ≠ n).
func (a *Assembler) SetObjective(c matrix.Matrix) error {
	if err := a.usable(opSetObjective); err != nil {
		return err
	}
	if isNilMatrix(c) {
		return a.fail(opSetObjective, fmt.Errorf("C: %w", ErrNilBlock))
	}
	c2, err := matrix.DenseCopyOf(c)
	if err != nil {
		return a.fail(opSetObjective, err)
	}
	a.q, a.c = nil, c2
	a.objScale = 1

	return a.revalidate(opSetObjective)
}

// SetQuadraticObjective replaces the objective with ½xᵀQx + Cᵀx.
// A nil c means a zero linear term sized to Q.Rows().
// Errors: ErrNilBlock (Q), ErrNotSquare, ErrNotColumnVector, ErrColumnMismatch.
func (a *Assembler) SetQuadraticObjective(q, c matrix.Matrix) error {
	if err := a.usable(opSetQuadratic); err != nil {
		return err
	}
	if isNilMatrix(q) {
		return a.fail(opSetQuadratic, fmt.Errorf("Q: %w", ErrNilBlock))
	}
	q2, err := matrix.DenseCopyOf(q)
	if err != nil {
		return a.fail(opSetQuadratic, err)
	}
	var c2 *matrix.Dense
	if isNilMatrix(c) {
		if q2.Rows() > 0 {
			if c2, err = matrix.NewZeros(q2.Rows(), 1); err != nil {
				return a.fail(opSetQuadratic, err)
			}
		}
	} else if c2, err = matrix.DenseCopyOf(c); err != nil {
		return a.fail(opSetQuadratic, err)
	}
	a.q, a.c = q2, c2
	a.objScale = 1

	return a.revalidate(opSetQuadratic)
}

// SetKickStarter stores an initial X (copied) handed to the Solution built
// next. A nil x clears it. The length is checked against the variable count
// when that is known, and again by Build.
func (a *Assembler) SetKickStarter(x []float64) error {
	if err := a.usable(opSetKickStarter); err != nil {
		return err
	}
	if x == nil {
		a.kick = nil

		return nil
	}
	if n, err := a.VariableCount(); err == nil && len(x) != n {
		return a.fail(opSetKickStarter, fmt.Errorf("%w: got %d, want %d", ErrKickStarterLength, len(x), n))
	}
	a.kick = append([]float64(nil), x...)

	return nil
}

// ---------- Queries ----------

// HasEqualities reports whether at least one equality row is stored.
func (a *Assembler) HasEqualities() bool { return a.ae != nil && a.ae.Rows() > 0 }

// HasInequalities reports whether at least one inequality row is stored.
func (a *Assembler) HasInequalities() bool { return a.ai != nil && a.ai.Rows() > 0 }

// HasObjective reports whether Q or C is set.
func (a *Assembler) HasObjective() bool { return a.q != nil || a.c != nil }

// CountEqualities returns m_e (0 when absent).
func (a *Assembler) CountEqualities() int { return rowsOf(a.ae) }

// CountInequalities returns m_i (0 when absent).
func (a *Assembler) CountInequalities() int { return rowsOf(a.ai) }

// VariableCount derives n from AE.Cols, then AI.Cols, then Q.Rows, then
// C.Rows, whichever is present first.
// Errors: ErrConfiguration with ErrUndecidableVariables when all are absent.
func (a *Assembler) VariableCount() (int, error) {
	switch {
	case a.ae != nil:
		return a.ae.Cols(), nil
	case a.ai != nil:
		return a.ai.Cols(), nil
	case a.q != nil:
		return a.q.Rows(), nil
	case a.c != nil:
		return a.c.Rows(), nil
	}

	return 0, configErrorf(opVariableCount, ErrUndecidableVariables)
}

// Provenance returns a copy of the inequality provenance (len == m_i).
func (a *Assembler) Provenance() []Entity {
	return append([]Entity(nil), a.provenance...)
}

// Scaling returns a copy of the cumulative balancing factors.
// Rows never balanced report 1.
func (a *Assembler) Scaling() Scaling {
	return Scaling{
		Equality:   scaleOrOnes(a.eqScale, a.CountEqualities()),
		Inequality: scaleOrOnes(a.ineqScale, a.CountInequalities()),
		Objective:  a.objScale,
	}
}

// Err returns the configuration error that broke the assembler, or nil.
func (a *Assembler) Err() error { return a.broken }

// ---------- Lifecycle ----------

// Build freezes the current blocks into a Problem and returns a fresh
// Solution for it.
// MAIN DESCRIPTION:
//   - The Problem shares the stored blocks: they are never modified in place
//     by the Assembler, so later appends or Balance calls do not affect it.
//   - The Solution starts from the kick-starter when one is set, zeros
//     otherwise.
//
// Errors:
//   - ErrAssemblerBroken; ErrConfiguration with ErrUndecidableVariables or
//     ErrKickStarterLength.
func (a *Assembler) Build() (*Problem, *Solution, error) {
	if err := a.usable(opBuild); err != nil {
		return nil, nil, err
	}
	n, err := a.VariableCount()
	if err != nil {
		return nil, nil, opErrorf(opBuild, err)
	}
	if a.kick != nil && len(a.kick) != n {
		return nil, nil, configErrorf(opBuild,
			fmt.Errorf("%w: got %d, want %d", ErrKickStarterLength, len(a.kick), n))
	}
	p := &Problem{
		ae: a.ae, be: a.be,
		ai: a.ai, bi: a.bi,
		q: a.q, c: a.c,
		provenance: a.Provenance(),
		n:          n,
	}
	if a.kick != nil {
		p.kick = append([]float64(nil), a.kick...)
	}
	if glog.V(1) {
		glog.Infof("convex: built problem n=%d m_e=%d m_i=%d quadratic=%t",
			n, p.CountEqualities(), p.CountInequalities(), p.q != nil)
	}

	return p, newSolution(p), nil
}

// Copy returns an independent Assembler with identical contents.
// Blocks are shared (they are never mutated in place); provenance, scaling
// record and kick-starter are copied. A broken Assembler copies as broken.
func (a *Assembler) Copy() *Assembler {
	cp := *a
	cp.provenance = a.Provenance()
	cp.eqScale = copyFloats(a.eqScale)
	cp.ineqScale = copyFloats(a.ineqScale)
	cp.kick = copyFloats(a.kick)

	return &cp
}

// ---------- internals ----------

// usable rejects mutations on a broken assembler.
func (a *Assembler) usable(op string) error {
	if a.broken != nil {
		return fmt.Errorf("convex.%s: %w: %w", op, ErrAssemblerBroken, a.broken)
	}

	return nil
}

// fail records err as a configuration error and poisons the assembler.
func (a *Assembler) fail(op string, err error) error {
	wrapped := configErrorf(op, err)
	a.broken = wrapped
	glog.V(1).Infof("convex: assembler broken: %v", wrapped)

	return wrapped
}

// revalidate runs the validator and poisons the assembler on failure.
func (a *Assembler) revalidate(op string) error {
	if err := a.validate(); err != nil {
		return a.fail(op, err)
	}

	return nil
}

// prepareRows checks an incoming (coefficients, rhs) pair against itself and
// against the established variable count, and returns independent copies.
// A zero-row coefficient block returns (nil, nil, nil).
func (a *Assembler) prepareRows(coef, rhs matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	if isNilMatrix(coef) {
		return nil, nil, fmt.Errorf("coefficients: %w", ErrNilBlock)
	}
	if n, err := a.VariableCount(); err == nil && coef.Cols() != n {
		return nil, nil, fmt.Errorf("%w: got %d columns, want %d", ErrColumnMismatch, coef.Cols(), n)
	}
	if !isNilMatrix(rhs) {
		if err := checkRHS(coef, rhs); err != nil {
			return nil, nil, err
		}
	}
	if coef.Rows() == 0 {
		return nil, nil, nil
	}

	coef2, err := matrix.DenseCopyOf(coef)
	if err != nil {
		return nil, nil, err
	}
	var rhs2 *matrix.Dense
	if isNilMatrix(rhs) {
		rhs2, err = matrix.NewZeros(coef.Rows(), 1)
	} else {
		rhs2, err = matrix.DenseCopyOf(rhs)
	}
	if err != nil {
		return nil, nil, err
	}

	return coef2, rhs2, nil
}

// stackPair appends (coef, rhs) below (top, topRHS), adopting when top is nil.
func stackPair(top, topRHS, coef, rhs *matrix.Dense) (*matrix.Dense, *matrix.Dense, error) {
	if top == nil {
		return coef, rhs, nil
	}
	a, err := matrix.Stack(top, coef)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.Stack(topRHS, rhs)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func rowsOf(d *matrix.Dense) int {
	if d == nil {
		return 0
	}

	return d.Rows()
}

func appendOnes(s []float64, k int) []float64 {
	for i := 0; i < k; i++ {
		s = append(s, 1)
	}

	return s
}

func scaleOrOnes(s []float64, n int) []float64 {
	if s == nil {
		return appendOnes(make([]float64, 0, n), n)
	}

	return copyFloats(s)
}

func copyFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}

	return append(make([]float64, 0, len(s)), s...)
}
