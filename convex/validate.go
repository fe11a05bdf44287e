// SPDX-License-Identifier: MIT

// Package convex: shape validation run after every assembler mutation.
//
// Rules, in order:
//  0. Zero-row blocks are normalized to absent (with their right-hand side,
//     provenance and scaling record).
//  1. Equalities: AE.Cols == n; BE absent → zeros; else BE is AE.Rows×1.
//  2. Objective: Q present → Q is n×n; C absent → zeros(n); else C is n×1.
//  3. Inequalities: as 1 with AI/BI, plus len(provenance) == AI.Rows.
//
// Every violation is returned unwrapped here; the caller tags it as a
// configuration error.

package convex

import (
	"fmt"

	"github.com/katalvlaran/convexprep/matrix"
)

// validate enforces the shape invariants and synthesizes absent right-hand
// sides. It may replace nil blocks but never mutates a stored matrix.
func (a *Assembler) validate() error {
	a.normalize()
	if !a.HasEqualities() && !a.HasInequalities() && !a.HasObjective() {
		return nil
	}
	n, err := a.VariableCount()
	if err != nil {
		return ErrUndecidableVariables
	}

	if a.ae != nil {
		if a.be, err = checkBlock("AE", a.ae, a.be, n); err != nil {
			return err
		}
	}

	if a.HasObjective() {
		if a.q != nil && (a.q.Rows() != n || a.q.Cols() != n) {
			return fmt.Errorf("Q is %dx%d, want %dx%d: %w", a.q.Rows(), a.q.Cols(), n, n, ErrNotSquare)
		}
		if a.c == nil {
			if a.c, err = matrix.NewZeros(n, 1); err != nil {
				return err
			}
		} else {
			if a.c.Cols() != 1 {
				return fmt.Errorf("C: %w", ErrNotColumnVector)
			}
			if a.c.Rows() != n {
				return fmt.Errorf("C has %d rows, want %d: %w", a.c.Rows(), n, ErrColumnMismatch)
			}
		}
	}

	if a.ai != nil {
		if a.bi, err = checkBlock("AI", a.ai, a.bi, n); err != nil {
			return err
		}
		if len(a.provenance) != a.ai.Rows() {
			return fmt.Errorf("%d entries for %d rows: %w", len(a.provenance), a.ai.Rows(), ErrProvenanceLength)
		}
	}

	return nil
}

// normalize drops zero-row blocks.
func (a *Assembler) normalize() {
	if a.ae != nil && a.ae.Rows() == 0 {
		a.ae, a.be, a.eqScale = nil, nil, nil
	}
	if a.ai != nil && a.ai.Rows() == 0 {
		a.ai, a.bi, a.ineqScale, a.provenance = nil, nil, nil, nil
	}
	if a.q != nil && a.q.Rows() == 0 {
		a.q = nil
	}
	if a.c != nil && a.c.Rows() == 0 {
		a.c = nil
	}
}

// checkBlock validates a constraint pair against n and returns the
// right-hand side, synthesizing zeros when it is absent.
func checkBlock(name string, coef, rhs *matrix.Dense, n int) (*matrix.Dense, error) {
	if coef.Cols() != n {
		return nil, fmt.Errorf("%s has %d columns, want %d: %w", name, coef.Cols(), n, ErrColumnMismatch)
	}
	if rhs == nil {
		return matrix.NewZeros(coef.Rows(), 1)
	}
	if err := checkRHS(coef, rhs); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return rhs, nil
}

// checkRHS requires rhs to be a coef.Rows()×1 column.
func checkRHS(coef, rhs matrix.Matrix) error {
	if rhs.Cols() != 1 {
		return fmt.Errorf("right-hand side has %d columns: %w", rhs.Cols(), ErrNotColumnVector)
	}
	if rhs.Rows() != coef.Rows() {
		return fmt.Errorf("right-hand side has %d rows, want %d: %w", rhs.Rows(), coef.Rows(), ErrRowMismatch)
	}

	return nil
}

// isNilMatrix reports a nil interface or a typed nil pointer.
func isNilMatrix(m matrix.Matrix) bool {
	return matrix.ValidateNotNil(m) != nil
}
