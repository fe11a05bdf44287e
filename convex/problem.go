// SPDX-License-Identifier: MIT

package convex

import (
	"reflect"

	"github.com/katalvlaran/convexprep/matrix"
)

// Problem is the frozen result of Assembler.Build.
//
// Block getters return the stored matrices without copying; a Solver must
// treat them as read-only. Absent blocks are returned as a nil Matrix.
type Problem struct {
	ae, be *matrix.Dense
	ai, bi *matrix.Dense
	q, c   *matrix.Dense

	provenance []Entity
	kick       []float64
	n          int
}

// AE returns the equality coefficients (m_e×n) or nil.
func (p *Problem) AE() matrix.Matrix { return asMatrix(p.ae) }

// BE returns the equality right-hand side (m_e×1) or nil.
func (p *Problem) BE() matrix.Matrix { return asMatrix(p.be) }

// AI returns the inequality coefficients (m_i×n) or nil.
func (p *Problem) AI() matrix.Matrix { return asMatrix(p.ai) }

// BI returns the inequality right-hand side (m_i×1) or nil.
func (p *Problem) BI() matrix.Matrix { return asMatrix(p.bi) }

// Q returns the quadratic objective term (n×n) or nil.
func (p *Problem) Q() matrix.Matrix { return asMatrix(p.q) }

// C returns the linear objective term (n×1) or nil.
func (p *Problem) C() matrix.Matrix { return asMatrix(p.c) }

// VariableCount returns n.
func (p *Problem) VariableCount() int { return p.n }

// CountEqualities returns m_e.
func (p *Problem) CountEqualities() int { return rowsOf(p.ae) }

// CountInequalities returns m_i.
func (p *Problem) CountInequalities() int { return rowsOf(p.ai) }

// HasEqualities reports whether the problem has at least one equality row.
func (p *Problem) HasEqualities() bool { return p.CountEqualities() > 0 }

// HasInequalities reports whether the problem has at least one inequality row.
func (p *Problem) HasInequalities() bool { return p.CountInequalities() > 0 }

// HasObjective reports whether Q or C is present.
func (p *Problem) HasObjective() bool { return p.q != nil || p.c != nil }

// IsQuadratic reports whether Q is present.
func (p *Problem) IsQuadratic() bool { return p.q != nil }

// Provenance returns a copy of the per-row inequality provenance.
func (p *Problem) Provenance() []Entity {
	return append([]Entity(nil), p.provenance...)
}

// KickStarter returns a copy of the initial X, or nil.
func (p *Problem) KickStarter() []float64 { return copyFloats(p.kick) }

// RowsFor returns, in ascending order, the inequality rows whose provenance
// equals e. RowsFor(nil) lists untagged rows. An Entity that cannot be
// compared with == (a slice, or a struct holding a slice in an interface
// field) matches nothing, and neither does a stored tag of that kind.
func (p *Problem) RowsFor(e Entity) []int {
	if !comparableEntity(e) {
		return nil
	}
	var rows []int
	for i, tag := range p.provenance {
		if sameEntity(tag, e) {
			rows = append(rows, i)
		}
	}

	return rows
}

// sameEntity compares two entities with ==, reporting false instead of
// panicking when either value is not comparable.
func sameEntity(a, b Entity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !comparableEntity(a) || !comparableEntity(b) {
		return false
	}

	return a == b
}

// comparableEntity checks the value, not only its type: a struct type is
// comparable even when an interface field holds a slice.
func comparableEntity(e Entity) bool {
	if e == nil {
		return true
	}

	return reflect.ValueOf(e).Comparable()
}

// asMatrix converts a possibly nil *Dense into a Matrix whose nil-ness is
// visible to == nil checks.
func asMatrix(d *matrix.Dense) matrix.Matrix {
	if d == nil {
		return nil
	}

	return d
}
