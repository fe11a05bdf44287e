// SPDX-License-Identifier: MIT

// Package convex: shared value types.
package convex

import "github.com/katalvlaran/convexprep/matrix"

// Entity is an opaque reference to the higher-level constraint that produced
// an inequality row. The assembler never inspects it; it only stores it and
// compares it with == in Problem.RowsFor. A nil Entity means "no provenance".
type Entity = any

// Blocks bundles every block accepted by FromBlocks. Nil fields are skipped.
type Blocks struct {
	AE, BE matrix.Matrix
	AI, BI matrix.Matrix
	Q, C   matrix.Matrix

	// Provenance tags the rows of AI; len must equal AI.Rows() when set.
	Provenance []Entity
}

// ExponentRule maps the largest and smallest nonzero magnitude observed in a
// row (or in the whole objective) to the power of ten the row is scaled by.
// It is only called with 0 < smallest ≤ largest.
type ExponentRule func(largest, smallest float64) int

// Scaling records the cumulative factors applied by Balance, so results of a
// balanced problem can be mapped back to the caller's units. Rows appended
// after a Balance carry factor 1.
//
//	original row i of AE·x = BE  ==  (row i of the stored block) / Equality[i]
type Scaling struct {
	Equality   []float64 // one factor per AE row
	Inequality []float64 // one factor per AI row
	Objective  float64   // shared factor of Q and C (1 when never balanced)
}
