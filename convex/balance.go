// SPDX-License-Identifier: MIT

// Package convex: balancing (power-of-ten rescaling).
//
// Purpose:
//   - Reduce floating-point representation error in the downstream solver by
//     bringing each constraint row, and the objective as a whole, to
//     magnitudes centered near one.
//
// Invariants:
//   - Every factor is ±10^e. Scaling a constraint row by a nonzero constant
//     leaves its solution set unchanged; scaling the objective by a positive
//     constant leaves its minimizer unchanged.
//   - Only equality rows are ever negated (to make BE ≥ 0). Inequality rows
//     keep their sign, so ≤ stays ≤.
//   - m_e, m_i and n never change.

package convex

import (
	"math"

	"github.com/golang/glog"

	"github.com/katalvlaran/convexprep/matrix"
)

const opBalance = "Balance"

// GeometricMeanExponent is the default ExponentRule:
//
//	e = −round(log10(√(largest·smallest)))
//
// so that the geometric mean of the row's extreme magnitudes lands in
// [10^-0.5, 10^0.5) after scaling by 10^e. Non-positive input yields 0.
// The mean is computed in log space, which cannot overflow.
func GeometricMeanExponent(largest, smallest float64) int {
	if !(largest > 0) || !(smallest > 0) || math.IsInf(largest, 0) {
		return 0
	}
	mid := (math.Log10(largest) + math.Log10(smallest)) / 2

	return -int(math.Round(mid))
}

// Balance rescales the stored blocks by powers of ten.
// MAIN DESCRIPTION:
//   - Equality rows: scale row i of AE and BE[i] by 10^e (negated when
//     BE[i] < 0, so the stored BE[i] becomes nonnegative).
//   - Inequality rows: scale row i of AI and BI[i] by 10^e, never negated.
//   - Objective: one shared 10^e from the combined range of Q and C.
//
// Implementation:
//   - Stage 1: per row, fold |coefficients| ∪ |rhs| with matrix.RowMagnitudes
//     (entries ≤ the configured epsilon are ignored) and apply the
//     ExponentRule. A row with no counted entry gets factor 1 (or −1).
//   - Stage 2: build new matrices with matrix.ScaleRows / matrix.Scale and
//     swap them in; stored matrices are never modified in place.
//   - Stage 3: accumulate factors into the Scaling record and revalidate.
//
// Errors:
//   - ErrAssemblerBroken; configuration errors from revalidation; numeric
//     errors from the matrix kernels (e.g. overflow to Inf), which also
//     break the assembler.
//
// Complexity:
//   - Time O(nnz-scan) = O(m_e·n + m_i·n + n²), Space O(same) for the copies.
func (a *Assembler) Balance() error {
	if err := a.usable(opBalance); err != nil {
		return err
	}

	if a.HasEqualities() {
		ae, be, factors, err := a.balanceRows(a.ae, a.be, true)
		if err != nil {
			return a.fail(opBalance, err)
		}
		a.ae, a.be = ae, be
		a.eqScale = accumulate(a.eqScale, factors)
	}

	if a.HasInequalities() {
		ai, bi, factors, err := a.balanceRows(a.ai, a.bi, false)
		if err != nil {
			return a.fail(opBalance, err)
		}
		a.ai, a.bi = ai, bi
		a.ineqScale = accumulate(a.ineqScale, factors)
	}

	if a.HasObjective() {
		if err := a.balanceObjective(); err != nil {
			return a.fail(opBalance, err)
		}
	}

	if glog.V(1) {
		glog.Infof("convex: balanced m_e=%d m_i=%d objective factor=%g",
			a.CountEqualities(), a.CountInequalities(), a.objScale)
	}

	return a.revalidate(opBalance)
}

// balanceRows computes one factor per row of (body | rhs) and returns the
// scaled copies together with the factors applied.
func (a *Assembler) balanceRows(body, rhs *matrix.Dense, positiveRHS bool) (*matrix.Dense, *matrix.Dense, []float64, error) {
	rows := body.Rows()
	factors := make([]float64, rows)
	var (
		rb, rr matrix.Range
		b      float64
		err    error
	)
	for i := 0; i < rows; i++ {
		if rb, err = matrix.RowMagnitudes(body, i, a.opts.eps); err != nil {
			return nil, nil, nil, err
		}
		if rr, err = matrix.RowMagnitudes(rhs, i, a.opts.eps); err != nil {
			return nil, nil, nil, err
		}
		rng := rb.Union(rr)
		factors[i] = a.factorFor(rng)
		if positiveRHS {
			if b, err = rhs.At(i, 0); err != nil {
				return nil, nil, nil, err
			}
			if b < 0 {
				factors[i] = -factors[i]
			}
		}
		if glog.V(2) {
			glog.Infof("convex: row %d range=[%g,%g] factor=%g", i, rng.Smallest, rng.Largest, factors[i])
		}
	}

	scaledBody, err := matrix.ScaleRows(body, factors)
	if err != nil {
		return nil, nil, nil, err
	}
	scaledRHS, err := matrix.ScaleRows(rhs, factors)
	if err != nil {
		return nil, nil, nil, err
	}

	return scaledBody, scaledRHS, factors, nil
}

// balanceObjective applies one shared factor to Q and C.
func (a *Assembler) balanceObjective() error {
	var rng matrix.Range
	for _, m := range []*matrix.Dense{a.q, a.c} {
		if m == nil {
			continue
		}
		r, err := matrix.Magnitudes(m, a.opts.eps)
		if err != nil {
			return err
		}
		rng = rng.Union(r)
	}
	factor := a.factorFor(rng)
	if factor == 1 {
		return nil
	}

	var q, c *matrix.Dense
	var err error
	if a.q != nil {
		if q, err = matrix.Scale(a.q, factor); err != nil {
			return err
		}
	}
	if a.c != nil {
		if c, err = matrix.Scale(a.c, factor); err != nil {
			return err
		}
	}
	a.q, a.c = q, c
	a.objScale *= factor

	return nil
}

// factorFor turns a magnitude range into 10^rule(range); 1 for an empty range.
func (a *Assembler) factorFor(r matrix.Range) float64 {
	if r.Empty() {
		return 1
	}

	return math.Pow10(a.opts.rule(r.Largest, r.Smallest))
}

// accumulate multiplies prior factors by the new ones (prior nil means all 1).
func accumulate(prior, factors []float64) []float64 {
	if prior == nil {
		return append([]float64(nil), factors...)
	}
	for i := range prior {
		prior[i] *= factors[i]
	}

	return prior
}
