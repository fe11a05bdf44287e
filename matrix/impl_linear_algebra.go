// SPDX-License-Identifier: MIT
// Package matrix provides the handful of kernels the problem assembler needs
// on any Matrix implementation: scalar scaling, per-row scaling and
// matrix-vector products. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other implementations use
//     At/Set with a fixed i→j order.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opScale     = "Scale"
	opScaleRows = "ScaleRows"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns alpha*m as a fresh Dense (zero rows allowed).
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate result with m's shape.
//   - Stage 2: flat loop for *Dense; fixed i→j At/Set otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite product under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	factors := make([]float64, m.Rows())
	for i := range factors {
		factors[i] = alpha
	}

	return ewScaleRows(opScale, m, factors)
}

// ScaleRows returns out[i,j] = m[i,j] * factors[i] as a fresh Dense.
// Used by row balancing: each constraint row gets its own factor.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(factors) != Rows), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ScaleRows(m Matrix, factors []float64) (*Dense, error) {
	return ewScaleRows(opScaleRows, m, factors)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
