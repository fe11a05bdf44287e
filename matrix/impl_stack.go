// SPDX-License-Identifier: MIT

// Package matrix - vertical concatenation and dense materialization.
//
// Purpose:
//   - Stack two matrices with equal column counts into a fresh Dense
//     ("rows of bottom appended below rows of top").
//   - Materialize any Matrix implementation as an independent *Dense.
//
// Determinism:
//   - Rows of top keep their order and come first; rows of bottom follow in order.
//   - Neither operand is mutated; the result never aliases operand storage.

package matrix

import "fmt"

const (
	opStack     = "Stack"
	opDenseCopy = "DenseCopyOf"
)

// Stack returns a new (top.Rows+bottom.Rows)×Cols matrix holding top's rows
// followed by bottom's rows.
// MAIN DESCRIPTION:
//   - Vertical concatenation used to grow constraint blocks incrementally.
//
// Implementation:
//   - Stage 1: ValidateStackCompatible (non-nil, equal column counts).
//   - Stage 2: allocate (rt+rb)×c, zero rows allowed.
//   - Stage 3: copy top then bottom; *Dense operands use one copy() per block,
//     other implementations fall back to At with fixed i→j order.
//
// Behavior highlights:
//   - Zero-row operands are legal; stacking with them yields a copy of the other.
//   - The result inherits the numeric policy of top when top is *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O((rt+rb)*c), Space O((rt+rb)*c).
func Stack(top, bottom Matrix) (*Dense, error) {
	if err := ValidateStackCompatible(top, bottom); err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	rt, rb, c := top.Rows(), bottom.Rows(), top.Cols()
	res, err := newDenseZeroOK(rt+rb, c)
	if err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	if dt, ok := top.(*Dense); ok {
		res.validateNaNInf = dt.validateNaNInf
	}

	if err = copyRowsInto(res, 0, top); err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	if err = copyRowsInto(res, rt, bottom); err != nil {
		return nil, matrixErrorf(opStack, err)
	}

	return res, nil
}

// DenseCopyOf materializes m as an independent *Dense (zero rows allowed).
// The copy never shares storage with m, whatever its concrete type.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func DenseCopyOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDenseCopy, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	res, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opDenseCopy, err)
	}
	if err = copyRowsInto(res, 0, m); err != nil {
		return nil, matrixErrorf(opDenseCopy, err)
	}

	return res, nil
}

// copyRowsInto writes every row of src into dst starting at row offset.
// Assumes dst has room and equal column count (validated by callers).
func copyRowsInto(dst *Dense, offset int, src Matrix) error {
	c := dst.c
	if ds, ok := src.(*Dense); ok {
		copy(dst.data[offset*c:(offset+ds.r)*c], ds.data)

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < c; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			dst.data[(offset+i)*c+j] = v
		}
	}

	return nil
}
