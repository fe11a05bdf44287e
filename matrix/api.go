// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Literal constructors (FromRows, NewColumn) honor the Options numeric policy.

package matrix

import "fmt"

const (
	opFromRows     = "FromRows"
	opNewColumn    = "NewColumn"
	opColumnValues = "ColumnValues"
	opSelectRows   = "SelectRows"
)

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// FromRows builds a *Dense from a row-major literal, copying every value.
// MAIN DESCRIPTION:
//   - Convenience constructor for tests, examples and modeling layers.
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows.
//   - Stage 2: allocate with the resolved numeric policy and copy via Set
//     (so NaN/Inf are rejected when the policy is on).
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row), ErrRaggedRows, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d: %w", i, ErrRaggedRows))
		}
	}
	m, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// NewColumn builds an n×1 *Dense holding a copy of values.
// Errors: ErrInvalidDimensions (empty values), ErrNaNInf. Complexity: O(n).
func NewColumn(values []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m, err := newDenseWithPolicy(len(values), 1, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewColumn, err)
	}
	for i, v := range values {
		if err = m.Set(i, 0, v); err != nil {
			return nil, matrixErrorf(opNewColumn, err)
		}
	}

	return m, nil
}

// ColumnValues copies the single column of m into a fresh slice.
// Errors: ErrNilMatrix, ErrNotColumnVector. Complexity: O(r).
func ColumnValues(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnValues, err)
	}
	if err := ValidateColumnVector(m); err != nil {
		return nil, matrixErrorf(opColumnValues, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Col(0)
	}
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, 0); err != nil {
			return nil, matrixErrorf(opColumnValues, err)
		}
	}

	return out, nil
}

// SelectRows copies the listed rows of m, in the listed order, into a new
// *Dense with all columns kept. Duplicates are allowed; an empty list yields
// a legal 0×Cols matrix.
// Errors: ErrNilMatrix, ErrOutOfRange. Complexity: O(len(rows)*c).
func SelectRows(m Matrix, rows []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}
	d, ok := m.(*Dense)
	if !ok {
		var err error
		if d, err = DenseCopyOf(m); err != nil {
			return nil, matrixErrorf(opSelectRows, err)
		}
	}
	cols := make([]int, d.c)
	for j := range cols {
		cols[j] = j
	}
	res, err := d.Induced(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}

	return res, nil
}

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// AllCloseDefault is AllClose with rtol = atol = the resolved epsilon
// (DefaultEpsilon unless overridden by WithEpsilon).
func AllCloseDefault(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, o.eps, o.eps)
}
