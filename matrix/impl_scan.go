// SPDX-License-Identifier: MIT

// Package matrix - magnitude folds.
//
// Purpose:
//   - Report the smallest and largest nonzero absolute value of a row or of a
//     whole matrix as a pure fold returning a Range value.
//   - Callers combine several folds with Range.Union (e.g. a coefficient row
//     together with its right-hand-side entry).
//
// Policy:
//   - An entry is counted iff |v| > tol. With tol == 0 exact zeros are skipped.
//   - NaN never satisfies |v| > tol and is therefore never counted.

package matrix

import (
	"fmt"
	"math"
)

const (
	opRowMagnitudes = "RowMagnitudes"
	opMagnitudes    = "Magnitudes"
)

// RowMagnitudes folds row i of m into a Range of absolute values above tol.
// MAIN DESCRIPTION:
//   - Per-row scan used by row balancing.
//
// Implementation:
//   - Stage 1: validate m non-nil, row index in range, tol finite and ≥ 0.
//   - Stage 2: *Dense walks the flat row slice; other types use At(i,j).
//     Magnitudes does the same over the whole matrix through Dense.Do.
//
// Returns:
//   - Range with Count == 0 when the row has no entry above tol.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (bad tol).
//
// Complexity:
//   - Time O(c), Space O(1).
func RowMagnitudes(m Matrix, i int, tol float64) (Range, error) {
	if err := ValidateNotNil(m); err != nil {
		return Range{}, matrixErrorf(opRowMagnitudes, err)
	}
	if err := validateTol(tol); err != nil {
		return Range{}, matrixErrorf(opRowMagnitudes, err)
	}
	if i < 0 || i >= m.Rows() {
		return Range{}, matrixErrorf(opRowMagnitudes, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}

	var r Range
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data[i*d.c : (i+1)*d.c] {
			r = foldAbs(r, v, tol)
		}

		return r, nil
	}

	var v float64
	var err error
	for j := 0; j < m.Cols(); j++ {
		v, err = m.At(i, j)
		if err != nil {
			return Range{}, matrixErrorf(opRowMagnitudes, err)
		}
		r = foldAbs(r, v, tol)
	}

	return r, nil
}

// Magnitudes folds every entry of m into a Range of absolute values above tol.
// Errors: ErrNilMatrix, ErrNaNInf (bad tol). Complexity: O(r*c).
func Magnitudes(m Matrix, tol float64) (Range, error) {
	if err := ValidateNotNil(m); err != nil {
		return Range{}, matrixErrorf(opMagnitudes, err)
	}
	if err := validateTol(tol); err != nil {
		return Range{}, matrixErrorf(opMagnitudes, err)
	}

	var r Range
	if d, ok := m.(*Dense); ok {
		d.Do(func(_, _ int, v float64) bool {
			r = foldAbs(r, v, tol)

			return true
		})

		return r, nil
	}

	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return Range{}, matrixErrorf(opMagnitudes, err)
			}
			r = foldAbs(r, v, tol)
		}
	}

	return r, nil
}

// foldAbs adds |v| to r when it is above tol.
func foldAbs(r Range, v, tol float64) Range {
	abs := math.Abs(v)
	if abs > tol {
		return r.observe(abs)
	}

	return r
}

func validateTol(tol float64) error {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return ErrNaNInf
	}

	return nil
}
