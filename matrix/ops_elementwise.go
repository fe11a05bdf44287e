// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) to avoid
//     duplicating tight loops across public ops (Scale, ScaleRows, AllClose).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
// The result keeps X's numeric policy when X is *Dense and is rejected with
// ErrNaNInf if any product overflows under that policy.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewScaleRows(tag string, X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != r {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		var nv float64
		for i := 0; i < r; i++ {
			base := i * c  // row base offset
			sf := scale[i] // scale factor for row i
			for j := 0; j < c; j++ {
				nv = d.data[base+j] * sf
				if out.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
					return nil, matrixErrorf(tag, denseErrorf(ctxSet, i, j, ErrNaNInf))
				}
				out.data[base+j] = nv
			}
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		sf := scale[i]
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, e))
			}
			if e = out.Set(i, j, v*sf); e != nil {
				return nil, matrixErrorf(tag, e)
			}
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < r*c; idx++ {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough: NaN != anything; equal infinities compare equal.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
