// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/convexprep/matrix"
	"github.com/stretchr/testify/require"
)

// TestScale multiplies every entry and leaves the operand untouched.
func TestScale(t *testing.T) {
	m := MustRows(t, [][]float64{{1, -2}, {0, 4}})

	got, err := matrix.Scale(m, 0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, -1}, {0, 2}}, got)
	CompareExact(t, [][]float64{{1, -2}, {0, 4}}, m) // operand intact

	slow, err := matrix.Scale(hide{m}, 0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, -1}, {0, 2}}, slow)

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScaleRows applies one factor per row.
func TestScaleRows(t *testing.T) {
	m := MustRows(t, [][]float64{{100, 200}, {0.01, 0.02}})

	got, err := matrix.ScaleRows(m, []float64{0.01, 100})
	require.NoError(t, err)
	ok, err := matrix.AllClose(got, MustRows(t, [][]float64{{1, 2}, {1, 2}}), 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.ScaleRows(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.ScaleRows(m, []float64{math.Inf(1), 1})
	require.ErrorIs(t, err, matrix.ErrNaNInf) // overflow rejected under default policy
}

// TestMatVec checks y = A*x on both paths and the length contract.
func TestMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}, {0, -1}})
	x := []float64{1, -1}

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, 1}, y)

	y2, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	require.Equal(t, y, y2) // fallback == fast path

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
