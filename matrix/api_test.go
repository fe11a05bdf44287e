// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/convexprep/matrix"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	_, err = matrix.FromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewColumnAndColumnValues(t *testing.T) {
	src := []float64{3, 1, 4}
	col, err := matrix.NewColumn(src)
	require.NoError(t, err)
	require.Equal(t, 3, col.Rows())
	require.Equal(t, 1, col.Cols())

	src[0] = 99 // constructor copied the slice
	vals, err := matrix.ColumnValues(col)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 4}, vals)

	vals, err = matrix.ColumnValues(hide{col})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 4}, vals)

	_, err = matrix.ColumnValues(MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNotColumnVector)
	_, err = matrix.NewColumn(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestSelectRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	got, err := matrix.SelectRows(hide{m}, []int{2, 0})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 6}, {1, 2}}, got)

	_, err = matrix.SelectRows(m, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1, 2 + 1e-7}})

	ok, err := matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, hide{b}, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
