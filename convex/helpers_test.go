// SPDX-License-Identifier: MIT
package convex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/convexprep/matrix"
)

// approx compares float slices up to rounding noise.
var approx = cmpopts.EquateApprox(0, 1e-12)

// rows BUILDS a *Dense from a literal or fails the test.
func rows(t *testing.T, r [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(r)
	require.NoError(t, err)

	return m
}

// col BUILDS an n×1 column or fails the test.
func col(t *testing.T, v ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewColumn(v)
	require.NoError(t, err)

	return m
}

// dump reads any Matrix into [][]float64 for cmp.
func dump(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	if m == nil {
		return nil
	}
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// requireMatrix asserts m holds want within approx.
func requireMatrix(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if diff := cmp.Diff(want, dump(t, m), approx); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// requireVector asserts got equals want within approx.
func requireVector(t *testing.T, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

// hide masks the concrete *Dense type so the assembler sees a foreign Matrix.
type hide struct{ matrix.Matrix }
