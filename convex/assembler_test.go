// SPDX-License-Identifier: MIT
package convex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/convexprep/convex"
	"github.com/katalvlaran/convexprep/matrix"
)

// TestAppendEqualities_StacksInOrder: AE1 above AE2, BE1 above BE2.
func TestAppendEqualities_StacksInOrder(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	require.NoError(t, a.AppendEqualities(rows(t, [][]float64{{1, 2}}), col(t, 3)))
	require.NoError(t, a.AppendEqualities(rows(t, [][]float64{{4, 5}, {6, 7}}), hide{col(t, 8, 9)}))

	p, _, err := a.Build()
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{1, 2}, {4, 5}, {6, 7}}, p.AE())
	requireMatrix(t, [][]float64{{3}, {8}, {9}}, p.BE())
	require.Equal(t, 3, a.CountEqualities())
	require.True(t, a.HasEqualities())
	require.False(t, a.HasInequalities())
	require.Nil(t, p.AI()) // absent block is a plain nil Matrix
}

// TestAppend_ColumnMismatchBreaksAssembler covers both constraint kinds.
func TestAppend_ColumnMismatchBreaksAssembler(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		append func(a *convex.Assembler) error
	}{
		{"equalities", func(a *convex.Assembler) error {
			return a.AppendEqualities(rows(t, [][]float64{{1, 2, 3}}), nil)
		}},
		{"inequalities", func(a *convex.Assembler) error {
			return a.AppendInequalities(rows(t, [][]float64{{1}}), col(t, 0))
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := convex.NewAssembler()
			require.NoError(t, a.AppendEqualities(rows(t, [][]float64{{1, 1}}), col(t, 2)))

			err := tc.append(a)
			require.ErrorIs(t, err, convex.ErrConfiguration)
			require.ErrorIs(t, err, convex.ErrColumnMismatch)
			require.ErrorIs(t, a.Err(), convex.ErrColumnMismatch)

			// Every later mutation is refused.
			err = a.AppendEqualities(rows(t, [][]float64{{1, 1}}), col(t, 2))
			require.ErrorIs(t, err, convex.ErrAssemblerBroken)
			_, _, err = a.Build()
			require.ErrorIs(t, err, convex.ErrAssemblerBroken)
			require.ErrorIs(t, a.Balance(), convex.ErrAssemblerBroken)
		})
	}
}

// TestAppend_RightHandSideShape rejects bad right-hand sides and fills a nil one.
func TestAppend_RightHandSideShape(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	err := a.AppendEqualities(rows(t, [][]float64{{1}, {2}}), col(t, 1))
	require.ErrorIs(t, err, convex.ErrRowMismatch)

	a = convex.NewAssembler()
	err = a.AppendInequalities(rows(t, [][]float64{{1}}), rows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, convex.ErrNotColumnVector)

	a = convex.NewAssembler()
	err = a.AppendEqualities(nil, col(t, 1))
	require.ErrorIs(t, err, convex.ErrNilBlock)

	a = convex.NewAssembler()
	require.NoError(t, a.AppendEqualities(rows(t, [][]float64{{1, 0}, {0, 1}}), nil))
	p, _, err := a.Build()
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{0}, {0}}, p.BE())
}

// TestAppend_DoesNotAliasCaller: reusing a block after appending it is safe.
func TestAppend_DoesNotAliasCaller(t *testing.T) {
	t.Parallel()
	ae := rows(t, [][]float64{{1, 2}})
	be := col(t, 3)
	a := convex.NewAssembler()
	require.NoError(t, a.AppendEqualities(ae, be))
	require.NoError(t, ae.Set(0, 0, 100))
	require.NoError(t, be.Set(0, 0, 100))
	require.NoError(t, a.AppendEqualities(ae, be))

	p, _, err := a.Build()
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{1, 2}, {100, 2}}, p.AE())
	requireMatrix(t, [][]float64{{3}, {100}}, p.BE())
	requireMatrix(t, [][]float64{{100, 2}}, ae) // caller block untouched by stacking
}

// TestObjective_QuadraticThenLinear: nil C becomes zeros; linear clears Q.
func TestObjective_QuadraticThenLinear(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	require.NoError(t, a.SetQuadraticObjective(rows(t, [][]float64{{2, 0}, {0, 2}}), nil))
	p, _, err := a.Build()
	require.NoError(t, err)
	require.True(t, p.IsQuadratic())
	requireMatrix(t, [][]float64{{0}, {0}}, p.C())

	require.NoError(t, a.SetObjective(col(t, 1, -1)))
	p, _, err = a.Build()
	require.NoError(t, err)
	require.False(t, p.IsQuadratic())
	require.Nil(t, p.Q())
	requireMatrix(t, [][]float64{{1}, {-1}}, p.C())
	require.True(t, a.HasObjective())
}

// TestObjective_ShapeErrors covers Q not square and C of the wrong length.
func TestObjective_ShapeErrors(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	err := a.SetQuadraticObjective(rows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), nil)
	require.ErrorIs(t, err, convex.ErrConfiguration)
	require.ErrorIs(t, err, convex.ErrNotSquare)

	a = convex.NewAssembler()
	require.NoError(t, a.AppendInequalities(rows(t, [][]float64{{1, 1, 1}}), col(t, 1)))
	err = a.SetObjective(col(t, 1, 1))
	require.ErrorIs(t, err, convex.ErrColumnMismatch)

	a = convex.NewAssembler()
	err = a.SetObjective(rows(t, [][]float64{{1, 1}}))
	require.ErrorIs(t, err, convex.ErrNotColumnVector)

	a = convex.NewAssembler()
	require.ErrorIs(t, a.SetObjective(nil), convex.ErrNilBlock)
}

// TestVariableCount_PreferenceOrder: AE, then AI, then Q, then C.
func TestVariableCount_PreferenceOrder(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	_, err := a.VariableCount()
	require.ErrorIs(t, err, convex.ErrConfiguration)
	require.ErrorIs(t, err, convex.ErrUndecidableVariables)
	_, _, err = a.Build()
	require.ErrorIs(t, err, convex.ErrUndecidableVariables)

	require.NoError(t, a.SetObjective(col(t, 1, 2, 3)))
	n, err := a.VariableCount()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.NoError(t, a.AppendInequalities(rows(t, [][]float64{{1, 0, 0}}), col(t, 1)))
	n, err = a.VariableCount()
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

// TestProvenance_ConcatenatesInOrder: blocks of 2 and 3 rows give 5 entries.
func TestProvenance_ConcatenatesInOrder(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	require.NoError(t, a.AppendInequalities(
		rows(t, [][]float64{{1, 0}, {0, 1}}), col(t, 1, 1), "a0", "a1"))
	require.NoError(t, a.AppendInequalities(
		rows(t, [][]float64{{1, 1}, {1, -1}, {-1, 1}}), col(t, 2, 0, 0), "b0", "b1", "b2"))

	require.Equal(t, []convex.Entity{"a0", "a1", "b0", "b1", "b2"}, a.Provenance())
	require.Equal(t, 5, a.CountInequalities())
}

// TestProvenance_UntaggedRowsArePadded: mixing tagged and untagged blocks.
func TestProvenance_UntaggedRowsArePadded(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	require.NoError(t, a.AppendInequalities(rows(t, [][]float64{{1}, {2}}), nil))
	require.NoError(t, a.AppendInequalities(rows(t, [][]float64{{3}}), col(t, 1), "cap"))

	require.Equal(t, []convex.Entity{nil, nil, "cap"}, a.Provenance())

	p, _, err := a.Build()
	require.NoError(t, err)
	require.Equal(t, []int{2}, p.RowsFor("cap"))
	require.Equal(t, []int{0, 1}, p.RowsFor(nil))
	require.Empty(t, p.RowsFor("missing"))
	require.Empty(t, p.RowsFor([]int{1})) // non-comparable entity matches nothing
}

// TestProvenance_WrongLength is a configuration error.
func TestProvenance_WrongLength(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	err := a.AppendInequalities(rows(t, [][]float64{{1}, {2}}), nil, "only-one")
	require.ErrorIs(t, err, convex.ErrConfiguration)
	require.ErrorIs(t, err, convex.ErrProvenanceLength)
}

// TestZeroRowBlock_IsAbsent: an empty selection adds nothing.
func TestZeroRowBlock_IsAbsent(t *testing.T) {
	t.Parallel()
	empty, err := matrix.SelectRows(rows(t, [][]float64{{1, 2}}), nil)
	require.NoError(t, err)

	a := convex.NewAssembler()
	require.NoError(t, a.AppendInequalities(empty, nil))
	require.False(t, a.HasInequalities())
	require.Empty(t, a.Provenance())
	_, err = a.VariableCount()
	require.ErrorIs(t, err, convex.ErrUndecidableVariables)
}

// TestCopy_IsIndependent: appending to the copy leaves the original alone.
func TestCopy_IsIndependent(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	require.NoError(t, a.AppendInequalities(rows(t, [][]float64{{1, 1}}), col(t, 4), "x"))
	b := a.Copy()
	require.NoError(t, b.AppendInequalities(rows(t, [][]float64{{1, -1}}), col(t, 0), "y"))
	require.NoError(t, b.Balance())

	require.Equal(t, 1, a.CountInequalities())
	require.Equal(t, []convex.Entity{"x"}, a.Provenance())
	require.Equal(t, []convex.Entity{"x", "y"}, b.Provenance())
	requireVector(t, []float64{1}, a.Scaling().Inequality)
}

// TestBuild_ProblemIsFrozen: later mutations do not leak into a built Problem.
func TestBuild_ProblemIsFrozen(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	require.NoError(t, a.AppendEqualities(rows(t, [][]float64{{1000, 10}}), col(t, -100)))
	p, _, err := a.Build()
	require.NoError(t, err)

	require.NoError(t, a.Balance())
	require.NoError(t, a.AppendEqualities(rows(t, [][]float64{{1, 1}}), col(t, 1)))

	require.Equal(t, 1, p.CountEqualities())
	require.True(t, p.HasEqualities())
	require.False(t, p.HasInequalities())
	require.False(t, p.HasObjective())
	requireMatrix(t, [][]float64{{1000, 10}}, p.AE())
	requireMatrix(t, [][]float64{{-100}}, p.BE())
}

// TestFromBlocks_MatchesIncremental builds the same problem both ways.
func TestFromBlocks_MatchesIncremental(t *testing.T) {
	t.Parallel()
	inc := convex.NewAssembler()
	require.NoError(t, inc.AppendEqualities(rows(t, [][]float64{{1, 1}}), col(t, 2)))
	require.NoError(t, inc.AppendInequalities(rows(t, [][]float64{{1, 0}}), col(t, 5), "cap1"))
	require.NoError(t, inc.SetObjective(col(t, 1, 1)))

	blk, err := convex.FromBlocks(convex.Blocks{
		AE: rows(t, [][]float64{{1, 1}}), BE: col(t, 2),
		AI: rows(t, [][]float64{{1, 0}}), BI: col(t, 5),
		C:          col(t, 1, 1),
		Provenance: []convex.Entity{"cap1"},
	})
	require.NoError(t, err)
	require.Equal(t, inc.String(), blk.String())
	require.Equal(t, inc.Provenance(), blk.Provenance())

	_, err = convex.FromBlocks(convex.Blocks{AE: rows(t, [][]float64{{1}}), C: col(t, 1, 1)})
	require.ErrorIs(t, err, convex.ErrColumnMismatch)
}

// TestKickStarter seeds X and is length-checked.
func TestKickStarter(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler(convex.WithKickStarter([]float64{0.5, 1.5}))
	require.NoError(t, a.SetObjective(col(t, 1, 1)))
	_, s, err := a.Build()
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.5}, s.X())

	s.ResetX()
	require.Equal(t, []float64{0, 0}, s.X())

	err = a.SetKickStarter([]float64{1})
	require.ErrorIs(t, err, convex.ErrKickStarterLength)

	b := convex.NewAssembler(convex.WithKickStarter([]float64{1, 2, 3}))
	require.NoError(t, b.SetObjective(col(t, 1)))
	_, _, err = b.Build()
	require.ErrorIs(t, err, convex.ErrKickStarterLength)
}

// TestOptions_PanicOnInvalid pins the stable panic messages.
func TestOptions_PanicOnInvalid(t *testing.T) {
	t.Parallel()
	require.PanicsWithValue(t, "convex: WithExponentRule: rule must be non-nil", func() {
		_ = convex.WithExponentRule(nil)
	})
	require.PanicsWithValue(t, "convex: WithEpsilon: eps must be finite, non-negative", func() {
		_ = convex.WithEpsilon(-1)
	})
}

// TestAssembler_String dumps absent blocks as "?".
func TestAssembler_String(t *testing.T) {
	t.Parallel()
	a := convex.NewAssembler()
	require.NoError(t, a.AppendEqualities(rows(t, [][]float64{{1, 1}, {2, 0.5}}), col(t, 2, 3)))
	want := "<Assembler>\n" +
		"[AE] = [1, 1]\n[2, 0.5]\n" +
		"[BE] = [2, 3]\n" +
		"[Q] = ?\n" +
		"[C] = ?\n" +
		"[AI] = ?\n" +
		"[BI] = ?\n" +
		"</Assembler>"
	require.Equal(t, want, a.String())
}
