// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric containers consumed by the convex
// problem assembler.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over a two-dimensional float64 array with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Stack for vertical concatenation ("append rows below") without touching
//     either operand.
//   - RowMagnitudes / Magnitudes: pure folds that return the smallest and
//     largest nonzero absolute values of a row or of a whole matrix.
//   - Row selection (SelectRows), per-row scaling (ScaleRows, Scale) and the
//     few kernels the assembler needs (MatVec, AllClose).
//
// Every public entry point returns sentinel errors (see errors.go) and never
// panics on user input. Operands are never mutated unless the method name
// says so (Set).
//
// Complexity: At/Set O(1); Clone/Stack/Scale O(r*c); row folds O(c).
package matrix
