// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the kernels.
// This file contains ONLY the public Matrix interface and the Range value
// produced by magnitude folds. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Range is the result of a magnitude fold: the smallest and largest absolute
// value among the entries that were counted, plus how many were counted.
// The zero Range (Count == 0) means "no entry observed"; Smallest and Largest
// are meaningless in that case.
type Range struct {
	Smallest float64 // min |v| over counted entries
	Largest  float64 // max |v| over counted entries
	Count    int     // number of counted entries
}

// Empty reports whether no entry was counted.
func (r Range) Empty() bool { return r.Count == 0 }

// Union merges two ranges into the range covering both.
// Pure: neither operand is modified. Complexity: O(1).
func (r Range) Union(o Range) Range {
	if r.Count == 0 {
		return o
	}
	if o.Count == 0 {
		return r
	}
	out := Range{Smallest: r.Smallest, Largest: r.Largest, Count: r.Count + o.Count}
	if o.Smallest < out.Smallest {
		out.Smallest = o.Smallest
	}
	if o.Largest > out.Largest {
		out.Largest = o.Largest
	}

	return out
}

// observe folds one absolute value into r and returns the new range.
func (r Range) observe(abs float64) Range {
	if r.Count == 0 {
		return Range{Smallest: abs, Largest: abs, Count: 1}
	}
	if abs < r.Smallest {
		r.Smallest = abs
	}
	if abs > r.Largest {
		r.Largest = abs
	}
	r.Count++

	return r
}
