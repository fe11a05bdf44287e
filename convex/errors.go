// SPDX-License-Identifier: MIT
// Package convex: sentinel error set.
//
// Every error returned by the assembler is either a configuration error
// (wraps ErrConfiguration plus one specific sentinel below) or the
// non-fatal ErrUnavailable. Callers match with errors.Is.

package convex

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks every fatal contract violation: shape mismatch,
	// undecidable variable count, bad provenance. After one is returned by a
	// mutation the Assembler must be discarded.
	ErrConfiguration = errors.New("convex: configuration error")

	// ErrAssemblerBroken is returned by every mutation attempted on an
	// Assembler that already reported a configuration error.
	ErrAssemblerBroken = errors.New("convex: assembler is broken by an earlier configuration error")

	// ErrUnavailable signals that a derived value (slack) cannot be computed
	// because its prerequisite blocks are absent. It is not fatal.
	ErrUnavailable = errors.New("convex: value unavailable")
)

// Specific configuration causes. Always wrapped together with ErrConfiguration.
var (
	ErrNilBlock             = errors.New("convex: nil block")
	ErrColumnMismatch       = errors.New("convex: column count disagrees with variable count")
	ErrRowMismatch          = errors.New("convex: row count mismatch between coefficients and right-hand side")
	ErrNotColumnVector      = errors.New("convex: block must have exactly one column")
	ErrNotSquare            = errors.New("convex: quadratic term must be n×n")
	ErrUndecidableVariables = errors.New("convex: cannot deduce the number of variables")
	ErrProvenanceLength     = errors.New("convex: provenance length differs from inequality row count")
	ErrKickStarterLength    = errors.New("convex: kick-starter length differs from variable count")
)

// configErrorf tags err as a configuration error raised by op.
// errors.Is matches both ErrConfiguration and err.
func configErrorf(op string, err error) error {
	return fmt.Errorf("convex.%s: %w: %w", op, ErrConfiguration, err)
}

// opErrorf wraps err with an operation tag, preserving the original error via %w.
func opErrorf(op string, err error) error {
	return fmt.Errorf("convex.%s: %w", op, err)
}
