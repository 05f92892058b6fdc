// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All code in this
// package MUST return these sentinels and callers MUST check them via
// errors.Is. No function panics on user-triggered conditions; panics are
// reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; wrap with fmt.Errorf("ctx: %w", ErrX) only where coordinates
// add diagnostic value - callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocating.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. a ragged [][]float64 passed to NewDenseFromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (cost matrices are always n×n).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadCost signals a value outside the extended non-negative reals:
	// NaN or -Inf, which never represent a travel cost. +Inf is legal data
	// (forbidden edge) and is NOT rejected by this package.
	ErrBadCost = errors.New("matrix: NaN or -Inf cost")
)
