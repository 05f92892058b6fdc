// SPDX-License-Identifier: MIT

// Package tsp - validation utilities shared by all solvers.
//
// This file contains small, tight helpers that:
//  1. Validate Options combinations (budgets, tolerances, ant knobs).
//  2. Validate cost matrices (shape, diagonal, negativity, NaN, symmetry).
//  3. Validate the start vertex once the matrix order is known.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix order; no hidden allocations.

package tsp

import (
	"math"
	"time"

	"github.com/akarpova/tourbound/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks. It is
// independent from Options.Eps (which governs "improvement" acceptance).
const symTol = 1e-12

// validateAll verifies Options + cost matrix and returns n (matrix order)
// on success.
//
// Contract:
//   - dist must be non-nil, square, and of size n≥2.
//   - Diagonal entries must be ~0 or +Inf; off-diagonal entries must be
//     non-negative and not NaN (+Inf is a forbidden edge, always legal).
//   - Symmetry is enforced only when opts.Symmetric is set.
//
// Complexity: O(n²) time, O(1) extra space.
func validateAll(dist matrix.Matrix, opts Options) (int, error) {
	var (
		n   int
		err error
	)

	// Stage 1: Options-only sanity.
	if err = validateOptionsStandalone(opts); err != nil {
		return 0, err
	}

	// Stage 2: Matrix shape/values.
	n, err = validateCostMatrix(dist, opts.Symmetric, symTol)
	if err != nil {
		return 0, err
	}

	// Stage 3: Start vertex range (after n is known).
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing matrices or tours.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	// TimeLimit must be non-negative (negative durations are undefined).
	if opts.TimeLimit < 0 {
		return ErrDimensionMismatch
	}
	// Eps is the acceptance tolerance for cost < incumbent-Eps. A negative
	// epsilon would invert the acceptance logic ⇒ reject.
	if opts.Eps < 0 {
		return ErrDimensionMismatch
	}

	// Ant-colony knobs: exponents non-negative, decay a proper fraction,
	// exploitation a probability, positive stall window and deposit scale.
	if opts.Alpha < 0 || opts.Beta < 0 {
		return ErrDimensionMismatch
	}
	if opts.Evaporation < 0 || opts.Evaporation >= 1 {
		return ErrDimensionMismatch
	}
	if opts.Exploit < 0 || opts.Exploit > 1 {
		return ErrDimensionMismatch
	}
	if opts.StallLimit <= 0 || opts.Deposit <= 0 {
		return ErrDimensionMismatch
	}
	if opts.RandomMaxTries < 0 {
		return ErrDimensionMismatch
	}

	// Accept only known algorithms.
	switch opts.Algo {
	case BranchAndBound, Greedy, AntColony, RandomTour:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// validateStartVertex verifies that start∈[0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// validateCostMatrix performs full matrix validation:
//   - non-nil, square, n>=2,
//   - diagonal ~0 (|a_ii| ≤ tol) or +Inf; anything else is rejected,
//   - no negative off-diagonal costs; NaN anywhere is invalid,
//   - +Inf off-diagonal is always allowed (forbidden edge),
//   - if symmetric: |a_ij − a_ji| ≤ tol (two +Inf entries count as equal).
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateCostMatrix(dist matrix.Matrix, symmetric bool, tol float64) (int, error) {
	// Stage 1: shape checks.
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr == 1 {
		// Trivial n==1 instance: no tour to speak of; require n>=2.
		return 0, ErrDimensionMismatch
	}
	var n = nr

	// Stage 2: diagonal, negativity, NaN.
	var (
		i, j     int
		aij, aji float64
		err      error
		abs      float64
	)

	// Diagonal: a_ii ~0 or +Inf.
	for i = 0; i < n; i++ {
		aij, err = dist.At(i, i)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(aij) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(aij, 1) {
			continue // canonical forbidden self-edge
		}
		abs = aij
		if abs < 0 {
			abs = -abs
		}
		if abs > tol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Off-diagonal scan.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // already checked
			}
			aij, err = dist.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(aij) {
				return 0, ErrDimensionMismatch
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	// Symmetry (opt-in).
	if symmetric {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				aij, err = dist.At(i, j)
				if err != nil {
					return 0, ErrDimensionMismatch
				}
				aji, err = dist.At(j, i)
				if err != nil {
					return 0, ErrDimensionMismatch
				}
				if math.IsInf(aij, 1) && math.IsInf(aji, 1) {
					continue // both forbidden - symmetric
				}
				abs = aij - aji // +Inf on one side yields ±Inf here
				if abs < 0 {
					abs = -abs
				}
				if abs > tol {
					return 0, ErrAsymmetry
				}
			}
		}
	}

	return n, nil
}

// compatibleTimeBudget returns whether the budget allows running at all.
// Policy: 0 means "unlimited".
//
// Complexity: O(1).
func compatibleTimeBudget(tl time.Duration) bool {
	if tl == 0 {
		return true
	}

	return tl > 0
}
