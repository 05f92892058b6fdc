// SPDX-License-Identifier: MIT

// Package tsp - tour utilities shared by all solvers.
//
// Compact helpers operating purely on tour structure (index sequences),
// independent of cost matrices:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - MakeTourFromPermutation: closed tour from a permutation, rotated to a start.
//   - ValidateTour: enforce Hamiltonian-cycle invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a vertex.
//   - CopyTour: independent copy of a tour slice.
//   - EqualToursModuloRotation: equality under rotation (same direction).
//   - DebugString: compact printable form for tests/debug.
//
// Orientation is never canonicalized here: costs are asymmetric, so
// reversing a tour changes its cost.
//
// Design: no logging, no panics on user input - only sentinel errors from
// types.go; O(n) time for every helper.

package tsp

import (
	"fmt"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n. Allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation builds a closed Hamiltonian tour from a vertex
// permutation, rotated so the tour starts (and closes) at start.
//
// Contract:
//   - perm is a permutation of {0..n-1} (ValidatePermutation).
//   - start ∈ [0..n-1].
//   - Returned tour satisfies: len==n+1, tour[0]==tour[n]==start.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if err := validateStartVertex(n, start); err != nil {
		return nil, err
	}

	// Locate start inside perm (guaranteed present after validation).
	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}

	// Rotate into a fresh [n+1] tour and close with start.
	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if err := validateStartVertex(n, start); err != nil {
		return err
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// RotateTourToStart returns a fresh closed copy of the tour shifted so that
// out[0] == start and out[n] == start. The input may be either a closed
// tour (len==n+1) or a raw path (len==n); the closing vertex is appended
// either way.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}

	// Determine n (number of unique vertices).
	var n int
	if tour[0] == tour[len(tour)-1] && len(tour) > 1 {
		n = len(tour) - 1
	} else {
		n = len(tour)
	}
	if err := validateStartVertex(n, start); err != nil {
		return nil, err
	}

	// Find start in the first n entries.
	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	// Build the rotated copy and close it.
	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualToursModuloRotation checks equality of two closed tours under
// rotation (same direction - direction matters for asymmetric costs).
// Assumes both inputs are closed (len==n+1).
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var (
		n  = len(a) - 1
		st = a[0]
	)
	if a[n] != st || b[n] != b[0] {
		return false
	}

	// Find st in b[0..n-1].
	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j] == st {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	// Compare by rotation.
	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closure.
//
// Complexity: O(n) time, O(n) space.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		n = len(tour) - 1
		b strings.Builder
		i int
	)
	b.WriteString("[")
	for i = 0; i < n; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%d", tour[i]))
	}
	b.WriteString(" | ")
	b.WriteString(fmt.Sprintf("%d", tour[n]))
	b.WriteString("]")

	return b.String()
}
