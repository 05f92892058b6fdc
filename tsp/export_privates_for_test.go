// SPDX-License-Identifier: MIT

package tsp

// Test-Bridge (White-Box) for PartialPath internals
//
// Purpose:
//   - Expose the node's private reduced matrix to tsp_test ONLY, so the
//     reduction property (every row/column with a finite entry holds a
//     zero) can be asserted without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds; it is
//     compiled only alongside the test binary.
//
// Behavior & Determinism:
//   - Read-only pass-throughs; no allocations, no side effects.

import "math"

// ReducedEntry_TestOnly returns entry (u, v) of the node's private reduced
// matrix. Callers must check HasReducedMatrix_TestOnly first: dead branches
// carry no matrix.
func ReducedEntry_TestOnly(p *PartialPath, u, v int) float64 {
	return p.at(u, v)
}

// HasReducedMatrix_TestOnly reports whether the node carries a reduced
// matrix (false exactly on signaled dead branches).
func HasReducedMatrix_TestOnly(p *PartialPath) bool {
	return p.w != nil
}

// Order_TestOnly returns the matrix order n of the node's instance.
func Order_TestOnly(p *PartialPath) int {
	return p.n
}

// RowHasFiniteAndZero_TestOnly scans row u of the reduced matrix and
// reports (hasFinite, hasZero) within the given tolerance.
func RowHasFiniteAndZero_TestOnly(p *PartialPath, u int, tol float64) (bool, bool) {
	var (
		hasFinite, hasZero bool
		j                  int
		v                  float64
	)
	for j = 0; j < p.n; j++ {
		v = p.at(u, j)
		if math.IsInf(v, 1) {
			continue
		}
		hasFinite = true
		if math.Abs(v) <= tol {
			hasZero = true
		}
	}

	return hasFinite, hasZero
}

// ColHasFiniteAndZero_TestOnly scans column v of the reduced matrix and
// reports (hasFinite, hasZero) within the given tolerance.
func ColHasFiniteAndZero_TestOnly(p *PartialPath, v int, tol float64) (bool, bool) {
	var (
		hasFinite, hasZero bool
		i                  int
		x                  float64
	)
	for i = 0; i < p.n; i++ {
		x = p.at(i, v)
		if math.IsInf(x, 1) {
			continue
		}
		hasFinite = true
		if math.Abs(x) <= tol {
			hasZero = true
		}
	}

	return hasFinite, hasZero
}
