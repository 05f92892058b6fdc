// SPDX-License-Identifier: MIT

// Package matrix provides dense storage for pairwise cost matrices.
//
// What & Why:
//
//	Solvers in this module consume an n×n table of directed travel costs
//	over the extended non-negative reals: a finite entry is an edge cost,
//	+Inf marks a forbidden edge (including the diagonal), and NaN or -Inf
//	is never valid data. The Matrix interface abstracts the storage so
//	tests and collaborators may supply their own implementations, while
//	Dense is the canonical row-major buffer used on hot paths.
//
// Safety:
//
//	Public accessors bounds-check and return sentinel errors instead of
//	panicking. Clone returns a deep, independent copy - search nodes rely
//	on that independence to mutate their private snapshots freely.
//
// Complexity:
//
//	Rows/Cols/At/Set: O(1). Clone: O(r*c).
package matrix
