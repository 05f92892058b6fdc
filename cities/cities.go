// SPDX-License-Identifier: MIT

// Package cities adapts collaborator-supplied city data to the cost-matrix
// contract consumed by the solvers.
//
// A City is an immutable value: an index, a planar position and an
// elevation. Position and elevation exist only to compute travel costs;
// the solvers themselves never read them. The pairwise cost is asymmetric
// (climbing costs more than descending) and may be +Inf - a forbidden
// edge. Self-travel is always forbidden.
//
// Generation of cities (random sampling, difficulty modes, UI) is a
// collaborator concern and intentionally absent here.
package cities

import (
	"math"

	"github.com/akarpova/tourbound/matrix"
)

// City is one node of the problem. Values are immutable once built;
// solvers reference cities by index only.
type City struct {
	// ID is the identity index in [0..n-1], matching the city's row and
	// column in the cost matrix.
	ID int

	// X, Y is the planar position used for the Euclidean base distance.
	X, Y float64

	// Elevation skews the base distance directionally: ascending edges
	// cost more, descending cost less, steep descents become forbidden.
	Elevation float64
}

// Cost returns the directed travel cost from city a to city b over the
// extended non-negative reals.
//
// Semantics:
//   - a.ID == b.ID          ⇒ +Inf (self-travel forbidden).
//   - scale = 1 + (b.Elevation - a.Elevation); scale <= 0 ⇒ +Inf
//     (the descent is too steep to traverse - a forbidden edge).
//   - otherwise cost = EuclideanDistance(a,b) * scale.
//
// The function is deterministic and side-effect free; re-evaluating it for
// an unchanged pair always yields the same value.
//
// Complexity: O(1).
func Cost(a, b City) float64 {
	if a.ID == b.ID {
		return math.Inf(1)
	}

	scale := 1 + (b.Elevation - a.Elevation)
	if scale <= 0 {
		return math.Inf(1)
	}

	return math.Hypot(a.X-b.X, a.Y-b.Y) * scale
}

// CostMatrix builds the full n×n cost matrix for the given cities, with
// matrix[i][j] = Cost(cities[i], cities[j]) and a +Inf diagonal.
//
// Contracts:
//   - len(cities) >= 2 (a tour needs at least two cities).
//   - cities[i].ID == i for every i - the matrix is indexed positionally,
//     and a mismatched ID would silently shear costs.
//
// Errors: matrix.ErrInvalidDimensions on a short slice,
// matrix.ErrDimensionMismatch on an ID/position mismatch.
//
// Complexity: O(n²) time and space.
func CostMatrix(list []City) (*matrix.Dense, error) {
	n := len(list)
	if n < 2 {
		return nil, matrix.ErrInvalidDimensions
	}

	var i int
	for i = 0; i < n; i++ {
		if list[i].ID != i {
			return nil, matrix.ErrDimensionMismatch
		}
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	// Fill through the flat buffer; Cost never yields NaN or -Inf, so the
	// write policy cannot fire here.
	var (
		buf = m.Data()
		j   int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			buf[i*n+j] = Cost(list[i], list[j])
		}
	}

	return m, nil
}
