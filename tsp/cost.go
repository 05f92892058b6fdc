// SPDX-License-Identifier: MIT

// Package tsp - cost utilities shared by all solvers.
//
// Small, allocation-conscious helpers to compute the total cost of a
// Hamiltonian cycle represented by a vertex index tour. Intentionally
// minimal and side-effect free: re-scoring an unchanged tour always yields
// the same value.
//
// Design:
//   - Fast path for *matrix.Dense and generic path for any matrix.Matrix.
//   - Strict sentinels from types.go on any invalid input.
//   - Defensive checks (NaN/negative/forbidden) even after validateAll.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity: O(n) time for a tour of length n+1, O(1) extra space.

package tsp

import (
	"math"

	"github.com/akarpova/tourbound/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums the directed edge costs along the closed cycle
// tour[0]→tour[1]→…→tour[len-1].
//
// Contract:
//   - tour must be closed: len(tour) >= 2, indices within [0..n-1].
//   - dist must be square (n×n).
//   - Returns ErrForbiddenEdge when the tour crosses a +Inf edge,
//     ErrNonSquare / ErrDimensionMismatch / ErrNegativeWeight otherwise.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	if d, ok := dist.(*matrix.Dense); ok {
		return tourCostDense(d, tour)
	}

	return tourCostGeneric(dist, tour)
}

// tourCostDense walks the flat row-major buffer directly.
func tourCostDense(d *matrix.Dense, tour []int) (float64, error) {
	var (
		n = d.Rows()
		w = d.Data()
	)
	if n != d.Cols() || n <= 0 {
		return 0, ErrNonSquare
	}

	var (
		sum  float64
		i    int
		u, v int
		x    float64
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		x = w[u*n+v]
		if math.IsNaN(x) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(x, 1) {
			return 0, ErrForbiddenEdge
		}
		if x < 0 {
			return 0, ErrNegativeWeight
		}
		sum += x
	}

	return round1e9(sum), nil
}

// tourCostGeneric sums costs through the matrix.Matrix interface.
// Same checks as tourCostDense; slightly higher call overhead.
func tourCostGeneric(m matrix.Matrix, tour []int) (float64, error) {
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}

	var (
		sum  float64
		i    int
		u, v int
		x    float64
		err  error
		n    = nr
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		x, err = m.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(x) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(x, 1) {
			return 0, ErrForbiddenEdge
		}
		if x < 0 {
			return 0, ErrNegativeWeight
		}
		sum += x
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision. Keeps reported
// costs stable across platforms without affecting optimality.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// prefetch loads dist into a dense flat buffer w[u*n+v] with the diagonal
// masked to +Inf, removing interface overhead from solver hot loops.
// NaN is rejected; negative costs are rejected; +Inf passes through.
//
// Complexity: O(n²).
func prefetch(dist matrix.Matrix) ([]float64, int, error) {
	if dist == nil {
		return nil, 0, ErrDimensionMismatch
	}
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return nil, 0, ErrNonSquare
	}

	var (
		w    = make([]float64, n*n)
		i, j int
		x    float64
		err  error
		inf  = math.Inf(1)
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				w[i*n+j] = inf
				continue
			}
			x, err = dist.At(i, j)
			if err != nil || math.IsNaN(x) {
				return nil, 0, ErrDimensionMismatch
			}
			if x < 0 {
				return nil, 0, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}

	return w, n, nil
}
