// SPDX-License-Identifier: MIT

// Package tsp - greedy nearest-neighbor construction.
//
// TSPGreedy runs one nearest-neighbor pass per candidate start city and
// keeps the cheapest full, closeable tour. Fully deterministic: ties on
// edge cost break toward the smaller index.
//
// A pass walks the cheapest outgoing edge from the current city, masking
// every chosen destination's column so no city is entered twice. Passes
// that strand (no finite outgoing edge) or cannot close are silently
// discarded - other starts may still succeed.
//
// Complexity: O(n) per step, O(n²) per pass, O(n³) across all starts.

package tsp

import (
	"math"
	"time"

	"github.com/akarpova/tourbound/matrix"
)

// TSPGreedy is the public entrypoint for the nearest-neighbor builder.
// The returned tour starts and closes at opts.StartVertex; Improvements
// counts every pass that strictly improved the running best.
//
// Errors:
//   - Strict validation sentinels for malformed inputs.
//   - ErrNoSolution (with Cost == NoSolutionCost) when every start fails.
func TSPGreedy(dist matrix.Matrix, opts Options) (TSResult, error) {
	began := time.Now()

	w, n, err := prefetch(dist)
	if err != nil {
		return TSResult{}, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	var (
		useDeadline = compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0
		deadline    = began.Add(opts.TimeLimit)
		eps         = opts.Eps
		bestCost    = math.Inf(1)
		best        []int
		improves    int
		s           int
	)
	if eps < 0 {
		eps = 0
	}

	for s = 0; s < n; s++ {
		// Deadline polled once per pass; a pass in flight runs to completion.
		if useDeadline && time.Now().After(deadline) {
			break
		}

		tour, cost, ok := greedyPass(w, n, s)
		if !ok {
			continue // stranded or unclosable - discard silently
		}
		if cost < bestCost-eps {
			bestCost = cost
			best = tour
			improves++
		}
	}

	if best == nil {
		return TSResult{Cost: NoSolutionCost, Elapsed: time.Since(began)}, ErrNoSolution
	}

	// Normalize so the reported tour starts at the requested vertex.
	closed, rerr := RotateTourToStart(best, opts.StartVertex)
	if rerr != nil {
		return TSResult{}, rerr
	}

	return TSResult{
		Tour:         closed,
		Cost:         round1e9(bestCost),
		Elapsed:      time.Since(began),
		Improvements: improves,
	}, nil
}

// greedyPass runs a single nearest-neighbor walk from start over a private
// masked copy of w. Returns the open tour (length n), its closed cost, and
// whether the pass produced a valid tour.
func greedyPass(w []float64, n int, start int) ([]int, float64, bool) {
	// Private mask copy: column j is forbidden once city j is entered.
	m := make([]float64, len(w))
	copy(m, w)

	var (
		inf  = math.Inf(1)
		tour = make([]int, 1, n)
		cur  = start
		sum  float64
		step int
		j    int
	)
	tour[0] = start

	// Forbid returning to the start until the closing edge.
	for j = 0; j < n; j++ {
		m[j*n+start] = inf
	}

	for step = 1; step < n; step++ {
		// Cheapest outgoing edge from cur; index tie-break by scan order.
		var (
			min  = inf
			next = -1
		)
		for j = 0; j < n; j++ {
			if v := m[cur*n+j]; v < min {
				min = v
				next = j
			}
		}
		if next == -1 {
			return nil, 0, false // stranded: no finite exit remains
		}

		sum += min
		tour = append(tour, next)
		for j = 0; j < n; j++ {
			m[j*n+next] = inf // never enter next again
		}
		cur = next
	}

	// Closing edge comes from the unmasked source matrix.
	closing := w[cur*n+start]
	if math.IsInf(closing, 1) {
		return nil, 0, false // full walk, but the cycle does not close
	}

	return tour, sum + closing, true
}
