// SPDX-License-Identifier: MIT

// Package tsp - anytime branch-and-bound driver.
//
// TSPBranchAndBound explores the PartialPath search tree best-first through
// a PathQueue, pruning with reduced-cost-matrix lower bounds against the
// best solution so far (the incumbent). The incumbent is seeded by the
// greedy builder before the search starts, so an answer exists from the
// first instant and the deadline can only improve it, never lose it.
//
// Anytime contract: when the wall-clock budget runs out the driver stops
// expanding and returns the incumbent as a normal result. Running out of
// time is not an error; only "never found any tour" is (ErrNoSolution).
//
// Exactness: with an unlimited budget, the search drains the frontier and
// the admissible bounds guarantee the returned tour is optimal.
//
// Complexity: worst case exponential in n (it is TSP); each node costs
// O(n²) to expand. Memory is bounded by the live frontier.

package tsp

import (
	"math"
	"time"

	"github.com/akarpova/tourbound/matrix"
)

// bbEngine carries the mutable state of one branch-and-bound run.
// A fresh engine is built per call; nothing is shared between runs.
type bbEngine struct {
	n     int
	costs *matrix.Dense // original (unreduced) costs, diagonal masked +Inf
	pq    *PathQueue
	start int
	eps   float64

	bestCost float64
	bestTour []int // closed (len n+1), starts and ends at start
	improves int

	useDeadline bool
	deadline    time.Time
}

// TSPBranchAndBound is the public entrypoint for the anytime exact solver.
//
// Phases:
//  1. Validate and prefetch the cost matrix.
//  2. Seed the incumbent with the greedy nearest-neighbor tour (the seed
//     runs without a deadline - it is setup, not search - and it does NOT
//     count as an improvement).
//  3. Best-first search: pop the minimum-priority node, accept full tours
//     that strictly beat the incumbent, expand the rest, prune children
//     whose bound cannot beat the incumbent.
//
// Errors:
//   - Strict validation sentinels for malformed inputs.
//   - ErrNoSolution (Cost == NoSolutionCost) when neither the seed nor the
//     search ever produced a closed tour.
func TSPBranchAndBound(dist matrix.Matrix, opts Options) (TSResult, error) {
	began := time.Now()

	w, n, err := prefetch(dist)
	if err != nil {
		return TSResult{}, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	// Re-materialize the prefetched buffer as a Dense: one canonical cost
	// source for both the root snapshot and incumbent scoring.
	costs, err := matrix.NewDense(n, n)
	if err != nil {
		return TSResult{}, ErrDimensionMismatch
	}
	copy(costs.Data(), w)

	eng := &bbEngine{
		n:        n,
		costs:    costs,
		pq:       NewPathQueue(n * n),
		start:    opts.StartVertex,
		eps:      opts.Eps,
		bestCost: math.Inf(1),
	}
	if eng.eps < 0 {
		eng.eps = 0
	}
	if compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0 {
		eng.useDeadline = true
		eng.deadline = began.Add(opts.TimeLimit)
	}

	// Seed phase. ErrNoSolution from the seed is not fatal: the exhaustive
	// search below can still find tours greedy construction misses.
	seedOpts := opts
	seedOpts.TimeLimit = 0
	if seed, serr := TSPGreedy(costs, seedOpts); serr == nil {
		eng.bestCost = seed.Cost
		eng.bestTour = seed.Tour
	}

	root, rerr := NewRootPath(costs, eng.start)
	if rerr != nil {
		return TSResult{}, rerr
	}
	eng.pq.Insert(root)

	eng.run()

	if eng.bestTour == nil {
		return TSResult{Cost: NoSolutionCost, Elapsed: time.Since(began)}, ErrNoSolution
	}

	return TSResult{
		Tour:         eng.bestTour,
		Cost:         round1e9(eng.bestCost),
		Elapsed:      time.Since(began),
		Improvements: eng.improves,
	}, nil
}

// run drives the best-first loop until the frontier drains or the deadline
// passes. The deadline is polled once per pop, so a single expand cycle may
// finish past it.
func (e *bbEngine) run() {
	for !e.pq.Empty() {
		if e.useDeadline && time.Now().After(e.deadline) {
			return
		}

		node := e.pq.DeleteMin()

		// Stale prune: the incumbent may have tightened since this node was
		// enqueued. Bounds are admissible, so lb >= incumbent kills the
		// whole subtree.
		if node.LowerBound() >= e.bestCost-e.eps {
			continue
		}

		if node.FullPath() {
			e.accept(node)
			continue
		}
		e.expand(node)
	}
}

// accept scores a full path against the incumbent. Paths that cannot close
// (infinite wrap-around edge) are discarded silently.
func (e *bbEngine) accept(node *PartialPath) {
	if !node.CompletePath() {
		return
	}

	closed := append(node.Path(), e.start)
	cost, err := TourCost(e.costs, closed)
	if err != nil {
		return // forbidden closing edge - not a candidate
	}
	if cost < e.bestCost-e.eps {
		e.bestCost = cost
		e.bestTour = closed
		e.improves++
	}
}

// expand enqueues every reachable child whose bound can still beat the
// incumbent. Dead branches (infinite edges) never reach the queue.
func (e *bbEngine) expand(node *PartialPath) {
	var c int
	for c = 0; c < e.n; c++ {
		if !node.Reachable(c) {
			continue
		}
		child, err := node.Extend(c)
		if err != nil {
			continue // unreachable by contract; kept symmetric with Extend
		}
		if child.LowerBound() < e.bestCost-e.eps {
			e.pq.Insert(child)
		}
	}
}
