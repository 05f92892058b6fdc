// SPDX-License-Identifier: MIT

// Package tsp - ant-colony tour construction.
//
// TSPAntColony runs a classic ant system: n ants (one per distinct start
// city) walk the instance guided by a shared pheromone trail matrix. Each
// round every ant advances one step. Edge attractiveness is
//
//	pheromone^Alpha / distance^Beta
//
// and each step either exploits (probability Exploit: take the best edge)
// or explores (roulette-wheel over the weights). An ant that completes a
// closable tour scores it against the best so far, decays all trails by
// (1-Evaporation), deposits Deposit/cost on its own edges, and restarts
// from a random city. Stranded ants restart without depositing.
//
// All randomness is seed-routed: each ant owns an independent SplitMix64
// derived substream, so runs with equal seeds are identical.
//
// Termination: StallLimit consecutive improvement-free rounds, or the
// wall-clock budget (polled per round; a round in flight completes).
// Heuristic only - no optimality claim.

package tsp

import (
	"math"
	"math/rand"
	"time"

	"github.com/akarpova/tourbound/matrix"
)

// pherInit is the uniform initial trail level. Any positive constant works;
// 1.0 keeps first-round weights governed purely by distance.
const pherInit = 1.0

// zeroDist substitutes for a zero-cost edge in the weight denominator so
// free edges stay maximally attractive without dividing by zero.
const zeroDist = 1e-12

// colony carries the run-scoped state of one ant-colony execution.
// Pheromone trails live and die with the run; nothing leaks across calls.
type colony struct {
	n    int
	w    []float64 // costs, flat row-major, diagonal +Inf
	pher []float64 // trail matrix, same layout as w

	alpha, beta float64
	rho         float64 // evaporation fraction
	q           float64 // deposit scale
	exploit     float64
	eps         float64

	ants []*ant

	bestCost float64
	bestTour []int // open tour, length n
	improves int
}

// ant is one walker with its own RNG substream and in-progress path.
type ant struct {
	rng     *rand.Rand
	cur     int
	sum     float64 // accumulated edge cost of the current walk
	path    []int
	visited []bool
}

// TSPAntColony is the public entrypoint for the pheromone-guided solver.
// The returned tour starts and closes at opts.StartVertex.
//
// Errors:
//   - Strict validation sentinels for malformed inputs or knobs.
//   - ErrNoSolution (Cost == NoSolutionCost) when no ant ever closed a tour.
func TSPAntColony(dist matrix.Matrix, opts Options) (TSResult, error) {
	began := time.Now()

	if err := validateOptionsStandalone(opts); err != nil {
		return TSResult{}, err
	}
	w, n, err := prefetch(dist)
	if err != nil {
		return TSResult{}, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	var (
		useDeadline = opts.TimeLimit > 0
		deadline    = began.Add(opts.TimeLimit)
	)

	col := newColony(w, n, opts)

	var stall int
	for stall < opts.StallLimit {
		if useDeadline && time.Now().After(deadline) {
			break
		}
		if col.round() {
			stall = 0
		} else {
			stall++
		}
	}

	if col.bestTour == nil {
		return TSResult{Cost: NoSolutionCost, Elapsed: time.Since(began)}, ErrNoSolution
	}

	closed, rerr := RotateTourToStart(col.bestTour, opts.StartVertex)
	if rerr != nil {
		return TSResult{}, rerr
	}

	return TSResult{
		Tour:         closed,
		Cost:         round1e9(col.bestCost),
		Elapsed:      time.Since(began),
		Improvements: col.improves,
	}, nil
}

// newColony builds the run-scoped state: uniform trails and one ant per
// start city, each with a derived independent RNG substream.
func newColony(w []float64, n int, opts Options) *colony {
	col := &colony{
		n:        n,
		w:        w,
		pher:     make([]float64, n*n),
		alpha:    opts.Alpha,
		beta:     opts.Beta,
		rho:      opts.Evaporation,
		q:        opts.Deposit,
		exploit:  opts.Exploit,
		eps:      opts.Eps,
		ants:     make([]*ant, n),
		bestCost: math.Inf(1),
	}
	if col.eps < 0 {
		col.eps = 0
	}

	var i int
	for i = range col.pher {
		col.pher[i] = pherInit
	}

	base := rngFromSeed(opts.Seed)
	for i = 0; i < n; i++ {
		a := &ant{
			rng:     deriveRNG(base, uint64(i)),
			path:    make([]int, 0, n),
			visited: make([]bool, n),
		}
		a.restart(i)
		col.ants[i] = a
	}

	return col
}

// restart resets the ant to a fresh walk from the given city.
func (a *ant) restart(start int) {
	var i int
	for i = range a.visited {
		a.visited[i] = false
	}
	a.path = a.path[:0]
	a.path = append(a.path, start)
	a.visited[start] = true
	a.cur = start
	a.sum = 0
}

// round advances every ant one step, in fixed index order, and reports
// whether any completed tour strictly improved the best so far. Later ants
// of the same round see deposits left by earlier ones.
func (c *colony) round() bool {
	var (
		improved bool
		k        int
	)
	for k = 0; k < len(c.ants); k++ {
		if c.step(c.ants[k]) {
			improved = true
		}
	}

	return improved
}

// step moves one ant one city forward. On a completed closable tour the
// trail matrix is updated and the ant restarts from a random city; the
// return value reports a strict best-tour improvement. Stranded ants and
// unclosable tours restart without reinforcing anything.
func (c *colony) step(a *ant) bool {
	next := c.chooseNext(a)
	if next == -1 {
		a.restart(a.rng.Intn(c.n)) // stranded
		return false
	}

	a.sum += c.w[a.cur*c.n+next]
	a.path = append(a.path, next)
	a.visited[next] = true
	a.cur = next

	if len(a.path) < c.n {
		return false // walk still in progress
	}

	closing := c.w[a.cur*c.n+a.path[0]]
	if math.IsInf(closing, 1) {
		a.restart(a.rng.Intn(c.n)) // full walk, but the cycle does not close
		return false
	}
	cost := a.sum + closing

	c.reinforce(a.path, cost)

	improved := cost < c.bestCost-c.eps
	if improved {
		c.bestCost = cost
		c.bestTour = CopyTour(a.path)
		c.improves++
	}
	a.restart(a.rng.Intn(c.n))

	return improved
}

// chooseNext picks the ant's next city among unvisited, finitely reachable
// candidates. With probability exploit the best-weighted edge wins (ties
// break toward the smaller index); otherwise the wheel spins over the
// weights. Returns -1 when no candidate remains.
func (c *colony) chooseNext(a *ant) int {
	var (
		n     = c.n
		cur   = a.cur
		j     int
		wt    float64
		total float64
		best  = -1
		bestW = -1.0
		d     float64
	)

	// Single pass computes both the argmax (exploit) and the wheel total.
	weights := make([]float64, n)
	for j = 0; j < n; j++ {
		if a.visited[j] {
			continue
		}
		d = c.w[cur*n+j]
		if math.IsInf(d, 1) {
			continue
		}
		if d < zeroDist {
			d = zeroDist
		}
		wt = math.Pow(c.pher[cur*n+j], c.alpha) / math.Pow(d, c.beta)
		weights[j] = wt
		total += wt
		if wt > bestW {
			bestW = wt
			best = j
		}
	}
	if best == -1 {
		return -1
	}

	if a.rng.Float64() < c.exploit {
		return best
	}
	if total <= 0 || math.IsInf(total, 1) || math.IsNaN(total) {
		return best // degenerate weights - fall back to the greedy choice
	}

	r := a.rng.Float64() * total
	for j = 0; j < n; j++ {
		if weights[j] == 0 {
			continue
		}
		r -= weights[j]
		if r <= 0 {
			return j
		}
	}

	return best // FP drift past the last slot
}

// reinforce evaporates every trail by (1-rho) and deposits q/cost on each
// edge of the completed tour, including the wrap-around edge.
func (c *colony) reinforce(tour []int, cost float64) {
	var i int
	for i = range c.pher {
		c.pher[i] *= 1 - c.rho
	}

	if cost < zeroDist {
		cost = zeroDist // zero-cost tour would deposit +Inf
	}
	var (
		n    = c.n
		drop = c.q / cost
		u, v int
	)
	for i = 0; i < len(tour); i++ {
		u = tour[i]
		v = tour[(i+1)%len(tour)]
		c.pher[u*n+v] += drop
	}
}
