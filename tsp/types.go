// SPDX-License-Identifier: MIT

// Package tsp - public types, options and sentinel errors.
//
// Design principles:
//   - Strict sentinels: algorithms return only the errors defined here;
//     callers match via errors.Is. No fmt.Errorf where a sentinel suffices.
//   - Flat Options struct with DefaultOptions(); zero-ambiguity knobs.
//   - Deterministic: all randomness is seed-routed (see rng.go).

package tsp

import (
	"errors"
	"time"
)

// Algo selects the solver the dispatcher routes to.
type Algo int

const (
	// BranchAndBound is the core anytime exact/bounded search (bb.go).
	BranchAndBound Algo = iota

	// Greedy is the deterministic multi-start nearest-neighbor builder.
	Greedy

	// AntColony is the probabilistic pheromone-guided constructor.
	AntColony

	// RandomTour retries uniform random permutations until one closes.
	// Reference behavior only - accept-any-valid-tour baseline.
	RandomTour
)

// Sentinel errors. Messages are prefixed "tsp: " for grep-ability.
var (
	// ErrNonSquare signals a non-square cost matrix.
	ErrNonSquare = errors.New("tsp: cost matrix is not square")

	// ErrDimensionMismatch covers malformed shapes and values that violate
	// the input contract (nil matrix, n<2, NaN entries, bad option values).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight signals a negative cost; costs live on the extended
	// non-negative reals.
	ErrNegativeWeight = errors.New("tsp: negative cost")

	// ErrNonZeroDiagonal signals a finite non-zero diagonal entry. The
	// diagonal must be ~0 (collaborator convention) or +Inf (canonical
	// forbidden self-edge); either way the search masks it to +Inf.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal neither zero nor +Inf")

	// ErrAsymmetry signals a symmetry violation when Options.Symmetric
	// promised a symmetric instance.
	ErrAsymmetry = errors.New("tsp: cost matrix is not symmetric within eps")

	// ErrStartOutOfRange signals a start vertex outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrUnsupportedAlgorithm signals an Options.Algo value the dispatcher
	// does not know.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrNoSolution signals that no complete, closeable tour was found -
	// a signaled condition, not a crash; the result carries NoSolutionCost.
	ErrNoSolution = errors.New("tsp: no feasible tour found")

	// ErrForbiddenEdge signals a tour that crosses a +Inf edge; such a
	// candidate has no defined cost and must be discarded by the caller.
	ErrForbiddenEdge = errors.New("tsp: tour crosses a forbidden edge")
)

// NoSolutionCost is the sentinel cost reported when a solver finishes
// without ever finding a valid closed tour.
const NoSolutionCost = -1.0

// DefaultEps is the strict improvement tolerance: a candidate replaces the
// incumbent only when cost < incumbent - eps.
const DefaultEps = 1e-12

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at the
	// start vertex. For n vertices, len(Tour) == n+1 and Tour[0] == Tour[n].
	// Nil when no tour was found (Cost == NoSolutionCost).
	Tour []int

	// Cost is the total cost of the cycle (stabilized to 1e-9), or
	// NoSolutionCost when no tour was found.
	Cost float64

	// Elapsed is the wall-clock time the solver ran.
	Elapsed time.Duration

	// Improvements counts strictly improving tours accepted during the
	// search phase. The greedy seed of branch-and-bound is NOT counted.
	Improvements int
}

// Options configures every solver. Zero value is not meaningful; start
// from DefaultOptions() and override.
type Options struct {
	// Algo selects the solver in Solve/SolveCities.
	Algo Algo

	// StartVertex fixes the first (and closing) city of every tour.
	StartVertex int

	// TimeLimit is the soft wall-clock budget. 0 means unlimited.
	// Deadlines are polled at loop boundaries only, so a single
	// pop/expand/insert cycle (or one ant round) may finish past it.
	TimeLimit time.Duration

	// Eps is the strict-improvement tolerance (see DefaultEps).
	Eps float64

	// Seed routes all randomness (ant colony, random tours). Policy:
	// 0 selects the fixed default stream - identical runs stay identical.
	Seed int64

	// Symmetric, when true, makes validation enforce cost symmetry.
	// Solvers never require it; all of them handle asymmetric instances.
	Symmetric bool

	// Alpha is the pheromone exponent in the ant edge weight
	// pheromone^Alpha / distance^Beta.
	Alpha float64

	// Beta is the distance exponent in the ant edge weight.
	Beta float64

	// Evaporation is the per-update pheromone decay fraction in [0,1):
	// every trail is multiplied by (1-Evaporation) before a deposit.
	Evaporation float64

	// Deposit scales pheromone reinforcement: a completed tour deposits
	// Deposit/cost on each of its edges (cheaper tours reinforce more).
	Deposit float64

	// Exploit is the probability in [0,1] that an ant greedily takes the
	// highest-weight edge instead of roulette-sampling.
	Exploit float64

	// StallLimit ends the ant-colony run after this many consecutive
	// improvement-free iterations. Must be positive.
	StallLimit int

	// RandomMaxTries caps permutation attempts of the RandomTour solver
	// so degenerate instances terminate even without a TimeLimit.
	RandomMaxTries int
}

// DefaultOptions returns production-safe defaults:
//   - BranchAndBound, start vertex 0, 60s budget, strict eps,
//   - deterministic seed stream (Seed 0),
//   - ant-colony knobs per the usual ACS settings.
func DefaultOptions() Options {
	return Options{
		Algo:           BranchAndBound,
		StartVertex:    0,
		TimeLimit:      60 * time.Second,
		Eps:            DefaultEps,
		Seed:           0,
		Symmetric:      false,
		Alpha:          1.0,
		Beta:           2.0,
		Evaporation:    0.1,
		Deposit:        100.0,
		Exploit:        0.9,
		StallLimit:     50,
		RandomMaxTries: 100000,
	}
}
