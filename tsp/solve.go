// SPDX-License-Identifier: MIT

package tsp

import (
	"github.com/akarpova/tourbound/cities"
	"github.com/akarpova/tourbound/matrix"
)

// Solve validates the instance once and routes it to the solver selected
// by opts.Algo. This is the primary entrypoint; the TSPXxx functions stay
// exported for callers that want a specific algorithm without the Algo
// indirection.
//
// Errors: the validation sentinels from types.go, then whatever the routed
// solver returns (ErrNoSolution on a tour-less finish).
func Solve(dist matrix.Matrix, opts Options) (TSResult, error) {
	if _, err := validateAll(dist, opts); err != nil {
		return TSResult{}, err
	}

	switch opts.Algo {
	case BranchAndBound:
		return TSPBranchAndBound(dist, opts)
	case Greedy:
		return TSPGreedy(dist, opts)
	case AntColony:
		return TSPAntColony(dist, opts)
	case RandomTour:
		return TSPRandom(dist, opts)
	default:
		// Unreachable after validateAll; kept for direct-call safety.
		return TSResult{}, ErrUnsupportedAlgorithm
	}
}

// SolveCities builds the asymmetric cost matrix for the given cities and
// solves it. Convenience wrapper over cities.CostMatrix + Solve.
func SolveCities(list []cities.City, opts Options) (TSResult, error) {
	dist, err := cities.CostMatrix(list)
	if err != nil {
		return TSResult{}, err
	}

	return Solve(dist, opts)
}
