// SPDX-License-Identifier: MIT

package tsp

import (
	"math"
	"time"

	"github.com/akarpova/tourbound/matrix"
)

// TSPRandom draws uniform random permutations until one forms a valid
// closed tour and returns the first hit. A correctness baseline, not an
// optimizer: Improvements is always 1 on success (the single accepted
// tour) and the cost carries no quality guarantee whatsoever.
//
// Termination: the first valid tour, opts.RandomMaxTries attempts
// (0 means unlimited), or the wall-clock budget - whichever comes first.
// On dense instances the very first draw almost always lands; the caps
// exist for instances riddled with forbidden edges.
//
// Errors:
//   - Strict validation sentinels for malformed inputs.
//   - ErrNoSolution (Cost == NoSolutionCost) when the caps run out first.
func TSPRandom(dist matrix.Matrix, opts Options) (TSResult, error) {
	began := time.Now()

	w, n, err := prefetch(dist)
	if err != nil {
		return TSResult{}, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}
	if opts.RandomMaxTries < 0 {
		return TSResult{}, ErrDimensionMismatch
	}

	var (
		useDeadline = opts.TimeLimit > 0
		deadline    = began.Add(opts.TimeLimit)
		rng         = rngFromSeed(opts.Seed)
		tries       int
		perm        []int
	)

	for opts.RandomMaxTries == 0 || tries < opts.RandomMaxTries {
		if useDeadline && time.Now().After(deadline) {
			break
		}
		tries++

		perm, err = permRange(n, rng)
		if err != nil {
			return TSResult{}, err
		}

		cost, ok := scorePerm(w, n, perm)
		if !ok {
			continue // crossed a forbidden edge - redraw
		}

		tour, terr := MakeTourFromPermutation(perm, n, opts.StartVertex)
		if terr != nil {
			return TSResult{}, terr
		}

		return TSResult{
			Tour:         tour,
			Cost:         round1e9(cost),
			Elapsed:      time.Since(began),
			Improvements: 1,
		}, nil
	}

	return TSResult{Cost: NoSolutionCost, Elapsed: time.Since(began)}, ErrNoSolution
}

// scorePerm sums the cycle cost of a permutation over the flat buffer,
// reporting false as soon as a +Inf edge is crossed.
func scorePerm(w []float64, n int, perm []int) (float64, bool) {
	var (
		sum  float64
		i    int
		u, v int
		x    float64
	)
	for i = 0; i < n; i++ {
		u = perm[i]
		v = perm[(i+1)%n]
		x = w[u*n+v]
		if math.IsInf(x, 1) {
			return 0, false
		}
		sum += x
	}

	return sum, true
}
