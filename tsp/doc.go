// SPDX-License-Identifier: MIT

// Package tsp provides anytime Travelling Salesman Problem solvers over
// asymmetric cost matrices.
//
// It includes four algorithms on a cost matrix (matrix.Matrix):
//
//   - TSPBranchAndBound - best-first branch-and-bound with reduced-cost
//     matrix lower bounds and a depth-biased priority queue. Anytime:
//     always returns the best tour found when the time budget expires;
//     exact when the frontier is exhausted in time.
//
//   - TSPGreedy - deterministic multi-start nearest-neighbor construction.
//
//   - TSPAntColony - probabilistic tour construction with pheromone
//     reinforcement (run-scoped state, seed-deterministic).
//
//   - TSPRandom - uniform random permutations until one closes; a
//     reference baseline, not a serious solver.
//
// All solvers accept a complete or partially complete cost matrix:
//   - A cost of math.Inf(1) signals "no direct edge" (the diagonal is
//     always treated as forbidden).
//   - If no tour exists, solvers return ErrNoSolution and report
//     NoSolutionCost.
//
// Use Solve / SolveCities as the canonical entry points; they validate
// inputs once and route by Options.Algo.
package tsp
