// SPDX-License-Identifier: MIT

// Package tsp - PartialPath: the branch-and-bound search node.
//
// A PartialPath is one node of the search tree: an ordered prefix of a
// tour, a private reduced-cost matrix snapshot, and the accumulated
// admissible lower bound. Nodes are immutable once constructed - a child
// is built by copying its parent and extending by one city, so sibling
// expansions always see the parent's un-mutated matrix.
//
// Matrix reduction (the bounding relaxation): subtract each row's finite
// minimum from the row and each column's finite minimum from the column,
// folding the subtracted totals into the bound. Any completion of the
// partial tour must leave every remaining city exactly once and enter it
// exactly once, so the sum of those minima never overestimates the true
// completion cost - the bound is admissible. After reduction every row and
// column that still has a finite entry contains a zero.
//
// Complexity per node: O(n²) copy + O(n²) reduction.

package tsp

import (
	"math"

	"github.com/akarpova/tourbound/matrix"
)

// PartialPath represents one node in the branch-and-bound search tree.
// Construct roots with NewRootPath and children with Extend; the zero
// value is not usable.
type PartialPath struct {
	n       int       // matrix order (number of cities)
	w       []float64 // private reduced matrix, flat row-major; nil on dead branches
	path    []int     // visit order; path[0] is the fixed start city
	visited []bool    // membership mirror of path for O(1) lookups
	lb      float64   // accumulated admissible lower bound (+Inf = dead)
	slot    int       // current heap position, maintained by PathQueue
}

// NewRootPath builds the root node of a search: the full cost matrix is
// copied, the diagonal is masked to +Inf (self-travel is never legal,
// whether the collaborator encoded it as 0 or +Inf), the path starts at
// start, and one reduction computes the initial bound.
//
// Contracts:
//   - dist is square with n >= 2 (ErrNonSquare / ErrDimensionMismatch).
//   - start ∈ [0..n-1] (ErrStartOutOfRange).
//
// Complexity: O(n²) time and space.
func NewRootPath(dist *matrix.Dense, start int) (*PartialPath, error) {
	if dist == nil {
		return nil, ErrDimensionMismatch
	}
	n := dist.Rows()
	if n != dist.Cols() {
		return nil, ErrNonSquare
	}
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if err := validateStartVertex(n, start); err != nil {
		return nil, err
	}

	p := &PartialPath{
		n:       n,
		w:       make([]float64, n*n),
		path:    make([]int, 1, n),
		visited: make([]bool, n),
	}
	copy(p.w, dist.Data())

	// Mask the diagonal: a tour never revisits its current city.
	var i int
	inf := math.Inf(1)
	for i = 0; i < n; i++ {
		p.w[i*n+i] = inf
	}

	p.path[0] = start
	p.visited[start] = true
	p.reduce()

	return p, nil
}

// at reads the private reduced matrix. Hot path; no bounds checks - all
// callers iterate [0..n).
func (p *PartialPath) at(u, v int) float64 { return p.w[u*p.n+v] }

// Extend builds the child reached by travelling from the node's last city
// to city c.
//
// Finite edge: the child appends c, adds the (reduced) edge cost to the
// bound, masks the reverse edge (c,last) - no immediate backtrack - plus
// the whole row last and column c, then reduces again.
//
// Infinite edge: the child is a signaled dead branch - bound +Inf, no
// matrix copy. Callers must not enqueue it; every comparison against a
// finite incumbent prunes it anyway.
//
// Contracts:
//   - c ∈ [0..n-1] and not already on the path (ErrDimensionMismatch -
//     expanding to a visited city is a caller bug, not a dead branch).
//
// Complexity: O(n²); O(1) for the dead-branch case.
func (p *PartialPath) Extend(c int) (*PartialPath, error) {
	// Dead branches carry no matrix and cannot be extended further.
	if p.w == nil || c < 0 || c >= p.n || p.visited[c] {
		return nil, ErrDimensionMismatch
	}

	last := p.LastCity()
	edge := p.at(last, c)
	if math.IsInf(edge, 1) {
		// Dead branch: signaled via the bound, not an error.
		return &PartialPath{n: p.n, path: appendCity(p.path, c), lb: math.Inf(1)}, nil
	}

	child := &PartialPath{
		n:       p.n,
		w:       make([]float64, len(p.w)),
		path:    appendCity(p.path, c),
		visited: make([]bool, p.n),
		lb:      p.lb + edge,
	}
	copy(child.w, p.w)
	copy(child.visited, p.visited)
	child.visited[c] = true

	// Mask transitions that extending the path has spent:
	// no exit from last, no second entry into c, no immediate backtrack.
	var (
		n   = child.n
		inf = math.Inf(1)
		i   int
	)
	for i = 0; i < n; i++ {
		child.w[last*n+i] = inf
		child.w[i*n+c] = inf
	}
	// On a two-city instance the "backtrack" IS the closing edge; masking
	// it would forbid the only possible tour.
	if len(child.path) < n {
		child.w[c*n+last] = inf
	}

	child.reduce()

	return child, nil
}

// appendCity copies path and appends c (children never alias the parent's
// backing array).
func appendCity(path []int, c int) []int {
	out := make([]int, len(path)+1, cap(path)+1)
	copy(out, path)
	out[len(path)] = c

	return out
}

// reduce tightens the bound: subtract each row's finite minimum from the
// row, then each column's finite minimum from the column, folding every
// subtracted amount into lb. Rows/columns without a finite entry are left
// untouched (no valid minimum to subtract).
//
// Complexity: O(n²).
func (p *PartialPath) reduce() {
	var (
		n    = p.n
		inf  = math.Inf(1)
		i, j int
		min  float64
		v    float64
	)

	// Row pass.
	for i = 0; i < n; i++ {
		min = inf
		for j = 0; j < n; j++ {
			if v = p.w[i*n+j]; v < min {
				min = v
			}
		}
		if min == 0 || math.IsInf(min, 1) {
			continue // already has a zero exit, or no exit at all
		}
		p.lb += min
		for j = 0; j < n; j++ {
			if !math.IsInf(p.w[i*n+j], 1) {
				p.w[i*n+j] -= min
			}
		}
	}

	// Column pass.
	for j = 0; j < n; j++ {
		min = inf
		for i = 0; i < n; i++ {
			if v = p.w[i*n+j]; v < min {
				min = v
			}
		}
		if min == 0 || math.IsInf(min, 1) {
			continue
		}
		p.lb += min
		for i = 0; i < n; i++ {
			if !math.IsInf(p.w[i*n+j], 1) {
				p.w[i*n+j] -= min
			}
		}
	}
}

// LowerBound returns the accumulated admissible lower bound on any
// completion of this partial tour. +Inf marks a dead branch.
func (p *PartialPath) LowerBound() float64 { return p.lb }

// Priority returns the depth-biased ordering key
//
//	lb − lb/(n − len(path)).
//
// Pure bound ordering starves deep, nearly complete nodes; the discount
// grows with depth so more complete nodes win among comparable bounds,
// improving anytime quality. At full depth the denominator reaches zero;
// the one-sided limit of the formula is 0, so completed tours surface
// ahead of everything and are accepted immediately. Dead branches stay
// at +Inf.
func (p *PartialPath) Priority() float64 {
	if math.IsInf(p.lb, 1) {
		return p.lb
	}
	depth := p.n - len(p.path)
	if depth < 1 {
		return 0
	}

	return p.lb - p.lb/float64(depth)
}

// FullPath reports whether every city has been visited.
func (p *PartialPath) FullPath() bool { return len(p.path) == p.n }

// CompletePath reports whether the wrap-around edge from the last city
// back to the start is finite - i.e. the full path closes into a tour.
// Reduction subtracts but never forbids, so the reduced entry is finite
// exactly when the original edge is.
func (p *PartialPath) CompletePath() bool {
	if !p.FullPath() || p.w == nil {
		return false
	}

	return !math.IsInf(p.at(p.LastCity(), p.path[0]), 1)
}

// LastCity returns the most recently visited city.
func (p *PartialPath) LastCity() int { return p.path[len(p.path)-1] }

// Len returns the number of visited cities.
func (p *PartialPath) Len() int { return len(p.path) }

// Path returns a copy of the visit order (first element is the start).
func (p *PartialPath) Path() []int { return CopyTour(p.path) }

// Reachable reports whether city c is unvisited and reachable from the
// last city by a finite edge - the expansion candidates of the driver.
// Always false on a dead branch: the nil-matrix check must run before the
// visited lookup, since dead branches carry no visited slice either.
func (p *PartialPath) Reachable(c int) bool {
	if p.w == nil || c < 0 || c >= p.n || p.visited[c] {
		return false
	}

	return !math.IsInf(p.at(p.LastCity(), c), 1)
}
