// SPDX-License-Identifier: MIT

// Package tsp - PathQueue: the search frontier.
//
// A 1-indexed array-backed binary min-heap over PartialPath nodes, ordered
// by PartialPath.Priority(). Index 0 of the backing slice is unused so the
// navigation arithmetic stays trivial: parent = i/2, children = 2i, 2i+1.
// Every node carries its current heap slot (maintained exclusively by this
// queue), giving O(1) position bookkeeping without identity hashing.
//
// container/heap is deliberately not used: the interface hides the
// position index behind dynamic dispatch and would force an entry wrapper
// just to recover what a slot field provides directly.
//
// Tie-breaking between equal priorities is whatever order the swap
// mechanics yield. Priorities are continuous doubles, exact ties are rare,
// and either frontier choice is correct - the order is not a contract.

package tsp

// PathQueue is a binary min-heap frontier. The zero value is NOT ready;
// use NewPathQueue. A PartialPath must live in at most one queue at a time
// (the slot field is single-owner bookkeeping).
type PathQueue struct {
	h []*PartialPath // h[0] unused; live nodes in h[1..len-1]
}

// NewPathQueue returns an empty frontier with room for hint nodes.
//
// Complexity: O(1).
func NewPathQueue(hint int) *PathQueue {
	if hint < 0 {
		hint = 0
	}
	q := &PathQueue{h: make([]*PartialPath, 1, hint+1)}

	return q
}

// Empty reports whether no nodes remain. O(1).
func (q *PathQueue) Empty() bool { return len(q.h) <= 1 }

// Len returns the number of nodes on the frontier. O(1).
func (q *PathQueue) Len() int { return len(q.h) - 1 }

// Insert pushes node onto the frontier and restores the heap property by
// bubbling it up while its priority is below its parent's.
//
// Complexity: O(log n).
func (q *PathQueue) Insert(node *PartialPath) {
	q.h = append(q.h, node)
	node.slot = len(q.h) - 1
	q.bubbleUp(node.slot)
}

// DeleteMin pops the minimum-priority node: the root is removed, the last
// element takes its slot, and sifts down toward the smaller child.
// Returns nil on an empty queue - callers must check Empty() first.
//
// Complexity: O(log n).
func (q *PathQueue) DeleteMin() *PartialPath {
	if q.Empty() {
		return nil
	}

	min := q.h[1]
	min.slot = 0 // detached

	last := len(q.h) - 1
	q.h[1] = q.h[last]
	q.h[last] = nil // release the reference for GC
	q.h = q.h[:last]

	if !q.Empty() {
		q.h[1].slot = 1
		q.siftDown(1)
	}

	return min
}

// bubbleUp moves h[i] toward the root while it beats its parent.
func (q *PathQueue) bubbleUp(i int) {
	for i > 1 {
		parent := i / 2
		if q.h[i].Priority() >= q.h[parent].Priority() {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// siftDown moves h[i] toward the leaves while a child beats it.
func (q *PathQueue) siftDown(i int) {
	var (
		size  = len(q.h) - 1
		child int
	)
	for {
		child = 2 * i
		if child > size {
			return // no children
		}
		// Pick the smaller of the two children.
		if child+1 <= size && q.h[child+1].Priority() < q.h[child].Priority() {
			child++
		}
		if q.h[i].Priority() <= q.h[child].Priority() {
			return
		}
		q.swap(i, child)
		i = child
	}
}

// swap exchanges two heap slots, keeping the nodes' position bookkeeping
// in lockstep with the array.
func (q *PathQueue) swap(i, j int) {
	q.h[i], q.h[j] = q.h[j], q.h[i]
	q.h[i].slot = i
	q.h[j].slot = j
}
