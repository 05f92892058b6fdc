// Package tsp_test validates the tour-structure helpers.
package tsp_test

import (
	"testing"

	"github.com/akarpova/tourbound/tsp"
)

func TestValidatePermutation(t *testing.T) {
	if err := tsp.ValidatePermutation([]int{2, 0, 1, 3}, 4); err != nil {
		t.Fatalf("valid permutation rejected: %v", err)
	}

	mustErrIs(t, tsp.ValidatePermutation([]int{0, 1, 1, 3}, 4), tsp.ErrDimensionMismatch) // duplicate
	mustErrIs(t, tsp.ValidatePermutation([]int{0, 1, 2}, 4), tsp.ErrDimensionMismatch)    // short
	mustErrIs(t, tsp.ValidatePermutation([]int{0, 1, 2, 4}, 4), tsp.ErrDimensionMismatch) // out of range
	mustErrIs(t, tsp.ValidatePermutation(nil, 0), tsp.ErrDimensionMismatch)               // empty
}

func TestMakeTourFromPermutation(t *testing.T) {
	tour, err := tsp.MakeTourFromPermutation([]int{2, 0, 3, 1}, 4, 0)
	if err != nil {
		t.Fatalf("MakeTourFromPermutation failed: %v", err)
	}
	// Rotated so 0 leads, cyclic order preserved, closed with the start.
	mustEqualInts(t, tour, []int{0, 3, 1, 2, 0})

	_, err = tsp.MakeTourFromPermutation([]int{0, 0, 1}, 3, 0)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.MakeTourFromPermutation([]int{0, 1, 2}, 3, 7)
	mustErrIs(t, err, tsp.ErrStartOutOfRange)
}

func TestValidateTour(t *testing.T) {
	if err := tsp.ValidateTour([]int{1, 2, 0, 3, 1}, 4, 1); err != nil {
		t.Fatalf("valid tour rejected: %v", err)
	}

	mustErrIs(t, tsp.ValidateTour([]int{0, 1, 2, 3}, 4, 0), tsp.ErrDimensionMismatch)    // not closed
	mustErrIs(t, tsp.ValidateTour([]int{0, 1, 2, 3, 1}, 4, 0), tsp.ErrDimensionMismatch) // wrong closure
	mustErrIs(t, tsp.ValidateTour([]int{0, 1, 1, 3, 0}, 4, 0), tsp.ErrDimensionMismatch) // duplicate
	mustErrIs(t, tsp.ValidateTour([]int{0, 1, 2, 3, 0}, 4, 9), tsp.ErrStartOutOfRange)
}

func TestRotateTourToStart(t *testing.T) {
	// Open input.
	got, err := tsp.RotateTourToStart([]int{2, 0, 3, 1}, 3)
	if err != nil {
		t.Fatalf("rotate open failed: %v", err)
	}
	mustEqualInts(t, got, []int{3, 1, 2, 0, 3})

	// Closed input yields the same cycle.
	got, err = tsp.RotateTourToStart([]int{2, 0, 3, 1, 2}, 3)
	if err != nil {
		t.Fatalf("rotate closed failed: %v", err)
	}
	mustEqualInts(t, got, []int{3, 1, 2, 0, 3})

	// The input is never mutated.
	in := []int{2, 0, 3, 1}
	_, err = tsp.RotateTourToStart(in, 0)
	if err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	mustEqualInts(t, in, []int{2, 0, 3, 1})

	_, err = tsp.RotateTourToStart(nil, 0)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.RotateTourToStart([]int{0, 1, 2}, 5)
	mustErrIs(t, err, tsp.ErrStartOutOfRange)
}

func TestEqualToursModuloRotation(t *testing.T) {
	a := []int{0, 1, 2, 3, 0}
	b := []int{2, 3, 0, 1, 2}
	if !tsp.EqualToursModuloRotation(a, b) {
		t.Fatalf("rotations of the same cycle must compare equal")
	}

	// Reversed orientation is a different tour under asymmetric costs.
	rev := []int{0, 3, 2, 1, 0}
	if tsp.EqualToursModuloRotation(a, rev) {
		t.Fatalf("opposite orientations must not compare equal")
	}

	if tsp.EqualToursModuloRotation(a, []int{0, 1, 2, 0}) {
		t.Fatalf("different lengths must not compare equal")
	}
}

func TestCopyTour_Independence(t *testing.T) {
	in := []int{0, 1, 2, 0}
	cp := tsp.CopyTour(in)
	mustEqualInts(t, cp, in)

	cp[1] = 9
	mustEqualInts(t, in, []int{0, 1, 2, 0})

	if tsp.CopyTour(nil) != nil {
		t.Fatalf("nil input must copy to nil")
	}
}

func TestDebugString(t *testing.T) {
	if got := tsp.DebugString([]int{0, 2, 1, 0}); got != "[0 2 1 | 0]" {
		t.Fatalf("unexpected rendering: %q", got)
	}
	if got := tsp.DebugString(nil); got != "[]" {
		t.Fatalf("unexpected empty rendering: %q", got)
	}
}
