// Package tsp_test provides lightweight testing helpers shared across the
// *_test.go files in this package. Intentionally minimal and stdlib-only;
// anything bigger belongs in a focused test file.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/akarpova/tourbound/matrix"
	"github.com/akarpova/tourbound/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches tsp.DefaultEps (1e-12): strict improvement threshold.
	// A local alias keeps intent explicit and decouples tests from production
	// defaults if they ever change.
	epsTiny = 1e-12

	// seedDet is the deterministic seed for RNG-based solvers.
	seedDet = int64(42)

	// startV is the canonical start vertex used across tests.
	startV = 0

	// timeTiny is a near-zero wall-clock budget for deadline behavior tests.
	timeTiny = 1 * time.Nanosecond
)

// -----------------------------------------------------------------------------
// Minimal matrix implementation for tests (bounds-checked, with Clone).
// Exercises the generic matrix.Matrix path instead of the *Dense fast path.
// -----------------------------------------------------------------------------

// testDense is a simple [][]float64-backed matrix satisfying matrix.Matrix.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, numeric closeness)
// -----------------------------------------------------------------------------

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// floatsClose checks absolute-then-relative closeness of two float64 values.
func floatsClose(a, b, rel, abs float64) bool {
	if a == b {
		return true // bitwise equal; excludes NaN comparisons
	}
	diff := math.Abs(a - b)
	if diff <= abs {
		return true
	}
	den := math.Max(math.Abs(a), math.Abs(b))

	return diff <= rel*den
}

// mustFloatClose asserts closeness under rel/abs tolerances.
func mustFloatClose(t *testing.T, got, want, rel, abs float64) {
	t.Helper()
	if !floatsClose(got, want, rel, abs) {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (rel=%.1e abs=%.1e)", got, want, rel, abs)
	}
}

// round1e9 mirrors the production cost stabilization (1e-9 precision).
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}

// -----------------------------------------------------------------------------
// Instance generators
// -----------------------------------------------------------------------------

// mustDense builds a *matrix.Dense from rows, failing the test on error.
// Used where solvers should take the dense fast path.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows failed: %v", err)
	}

	return m
}

// mkRing4 is the canonical tiny instance: four cities on a ring, every ring
// edge costs 10, both chords forbidden, diagonal forbidden. The only tours
// are the two ring orientations, each of total cost 40.
func mkRing4() [][]float64 {
	inf := math.Inf(1)

	return [][]float64{
		{inf, 10, inf, 10},
		{10, inf, 10, inf},
		{inf, 10, inf, 10},
		{10, inf, 10, inf},
	}
}

// euclid builds a symmetric metric from 2D points with zero diagonal.
func euclid(pts [][2]float64) [][]float64 {
	n := len(pts)
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}

	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			a[i][j] = d
			a[j][i] = d
		}
	}

	return a
}

// euclidAsym builds a directed matrix: Euclidean distances plus a one-sided
// bias so D(i,j) != D(j,i) while keeping a metric-like shape.
func euclidAsym(pts [][2]float64, bias float64) [][]float64 {
	a := euclid(pts)
	var i, j int
	for i = 0; i < len(a); i++ {
		for j = 0; j < i; j++ {
			a[i][j] += bias // penalize the "downhill" orientation only
		}
	}

	return a
}

// circlePts places n points uniformly on a unit circle; the optimal tour is
// the ring in either orientation.
func circlePts(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}

	return pts
}

// -----------------------------------------------------------------------------
// Tour normalization
// -----------------------------------------------------------------------------

// normalizeOpenCycle strips the closing vertex from a closed tour; open
// input passes through unchanged.
func normalizeOpenCycle(tour []int) []int {
	if len(tour) >= 2 && tour[0] == tour[len(tour)-1] {
		return tour[:len(tour)-1]
	}

	return tour
}

// normalizeClosedToOpen rotates to start=0 and strips the closing vertex,
// giving a canonical open form for structural comparison.
func normalizeClosedToOpen(t *testing.T, tour []int) []int {
	t.Helper()
	rot, err := tsp.RotateTourToStart(tour, 0)
	if err != nil {
		t.Fatalf("RotateTourToStart failed: %v", err)
	}

	return normalizeOpenCycle(rot)
}

// mustValidTourCost asserts a valid closed tour for n, then compares the
// stabilized cost against want.
func mustValidTourCost(t *testing.T, dist matrix.Matrix, tour []int, n int, start int, want float64) {
	t.Helper()
	if err := tsp.ValidateTour(tour, n, start); err != nil {
		t.Fatalf("returned tour invalid (%s): %v", tsp.DebugString(tour), err)
	}
	got, err := tsp.TourCost(dist, tour)
	if err != nil {
		t.Fatalf("TourCost failed: %v", err)
	}
	if round1e9(got) != round1e9(want) {
		t.Fatalf("cost mismatch: got=%.12f want=%.12f", got, want)
	}
}
