// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: scripted index sources, an improvement oracle and
// deterministic point fixtures.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tourkit/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for SeededSource.
	seedDet = int64(0)

	// epsTiny is the tolerance for comparing lengths computed along different paths.
	epsTiny = 1e-9
)

// -----------------------------------------------------------------------------
// Index sources
// -----------------------------------------------------------------------------

// scriptedSource replays a fixed list of draws and fails the test when it runs
// out or when called for an unexpected range.
type scriptedSource struct {
	t     *testing.T
	n     int   // expected range argument
	draws []int // values to return in order
	calls int
}

func (s *scriptedSource) Intn(n int) int {
	s.t.Helper()
	require.Equal(s.t, s.n, n, "unexpected Intn range")
	require.Less(s.t, s.calls, len(s.draws), "scripted source exhausted")
	v := s.draws[s.calls]
	s.calls++

	return v
}

// forbiddenSource fails the test if it is ever called.
type forbiddenSource struct{ t *testing.T }

func (s forbiddenSource) Intn(n int) int {
	s.t.Fatalf("Intn(%d) called on a source that must stay unused", n)
	return 0
}

// constSource always returns v, whatever the range.
type constSource int

func (c constSource) Intn(int) int { return int(c) }

// -----------------------------------------------------------------------------
// Evaluators
// -----------------------------------------------------------------------------

// shrinkingOracle reports a strictly smaller length on every call, so every
// candidate looks like an improvement and the search can never converge.
type shrinkingOracle struct {
	next  float64
	calls int
}

func (o *shrinkingOracle) TourLength([]int) float64 {
	o.calls++
	o.next--

	return o.next
}

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// unitSquare returns the corners of the unit square in perimeter order.
func unitSquare() []tsp.Point {
	return []tsp.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
}

// rippledCircle places n points on a slightly perturbed circle; the ripple
// breaks symmetric ties so several 2-opt moves compete.
func rippledCircle(n int) []tsp.Point {
	pts := make([]tsp.Point, n)
	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.02*float64((i*5)%7)
		pts[i] = tsp.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

// scatter returns n pseudo-random points in [0,100)² from a fixed seed.
func scatter(n int, seed int64) []tsp.Point {
	src := tsp.SeededSource(seed)
	pts := make([]tsp.Point, n)
	for i := range pts {
		pts[i] = tsp.Point{X: float64(src.Intn(10000)) / 100, Y: float64(src.Intn(10000)) / 100}
	}

	return pts
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requirePermutation asserts tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v is not a permutation of 0..%d", tour, n-1)
}

// requireConsistentLength asserts res.Length equals an independent recomputation.
func requireConsistentLength(t *testing.T, pts []tsp.Point, res tsp.TourResult) {
	t.Helper()
	require.Equal(t, tsp.TourLength(pts, res.Tour), res.Length)
}

// Repeat runs fn n times; used to lock determinism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}
