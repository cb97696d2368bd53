// Package tsp_test covers the distance model: point distance, cyclic tour
// length, the default evaluator and bounding boxes.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tourkit/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b tsp.Point
		want float64
	}{
		{"same point", tsp.Point{X: 1, Y: 1}, tsp.Point{X: 1, Y: 1}, 0},
		{"3-4-5", tsp.Point{X: 0, Y: 0}, tsp.Point{X: 3, Y: 4}, 5},
		{"negative coords", tsp.Point{X: -1, Y: -1}, tsp.Point{X: 2, Y: 3}, 5},
		{"unit diagonal", tsp.Point{X: 0, Y: 0}, tsp.Point{X: 1, Y: 1}, math.Sqrt2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tsp.PointDistance(tc.a, tc.b), epsTiny)
			assert.Equal(t, tsp.PointDistance(tc.a, tc.b), tsp.PointDistance(tc.b, tc.a), "symmetric")
		})
	}
}

func TestTourLength_IncludesClosingEdge(t *testing.T) {
	pts := []tsp.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}

	// 3 + 4 + 5 (closing edge back to the origin).
	assert.InDelta(t, 12.0, tsp.TourLength(pts, []int{0, 1, 2}), epsTiny)
	assert.InDelta(t, 12.0, tsp.TourLength(pts, []int{2, 1, 0}), epsTiny)
}

func TestTourLength_Degenerate(t *testing.T) {
	assert.Zero(t, tsp.TourLength(nil, nil))
	assert.Zero(t, tsp.TourLength([]tsp.Point{{X: 9, Y: 9}}, []int{0}))
	// Two points: there and back.
	assert.InDelta(t, 10.0, tsp.TourLength([]tsp.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}, []int{0, 1}), epsTiny)
}

func TestTourLength_RotationInvariant(t *testing.T) {
	pts := scatter(10, 4)
	tour := []int{3, 1, 4, 0, 5, 9, 2, 6, 8, 7}
	want := tsp.TourLength(pts, tour)

	rot := append(append([]int{}, tour[4:]...), tour[:4]...)
	assert.InDelta(t, want, tsp.TourLength(pts, rot), epsTiny)
}

func TestEuclidean_MatchesTourLength(t *testing.T) {
	pts := scatter(8, 6)
	tour := []int{7, 6, 5, 4, 3, 2, 1, 0}

	assert.Equal(t, tsp.TourLength(pts, tour), tsp.NewEuclidean(pts).TourLength(tour))
}

func TestBounds(t *testing.T) {
	assert.Zero(t, tsp.Bounds(nil))

	r := tsp.Bounds([]tsp.Point{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}})
	require.Equal(t, -2.0, r.Min.X)
	require.Equal(t, -1.0, r.Min.Y)
	require.Equal(t, 4.0, r.Max.X)
	require.Equal(t, 5.0, r.Max.Y)
	assert.InDelta(t, 6.0, r.Width(), epsTiny)
	assert.InDelta(t, 6.0, r.Height(), epsTiny)
}
