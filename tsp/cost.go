// Package tsp - distance model shared by the optimizer and its callers.
//
// This file provides the Euclidean point distance, the cyclic tour length and
// the Evaluator abstraction the 2-opt loop scores candidates with.
//
// Design:
//   - Pure functions; no allocation on the scoring path.
//   - The closing edge (last → first) is always part of the length.
//   - No rounding: the optimizer compares raw sums, and TourResult.Length is
//     bit-identical to an independent TourLength call on the returned tour.
//
// Complexity:
//   - PointDistance: O(1).
//   - TourLength: O(n) time, O(1) extra space.
package tsp

import "github.com/jbeda/geom"

// Evaluator scores a tour over a fixed point set.
// Implementations must be deterministic for the duration of one call.
type Evaluator interface {
	TourLength(tour []int) float64
}

// Coord converts p into a geom.Coord.
func (p Point) Coord() geom.Coord {
	return geom.Coord{X: p.X, Y: p.Y}
}

// PointDistance returns sqrt((a.x-b.x)² + (a.y-b.y)²).
func PointDistance(a, b Point) float64 {
	return a.Coord().DistanceFrom(b.Coord())
}

// TourLength sums PointDistance over consecutive tour entries, including the
// closing edge from tour[n-1] back to tour[0]. For n ≤ 1 it returns 0.
//
// Contract: every tour entry indexes points. Callers that cannot guarantee this
// should run ValidatePermutation first.
func TourLength(points []Point, tour []int) float64 {
	var n = len(tour)
	if n <= 1 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += PointDistance(points[tour[i]], points[tour[i+1]])
	}
	// Closing edge keeps the summation order of the (i+1) mod n formulation.
	sum += PointDistance(points[tour[n-1]], points[tour[0]])

	return sum
}

// euclidean is the default Evaluator: TourLength over a captured point set.
type euclidean struct {
	points []Point
}

// NewEuclidean returns an Evaluator computing TourLength over points.
// The slice is captured, not copied; it must not change during the call.
func NewEuclidean(points []Point) Evaluator {
	return euclidean{points: points}
}

func (e euclidean) TourLength(tour []int) float64 {
	return TourLength(e.points, tour)
}

// Bounds returns the axis-aligned bounding box of points.
// For an empty set it returns the zero Rect.
func Bounds(points []Point) geom.Rect {
	if len(points) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: points[0].Coord(), Max: points[0].Coord()}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p.Coord())
	}

	return r
}
