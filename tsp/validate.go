// Package tsp - validation helpers for points and options.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import "math"

// ValidatePoints rejects points with NaN or ±Inf coordinates.
// An empty set is valid.
//
// Complexity: O(n).
func ValidatePoints(points []Point) error {
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return ErrNonFiniteCoordinate
		}
	}

	return nil
}

// resolveOptions validates opts and fills defaults for zero-valued knobs.
// The Evaluator default depends on the point set, so it is resolved here too.
//
// Complexity: O(1).
func resolveOptions(points []Point, opts Options) (Options, error) {
	if opts.MaxPasses < 0 {
		return Options{}, ErrBadOptions
	}
	if opts.MaxPasses == 0 {
		opts.MaxPasses = DefaultMaxPasses
	}
	if opts.Source == nil {
		opts.Source = GlobalSource()
	}
	if opts.Evaluator == nil {
		opts.Evaluator = NewEuclidean(points)
	}

	return opts, nil
}

// ProgressEvery returns how many accepted moves separate two OnProgress
// callbacks for an n-point instance: max(1, floor(sqrt(n)·5)).
func ProgressEvery(n int) int {
	every := int(math.Floor(math.Sqrt(float64(n)) * 5))
	if every < 1 {
		return 1
	}

	return every
}
