// Package tsp - entry point chaining the generator and the optimizer.
//
// Solve is what the boundary wrappers call: validate the points, draw a
// starting permutation with SwapShuffle, then run TwoOpt on it in place.
//
// Design principles:
//   - One tour per call: created by SwapShuffle, mutated by accepted reversals,
//     returned inside TourResult. Nothing survives between calls.
//   - Randomness only through Options.Source (GlobalSource when nil).
package tsp

import "time"

// Solve computes a 2-opt tour over points from a randomized start.
//
// Degenerate inputs are not errors: n==0 ⇒ Tour=[], n==1 ⇒ Tour=[0], both with
// Length 0.
//
// Errors: ErrNonFiniteCoordinate, ErrBadOptions, ErrSourceOutOfRange.
//
// Complexity: O(n) for the start + TwoOpt's O(passes·n³).
func Solve(points []Point, opts Options) (TourResult, error) {
	var start = time.Now()

	if err := ValidatePoints(points); err != nil {
		return TourResult{}, err
	}
	resolved, err := resolveOptions(points, opts)
	if err != nil {
		return TourResult{}, err
	}

	tour, err := SwapShuffle(len(points), resolved.Source)
	if err != nil {
		return TourResult{}, err
	}

	res := twoOptInPlace(tour, resolved)
	res.Elapsed = time.Since(start)

	return res, nil
}
