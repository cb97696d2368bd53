// Package tsp - 2-opt local search engine.
//
// TwoOpt performs first-improvement 2-opt on a cyclic tour over a point set.
//
// Scan order (one pass):
//
//	for i in [1, n-2), for j in [i+1, n-1):
//	    candidate = tour with the segment [i..j] (inclusive) reversed
//	    accept iff Evaluator.TourLength(candidate) < current length
//
// The window never starts at index 0 and never reaches index n-1, so the first
// and last visited points stay anchored during a pass; this also skips a class
// of reversals that only mirror the whole cycle. Accepted moves take effect
// immediately and the scan carries on from (i, j+1) with the updated tour.
//
// Termination:
//   - a pass with no accepted move (local optimum, Converged=true), or
//   - MaxPasses completed passes, whichever comes first.
//
// Design:
//   - Every candidate is scored from scratch (O(n)); no delta state survives
//     between candidates, so accepted moves match a clone-and-reverse scan
//     bit for bit.
//   - The candidate is formed by reversing in place and undone on rejection,
//     which avoids one allocation per candidate without changing any decision.
//   - Strict sentinel errors only (see types.go).
//
// Complexity:
//   - One pass: (n-3)(n-2)/2 candidates × O(n) scoring ⇒ O(n³).
//   - Overall: O(passes·n³) time, O(n) space.
package tsp

import "time"

// minTwoOptPoints is the smallest instance with a non-empty (i, j) window.
const minTwoOptPoints = 4

// TwoOpt improves initTour over points and returns the resulting tour, its
// length and pass statistics. initTour is copied; the caller's slice is not
// modified. opts.Source is ignored (no randomness is needed here).
//
// Errors: ErrNonFiniteCoordinate, ErrInvalidTour, ErrBadOptions.
func TwoOpt(points []Point, initTour []int, opts Options) (TourResult, error) {
	var start = time.Now()

	if err := ValidatePoints(points); err != nil {
		return TourResult{}, err
	}
	if err := ValidatePermutation(initTour, len(points)); err != nil {
		return TourResult{}, err
	}
	resolved, err := resolveOptions(points, opts)
	if err != nil {
		return TourResult{}, err
	}

	res := twoOptInPlace(CopyTour(initTour), resolved)
	res.Elapsed = time.Since(start)

	return res, nil
}

// twoOptInPlace runs the pass loop on cur, mutating it, and returns it inside
// the result. opts must be resolved (MaxPasses > 0, Evaluator != nil).
func twoOptInPlace(cur []int, opts Options) TourResult {
	var (
		n      = len(cur)
		eval   = opts.Evaluator
		length = eval.TourLength(cur)
	)

	// Fewer than four points: the (i, j) window is empty, so the starting tour
	// is already a local optimum. No pass is run.
	if n < minTwoOptPoints {
		return TourResult{Tour: cur, Length: length, Converged: true}
	}

	var (
		pass      int     // completed passes
		i, j      int     // reversal window [i..j]
		step      int     // candidates scanned in the current pass
		accepted  int     // accepted moves over the whole call
		candidate float64 // length of the current candidate
		improved  = true  // whether the last pass accepted a move
		every     = ProgressEvery(n)
		perPass   = float64((n - 3) * (n - 2) / 2)
	)

	for improved && pass < opts.MaxPasses {
		improved = false
		step = 0

		for i = 1; i < n-2; i++ {
			for j = i + 1; j < n-1; j++ {
				step++
				reverseInPlace(cur, i, j)
				candidate = eval.TourLength(cur)
				if candidate < length {
					// First improvement: keep the reversal and continue scanning.
					length = candidate
					improved = true
					accepted++
					if opts.OnProgress != nil && accepted%every == 0 {
						opts.OnProgress(Progress{
							Pass:     pass + 1,
							Tour:     CopyTour(cur),
							Length:   length,
							Fraction: float64(step) / perPass,
						})
					}

					continue
				}
				// Rejected: restore the pre-candidate tour.
				reverseInPlace(cur, i, j)
			}
		}

		pass++
		if opts.OnPass != nil {
			opts.OnPass(pass, length, improved)
		}
	}

	return TourResult{
		Tour:      cur,
		Length:    length,
		Passes:    pass,
		Converged: !improved,
	}
}
