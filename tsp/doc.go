// Package tsp computes short closed tours over 2D point sets with a
// randomized-start 2-opt local search.
//
// Pipeline:
//
//   - SwapShuffle builds the starting permutation from an injected IndexSource.
//
//   - TwoOpt improves it by reversing contiguous segments, accepting the first
//     strictly shorter candidate it meets (first-improvement), until a whole pass
//     makes no improvement or MaxPasses passes have completed.
//
//   - TourLength (or any Evaluator) scores every candidate from scratch.
//
// Solve chains all three and is the entry point used by the codec and server
// packages:
//
//	res, err := tsp.Solve(points, tsp.DefaultOptions())
//
// The method is a bounded local search, not an exact solver: the result is a
// 2-opt local optimum (or the best tour found when the pass cap is hit).
//
// Complexity:
//   - One pass: O(n²) candidates, each scored in O(n) ⇒ O(n³) per pass.
//   - Memory: O(n) for the working tour.
//
// Use this package for interactive-scale instances (n in the low hundreds).
package tsp
