// Package tsp - shared types, options and sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels fire only on misuse of the Go API (non-finite coordinates,
//     a non-permutation initial tour, a negative pass cap, a misbehaving
//     IndexSource). Valid inputs of any size never produce an error.
package tsp

import (
	"errors"
	"time"
)

// ErrNonFiniteCoordinate is returned when a point has a NaN or ±Inf coordinate.
var ErrNonFiniteCoordinate = errors.New("tsp: non-finite coordinate")

// ErrInvalidTour is returned when a supplied tour is not a permutation of 0..n-1
// for the given point set.
var ErrInvalidTour = errors.New("tsp: tour is not a permutation of the point indices")

// ErrSourceOutOfRange is returned when an IndexSource yields a value outside [0,n).
var ErrSourceOutOfRange = errors.New("tsp: index source returned out-of-range value")

// ErrBadOptions is returned for meaningless option values (e.g., negative MaxPasses).
var ErrBadOptions = errors.New("tsp: invalid options")

// DefaultMaxPasses caps the number of full 2-opt passes per call.
const DefaultMaxPasses = 1000

// Point is an immutable pair of real coordinates.
// JSON form: {"x": <number>, "y": <number>}.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TourResult holds the outcome of an optimization call.
type TourResult struct {
	// Tour is a permutation of 0..n-1 describing a cyclic visiting order:
	// the successor of the last index is the first one.
	Tour []int

	// Length is the cyclic length of Tour as computed by the evaluator.
	Length float64

	// Passes is the number of completed 2-opt passes.
	Passes int

	// Converged reports that the last pass found no improving reversal
	// (a local optimum). It is false when the pass cap stopped the search.
	Converged bool

	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration
}

// Progress is a snapshot delivered to Options.OnProgress.
type Progress struct {
	// Pass is the 1-based index of the pass in progress.
	Pass int
	// Tour is a copy of the current tour; the receiver may keep it.
	Tour []int
	// Length is the length of Tour.
	Length float64
	// Fraction is the position of the scan within the current pass, in [0,1].
	Fraction float64
}

// Options configures Solve and TwoOpt.
//
// The zero value is usable: MaxPasses==0 resolves to DefaultMaxPasses,
// a nil Source resolves to the process-global auto-seeded source and a nil
// Evaluator resolves to the Euclidean tour length over the given points.
type Options struct {
	// MaxPasses bounds the number of completed passes (0 ⇒ DefaultMaxPasses).
	MaxPasses int

	// Source supplies random indices for the initial tour (Solve only).
	Source IndexSource

	// Evaluator computes candidate tour lengths. Nil ⇒ NewEuclidean(points).
	Evaluator Evaluator

	// OnPass fires after every completed pass.
	OnPass func(pass int, length float64, improved bool)

	// OnProgress fires every ProgressEvery(n) accepted moves.
	OnProgress func(Progress)
}

// DefaultOptions returns the options used by the boundary wrappers.
func DefaultOptions() Options {
	return Options{MaxPasses: DefaultMaxPasses}
}
