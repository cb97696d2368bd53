// Package tsp - random sources and the initial tour generator.
//
// Goals:
//   - Injectable randomness: the optimizer never reads a hidden generator; it
//     asks an IndexSource for indices, so tests can script every draw.
//   - Reproducibility on demand: SeededSource(seed) gives a deterministic stream.
//   - Faithful starting tours: SwapShuffle keeps the full-range swap procedure
//     exactly (see its doc comment); it is not a Fisher–Yates shuffle.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a SeededSource across
//     goroutines. GlobalSource is safe for concurrent use.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed seed used when SeededSource is called with seed==0.
const defaultRNGSeed int64 = 1

// IndexSource yields uniformly random indices in [0, n) for n > 0.
// *rand.Rand satisfies it.
type IndexSource interface {
	Intn(n int) int
}

// globalSource draws from the process-wide, automatically seeded math/rand
// generator. Successive calls are not reproducible.
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// GlobalSource returns the process-wide auto-seeded IndexSource.
// It is what Solve uses when Options.Source is nil.
func GlobalSource() IndexSource { return globalSource{} }

// SeededSource returns a deterministic IndexSource.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func SeededSource(seed int64) IndexSource {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// SwapShuffle returns a randomized permutation of 0..n-1.
//
// Procedure: start from the identity [0, 1, …, n-1]; for each position i in
// [0, n) draw j = src.Intn(n) over the FULL range and swap positions i and j.
//
// This is deliberately not the uniform Fisher–Yates shuffle, which shrinks the
// draw range as i advances. Reusing [0, n) at every step biases the resulting
// distribution of permutations; the procedure is kept as-is so the starting
// tours (and hence the final tours) keep the same distribution.
//
// Edge cases: n==0 ⇒ empty tour, n==1 ⇒ [0]; both skip the draw loop, so src
// is never called and may be nil. For n ≥ 2 a nil src means GlobalSource.
//
// Errors: ErrBadOptions for n<0; ErrSourceOutOfRange if src yields j ∉ [0,n).
//
// Complexity: O(n) time, O(n) space (the returned tour).
func SwapShuffle(n int, src IndexSource) ([]int, error) {
	if n < 0 {
		return nil, ErrBadOptions
	}
	tour := identityTour(n)
	if n <= 1 {
		return tour, nil
	}
	if src == nil {
		src = GlobalSource()
	}

	var i, j int
	for i = 0; i < n; i++ {
		j = src.Intn(n)
		if j < 0 || j >= n {
			return nil, ErrSourceOutOfRange
		}
		tour[i], tour[j] = tour[j], tour[i]
	}

	return tour, nil
}
