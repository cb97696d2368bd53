// Package tsp - tour utilities shared by the generator and the optimizer.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - identityTour: [0, 1, …, n-1].
//   - reverseInPlace: in-place segment reversal (2-opt core).
//   - CopyTour: independent copy of a tour slice.
//   - EqualCycles: same cyclic order under rotation and reversal.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for every helper; in-place mutation where the optimizer needs it.
package tsp

// ValidatePermutation checks that tour is a permutation of {0..n-1} of length n.
// n==0 with an empty tour is valid.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if len(tour) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		// Out-of-range element or duplicate breaks the bijection.
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// identityTour returns [0, 1, …, n-1].
func identityTour(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// reverseInPlace reverses tour[i..k] inclusive.
// Contract: 0 ≤ i ≤ k < len(tour); callers guarantee the bounds.
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// CopyTour returns an independent copy of the input tour slice.
// A nil input yields an empty, non-nil slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualCycles reports whether a and b describe the same cycle, allowing any
// rotation and either direction.
//
// Complexity: O(n) time.
func EqualCycles(a, b []int) bool {
	var n = len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	// Locate b's rotation offset for a[0].
	var off = -1
	for i := 0; i < n; i++ {
		if b[i] == a[0] {
			off = i
			break
		}
	}
	if off < 0 {
		return false
	}

	forward, backward := true, true
	for i := 0; i < n && (forward || backward); i++ {
		if a[i] != b[(off+i)%n] {
			forward = false
		}
		if a[i] != b[(off-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}
