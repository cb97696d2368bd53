// SPDX-License-Identifier: MIT
// Package: tourkit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach constructor context with `%w` via wrapf.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that a count parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrOptionViolation indicates a non-positive or non-finite geometric parameter
// (radius, step, width, height) or coordinate.
var ErrOptionViolation = errors.New("builder: invalid parameter")

// ErrNeedRandSource indicates that a stochastic constructor or option requires
// a non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildPoints received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf prefixes a sentinel with the method name and a short reason:
// "<Method>: <reason>: <sentinel>". errors.Is keeps working on the result.
func wrapf(method, reason string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, reason, err)
}
