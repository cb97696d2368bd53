// SPDX-License-Identifier: MIT
// Package: tourkit/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tourkit/tsp"
)

// Option customizes point construction by mutating a builderConfig before
// any constructor runs.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors and jitter.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin translates every constructed point by (x, y).
// Panics on non-finite values.
func WithOrigin(x, y float64) Option {
	if !finite(x) || !finite(y) {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) {
		c.origin = tsp.Point{X: x, Y: y}
	}
}

// WithJitter perturbs each constructed coordinate by N(0, sigma²).
// Panics if sigma is negative or non-finite; sigma==0 disables jitter.
func WithJitter(sigma float64) Option {
	if sigma < 0 || !finite(sigma) {
		panic("builder: WithJitter(sigma<0)")
	}
	return func(c *builderConfig) {
		c.jitter = sigma
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
