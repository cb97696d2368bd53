// SPDX-License-Identifier: MIT
// Package: tourkit/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng     = nil     (pure/deterministic unless seeded)
//   • origin  = (0, 0)
//   • jitter  = 0       (no perturbation)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/tourkit/tsp"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Translation applied to every constructed point.
	origin tsp.Point
	// Standard deviation of the Gaussian jitter; 0 disables it.
	jitter float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place translates p by the origin and applies jitter when configured.
// Callers must have checked that jitter>0 implies rng!=nil.
func (c builderConfig) place(x, y float64) tsp.Point {
	if c.jitter > 0 {
		x += c.rng.NormFloat64() * c.jitter
		y += c.rng.NormFloat64() * c.jitter
	}

	return tsp.Point{X: x + c.origin.X, Y: y + c.origin.Y}
}

// requireJitterSource reports ErrNeedRandSource when jitter is on without an RNG.
func (c builderConfig) requireJitterSource(method string) error {
	if c.jitter > 0 && c.rng == nil {
		return wrapf(method, "jitter needs an rng", ErrNeedRandSource)
	}

	return nil
}
