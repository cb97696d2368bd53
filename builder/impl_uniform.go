// SPDX-License-Identifier: MIT
// Package: tourkit/builder
//
// impl_uniform.go — Uniform(n, w, h): random scatter in [0,w)×[0,h).
//
// Stochastic: requires WithSeed or WithRand. The RNG is consumed in point
// order (x then y), so a fixed seed reproduces the same set.

package builder

import "github.com/katalvlaran/tourkit/tsp"

// Uniform returns a Constructor drawing n points uniformly from the w×h box.
//
// Errors:
//   - ErrTooFewPoints if n < MinUniformPoints.
//   - ErrOptionViolation if w or h is not positive and finite.
//   - ErrNeedRandSource if no RNG is configured.
func Uniform(n int, w, h float64) Constructor {
	return func(pts []tsp.Point, cfg builderConfig) ([]tsp.Point, error) {
		if n < MinUniformPoints {
			return nil, wrapf(MethodUniform, "n < 0", ErrTooFewPoints)
		}
		if w <= 0 || h <= 0 || !finite(w) || !finite(h) {
			return nil, wrapf(MethodUniform, "box must have positive extent", ErrOptionViolation)
		}
		if cfg.rng == nil {
			return nil, wrapf(MethodUniform, "use WithSeed or WithRand", ErrNeedRandSource)
		}

		for k := 0; k < n; k++ {
			x := cfg.rng.Float64() * w
			y := cfg.rng.Float64() * h
			pts = append(pts, cfg.place(x, y))
		}

		return pts, nil
	}
}
