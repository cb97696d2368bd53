// SPDX-License-Identifier: MIT
// Package: tourkit/builder
//
// impl_circle.go — Circle(n, r): n points evenly spaced on a circle.
//
// Point k sits at angle 2πk/n, counter-clockwise from (r, 0), so the identity
// order is already the optimal tour. Useful as a known-optimum fixture.

package builder

import (
	"math"

	"github.com/katalvlaran/tourkit/tsp"
)

// Circle returns a Constructor placing n points on a circle of radius r
// centred at the configured origin.
//
// Errors:
//   - ErrTooFewPoints if n < MinCirclePoints.
//   - ErrOptionViolation if r is not positive and finite.
//   - ErrNeedRandSource if jitter is configured without an RNG.
func Circle(n int, r float64) Constructor {
	return func(pts []tsp.Point, cfg builderConfig) ([]tsp.Point, error) {
		if n < MinCirclePoints {
			return nil, wrapf(MethodCircle, "n < 1", ErrTooFewPoints)
		}
		if r <= 0 || !finite(r) {
			return nil, wrapf(MethodCircle, "radius must be positive", ErrOptionViolation)
		}
		if err := cfg.requireJitterSource(MethodCircle); err != nil {
			return nil, err
		}

		step := 2 * math.Pi / float64(n)
		for k := 0; k < n; k++ {
			a := step * float64(k)
			pts = append(pts, cfg.place(r*math.Cos(a), r*math.Sin(a)))
		}

		return pts, nil
	}
}
