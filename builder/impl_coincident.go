// SPDX-License-Identifier: MIT
// Package: tourkit/builder
//
// impl_coincident.go — Coincident(n, p): n copies of one point.
//
// Degenerate fixture: every tour has length 0, so the optimizer must stop
// after a single pass without accepting anything. Jitter is ignored here;
// a perturbed copy set would no longer be coincident.

package builder

import "github.com/katalvlaran/tourkit/tsp"

// Coincident returns a Constructor appending n copies of p (translated by the
// configured origin).
//
// Errors:
//   - ErrTooFewPoints if n < MinCoincidentPoints.
//   - ErrOptionViolation if p has a non-finite coordinate.
func Coincident(n int, p tsp.Point) Constructor {
	return func(pts []tsp.Point, cfg builderConfig) ([]tsp.Point, error) {
		if n < MinCoincidentPoints {
			return nil, wrapf(MethodCoincident, "n < 0", ErrTooFewPoints)
		}
		if !finite(p.X) || !finite(p.Y) {
			return nil, wrapf(MethodCoincident, "non-finite point", ErrOptionViolation)
		}

		q := tsp.Point{X: p.X + cfg.origin.X, Y: p.Y + cfg.origin.Y}
		for k := 0; k < n; k++ {
			pts = append(pts, q)
		}

		return pts, nil
	}
}
