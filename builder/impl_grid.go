// SPDX-License-Identifier: MIT
// Package: tourkit/builder
//
// impl_grid.go — Grid(rows, cols, step): row-major lattice of points.
//
// Index of (r, c) is r*cols + c; coordinates are (c*step, r*step).

package builder

import "github.com/katalvlaran/tourkit/tsp"

// Grid returns a Constructor producing rows×cols lattice points spaced by step.
//
// Errors:
//   - ErrTooFewPoints if rows or cols < MinGridDim.
//   - ErrOptionViolation if step is not positive and finite.
//   - ErrNeedRandSource if jitter is configured without an RNG.
func Grid(rows, cols int, step float64) Constructor {
	return func(pts []tsp.Point, cfg builderConfig) ([]tsp.Point, error) {
		if rows < MinGridDim || cols < MinGridDim {
			return nil, wrapf(MethodGrid, "rows and cols must be >= 1", ErrTooFewPoints)
		}
		if step <= 0 || !finite(step) {
			return nil, wrapf(MethodGrid, "step must be positive", ErrOptionViolation)
		}
		if err := cfg.requireJitterSource(MethodGrid); err != nil {
			return nil, err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, cfg.place(float64(c)*step, float64(r)*step))
			}
		}

		return pts, nil
	}
}
