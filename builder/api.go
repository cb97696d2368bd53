// SPDX-License-Identifier: MIT
// Package: tourkit/builder
//
// api.go — public orchestration for point-set construction.
//
// Contract:
//   • BuildPoints resolves options once and runs constructors in order.
//   • Each constructor appends to the accumulated slice and returns it.
//   • The first failing constructor aborts the build; its error is returned
//     unchanged (already wrapped with method context).

package builder

import (
	"fmt"

	"github.com/katalvlaran/tourkit/tsp"
)

// Constructor appends points to pts under the resolved configuration cfg.
// Implementations MUST NOT panic and MUST return sentinel-wrapped errors.
type Constructor func(pts []tsp.Point, cfg builderConfig) ([]tsp.Point, error)

// BuildPoints applies opts, then runs every constructor in order on a shared
// slice. The result is validated with tsp.ValidatePoints before it is returned.
//
// Example:
//
//	pts, err := builder.BuildPoints(
//		[]builder.Option{builder.WithSeed(7)},
//		builder.Circle(12, 10),
//		builder.Uniform(30, 100, 100),
//	)
//
// Complexity: O(total points) time and space.
func BuildPoints(opts []Option, cons ...Constructor) ([]tsp.Point, error) {
	cfg := newBuilderConfig(opts...)

	var (
		pts []tsp.Point
		err error
	)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildPoints: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if pts, err = c(pts, cfg); err != nil {
			return nil, err
		}
	}
	if err = tsp.ValidatePoints(pts); err != nil {
		return nil, fmt.Errorf("BuildPoints: %w", err)
	}
	if pts == nil {
		pts = []tsp.Point{}
	}

	return pts, nil
}
