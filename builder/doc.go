// Package builder provides deterministic point-set fixtures for the tsp
// package: tests, benchmarks and the CLI demo mode all draw their instances
// from here.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildPoints:  resolve options once, run constructors in order, concatenate.
//     – Constructor:  a function appending points under a resolved config.
//   - Constructors:
//     – Circle(n, r):            n points evenly spaced on a circle.
//     – Grid(rows, cols, step):  row-major lattice.
//     – Uniform(n, w, h):        uniform scatter in [0,w)×[0,h) (needs an RNG).
//     – Coincident(n, p):        n copies of one point.
//   - Configuration primitives (functional options):
//     – WithSeed / WithRand:  randomness for Uniform and jitter.
//     – WithOrigin:           translate every constructed point.
//     – WithJitter:           Gaussian perturbation (needs an RNG).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical points.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewPoints, ErrNeedRandSource, ErrOptionViolation)
//     wrapped with constructor context; branch with errors.Is.
//   - Every produced coordinate is finite.
package builder
