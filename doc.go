// Package tourkit computes short closed tours through 2D points with a
// randomized-start 2-opt local search, and ships the pieces needed to run it
// as a library, a CLI or an HTTP service.
//
// 🚀 What is inside?
//
//	tsp/      — the kernel: distance model, SwapShuffle start, 2-opt optimizer
//	builder/  — deterministic point-set fixtures (circle, grid, uniform, coincident)
//	codec/    — JSON boundary: [{"x","y"}...] in, {"route","distance"} out
//	config/   — TOML / YAML / environment settings
//	store/    — SQLite history of completed runs
//	server/   — HTTP API (POST /api/tour, GET /api/runs, GET /healthz)
//	diag/     — one-time log setup and panic reporting
//	cmd/tour  — stdin/file → stdout CLI
//	cmd/tourd — HTTP service entry point
//
// Quick example:
//
//	pts := []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}}
//	res, err := tsp.Solve(pts, tsp.DefaultOptions())
//	// res.Tour is a permutation of 0..3, res.Length its cyclic length.
//
// The kernel is single-threaded and never logs; hosts own logging and
// concurrency.
//
//	go get github.com/katalvlaran/tourkit
package tourkit
