// Package main is the command-line front end of the tour optimizer.
//
// Usage:
//
//	tour [flags] [request.json]
//
// The request (a JSON array of {"x","y"} points) is read from the file
// argument or, when absent, from stdin. The response is written to stdout.
// With -demo the input is generated instead of read.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/katalvlaran/tourkit/builder"
	"github.com/katalvlaran/tourkit/codec"
	"github.com/katalvlaran/tourkit/diag"
	"github.com/katalvlaran/tourkit/tsp"
)

type cliOptions struct {
	seed      int64
	maxPasses int
	progress  bool
	plain     bool
	demo      string
	n         int
	input     string
}

func main() {
	diag.Init("tour ", os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	points, err := loadPoints(opts, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	res, err := tsp.Solve(points, solverOptions(opts, stderr))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	b := tsp.Bounds(points)
	logger := log.New(stderr, "tour ", log.LstdFlags)
	logger.Printf("[TOUR] %d points in %.3gx%.3g box: distance=%.6g passes=%d converged=%v elapsed=%v",
		len(points), b.Width(), b.Height(), res.Length, res.Passes, res.Converged, res.Elapsed)

	var out any = codec.NewReport(res)
	if opts.plain {
		out = codec.NewResponse(res)
	}
	if err := json.NewEncoder(stdout).Encode(out); err != nil {
		fmt.Fprintf(stderr, "Error: writing response: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("tour", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64Var(&opts.seed, "seed", 0, "Seed for the starting permutation (0 = random)")
	fs.IntVar(&opts.maxPasses, "max-passes", tsp.DefaultMaxPasses, "Maximum number of 2-opt passes")
	fs.BoolVar(&opts.progress, "progress", false, "Log optimizer progress to stderr")
	fs.BoolVar(&opts.plain, "plain", false, "Write only {route, distance}")
	fs.StringVar(&opts.demo, "demo", "", "Generate input instead of reading it: circle, grid or uniform")
	fs.IntVar(&opts.n, "n", 50, "Number of demo points")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: at most one input file")
		return cliOptions{}, errors.New("too many arguments")
	}
	opts.input = fs.Arg(0)

	return opts, nil
}

func loadPoints(opts cliOptions, stdin io.Reader) ([]tsp.Point, error) {
	if opts.demo != "" {
		return demoPoints(opts)
	}

	if opts.input == "" || opts.input == "-" {
		return codec.ReadRequest(stdin)
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return nil, fmt.Errorf("opening request: %w", err)
	}
	defer f.Close()

	return codec.ReadRequest(f)
}

func demoPoints(opts cliOptions) ([]tsp.Point, error) {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	bopts := []builder.Option{builder.WithSeed(seed)}

	switch opts.demo {
	case "circle":
		return builder.BuildPoints(bopts, builder.Circle(opts.n, 100))
	case "grid":
		// Smallest square lattice holding n points, cut back to exactly n
		// in row-major order; the last row may be partial.
		side := int(math.Ceil(math.Sqrt(float64(opts.n))))
		pts, err := builder.BuildPoints(bopts, builder.Grid(side, side, 10))
		if err != nil {
			return nil, err
		}
		return pts[:opts.n], nil
	case "uniform":
		return builder.BuildPoints(bopts, builder.Uniform(opts.n, 1000, 1000))
	default:
		return nil, fmt.Errorf("unknown demo %q (want circle, grid or uniform)", opts.demo)
	}
}

func solverOptions(opts cliOptions, stderr io.Writer) tsp.Options {
	o := tsp.DefaultOptions()
	o.MaxPasses = opts.maxPasses
	if opts.seed != 0 {
		o.Source = tsp.SeededSource(opts.seed)
	}
	if opts.progress {
		o.OnProgress = func(p tsp.Progress) {
			fmt.Fprintf(stderr, "pass %d %5.1f%% length=%.6g\n", p.Pass, p.Fraction*100, p.Length)
		}
		o.OnPass = func(pass int, length float64, improved bool) {
			fmt.Fprintf(stderr, "pass %d done: length=%.6g improved=%v\n", pass, length, improved)
		}
	}

	return o
}
