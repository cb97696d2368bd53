// Package codec owns the JSON boundary of the tour optimizer.
//
// Request:  a JSON array of {"x": <number>, "y": <number>} objects.
// Response: {"route": [<int>...], "distance": <number>}.
//
// Decoding is strict: unknown fields, missing coordinates, null entries and
// trailing data are rejected with ErrDecode before the optimizer runs.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/tourkit/tsp"
)

// ErrDecode is returned for any malformed request payload.
var ErrDecode = errors.New("codec: malformed request")

// Response is the wire form of a solved tour.
type Response struct {
	Route    []int   `json:"route"`
	Distance float64 `json:"distance"`
}

// Report extends Response with solver diagnostics. Used by the CLI and the
// HTTP service.
type Report struct {
	Route     []int   `json:"route"`
	Distance  float64 `json:"distance"`
	Passes    int     `json:"passes"`
	Converged bool    `json:"converged"`
	ElapsedMS int64   `json:"elapsed_ms"`
	RunID     string  `json:"run_id,omitempty"`
}

// point mirrors tsp.Point with pointer fields so absent keys are detectable.
type point struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// DecodeRequest parses a request payload into points.
// The returned slice is never nil on success.
func DecodeRequest(data []byte) ([]tsp.Point, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("request must be a JSON array: %w", ErrDecode)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var raw []*point
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrDecode)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after array: %w", ErrDecode)
	}

	points := make([]tsp.Point, len(raw))
	for i, p := range raw {
		if p == nil || p.X == nil || p.Y == nil {
			return nil, fmt.Errorf("point %d: x and y are required: %w", i, ErrDecode)
		}
		points[i] = tsp.Point{X: *p.X, Y: *p.Y}
	}
	if err := tsp.ValidatePoints(points); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrDecode)
	}

	return points, nil
}

// ReadRequest reads r to EOF and decodes it with DecodeRequest.
func ReadRequest(r io.Reader) ([]tsp.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}

	return DecodeRequest(data)
}

// NewResponse converts a solver result to its wire form.
func NewResponse(res tsp.TourResult) Response {
	return Response{Route: route(res.Tour), Distance: res.Length}
}

// NewReport converts a solver result to the extended wire form.
func NewReport(res tsp.TourResult) Report {
	return Report{
		Route:     route(res.Tour),
		Distance:  res.Length,
		Passes:    res.Passes,
		Converged: res.Converged,
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
}

// EncodeResponse renders res as {"route": [...], "distance": ...}.
func EncodeResponse(res tsp.TourResult) ([]byte, error) {
	out, err := json.Marshal(NewResponse(res))
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}

	return out, nil
}

// Run decodes data, solves it with opts and encodes the response.
// On a decode failure the optimizer is never invoked.
func Run(data []byte, opts tsp.Options) ([]byte, error) {
	points, err := DecodeRequest(data)
	if err != nil {
		return nil, err
	}

	res, err := tsp.Solve(points, opts)
	if err != nil {
		return nil, fmt.Errorf("solving: %w", err)
	}

	return EncodeResponse(res)
}

func route(tour []int) []int {
	if tour == nil {
		return []int{}
	}

	return tour
}
