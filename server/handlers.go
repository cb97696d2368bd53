package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/katalvlaran/tourkit/codec"
	"github.com/katalvlaran/tourkit/config"
	"github.com/katalvlaran/tourkit/store"
	"github.com/katalvlaran/tourkit/tsp"
)

// Error codes carried in ErrorResponse.
const (
	codeValidation = "VALIDATION_ERROR"
	codeNotFound   = "NOT_FOUND"
	codeInternal   = "INTERNAL_ERROR"
	codeStore      = "STORE_UNAVAILABLE"
)

// RunStore is the run-history dependency. *store.Store satisfies it.
type RunStore interface {
	Save(ctx context.Context, run store.Run) (store.Run, error)
	Get(ctx context.Context, id string) (store.Run, error)
	List(ctx context.Context, limit int) ([]store.Run, error)
	HealthCheck(ctx context.Context) error
}

// Handler holds the dependencies of every route.
type Handler struct {
	Runs         RunStore
	Solver       config.SolverConfig
	MaxBodyBytes int64
	// MaxPoints bounds the points per request; 0 means DefaultMaxPoints.
	MaxPoints int
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RunSummary is the list form of a stored run (no points or route).
type RunSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Points    int       `json:"points"`
	Distance  float64   `json:"distance"`
	Passes    int       `json:"passes"`
	Converged bool      `json:"converged"`
	ElapsedMS int64     `json:"elapsed_ms"`
}

// RunDetail is the full form of a stored run.
type RunDetail struct {
	RunSummary
	Input []tsp.Point `json:"input"`
	Route []int       `json:"route"`
}

// Routes builds the mux wrapped in logging and recovery middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/tour", h.HandleSolve)
	mux.HandleFunc("GET /api/runs", h.HandleListRuns)
	mux.HandleFunc("GET /api/runs/{id}", h.HandleGetRun)
	mux.HandleFunc("GET /healthz", h.HandleHealthCheck)

	return loggingMiddleware(recoveryMiddleware(mux))
}

// HandleSolve decodes the point array, runs the optimizer and stores the run.
func (h *Handler) HandleSolve(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	points, err := codec.ReadRequest(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, err.Error())
		return
	}
	if limit := h.maxPoints(); len(points) > limit {
		writeError(w, http.StatusBadRequest, codeValidation,
			fmt.Sprintf("too many points: %d (limit %d)", len(points), limit))
		return
	}

	res, err := tsp.Solve(points, h.Solver.Options())
	if err != nil {
		log.Printf("[TOUR] solve failed for %d points: %v", len(points), err)
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to solve tour")
		return
	}
	log.Printf("[TIMING] solved %d points in %v (passes=%d converged=%v distance=%.3f)",
		len(points), res.Elapsed, res.Passes, res.Converged, res.Length)

	report := codec.NewReport(res)
	if h.Runs != nil {
		run, err := h.Runs.Save(r.Context(), store.NewRun(points, res))
		if err != nil {
			log.Printf("[STORE] failed to save run: %v", err)
		} else {
			report.RunID = run.ID
		}
	}

	writeJSON(w, http.StatusOK, report)
}

// HandleListRuns lists stored runs, newest first.
func (h *Handler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	if h.Runs == nil {
		writeError(w, http.StatusNotFound, codeNotFound, "run history is disabled")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, codeValidation, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	runs, err := h.Runs.List(r.Context(), limit)
	if err != nil {
		log.Printf("[STORE] failed to list runs: %v", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to list runs")
		return
	}

	out := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		out = append(out, summarize(run))
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": out})
}

// HandleGetRun returns a stored run with its input and route.
func (h *Handler) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	if h.Runs == nil {
		writeError(w, http.StatusNotFound, codeNotFound, "run history is disabled")
		return
	}

	id := r.PathValue("id")
	run, err := h.Runs.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "run not found")
		return
	}
	if err != nil {
		log.Printf("[STORE] failed to get run %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to get run")
		return
	}

	writeJSON(w, http.StatusOK, RunDetail{
		RunSummary: summarize(run),
		Input:      run.Points,
		Route:      run.Route,
	})
}

// HandleHealthCheck reports liveness and, when configured, store health.
func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.Runs != nil {
		if err := h.Runs.HealthCheck(r.Context()); err != nil {
			log.Printf("[STORE] health check failed: %v", err)
			writeError(w, http.StatusServiceUnavailable, codeStore, "run store unavailable")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) maxPoints() int {
	if h.MaxPoints <= 0 {
		return DefaultMaxPoints
	}
	return h.MaxPoints
}

func summarize(run store.Run) RunSummary {
	return RunSummary{
		ID:        run.ID,
		CreatedAt: run.CreatedAt,
		Points:    len(run.Points),
		Distance:  run.Distance,
		Passes:    run.Passes,
		Converged: run.Converged,
		ElapsedMS: run.Elapsed.Milliseconds(),
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[HTTP] failed to encode response: %v", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	})
}
