// Package server exposes the tour optimizer over HTTP.
//
// Routes:
//
//	POST /api/tour       solve a JSON point array, respond with route + diagnostics
//	GET  /api/runs       list stored runs (?limit=N)
//	GET  /api/runs/{id}  fetch one stored run
//	GET  /healthz        liveness + store health
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/katalvlaran/tourkit/config"
)

// DefaultMaxBodyBytes bounds a request body when Config.MaxBodyBytes is zero.
const DefaultMaxBodyBytes int64 = 8 << 20

// DefaultMaxPoints bounds the points of one request when Config.MaxPoints is
// zero. A 2-opt pass costs O(n³) and cannot be interrupted once started.
const DefaultMaxPoints = 2000

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	handler    *Handler
	listener   net.Listener
	addr       string
}

// Config holds server configuration.
type Config struct {
	Addr string // e.g., "127.0.0.1:8080" or "127.0.0.1:0" for a random port
	// Solver settings applied to every request.
	Solver config.SolverConfig
	// Runs persists completed runs; nil disables history.
	Runs RunStore
	// MaxBodyBytes bounds POST bodies; 0 means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	// MaxPoints bounds the points per request; 0 means DefaultMaxPoints.
	MaxPoints int
}

// New creates a server (does not start it).
func New(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("server: empty listen address")
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = DefaultMaxPoints
	}

	handler := &Handler{
		Runs:         cfg.Runs,
		Solver:       cfg.Solver,
		MaxBodyBytes: cfg.MaxBodyBytes,
		MaxPoints:    cfg.MaxPoints,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
		addr:       cfg.Addr,
	}, nil
}

// Start starts serving in the background and returns the actual address
// (useful with port 0).
func (s *Server) Start() (string, error) {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen: %w", err)
	}

	s.listener = listener
	actualAddr := listener.Addr().String()
	log.Printf("[HTTP] Starting server on %s", actualAddr)

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("[HTTP] Server error: %v", err)
		}
	}()

	return actualAddr, nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
