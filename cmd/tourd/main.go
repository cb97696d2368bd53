// Package main runs the tour optimizer HTTP service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/tourkit/config"
	"github.com/katalvlaran/tourkit/diag"
	"github.com/katalvlaran/tourkit/server"
	"github.com/katalvlaran/tourkit/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", getEnv("TOUR_CONFIG", ""), "Path to a TOML or YAML configuration file")
	flag.Parse()

	diag.Init("tourd ", os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	srvCfg := server.Config{
		Addr:      cfg.Server.Addr,
		Solver:    cfg.Solver,
		MaxPoints: cfg.Server.MaxPoints,
	}

	var runs *store.Store
	if cfg.Store.Path != "" {
		runs, err = store.Open(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open run store: %w", err)
		}
		defer runs.Close()
		srvCfg.Runs = runs
	} else {
		log.Printf("[STORE] Run history disabled")
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	actualAddr, err := srv.Start()
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	log.Printf("Listening on http://%s (max passes %d)", actualAddr, cfg.Solver.MaxPasses)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	sig := <-shutdown
	log.Printf("Received signal %v, starting graceful shutdown", sig)

	timeout := cfg.Server.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = config.Default().Server.ShutdownTimeout.Duration
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not gracefully shutdown the server: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
