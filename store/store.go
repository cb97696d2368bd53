// Package store keeps a history of completed optimizer runs in SQLite.
//
// Only finished results are stored: the input points, the returned route and
// its diagnostics. Nothing about an in-flight optimization is persisted.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/tourkit/tsp"
)

const (
	schemaVersion = 1

	// DefaultListLimit is used when List is called with a non-positive limit.
	DefaultListLimit = 20
	// MaxListLimit bounds a single List call.
	MaxListLimit = 200
)

// ErrNotFound is returned when a requested run does not exist.
var ErrNotFound = errors.New("store: run not found")

// Run is one completed optimization.
type Run struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Points    []tsp.Point   `json:"points"`
	Route     []int         `json:"route"`
	Distance  float64       `json:"distance"`
	Passes    int           `json:"passes"`
	Converged bool          `json:"converged"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// NewRun pairs a solver result with the points it was computed for.
func NewRun(points []tsp.Point, res tsp.TourResult) Run {
	return Run{
		Points:    points,
		Route:     res.Tour,
		Distance:  res.Length,
		Passes:    res.Passes,
		Converged: res.Converged,
		Elapsed:   res.Elapsed,
	}
}

// Store is a SQLite-backed run history. It is safe for concurrent use.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// Open opens (creating if needed) the database at dbPath.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	log.Printf("[STORE] Opening SQLite database at: %s", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return s.createSchema()
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported %d", version, schemaVersion)
	}

	return nil
}

func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT OR IGNORE INTO schema_version (version) VALUES (1);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		points TEXT NOT NULL,
		route TEXT NOT NULL,
		distance REAL NOT NULL,
		passes INTEGER NOT NULL,
		converged INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("[STORE] SQLite schema initialized (version %d)", schemaVersion)
	return nil
}

// Save stores run and returns it with ID and CreatedAt filled in when they
// were empty.
func (s *Store) Save(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	if run.Points == nil {
		run.Points = []tsp.Point{}
	}
	if run.Route == nil {
		run.Route = []int{}
	}

	points, err := json.Marshal(run.Points)
	if err != nil {
		return Run{}, fmt.Errorf("failed to encode points: %w", err)
	}
	route, err := json.Marshal(run.Route)
	if err != nil {
		return Run{}, fmt.Errorf("failed to encode route: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `INSERT INTO runs (id, created_at, points, route, distance, passes, converged, elapsed_ns)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		run.ID, run.CreatedAt.UnixNano(), string(points), string(route),
		run.Distance, run.Passes, run.Converged, int64(run.Elapsed),
	)
	if err != nil {
		return Run{}, fmt.Errorf("failed to insert run: %w", err)
	}

	return run, nil
}

// Get returns the run with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, created_at, points, route, distance, passes, converged, elapsed_ns
	          FROM runs WHERE id = ?`
	run, err := scanRun(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// List returns up to limit runs, newest first. A non-positive limit means
// DefaultListLimit; limits above MaxListLimit are clamped.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, created_at, points, route, distance, passes, converged, elapsed_ns
	          FROM runs
	          ORDER BY created_at DESC, rowid DESC
	          LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// HealthCheck verifies the database connection.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close checkpoints the WAL and closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		log.Printf("[STORE] WAL checkpoint failed for %s: %v", s.dbPath, err)
	}
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run       Run
		createdNS int64
		elapsedNS int64
		points    string
		route     string
	)
	err := row.Scan(&run.ID, &createdNS, &points, &route,
		&run.Distance, &run.Passes, &run.Converged, &elapsedNS)
	if err != nil {
		return Run{}, err
	}

	run.CreatedAt = time.Unix(0, createdNS).UTC()
	run.Elapsed = time.Duration(elapsedNS)
	if err := json.Unmarshal([]byte(points), &run.Points); err != nil {
		return Run{}, fmt.Errorf("decoding points of run %s: %w", run.ID, err)
	}
	if err := json.Unmarshal([]byte(route), &run.Route); err != nil {
		return Run{}, fmt.Errorf("decoding route of run %s: %w", run.ID, err)
	}

	return run, nil
}
