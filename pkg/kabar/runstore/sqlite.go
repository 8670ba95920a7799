// Package runstore keeps a SQLite history of training runs so
// successive runs over a corpus stay comparable: one row per run with
// its branch, dataset, metrics and model location.
package runstore

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Run is one completed training run.
type Run struct {
	ID          string
	StartedAt   time.Time
	Branch      string
	DatasetPath string
	Rows        int
	ModelPath   string
	Metrics     map[string]float64
}

// Store is the SQLite-backed run history.
type Store struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// Open opens the run-history database at path, creating the schema if
// needed. WAL mode is enabled.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	branch TEXT NOT NULL,
	dataset_path TEXT NOT NULL,
	rows INTEGER NOT NULL,
	model_path TEXT NOT NULL,
	metrics TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Append records a completed run and returns its generated ULID.
func (s *Store) Append(ctx context.Context, r Run) (string, error) {
	if r.ID == "" {
		r.ID = ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
	}
	metricsJSON, err := json.Marshal(r.Metrics)
	if err != nil {
		return "", fmt.Errorf("marshal metrics: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, branch, dataset_path, rows, model_path, metrics)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.StartedAt.UTC().Format(time.RFC3339), r.Branch,
		r.DatasetPath, r.Rows, r.ModelPath, string(metricsJSON))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return r.ID, nil
}

// List returns all recorded runs, newest first.
func (s *Store) List(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, branch, dataset_path, rows, model_path, metrics
		 FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt, metricsJSON string
		if err := rows.Scan(&r.ID, &startedAt, &r.Branch, &r.DatasetPath, &r.Rows, &r.ModelPath, &metricsJSON); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		if err := json.Unmarshal([]byte(metricsJSON), &r.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics for run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
