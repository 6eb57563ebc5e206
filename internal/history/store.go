// Package history persists build runs to a local SQLite database so
// operators can inspect what was published, when, and in which mode.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded build invocation.
type Run struct {
	ID       string
	Mode     string
	Pages    int
	Outcome  string
	Started  time.Time
	Duration time.Duration
}

// Store is a SQLite-backed build history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a history database. Use ":memory:" for
// an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS builds (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		pages INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		started INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_builds_started ON builds(started);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append records one build run.
func (s *Store) Append(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO builds (id, mode, pages, outcome, started, duration_ms) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.Mode, run.Pages, run.Outcome, run.Started.UTC().Unix(), run.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert build run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, mode, pages, outcome, started, duration_ms FROM builds ORDER BY started DESC, id LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query build runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, durationMS int64
		if err := rows.Scan(&run.ID, &run.Mode, &run.Pages, &run.Outcome, &started, &durationMS); err != nil {
			return nil, fmt.Errorf("scan build run: %w", err)
		}
		run.Started = time.Unix(started, 0).UTC()
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
