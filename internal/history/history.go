// Package history persists resolved requests to a local sqlite database so
// past resolutions can be replayed and audited.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded resolution.
type Entry struct {
	ID         string
	Query      string
	Command    string
	Method     string
	Confidence float64
	Executed   bool
	CreatedAt  time.Time
}

// Store wraps the sqlite handle. Safe for concurrent use.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS resolutions (
	id         TEXT PRIMARY KEY,
	query      TEXT NOT NULL,
	command    TEXT NOT NULL,
	method     TEXT NOT NULL,
	confidence REAL NOT NULL,
	executed   INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resolutions_created_at ON resolutions (created_at DESC);
`

// DefaultPath returns the per-user database location, creating the parent
// directory if needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".nlcmd")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	return filepath.Join(dir, "history.db"), nil
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record stores one resolution and returns its id.
func (s *Store) Record(ctx context.Context, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO resolutions (id, query, command, method, confidence, executed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Query, e.Command, e.Method, e.Confidence, e.Executed, e.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("record resolution: %w", err)
	}
	return e.ID, nil
}

// MarkExecuted flags an already recorded resolution as run.
func (s *Store) MarkExecuted(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE resolutions SET executed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark executed: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, command, method, confidence, executed, created_at
		 FROM resolutions ORDER BY created_at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Query, &e.Command, &e.Method, &e.Confidence, &e.Executed, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear deletes all recorded resolutions.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM resolutions`)
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
