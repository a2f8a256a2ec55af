package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/intelligrit/travel-optimizer/internal/form"
)

// ErrNotFound is returned when a session id is unknown.
var ErrNotFound = errors.New("session not found")

// Store keeps page sessions in DuckDB.
type Store struct {
	DB *sql.DB

	// mu serializes read-modify-write cycles so each session sees its
	// events one at a time.
	mu sync.Mutex
}

// New opens a session database. An empty path keeps everything in memory.
func New(dbPath string) (*Store, error) {
	if dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating session dir: %w", err)
		}
	}

	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}
	// A single connection keeps every query on the same in-memory database.
	db.SetMaxOpenConns(1)

	s := &Store{DB: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	_, err := s.DB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		state TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	return err
}

// Put inserts or replaces the page state for a session.
func (s *Store) Put(id string, p *form.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(id, p)
}

func (s *Store) put(id string, p *form.Page) error {
	state, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", id, err)
	}
	_, err = s.DB.Exec("INSERT OR REPLACE INTO sessions (id, state, updated_at) VALUES (?, ?, ?)",
		id, string(state), time.Now().UTC())
	return err
}

// Get loads the page state for a session and marks it as recently used, so a
// session that is only viewed is not pruned.
func (s *Store) Get(id string) (*form.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.DB.Exec("UPDATE sessions SET updated_at = ? WHERE id = ?", time.Now().UTC(), id); err != nil {
		return nil, fmt.Errorf("touching session %s: %w", id, err)
	}
	return p, nil
}

func (s *Store) get(id string) (*form.Page, error) {
	var state string
	err := s.DB.QueryRow("SELECT state FROM sessions WHERE id = ?", id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var p form.Page
	if err := json.Unmarshal([]byte(state), &p); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", id, err)
	}
	return &p, nil
}

// Update applies fn to a session's page and saves the result. Nothing is
// written if fn returns an error.
func (s *Store) Update(id string, fn func(p *form.Page) error) (*form.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.put(id, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Exists reports whether a session is stored.
func (s *Store) Exists(id string) (bool, error) {
	var n int
	err := s.DB.QueryRow("SELECT 1 FROM sessions WHERE id = ?", id).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up session %s: %w", id, err)
	}
	return true, nil
}

// Count returns the number of stored sessions.
func (s *Store) Count() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n)
	return n
}

// Prune removes sessions not touched since before cutoff and returns how
// many were dropped.
func (s *Store) Prune(cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.DB.Exec("DELETE FROM sessions WHERE updated_at < ?", cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
