// Package store persists the plan model and the active scenario as JSON
// documents in a SQLite database. It round-trips the documents without
// interpreting them; everything semantic lives in the forecast core.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"runway/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
    name      TEXT PRIMARY KEY,
    body      TEXT NOT NULL,
    saved_at  TEXT NOT NULL
);
`

// Document names.
const (
	docModel    = "model"
	docScenario = "scenario"
)

// Store is a SQLite-backed document store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadModel returns the stored model, or (nil, nil) when none exists.
func (s *Store) LoadModel() (*model.Model, error) {
	var m model.Model
	ok, err := s.load(docModel, &m)
	if err != nil || !ok {
		return nil, err
	}
	return &m, nil
}

// SaveModel stores the model, replacing any previous document.
func (s *Store) SaveModel(m *model.Model) error {
	return s.save(docModel, m)
}

// LoadScenario returns the active scenario, or (nil, nil) when none exists.
func (s *Store) LoadScenario() (*model.Scenario, error) {
	var sc model.Scenario
	ok, err := s.load(docScenario, &sc)
	if err != nil || !ok {
		return nil, err
	}
	return &sc, nil
}

// SaveScenario stores the active scenario.
func (s *Store) SaveScenario(sc *model.Scenario) error {
	return s.save(docScenario, sc)
}

// DeleteScenario discards the active scenario, if any.
func (s *Store) DeleteScenario() error {
	_, err := s.db.Exec("DELETE FROM documents WHERE name = ?", docScenario)
	return err
}

func (s *Store) load(name string, out any) (bool, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM documents WHERE name = ?", name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return false, fmt.Errorf("decoding %s: %w", name, err)
	}
	return true, nil
}

func (s *Store) save(name string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO documents (name, body, saved_at) VALUES (?, ?, ?)",
		name, string(body), now,
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}
