// Package sqlite is the default storage backend, built on the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// schema is applied idempotently at Init. The UNIQUE constraint on
// (habit_id, day) is the hard backstop for the one-entry-per-day rule.
const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	frequency_type TEXT NOT NULL,
	frequency_value TEXT NOT NULL DEFAULT '',
	target_value INTEGER NOT NULL DEFAULT 1,
	target_unit TEXT NOT NULL DEFAULT 'times',
	created_at TEXT NOT NULL,
	deleted_at TEXT
);

CREATE TABLE IF NOT EXISTS logs (
	id TEXT PRIMARY KEY,
	habit_id TEXT NOT NULL REFERENCES habits(id),
	day TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'completed',
	note TEXT NOT NULL DEFAULT '',
	value INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL,
	UNIQUE (habit_id, day)
);

CREATE TABLE IF NOT EXISTS reminders (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	priority TEXT NOT NULL DEFAULT 'medium',
	completed INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL DEFAULT 'medium',
	completed INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_progress (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	total_xp INTEGER NOT NULL DEFAULT 0,
	unlocked_badges TEXT NOT NULL DEFAULT '[]'
);
`

func (s *Store) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Seed the singleton progress row
	if _, err := s.db.Exec(
		`INSERT OR IGNORE INTO user_progress (id, total_xp, unlocked_badges) VALUES (1, 0, '[]')`); err != nil {
		return fmt.Errorf("failed to seed user progress: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'ritual init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection.
// Returns nil before Init or Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
