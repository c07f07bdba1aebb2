// Package postgres is the server-backed storage backend, selected when
// the config value is a postgres:// connection string.
package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	return &Store{
		connStr: connStr,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	frequency_type TEXT NOT NULL,
	frequency_value TEXT NOT NULL DEFAULT '',
	target_value INTEGER NOT NULL DEFAULT 1,
	target_unit TEXT NOT NULL DEFAULT 'times',
	created_at TIMESTAMPTZ NOT NULL,
	deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS logs (
	id TEXT PRIMARY KEY,
	habit_id TEXT NOT NULL REFERENCES habits(id),
	day TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'completed',
	note TEXT NOT NULL DEFAULT '',
	value INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (habit_id, day)
);

CREATE TABLE IF NOT EXISTS reminders (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	priority TEXT NOT NULL DEFAULT 'medium',
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL DEFAULT 'medium',
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS user_progress (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	total_xp INTEGER NOT NULL DEFAULT 0,
	unlocked_badges TEXT NOT NULL DEFAULT '[]'
);
`

func (s *Store) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if _, err := s.db.Exec(
		`INSERT INTO user_progress (id, total_xp, unlocked_badges) VALUES (1, 0, '[]')
		 ON CONFLICT (id) DO NOTHING`); err != nil {
		return fmt.Errorf("failed to seed user progress: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetConfigPath returns the connection string identifying this store.
func (s *Store) GetConfigPath() string {
	return s.connStr
}
