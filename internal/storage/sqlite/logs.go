package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/storage"
)

const logColumns = `id, habit_id, day, status, note, value, created_at`

func scanLogEntry(row interface{ Scan(...any) error }) (models.LogEntry, error) {
	var e models.LogEntry
	var createdAt string

	err := row.Scan(&e.ID, &e.HabitID, &e.Day, &e.Status, &e.Note, &e.Value, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LogEntry{}, storage.ErrNotFound
		}
		return models.LogEntry{}, err
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return e, nil
}

// AddLogEntry inserts a completion record. Duplicates for the same
// (habit, day) are rejected before insert; the UNIQUE constraint is the
// backstop in case of a race.
func (s *Store) AddLogEntry(entry models.LogEntry) error {
	if _, err := s.GetLogEntry(entry.HabitID, entry.Day); err == nil {
		return storage.ErrDuplicateEntry
	}

	_, err := s.db.Exec(`
		INSERT INTO logs (id, habit_id, day, status, note, value, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.HabitID, entry.Day, entry.Status, entry.Note, entry.Value,
		entry.CreatedAt.Format(time.RFC3339))
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return storage.ErrDuplicateEntry
	}
	return err
}

func (s *Store) GetLogEntry(habitID, day string) (models.LogEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+logColumns+`
		FROM logs WHERE habit_id = ? AND day = ?`, habitID, day)
	return scanLogEntry(row)
}

func (s *Store) GetLogEntriesForDay(day string) ([]models.LogEntry, error) {
	return s.queryLogEntries(`
		SELECT `+logColumns+`
		FROM logs WHERE day = ?
		ORDER BY created_at`, day)
}

func (s *Store) GetLogEntriesForHabit(habitID string, startDay, endDay string) ([]models.LogEntry, error) {
	return s.queryLogEntries(`
		SELECT `+logColumns+`
		FROM logs
		WHERE habit_id = ? AND day >= ? AND day <= ?
		ORDER BY day DESC`, habitID, startDay, endDay)
}

func (s *Store) GetAllLogEntriesForHabit(habitID string) ([]models.LogEntry, error) {
	return s.queryLogEntries(`
		SELECT `+logColumns+`
		FROM logs WHERE habit_id = ?
		ORDER BY day DESC`, habitID)
}

func (s *Store) GetAllLogEntries() ([]models.LogEntry, error) {
	return s.queryLogEntries(`
		SELECT ` + logColumns + `
		FROM logs ORDER BY day DESC`)
}

func (s *Store) queryLogEntries(query string, args ...any) ([]models.LogEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		e, err := scanLogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
