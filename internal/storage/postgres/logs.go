package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/storage"
)

const logColumns = `id, habit_id, day, status, note, value, created_at`

func scanLogEntry(row interface{ Scan(...any) error }) (models.LogEntry, error) {
	var e models.LogEntry

	err := row.Scan(&e.ID, &e.HabitID, &e.Day, &e.Status, &e.Note, &e.Value, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LogEntry{}, storage.ErrNotFound
		}
		return models.LogEntry{}, err
	}

	return e, nil
}

func (s *Store) AddLogEntry(entry models.LogEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO logs (id, habit_id, day, status, note, value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.HabitID, entry.Day, entry.Status, entry.Note, entry.Value, entry.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
		return storage.ErrDuplicateEntry
	}
	return err
}

func (s *Store) GetLogEntry(habitID, day string) (models.LogEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+logColumns+`
		FROM logs WHERE habit_id = $1 AND day = $2`, habitID, day)
	return scanLogEntry(row)
}

func (s *Store) GetLogEntriesForDay(day string) ([]models.LogEntry, error) {
	return s.queryLogEntries(`
		SELECT `+logColumns+`
		FROM logs WHERE day = $1
		ORDER BY created_at`, day)
}

func (s *Store) GetLogEntriesForHabit(habitID string, startDay, endDay string) ([]models.LogEntry, error) {
	return s.queryLogEntries(`
		SELECT `+logColumns+`
		FROM logs
		WHERE habit_id = $1 AND day >= $2 AND day <= $3
		ORDER BY day DESC`, habitID, startDay, endDay)
}

func (s *Store) GetAllLogEntriesForHabit(habitID string) ([]models.LogEntry, error) {
	return s.queryLogEntries(`
		SELECT `+logColumns+`
		FROM logs WHERE habit_id = $1
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
