package models

import "time"

// LogEntry represents a single day's completion record for a habit.
// There is at most one entry per (habit, day) pair; storage backends
// reject duplicates rather than overwriting.
type LogEntry struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
