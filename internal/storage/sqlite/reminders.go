package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/ritual/internal/models"
)

func (s *Store) AddReminder(r models.Reminder) error {
	_, err := s.db.Exec(`
		INSERT INTO reminders (id, text, priority, completed, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Text, r.Priority, boolToInt(r.Completed), r.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetReminders(pendingOnly bool) ([]models.Reminder, error) {
	query := `SELECT id, text, priority, completed, created_at FROM reminders`
	if pendingOnly {
		query += ` WHERE completed = 0`
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var r models.Reminder
		var completed int
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Text, &r.Priority, &completed, &createdAt); err != nil {
			return nil, err
		}
		r.Completed = completed != 0
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for reminder %s: %w", r.ID, err)
		}
		reminders = append(reminders, r)
	}

	return reminders, rows.Err()
}

func (s *Store) CompleteReminder(id string) error {
	return s.markCompleted("reminders", id)
}

func (s *Store) DeleteReminder(id string) error {
	return s.deleteRow("reminders", id)
}

func (s *Store) AddProject(p models.Project) error {
	_, err := s.db.Exec(`
		INSERT INTO projects (id, text, description, priority, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Text, p.Description, p.Priority, boolToInt(p.Completed), p.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetProjects(pendingOnly bool) ([]models.Project, error) {
	query := `SELECT id, text, description, priority, completed, created_at FROM projects`
	if pendingOnly {
		query += ` WHERE completed = 0`
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var completed int
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Text, &p.Description, &p.Priority, &completed, &createdAt); err != nil {
			return nil, err
		}
		p.Completed = completed != 0
		p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for project %s: %w", p.ID, err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (s *Store) CompleteProject(id string) error {
	return s.markCompleted("projects", id)
}

func (s *Store) DeleteProject(id string) error {
	return s.deleteRow("projects", id)
}

func (s *Store) markCompleted(table, id string) error {
	result, err := s.db.Exec(`UPDATE `+table+` SET completed = 1 WHERE id = ? AND completed = 0`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("record not found or already completed")
	}
	return nil
}

func (s *Store) deleteRow(table, id string) error {
	result, err := s.db.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("record not found")
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
