package postgres

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/models"
)

func (s *Store) AddReminder(r models.Reminder) error {
	_, err := s.db.Exec(`
		INSERT INTO reminders (id, text, priority, completed, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.Text, r.Priority, r.Completed, r.CreatedAt)
	return err
}

func (s *Store) GetReminders(pendingOnly bool) ([]models.Reminder, error) {
	query := `SELECT id, text, priority, completed, created_at FROM reminders`
	if pendingOnly {
		query += ` WHERE NOT completed`
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
		if err := rows.Scan(&r.ID, &r.Text, &r.Priority, &r.Completed, &r.CreatedAt); err != nil {
			return nil, err
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
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Text, p.Description, p.Priority, p.Completed, p.CreatedAt)
	return err
}

func (s *Store) GetProjects(pendingOnly bool) ([]models.Project, error) {
	query := `SELECT id, text, description, priority, completed, created_at FROM projects`
	if pendingOnly {
		query += ` WHERE NOT completed`
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
		if err := rows.Scan(&p.ID, &p.Text, &p.Description, &p.Priority, &p.Completed, &p.CreatedAt); err != nil {
			return nil, err
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
	result, err := s.db.Exec(`UPDATE `+table+` SET completed = TRUE WHERE id = $1 AND NOT completed`, id)
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
	result, err := s.db.Exec(`DELETE FROM `+table+` WHERE id = $1`, id)
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
