package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/ritual/internal/models"
)

// document is the on-disk layout of the JSON backend: a single file of
// collections, the document-store counterpart of the SQLite schema.
type document struct {
	Version   int                        `json:"version"`
	Habits    map[string]models.Habit    `json:"habits"`
	Logs      map[string]models.LogEntry `json:"logs"` // entry id -> entry
	Reminders map[string]models.Reminder `json:"reminders"`
	Projects  map[string]models.Project  `json:"projects"`
	Progress  models.UserProgress        `json:"progress"`
}

// JSONStore is a single-file document backend, interchangeable with the
// SQL backends behind the Provider interface.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version:   1,
		Habits:    make(map[string]models.Habit),
		Logs:      make(map[string]models.LogEntry),
		Reminders: make(map[string]models.Reminder),
		Projects:  make(map[string]models.Project),
		Progress:  models.UserProgress{UnlockedBadges: []string{}},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'ritual init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.doc.Habits == nil {
		s.doc.Habits = make(map[string]models.Habit)
	}
	if s.doc.Logs == nil {
		s.doc.Logs = make(map[string]models.LogEntry)
	}
	if s.doc.Reminders == nil {
		s.doc.Reminders = make(map[string]models.Reminder)
	}
	if s.doc.Projects == nil {
		s.doc.Projects = make(map[string]models.Project)
	}
	if s.doc.Progress.UnlockedBadges == nil {
		s.doc.Progress.UnlockedBadges = []string{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// Habits

func (s *JSONStore) AddHabit(habit models.Habit) error {
	s.doc.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	h, ok := s.doc.Habits[id]
	if !ok || h.DeletedAt != nil {
		return models.Habit{}, ErrNotFound
	}
	return h, nil
}

func (s *JSONStore) GetHabitByName(name string) (models.Habit, error) {
	for _, h := range s.doc.Habits {
		if h.Name == name && h.DeletedAt == nil {
			return h, nil
		}
	}
	return models.Habit{}, ErrNotFound
}

func (s *JSONStore) GetAllHabits(includeDeleted bool) ([]models.Habit, error) {
	var habits []models.Habit
	for _, h := range s.doc.Habits {
		if !includeDeleted && h.DeletedAt != nil {
			continue
		}
		habits = append(habits, h)
	}
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if _, ok := s.doc.Habits[habit.ID]; !ok {
		return ErrNotFound
	}
	s.doc.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	h, ok := s.doc.Habits[id]
	if !ok || h.DeletedAt != nil {
		return fmt.Errorf("habit not found or already deleted")
	}
	now := time.Now()
	h.DeletedAt = &now
	s.doc.Habits[id] = h
	return s.save()
}

func (s *JSONStore) RestoreHabit(id string) error {
	h, ok := s.doc.Habits[id]
	if !ok || h.DeletedAt == nil {
		return fmt.Errorf("habit not found or not deleted")
	}
	h.DeletedAt = nil
	s.doc.Habits[id] = h
	return s.save()
}

// Completion log

func (s *JSONStore) AddLogEntry(entry models.LogEntry) error {
	for _, e := range s.doc.Logs {
		if e.HabitID == entry.HabitID && e.Day == entry.Day {
			return ErrDuplicateEntry
		}
	}
	s.doc.Logs[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) GetLogEntry(habitID, day string) (models.LogEntry, error) {
	for _, e := range s.doc.Logs {
		if e.HabitID == habitID && e.Day == day {
			return e, nil
		}
	}
	return models.LogEntry{}, ErrNotFound
}

func (s *JSONStore) GetLogEntriesForDay(day string) ([]models.LogEntry, error) {
	return s.filterLogs(func(e models.LogEntry) bool {
		return e.Day == day
	}), nil
}

func (s *JSONStore) GetLogEntriesForHabit(habitID string, startDay, endDay string) ([]models.LogEntry, error) {
	return s.filterLogs(func(e models.LogEntry) bool {
		return e.HabitID == habitID && e.Day >= startDay && e.Day <= endDay
	}), nil
}

func (s *JSONStore) GetAllLogEntriesForHabit(habitID string) ([]models.LogEntry, error) {
	return s.filterLogs(func(e models.LogEntry) bool {
		return e.HabitID == habitID
	}), nil
}

func (s *JSONStore) GetAllLogEntries() ([]models.LogEntry, error) {
	return s.filterLogs(func(models.LogEntry) bool { return true }), nil
}

func (s *JSONStore) filterLogs(keep func(models.LogEntry) bool) []models.LogEntry {
	var entries []models.LogEntry
	for _, e := range s.doc.Logs {
		if keep(e) {
			entries = append(entries, e)
		}
	}
	// YYYY-MM-DD sorts lexicographically
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Day > entries[j].Day
	})
	return entries
}

// Reminders

func (s *JSONStore) AddReminder(r models.Reminder) error {
	s.doc.Reminders[r.ID] = r
	return s.save()
}

func (s *JSONStore) GetReminders(pendingOnly bool) ([]models.Reminder, error) {
	var reminders []models.Reminder
	for _, r := range s.doc.Reminders {
		if pendingOnly && r.Completed {
			continue
		}
		reminders = append(reminders, r)
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].CreatedAt.Before(reminders[j].CreatedAt)
	})
	return reminders, nil
}

func (s *JSONStore) CompleteReminder(id string) error {
	r, ok := s.doc.Reminders[id]
	if !ok || r.Completed {
		return fmt.Errorf("record not found or already completed")
	}
	r.Completed = true
	s.doc.Reminders[id] = r
	return s.save()
}

func (s *JSONStore) DeleteReminder(id string) error {
	if _, ok := s.doc.Reminders[id]; !ok {
		return ErrNotFound
	}
	delete(s.doc.Reminders, id)
	return s.save()
}

// Projects

func (s *JSONStore) AddProject(p models.Project) error {
	s.doc.Projects[p.ID] = p
	return s.save()
}

func (s *JSONStore) GetProjects(pendingOnly bool) ([]models.Project, error) {
	var projects []models.Project
	for _, p := range s.doc.Projects {
		if pendingOnly && p.Completed {
			continue
		}
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}

func (s *JSONStore) CompleteProject(id string) error {
	p, ok := s.doc.Projects[id]
	if !ok || p.Completed {
		return fmt.Errorf("record not found or already completed")
	}
	p.Completed = true
	s.doc.Projects[id] = p
	return s.save()
}

func (s *JSONStore) DeleteProject(id string) error {
	if _, ok := s.doc.Projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.doc.Projects, id)
	return s.save()
}

// User progress

func (s *JSONStore) GetProgress() (models.UserProgress, error) {
	p := s.doc.Progress
	if p.UnlockedBadges == nil {
		p.UnlockedBadges = []string{}
	}
	return p, nil
}

func (s *JSONStore) SaveProgress(p models.UserProgress) error {
	s.doc.Progress = p
	return s.save()
}
