package storage

import "github.com/julianstephens/ritual/internal/models"

// Provider is the storage port. The analytics and gamification core
// never touches it; only the tracker service and the CLI do. Every
// backend enforces the one-entry-per-(habit, day) log constraint and
// soft-delete semantics for habits.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Completion log. AddLogEntry returns ErrDuplicateEntry when an
	// entry already exists for the same habit and day.
	AddLogEntry(models.LogEntry) error
	GetLogEntry(habitID, day string) (models.LogEntry, error)
	GetLogEntriesForDay(day string) ([]models.LogEntry, error)
	GetLogEntriesForHabit(habitID string, startDay, endDay string) ([]models.LogEntry, error)
	GetAllLogEntriesForHabit(habitID string) ([]models.LogEntry, error)
	GetAllLogEntries() ([]models.LogEntry, error)

	// Reminders
	AddReminder(models.Reminder) error
	GetReminders(pendingOnly bool) ([]models.Reminder, error)
	CompleteReminder(id string) error
	DeleteReminder(id string) error

	// Projects
	AddProject(models.Project) error
	GetProjects(pendingOnly bool) ([]models.Project, error)
	CompleteProject(id string) error
	DeleteProject(id string) error

	// User progress singleton
	GetProgress() (models.UserProgress, error)
	SaveProgress(models.UserProgress) error

	// Utils
	GetConfigPath() string
}
