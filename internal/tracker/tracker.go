// Package tracker glues the storage port to the pure analytics and
// gamification core. It owns the log-insert-then-reward sequence: a
// completion is appended, streaks are re-derived from the full log, and
// the reward transition runs against the pre-event progress state.
package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ritual/internal/analytics"
	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/gamification"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/recurrence"
	"github.com/julianstephens/ritual/internal/storage"
	"github.com/julianstephens/ritual/internal/utils"
)

// Service wraps a storage provider with the habit-tracking workflows.
type Service struct {
	store storage.Provider
}

func New(store storage.Provider) *Service {
	return &Service{store: store}
}

// CompletionOptions carries the optional fields of a completion event.
type CompletionOptions struct {
	Day   string // YYYY-MM-DD, defaults to today
	Note  string
	Value int // defaults to 1
}

// LogCompletion records a completion for the habit and returns the
// resulting reward. The insert and the reward computation form one
// logical transaction: if the insert fails (including duplicates), no
// reward is computed; if persisting the progress fails, the error is
// surfaced so the caller can retry rather than silently losing XP.
func (s *Service) LogCompletion(habit models.Habit, opts CompletionOptions) (gamification.Reward, error) {
	day := opts.Day
	if day == "" {
		day = utils.FormatDay(utils.Today())
	} else if _, err := utils.ParseDay(day); err != nil {
		return gamification.Reward{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	value := opts.Value
	if value < 1 {
		value = 1
	}

	today := utils.Today()

	// Streak before the event, from the pre-insert log.
	before, err := s.store.GetAllLogEntriesForHabit(habit.ID)
	if err != nil {
		return gamification.Reward{}, fmt.Errorf("failed to load completion log: %w", err)
	}
	streakBefore := analytics.CurrentStreak(habit, before, today)

	entry := models.LogEntry{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       day,
		Status:    constants.DefaultLogStatus,
		Note:      opts.Note,
		Value:     value,
		CreatedAt: time.Now(),
	}
	if err := s.store.AddLogEntry(entry); err != nil {
		return gamification.Reward{}, err
	}

	streakAfter := analytics.CurrentStreak(habit, append(before, entry), today)

	todayEntries, err := s.store.GetLogEntriesForDay(utils.FormatDay(today))
	if err != nil {
		return gamification.Reward{}, fmt.Errorf("failed to count today's completions: %w", err)
	}

	progress, err := s.store.GetProgress()
	if err != nil {
		return gamification.Reward{}, fmt.Errorf("failed to load progress: %w", err)
	}

	updated, reward := gamification.ProcessCompletion(progress, streakBefore, streakAfter, len(todayEntries))

	if err := s.store.SaveProgress(updated); err != nil {
		return gamification.Reward{}, fmt.Errorf("failed to persist progress: %w", err)
	}

	logger.Debug("Completion logged",
		"habit", habit.Name, "day", day,
		"streak_before", streakBefore, "streak_after", streakAfter,
		"xp", reward.XPEarned, "badges", reward.NewBadges)

	return reward, nil
}

// DueToday returns the active habits due on the given date, paired with
// whether each already has a log entry for it.
type DueHabit struct {
	Habit models.Habit
	Done  bool
}

func (s *Service) DueToday(today time.Time) ([]DueHabit, error) {
	habits, err := s.store.GetAllHabits(false)
	if err != nil {
		return nil, err
	}

	day := utils.FormatDay(today)
	entries, err := s.store.GetLogEntriesForDay(day)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(entries))
	for _, e := range entries {
		done[e.HabitID] = true
	}

	var due []DueHabit
	for _, h := range habits {
		if !recurrence.IsDue(h, today) {
			continue
		}
		due = append(due, DueHabit{Habit: h, Done: done[h.ID]})
	}
	return due, nil
}

// HabitReport bundles the per-habit analytics used by stats views.
type HabitReport struct {
	Habit          models.Habit
	Streak         int
	CompletionRate float64
	TotalDue       int
	TotalLogged    int
}

// Report derives the display metrics for every active habit.
func (s *Service) Report(today time.Time) ([]HabitReport, error) {
	habits, err := s.store.GetAllHabits(false)
	if err != nil {
		return nil, err
	}

	var reports []HabitReport
	for _, h := range habits {
		entries, err := s.store.GetAllLogEntriesForHabit(h.ID)
		if err != nil {
			return nil, err
		}
		rate, totalDue := analytics.CompletionRate(h, entries, today)
		reports = append(reports, HabitReport{
			Habit:          h,
			Streak:         analytics.CurrentStreak(h, entries, today),
			CompletionRate: rate,
			TotalDue:       totalDue,
			TotalLogged:    len(entries),
		})
	}
	return reports, nil
}

// MissedReport runs the miss analyzer over every active habit.
func (s *Service) MissedReport(windowDays int, today time.Time) ([]analytics.MissReport, error) {
	habits, err := s.store.GetAllHabits(false)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.GetAllLogEntries()
	if err != nil {
		return nil, err
	}
	return analytics.MissedInWindow(habits, entries, windowDays, today), nil
}
