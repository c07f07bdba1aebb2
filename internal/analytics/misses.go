package analytics

import (
	"sort"
	"time"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/recurrence"
	"github.com/julianstephens/ritual/internal/utils"
)

// MissReport summarizes a single habit's missed due dates within the
// trailing window.
type MissReport struct {
	Habit       models.Habit
	MissedCount int
	TotalDue    int
	MissRate    float64
}

// MissedInWindow aggregates missed due dates per habit over the
// trailing windowDays. Today itself is excluded: the day isn't over,
// so it can't yet have been missed. Habits with no misses are omitted,
// and the result is sorted by missed count, worst first.
func MissedInWindow(habits []models.Habit, entries []models.LogEntry, windowDays int, today time.Time) []MissReport {
	today = utils.NormalizeDate(today)
	windowStart := today.AddDate(0, 0, -windowDays)

	byHabit := make(map[string]map[string]bool)
	for _, e := range entries {
		if byHabit[e.HabitID] == nil {
			byHabit[e.HabitID] = make(map[string]bool)
		}
		byHabit[e.HabitID][e.Day] = true
	}

	var reports []MissReport
	for _, habit := range habits {
		start := windowStart
		if created := utils.NormalizeDate(habit.CreatedAt); created.After(start) {
			start = created
		}
		if !start.Before(today) {
			continue
		}

		// DueDatesBetween is end-inclusive, so stop at yesterday.
		dueDates := recurrence.DueDatesBetween(habit, start, today.AddDate(0, 0, -1))
		logged := byHabit[habit.ID]

		missed := 0
		for _, d := range dueDates {
			if !logged[utils.FormatDay(d)] {
				missed++
			}
		}
		if missed == 0 {
			continue
		}

		reports = append(reports, MissReport{
			Habit:       habit,
			MissedCount: missed,
			TotalDue:    len(dueDates),
			MissRate:    float64(missed) / float64(len(dueDates)) * 100,
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].MissedCount > reports[j].MissedCount
	})
	return reports
}
