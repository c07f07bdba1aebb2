package analytics

import (
	"time"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/recurrence"
	"github.com/julianstephens/ritual/internal/utils"
)

// CompletionRate returns the lifetime completion percentage and the
// total number of due dates from creation through today inclusive.
// Completions are counted by distinct day, and the rate is capped at
// 100 in case of entries logged on non-due dates.
func CompletionRate(habit models.Habit, entries []models.LogEntry, today time.Time) (float64, int) {
	today = utils.NormalizeDate(today)
	created := utils.NormalizeDate(habit.CreatedAt)
	if created.After(today) {
		return 0, 0
	}

	totalDue := len(recurrence.DueDatesBetween(habit, created, today))
	if totalDue == 0 {
		return 0, 0
	}

	completed := len(loggedDays(entries))
	pct := float64(completed) / float64(totalDue) * 100
	if pct > 100 {
		pct = 100
	}
	return pct, totalDue
}
