// Package analytics derives streak, completion-rate and missed-day
// metrics from a habit's recurrence definition and its completion log.
// Every function takes "today" explicitly so callers (and tests) pin
// day-boundary behavior instead of depending on wall-clock call time.
package analytics

import (
	"time"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/recurrence"
	"github.com/julianstephens/ritual/internal/utils"
)

// loggedDays collects the distinct days covered by the entries.
func loggedDays(entries []models.LogEntry) map[string]bool {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.Day] = true
	}
	return days
}

// CurrentStreak counts consecutive due dates, most recent first, with a
// matching log entry. A due date with no entry breaks the streak,
// except when that date is today itself: the day isn't over, so an
// unfinished today leaves the streak pending rather than broken.
func CurrentStreak(habit models.Habit, entries []models.LogEntry, today time.Time) int {
	today = utils.NormalizeDate(today)
	created := utils.NormalizeDate(habit.CreatedAt)
	if created.After(today) {
		return 0
	}

	dueDates := recurrence.DueDatesBetween(habit, created, today)
	logged := loggedDays(entries)

	streak := 0
	for i := len(dueDates) - 1; i >= 0; i-- {
		d := dueDates[i]
		if logged[utils.FormatDay(d)] {
			streak++
			continue
		}
		if d.Equal(today) {
			continue
		}
		break
	}
	return streak
}
