// Package recurrence decides, for an arbitrary calendar date, whether a
// habit is due. Evaluation is pure and deterministic: the same habit
// and date always produce the same answer, for past or future dates
// alike. A missing or malformed recurrence parameter makes the habit
// due on no date at all, so a broken configuration can never flood the
// due list.
package recurrence

import (
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/utils"
)

var weekdayTokens = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseWeekday parses a single weekday token ("Mon", "monday").
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) > 3 {
		s = s[:3]
	}
	wd, ok := weekdayTokens[s]
	return wd, ok
}

// ParseWeekdays parses a comma-separated weekday list ("Mon,Wed,Fri").
// Unknown tokens are dropped; an empty result means never due.
func ParseWeekdays(s string) []time.Weekday {
	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		if wd, ok := ParseWeekday(part); ok {
			weekdays = append(weekdays, wd)
		}
	}
	return weekdays
}

// IsDue reports whether the habit requires action on the given date.
// The date's time-of-day is ignored, and no habit is ever due before
// its own creation date.
func IsDue(habit models.Habit, date time.Time) bool {
	day := utils.NormalizeDate(date)
	created := utils.NormalizeDate(habit.CreatedAt)
	if day.Before(created) {
		return false
	}

	value := strings.TrimSpace(habit.Recurrence.Value)

	switch habit.Recurrence.Type {
	case models.FrequencyDaily:
		return true

	case models.FrequencyDaysOfWeek:
		for _, wd := range ParseWeekdays(value) {
			if day.Weekday() == wd {
				return true
			}
		}
		return false

	case models.FrequencyWeekly:
		wd, ok := ParseWeekday(value)
		return ok && day.Weekday() == wd

	case models.FrequencyBiweekly:
		wd, ok := ParseWeekday(value)
		if !ok || day.Weekday() != wd {
			return false
		}
		return (utils.DaysBetween(created, day)/7)%2 == 0

	case models.FrequencyMonthly:
		target, err := strconv.Atoi(value)
		return err == nil && day.Day() == target

	case models.FrequencyBimonthly:
		target, err := strconv.Atoi(value)
		if err != nil || day.Day() != target {
			return false
		}
		return (utils.MonthIndex(day)-utils.MonthIndex(created))%2 == 0

	case models.FrequencyCustom:
		interval, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		if interval < 1 {
			interval = 1
		}
		return utils.DaysBetween(created, day)%interval == 0

	default:
		return false
	}
}

// DueDatesBetween enumerates, in ascending order, every date in
// [start, end] on which the habit is due. The range is bounded by
// realistic habit lifetimes, so a simple day walk suffices.
func DueDatesBetween(habit models.Habit, start, end time.Time) []time.Time {
	var due []time.Time
	for d := utils.NormalizeDate(start); !d.After(utils.NormalizeDate(end)); d = d.AddDate(0, 0, 1) {
		if IsDue(habit, d) {
			due = append(due, d)
		}
	}
	return due
}
