package utils

import (
	"time"

	"github.com/julianstephens/ritual/internal/constants"
)

// NormalizeDate discards the time-of-day component, returning midnight
// UTC for the same calendar date. All due-date arithmetic runs on
// normalized dates so DST shifts can't skew day counts.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(NormalizeDate(b).Sub(NormalizeDate(a)).Hours() / 24)
}

// FormatDay renders a date in the standard YYYY-MM-DD format.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD date string.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// Today returns the current wall-clock date, normalized.
func Today() time.Time {
	return NormalizeDate(time.Now())
}

// MonthIndex flattens a date's year and month into a single count so
// month distances can be computed by subtraction.
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}
