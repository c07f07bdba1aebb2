package analytics

import (
	"testing"
	"time"

	"github.com/julianstephens/ritual/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dailyHabit(created string) models.Habit {
	return models.Habit{
		ID:         "h1",
		Name:       "test habit",
		Category:   models.CategoryOther,
		Recurrence: models.Recurrence{Type: models.FrequencyDaily},
		CreatedAt:  day(created),
	}
}

func entriesFor(habitID string, days ...string) []models.LogEntry {
	entries := make([]models.LogEntry, 0, len(days))
	for i, d := range days {
		entries = append(entries, models.LogEntry{
			ID:      string(rune('a' + i)),
			HabitID: habitID,
			Day:     d,
			Status:  "completed",
			Value:   1,
		})
	}
	return entries
}

func TestCurrentStreak_BrokenByGap(t *testing.T) {
	h := dailyHabit("2024-01-01")
	entries := entriesFor(h.ID, "2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05")

	// 2024-01-03 was missed; counting back from Jan 6 the streak is the
	// unfinished Jan 6 (tolerated) plus Jan 5 and Jan 4.
	if got := CurrentStreak(h, entries, day("2024-01-06")); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}

func TestCurrentStreak_UnfinishedTodayDoesNotBreak(t *testing.T) {
	h := dailyHabit("2024-01-01")
	entries := entriesFor(h.ID, "2024-01-01", "2024-01-02", "2024-01-03")

	if got := CurrentStreak(h, entries, day("2024-01-04")); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3 when today is due but unfinished", got)
	}
}

func TestCurrentStreak_CompletedTodayCounts(t *testing.T) {
	h := dailyHabit("2024-01-01")
	entries := entriesFor(h.ID, "2024-01-03", "2024-01-04")

	if got := CurrentStreak(h, entries, day("2024-01-04")); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}

func TestCurrentStreak_YesterdayMissedResetsToToday(t *testing.T) {
	h := dailyHabit("2024-01-01")
	entries := entriesFor(h.ID, "2024-01-01", "2024-01-02", "2024-01-04")

	// Jan 3 missed, Jan 4 done: streak restarts at 1.
	if got := CurrentStreak(h, entries, day("2024-01-04")); got != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got)
	}
}

func TestCurrentStreak_SkipsNonDueDays(t *testing.T) {
	h := models.Habit{
		ID:         "h1",
		Name:       "weekday habit",
		Category:   models.CategoryOther,
		Recurrence: models.Recurrence{Type: models.FrequencyDaysOfWeek, Value: "Mon,Wed,Fri"},
		CreatedAt:  day("2024-01-01"),
	}
	// Due Mon 01-01, Wed 01-03, Fri 01-05. The Tue/Thu gaps are not
	// misses; completing all three due dates gives a streak of 3.
	entries := entriesFor(h.ID, "2024-01-01", "2024-01-03", "2024-01-05")

	if got := CurrentStreak(h, entries, day("2024-01-06")); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}
}

func TestCurrentStreak_NoEntries(t *testing.T) {
	h := dailyHabit("2024-01-01")

	if got := CurrentStreak(h, nil, day("2024-01-05")); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0 with empty log", got)
	}
}

func TestCurrentStreak_HabitCreatedInFuture(t *testing.T) {
	h := dailyHabit("2024-06-01")

	if got := CurrentStreak(h, nil, day("2024-01-05")); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0 for a habit created after today", got)
	}
}
