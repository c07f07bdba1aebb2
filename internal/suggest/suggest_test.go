package suggest

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/ritual/internal/models"
)

func TestMotivationalMessage_PicksFromStreakBucket(t *testing.T) {
	cases := []struct {
		streak int
		pool   []string
	}{
		{0, messagesNone},
		{1, messagesEarly},
		{2, messagesEarly},
		{3, messagesWeek},
		{6, messagesWeek},
		{7, messagesLong},
		{100, messagesLong},
	}

	for _, tc := range cases {
		msg := MotivationalMessage(tc.streak)
		found := false
		for _, candidate := range tc.pool {
			if msg == candidate {
				found = true
			}
		}
		if !found {
			t.Errorf("streak %d: message %q not from expected pool", tc.streak, msg)
		}
	}
}

func TestInsights_EmptyLog(t *testing.T) {
	got := Insights(nil, nil)
	if len(got) != 1 || !strings.Contains(got[0], "Start logging") {
		t.Errorf("Insights with no data = %v", got)
	}
}

func TestInsights_BestWeekdayAndUntouchedHabit(t *testing.T) {
	habits := []models.Habit{
		{ID: "a", Name: "Run", CreatedAt: time.Now()},
		{ID: "b", Name: "Meditate", CreatedAt: time.Now()},
	}
	// Two Mondays and one Tuesday for habit a; habit b never logged.
	entries := []models.LogEntry{
		{ID: "1", HabitID: "a", Day: "2024-01-01"},
		{ID: "2", HabitID: "a", Day: "2024-01-08"},
		{ID: "3", HabitID: "a", Day: "2024-01-02"},
	}

	got := Insights(habits, entries)
	if len(got) != 2 {
		t.Fatalf("expected 2 insights, got %v", got)
	}
	if !strings.Contains(got[0], "Monday") {
		t.Errorf("best weekday insight = %q, want Monday", got[0])
	}
	if !strings.Contains(got[1], "Meditate") {
		t.Errorf("untouched habit insight = %q, want Meditate mentioned", got[1])
	}
}
