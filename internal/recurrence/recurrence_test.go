package recurrence

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

func habit(freq models.FrequencyType, value, created string) models.Habit {
	return models.Habit{
		ID:         "h1",
		Name:       "test habit",
		Category:   models.CategoryOther,
		Recurrence: models.Recurrence{Type: freq, Value: value},
		CreatedAt:  day(created),
	}
}

func TestIsDue_Daily(t *testing.T) {
	h := habit(models.FrequencyDaily, "", "2024-01-01")

	if !IsDue(h, day("2024-01-01")) {
		t.Error("daily habit should be due on its creation date")
	}
	if !IsDue(h, day("2024-06-15")) {
		t.Error("daily habit should be due on every later date")
	}
	if IsDue(h, day("2023-12-31")) {
		t.Error("no habit should be due before its creation date")
	}
}

func TestIsDue_IgnoresTimeOfDay(t *testing.T) {
	h := habit(models.FrequencyDaily, "", "2024-01-01")
	h.CreatedAt = time.Date(2024, 1, 1, 23, 45, 0, 0, time.Local)

	late := time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC)
	if !IsDue(h, late) {
		t.Error("creation time-of-day should not push the first due date to the next day")
	}
}

func TestIsDue_DaysOfWeek(t *testing.T) {
	h := habit(models.FrequencyDaysOfWeek, "Mon,Wed,Fri", "2024-01-01")

	// 2024-01-01 is a Monday
	cases := []struct {
		date string
		want bool
	}{
		{"2024-01-01", true},  // Mon
		{"2024-01-02", false}, // Tue
		{"2024-01-03", true},  // Wed
		{"2024-01-05", true},  // Fri
		{"2024-01-06", false}, // Sat
	}
	for _, tc := range cases {
		if got := IsDue(h, day(tc.date)); got != tc.want {
			t.Errorf("IsDue(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestIsDue_DaysOfWeekCaseAndLongNames(t *testing.T) {
	h := habit(models.FrequencyDaysOfWeek, "monday, WEDNESDAY ,fri", "2024-01-01")

	if !IsDue(h, day("2024-01-01")) || !IsDue(h, day("2024-01-03")) || !IsDue(h, day("2024-01-05")) {
		t.Error("weekday tokens should match case-insensitively and by 3-letter prefix")
	}
}

func TestIsDue_Weekly(t *testing.T) {
	h := habit(models.FrequencyWeekly, "Tue", "2024-01-01")

	if !IsDue(h, day("2024-01-02")) {
		t.Error("weekly habit should be due on its weekday")
	}
	if IsDue(h, day("2024-01-03")) {
		t.Error("weekly habit should not be due off its weekday")
	}
}

func TestIsDue_Biweekly(t *testing.T) {
	// Created Mon 2024-01-01, anchored to that week.
	h := habit(models.FrequencyBiweekly, "Mon", "2024-01-01")

	cases := []struct {
		date string
		want bool
	}{
		{"2024-01-01", true},  // week 0
		{"2024-01-08", false}, // week 1
		{"2024-01-15", true},  // week 2
		{"2024-01-22", false}, // week 3
		{"2024-01-16", false}, // week 2 but wrong weekday
	}
	for _, tc := range cases {
		if got := IsDue(h, day(tc.date)); got != tc.want {
			t.Errorf("IsDue(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestIsDue_Monthly(t *testing.T) {
	h := habit(models.FrequencyMonthly, "15", "2024-01-01")

	if !IsDue(h, day("2024-01-15")) || !IsDue(h, day("2024-02-15")) {
		t.Error("monthly habit should be due on its day of month")
	}
	if IsDue(h, day("2024-01-14")) {
		t.Error("monthly habit should not be due off its day of month")
	}
}

func TestIsDue_MonthlyDay31SkipsShortMonths(t *testing.T) {
	h := habit(models.FrequencyMonthly, "31", "2024-01-01")

	if !IsDue(h, day("2024-01-31")) {
		t.Error("should be due on Jan 31")
	}
	// February has no day 31, so the habit is simply never due that month.
	due := DueDatesBetween(h, day("2024-02-01"), day("2024-02-29"))
	if len(due) != 0 {
		t.Errorf("expected no due dates in February, got %d", len(due))
	}
}

func TestIsDue_Bimonthly(t *testing.T) {
	h := habit(models.FrequencyBimonthly, "10", "2024-01-05")

	cases := []struct {
		date string
		want bool
	}{
		{"2024-01-10", true},  // month 0
		{"2024-02-10", false}, // month 1
		{"2024-03-10", true},  // month 2
		{"2024-03-11", false},
	}
	for _, tc := range cases {
		if got := IsDue(h, day(tc.date)); got != tc.want {
			t.Errorf("IsDue(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestIsDue_CustomInterval(t *testing.T) {
	h := habit(models.FrequencyCustom, "3", "2024-01-01")

	cases := []struct {
		date string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-01-04", true},
		{"2024-01-05", false},
		{"2024-01-07", true},
	}
	for _, tc := range cases {
		if got := IsDue(h, day(tc.date)); got != tc.want {
			t.Errorf("IsDue(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestIsDue_CustomIntervalBelowOneClampsToDaily(t *testing.T) {
	for _, value := range []string{"0", "-2"} {
		h := habit(models.FrequencyCustom, value, "2024-01-01")
		if !IsDue(h, day("2024-01-01")) || !IsDue(h, day("2024-01-02")) {
			t.Errorf("custom interval %q should behave like daily", value)
		}
	}
}

func TestIsDue_FailsClosedOnBadParameters(t *testing.T) {
	cases := []struct {
		name string
		h    models.Habit
	}{
		{"empty weekday list", habit(models.FrequencyDaysOfWeek, "", "2024-01-01")},
		{"all unknown weekday tokens", habit(models.FrequencyDaysOfWeek, "foo,bar", "2024-01-01")},
		{"weekly without weekday", habit(models.FrequencyWeekly, "", "2024-01-01")},
		{"monthly without day", habit(models.FrequencyMonthly, "", "2024-01-01")},
		{"monthly non-numeric", habit(models.FrequencyMonthly, "fifteenth", "2024-01-01")},
		{"custom non-numeric", habit(models.FrequencyCustom, "weekly", "2024-01-01")},
		{"unknown type", habit("fortnightly", "", "2024-01-01")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Walk a couple of weeks; a fail-closed habit fires on none.
			due := DueDatesBetween(tc.h, day("2024-01-01"), day("2024-01-14"))
			if len(due) != 0 {
				t.Errorf("expected no due dates, got %d", len(due))
			}
		})
	}
}

func TestDueDatesBetween_AscendingAndInclusive(t *testing.T) {
	h := habit(models.FrequencyCustom, "3", "2024-01-01")

	due := DueDatesBetween(h, day("2024-01-01"), day("2024-01-07"))
	want := []string{"2024-01-01", "2024-01-04", "2024-01-07"}
	if len(due) != len(want) {
		t.Fatalf("expected %d due dates, got %d", len(want), len(due))
	}
	for i, w := range want {
		if got := due[i].Format("2006-01-02"); got != w {
			t.Errorf("due[%d] = %s, want %s", i, got, w)
		}
	}
}

func TestParseWeekdays_DropsUnknownTokens(t *testing.T) {
	got := ParseWeekdays("Mon,bogus,Fri")
	if len(got) != 2 || got[0] != time.Monday || got[1] != time.Friday {
		t.Errorf("ParseWeekdays = %v, want [Monday Friday]", got)
	}
}
