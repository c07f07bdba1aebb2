package utils

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2024, 3, 15, 23, 59, 58, 123, time.Local)
	got := NormalizeDate(in)

	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NormalizeDate = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 8, 6, 0, 0, 0, time.UTC)

	if got := DaysBetween(a, b); got != 7 {
		t.Errorf("DaysBetween = %d, want 7 regardless of time-of-day", got)
	}
	if got := DaysBetween(b, a); got != -7 {
		t.Errorf("DaysBetween reversed = %d, want -7", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween same day = %d, want 0", got)
	}
}

func TestFormatAndParseDay(t *testing.T) {
	d := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	s := FormatDay(d)
	if s != "2024-02-29" {
		t.Errorf("FormatDay = %q, want 2024-02-29", s)
	}

	parsed, err := ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if !NormalizeDate(parsed).Equal(d) {
		t.Errorf("round trip = %v, want %v", parsed, d)
	}

	if _, err := ParseDay("02/29/2024"); err == nil {
		t.Error("expected error for non-ISO date format")
	}
}

func TestMonthIndex(t *testing.T) {
	dec := time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC)
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	if diff := MonthIndex(jan) - MonthIndex(dec); diff != 1 {
		t.Errorf("month distance across year boundary = %d, want 1", diff)
	}
}
