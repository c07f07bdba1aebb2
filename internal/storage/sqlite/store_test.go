package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testHabit(id, name string) models.Habit {
	return models.Habit{
		ID:          id,
		Name:        name,
		Category:    models.CategoryHealth,
		Recurrence:  models.Recurrence{Type: models.FrequencyDaily},
		TargetValue: 1,
		TargetUnit:  "times",
		CreatedAt:   time.Now().Truncate(time.Second),
	}
}

func TestStore_LoadWithoutInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}

func TestStore_InitIsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Init(); err != nil {
		t.Errorf("second Init should be a no-op, got %v", err)
	}
}

func TestStore_HabitCRUD(t *testing.T) {
	store := setupTestStore(t)

	h := testHabit("h1", "Morning run")
	h.Recurrence = models.Recurrence{Type: models.FrequencyDaysOfWeek, Value: "Mon,Wed,Fri"}
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	got, err := store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit: %v", err)
	}
	if got.Name != h.Name || got.Category != h.Category {
		t.Errorf("got %+v, want %+v", got, h)
	}
	if got.Recurrence.Type != models.FrequencyDaysOfWeek || got.Recurrence.Value != "Mon,Wed,Fri" {
		t.Errorf("recurrence round trip failed: %+v", got.Recurrence)
	}

	byName, err := store.GetHabitByName("Morning run")
	if err != nil || byName.ID != "h1" {
		t.Errorf("GetHabitByName = (%q, %v)", byName.ID, err)
	}

	got.Name = "Evening run"
	got.Category = models.CategoryMindfulness
	if err := store.UpdateHabit(got); err != nil {
		t.Fatalf("UpdateHabit: %v", err)
	}
	updated, _ := store.GetHabit("h1")
	if updated.Name != "Evening run" || updated.Category != models.CategoryMindfulness {
		t.Errorf("after update: %+v", updated)
	}

	if _, err := store.GetHabit("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetHabit(nope) = %v, want ErrNotFound", err)
	}
}

func TestStore_SoftDeleteAndRestore(t *testing.T) {
	store := setupTestStore(t)
	if err := store.AddHabit(testHabit("h1", "Meditate")); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteHabit("h1"); err != nil {
		t.Fatalf("DeleteHabit: %v", err)
	}
	if _, err := store.GetHabit("h1"); !errors.Is(err, storage.ErrNotFound) {
		t.Error("deleted habit should be hidden from GetHabit")
	}

	active, _ := store.GetAllHabits(false)
	if len(active) != 0 {
		t.Errorf("active habits = %d, want 0", len(active))
	}
	all, _ := store.GetAllHabits(true)
	if len(all) != 1 || all[0].DeletedAt == nil {
		t.Errorf("includeDeleted habits = %+v", all)
	}

	if err := store.DeleteHabit("h1"); err == nil {
		t.Error("deleting an already-deleted habit should fail")
	}

	if err := store.RestoreHabit("h1"); err != nil {
		t.Fatalf("RestoreHabit: %v", err)
	}
	restored, err := store.GetHabit("h1")
	if err != nil || restored.DeletedAt != nil {
		t.Errorf("restored habit = (%+v, %v)", restored, err)
	}
}

func TestStore_DuplicateLogEntryRejected(t *testing.T) {
	store := setupTestStore(t)
	if err := store.AddHabit(testHabit("h1", "Read")); err != nil {
		t.Fatal(err)
	}

	entry := models.LogEntry{
		ID: "e1", HabitID: "h1", Day: "2024-01-01",
		Status: "completed", Value: 1, CreatedAt: time.Now(),
	}
	if err := store.AddLogEntry(entry); err != nil {
		t.Fatalf("AddLogEntry: %v", err)
	}

	dup := entry
	dup.ID = "e2"
	if err := store.AddLogEntry(dup); !errors.Is(err, storage.ErrDuplicateEntry) {
		t.Errorf("duplicate entry = %v, want ErrDuplicateEntry", err)
	}

	next := entry
	next.ID = "e3"
	next.Day = "2024-01-02"
	if err := store.AddLogEntry(next); err != nil {
		t.Errorf("entry for another day: %v", err)
	}
}

func TestStore_LogQueries(t *testing.T) {
	store := setupTestStore(t)
	if err := store.AddHabit(testHabit("h1", "Read")); err != nil {
		t.Fatal(err)
	}

	for i, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		entry := models.LogEntry{
			ID: string(rune('a' + i)), HabitID: "h1", Day: d,
			Status: "completed", Value: 1, CreatedAt: time.Now(),
		}
		if err := store.AddLogEntry(entry); err != nil {
			t.Fatal(err)
		}
	}

	forDay, err := store.GetLogEntriesForDay("2024-01-02")
	if err != nil || len(forDay) != 1 {
		t.Errorf("entries for day = (%d, %v), want 1", len(forDay), err)
	}

	ranged, err := store.GetLogEntriesForHabit("h1", "2024-01-02", "2024-01-03")
	if err != nil || len(ranged) != 2 {
		t.Errorf("ranged entries = (%d, %v), want 2", len(ranged), err)
	}

	all, err := store.GetAllLogEntriesForHabit("h1")
	if err != nil || len(all) != 3 {
		t.Errorf("all entries = (%d, %v), want 3", len(all), err)
	}
	// Most recent day first
	if len(all) == 3 && all[0].Day != "2024-01-03" {
		t.Errorf("entries not sorted newest first: %q", all[0].Day)
	}
}

func TestStore_ProgressRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	p, err := store.GetProgress()
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if p.TotalXP != 0 || len(p.UnlockedBadges) != 0 {
		t.Errorf("seeded progress = %+v, want zero state", p)
	}

	p.TotalXP = 260
	p.UnlockedBadges = []string{"first_step", "week_warrior"}
	if err := store.SaveProgress(p); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	got, err := store.GetProgress()
	if err != nil {
		t.Fatalf("GetProgress after save: %v", err)
	}
	if got.TotalXP != 260 || len(got.UnlockedBadges) != 2 || got.UnlockedBadges[1] != "week_warrior" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestStore_RemindersAndProjects(t *testing.T) {
	store := setupTestStore(t)

	r := models.Reminder{ID: "r1", Text: "buy shoes", Priority: models.PriorityHigh, CreatedAt: time.Now()}
	if err := store.AddReminder(r); err != nil {
		t.Fatal(err)
	}
	if err := store.CompleteReminder("r1"); err != nil {
		t.Fatalf("CompleteReminder: %v", err)
	}
	pending, _ := store.GetReminders(true)
	if len(pending) != 0 {
		t.Errorf("pending reminders = %d, want 0", len(pending))
	}
	all, _ := store.GetReminders(false)
	if len(all) != 1 || !all[0].Completed {
		t.Errorf("all reminders = %+v", all)
	}

	p := models.Project{ID: "p1", Text: "marathon", Description: "26.2 by fall", Priority: models.PriorityLow, CreatedAt: time.Now()}
	if err := store.AddProject(p); err != nil {
		t.Fatal(err)
	}
	projects, _ := store.GetProjects(false)
	if len(projects) != 1 || projects[0].Description != "26.2 by fall" {
		t.Errorf("projects = %+v", projects)
	}
	if err := store.DeleteProject("p1"); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if err := store.DeleteProject("p1"); err == nil {
		t.Error("deleting a missing project should fail")
	}
}
