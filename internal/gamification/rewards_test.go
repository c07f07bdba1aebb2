package gamification

import (
	"testing"

	"github.com/julianstephens/ritual/internal/models"
)

func TestAward(t *testing.T) {
	cases := []struct {
		name          string
		before, after int
		want          int
	}{
		{"plain completion", 0, 1, 10},
		{"crossing 7", 6, 7, 60},
		{"already at 7", 7, 7, 10},
		{"past 7", 7, 8, 10},
		{"crossing 30", 29, 30, 210},
		{"already at 30", 30, 30, 10},
		{"streak reset", 12, 1, 10},
		{"jump over 7 is not a crossing", 5, 8, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Award(tc.before, tc.after); got != tc.want {
				t.Errorf("Award(%d, %d) = %d, want %d", tc.before, tc.after, got, tc.want)
			}
		})
	}
}

func TestCheckBadges_FirstStep(t *testing.T) {
	got := CheckBadges(models.UserProgress{}, 1, 1)
	if len(got) != 1 || got[0] != BadgeFirstStep {
		t.Errorf("CheckBadges = %v, want [first_step] on the very first completion", got)
	}
}

func TestCheckBadges_HatTrick(t *testing.T) {
	progress := models.UserProgress{TotalXP: 50, UnlockedBadges: []string{BadgeFirstStep}}

	if got := CheckBadges(progress, 1, 3); len(got) != 1 || got[0] != BadgeHatTrick {
		t.Errorf("CheckBadges with 3 completions today = %v, want [hat_trick]", got)
	}
	if got := CheckBadges(progress, 1, 2); len(got) != 0 {
		t.Errorf("CheckBadges with 2 completions today = %v, want none", got)
	}
	if got := CheckBadges(progress, 1, 4); len(got) != 0 {
		t.Errorf("CheckBadges with 4 completions today = %v, want none (edge-triggered)", got)
	}
}

func TestCheckBadges_StreakBadges(t *testing.T) {
	progress := models.UserProgress{TotalXP: 100, UnlockedBadges: []string{BadgeFirstStep}}

	if got := CheckBadges(progress, 7, 1); len(got) != 1 || got[0] != BadgeWeekWarrior {
		t.Errorf("streak 7 = %v, want [week_warrior]", got)
	}
	if got := CheckBadges(progress, 30, 1); len(got) != 1 || got[0] != BadgeMonthMaster {
		t.Errorf("streak 30 = %v, want [month_master]", got)
	}
}

func TestCheckBadges_Idempotent(t *testing.T) {
	progress := models.UserProgress{
		TotalXP:        500,
		UnlockedBadges: []string{BadgeFirstStep, BadgeHatTrick, BadgeWeekWarrior, BadgeMonthMaster},
	}

	if got := CheckBadges(progress, 30, 3); len(got) != 0 {
		t.Errorf("already-unlocked badges returned again: %v", got)
	}
}

func TestProcessCompletion_AccumulatesXPAndBadges(t *testing.T) {
	progress := models.UserProgress{}

	updated, reward := ProcessCompletion(progress, 0, 1, 1)
	if updated.TotalXP != 10 {
		t.Errorf("TotalXP = %d, want 10", updated.TotalXP)
	}
	if reward.XPEarned != 10 {
		t.Errorf("XPEarned = %d, want 10", reward.XPEarned)
	}
	if len(reward.NewBadges) != 1 || reward.NewBadges[0] != BadgeFirstStep {
		t.Errorf("NewBadges = %v, want [first_step]", reward.NewBadges)
	}
	if !updated.HasBadge(BadgeFirstStep) {
		t.Error("updated progress should contain the new badge")
	}
}

func TestProcessCompletion_LevelUp(t *testing.T) {
	progress := models.UserProgress{TotalXP: 95, UnlockedBadges: []string{BadgeFirstStep}}

	updated, reward := ProcessCompletion(progress, 2, 3, 1)
	if updated.TotalXP != 105 {
		t.Errorf("TotalXP = %d, want 105", updated.TotalXP)
	}
	if !reward.LevelUp {
		t.Error("crossing 100 XP should report a level up")
	}
	if reward.Level.Name != "Builder" {
		t.Errorf("Level = %q, want Builder", reward.Level.Name)
	}
}

func TestProcessCompletion_NoLevelUpWithinTier(t *testing.T) {
	progress := models.UserProgress{TotalXP: 110, UnlockedBadges: []string{BadgeFirstStep}}

	_, reward := ProcessCompletion(progress, 1, 2, 1)
	if reward.LevelUp {
		t.Error("should not report a level up while staying inside a tier")
	}
}

func TestProcessCompletion_DoesNotMutateInput(t *testing.T) {
	progress := models.UserProgress{TotalXP: 50, UnlockedBadges: []string{BadgeFirstStep}}

	ProcessCompletion(progress, 6, 7, 1)
	if progress.TotalXP != 50 || len(progress.UnlockedBadges) != 1 {
		t.Error("input progress was mutated")
	}
}
