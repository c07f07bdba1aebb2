package gamification

import "github.com/julianstephens/ritual/internal/models"

const (
	XPPerCompletion = 10
	XPStreakBonus7  = 50
	XPStreakBonus30 = 200
)

// Reward is the outcome of a single completion event.
type Reward struct {
	XPEarned  int
	LevelUp   bool
	Level     Level
	NewBadges []string
}

// Award computes the XP delta for a completion given the streak before
// and after the event. Milestone bonuses are edge-triggered: they fire
// only when the streak crosses into the threshold, never when it sits
// at or re-enters it.
func Award(streakBefore, streakAfter int) int {
	xp := XPPerCompletion
	if streakAfter == 7 && streakBefore < 7 {
		xp += XPStreakBonus7
	}
	if streakAfter == 30 && streakBefore < 30 {
		xp += XPStreakBonus30
	}
	return xp
}

// CheckBadges returns the badge identifiers newly unlocked by a
// completion event. completionsToday counts log entries dated today
// across all habits, including the one just inserted. Badges already
// in the unlocked set are never returned again.
func CheckBadges(progress models.UserProgress, streakAfter, completionsToday int) []string {
	var candidates []string

	if progress.TotalXP == 0 {
		candidates = append(candidates, BadgeFirstStep)
	}
	if completionsToday == 3 {
		candidates = append(candidates, BadgeHatTrick)
	}
	if streakAfter == 7 {
		candidates = append(candidates, BadgeWeekWarrior)
	}
	if streakAfter == 30 {
		candidates = append(candidates, BadgeMonthMaster)
	}

	var unlocked []string
	for _, id := range candidates {
		if !progress.HasBadge(id) {
			unlocked = append(unlocked, id)
		}
	}
	return unlocked
}

// ProcessCompletion applies one completion event to the progress state
// and returns the updated state alongside the reward. It is total over
// its inputs: any non-negative streak values produce a valid result.
func ProcessCompletion(progress models.UserProgress, streakBefore, streakAfter, completionsToday int) (models.UserProgress, Reward) {
	xp := Award(streakBefore, streakAfter)
	newBadges := CheckBadges(progress, streakAfter, completionsToday)

	updated := models.UserProgress{
		TotalXP:        progress.TotalXP + xp,
		UnlockedBadges: append(append([]string{}, progress.UnlockedBadges...), newBadges...),
	}

	prevLevel, _ := LevelForXP(progress.TotalXP)
	currLevel, _ := LevelForXP(updated.TotalXP)

	return updated, Reward{
		XPEarned:  xp,
		LevelUp:   currLevel.Number > prevLevel.Number,
		Level:     currLevel,
		NewBadges: newBadges,
	}
}
