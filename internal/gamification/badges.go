package gamification

// Badge identifiers. Unlocks are one-time: a badge already present in
// the user's unlocked set is never re-added.
const (
	BadgeFirstStep   = "first_step"
	BadgeHatTrick    = "hat_trick"
	BadgeWeekWarrior = "week_warrior"
	BadgeMonthMaster = "month_master"
)

// Badge describes a one-time achievement.
type Badge struct {
	ID          string
	Name        string
	Icon        string
	Description string
}

// BadgeCatalog maps badge identifiers to their display metadata.
var BadgeCatalog = map[string]Badge{
	BadgeFirstStep: {
		ID:          BadgeFirstStep,
		Name:        "First Step",
		Icon:        "👟",
		Description: "Complete your first habit",
	},
	BadgeHatTrick: {
		ID:          BadgeHatTrick,
		Name:        "Hat Trick",
		Icon:        "🎩",
		Description: "Complete 3 habits in one day",
	},
	BadgeWeekWarrior: {
		ID:          BadgeWeekWarrior,
		Name:        "Week Warrior",
		Icon:        "🔥",
		Description: "Achieve a 7-day streak",
	},
	BadgeMonthMaster: {
		ID:          BadgeMonthMaster,
		Name:        "Monthly Master",
		Icon:        "🏆",
		Description: "Achieve a 30-day streak",
	},
}
