package models

// UserProgress is the singleton gamification state. TotalXP never
// decreases and UnlockedBadges is append-only; only the reward engine
// produces new values, callers persist them.
type UserProgress struct {
	TotalXP        int      `json:"total_xp"`
	UnlockedBadges []string `json:"unlocked_badges"`
}

// HasBadge reports whether the badge is already unlocked.
func (p UserProgress) HasBadge(id string) bool {
	for _, b := range p.UnlockedBadges {
		if b == id {
			return true
		}
	}
	return false
}
