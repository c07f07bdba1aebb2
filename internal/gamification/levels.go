// Package gamification turns streak transitions into XP, levels and
// badge unlocks. Everything here is a pure function over pre-event
// state and the completion event; persistence belongs to the caller.
package gamification

// Level is a named tier in the static XP threshold table.
type Level struct {
	Number     int
	Name       string
	Icon       string
	XPRequired int
}

// Levels is ordered by ascending XP threshold, starting at 0.
var Levels = []Level{
	{Number: 1, Name: "Beginner", Icon: "🌱", XPRequired: 0},
	{Number: 2, Name: "Builder", Icon: "🧱", XPRequired: 100},
	{Number: 3, Name: "Striver", Icon: "🏃", XPRequired: 300},
	{Number: 4, Name: "Guardian", Icon: "🛡️", XPRequired: 600},
	{Number: 5, Name: "Warrior", Icon: "⚔️", XPRequired: 1000},
	{Number: 6, Name: "Master", Icon: "🧘", XPRequired: 1500},
	{Number: 7, Name: "Legend", Icon: "👑", XPRequired: 2500},
}

// LevelForXP returns the highest level whose threshold is at or below
// totalXP, and the next level to reach, or nil at the top tier.
func LevelForXP(totalXP int) (Level, *Level) {
	current := Levels[0]
	for _, lvl := range Levels {
		if totalXP >= lvl.XPRequired {
			current = lvl
		} else {
			break
		}
	}

	for _, lvl := range Levels {
		if lvl.XPRequired > current.XPRequired {
			next := lvl
			return current, &next
		}
	}
	return current, nil
}
