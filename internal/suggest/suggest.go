// Package suggest produces motivational copy and lightweight insights.
// The text is cosmetic and randomized; nothing here feeds back into
// streak or reward computation.
package suggest

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/utils"
)

var (
	messagesNone = []string{
		"Every journey begins with a single step. Start today!",
		"Don't worry about yesterday. Today is a new opportunity.",
		"Small progress is still progress.",
	}
	messagesEarly = []string{
		"You're off to a great start! Keep it up!",
		"Consistency is key. You're building momentum.",
		"Great job! Two days in a row!",
	}
	messagesWeek = []string{
		"You're on fire! 🔥",
		"Almost a full week! Don't break the chain!",
		"You are becoming unstoppable.",
	}
	messagesLong = []string{
		"Legendary streak! 🏆",
		"This habit is now part of you.",
		"Incredible dedication. Use this energy for other goals too!",
	}
)

// MotivationalMessage picks a message matching the streak length.
func MotivationalMessage(streak int) string {
	var pool []string
	switch {
	case streak == 0:
		pool = messagesNone
	case streak < 3:
		pool = messagesEarly
	case streak < 7:
		pool = messagesWeek
	default:
		pool = messagesLong
	}
	return pool[rand.Intn(len(pool))]
}

// Insights derives simple heuristics from the log: the weekday with the
// most completions, and habits that have never been logged.
func Insights(habits []models.Habit, entries []models.LogEntry) []string {
	if len(habits) == 0 || len(entries) == 0 {
		return []string{"Start logging your habits to get insights!"}
	}

	var insights []string

	weekdayCounts := make(map[time.Weekday]int)
	for _, e := range entries {
		if d, err := utils.ParseDay(e.Day); err == nil {
			weekdayCounts[d.Weekday()]++
		}
	}
	if len(weekdayCounts) > 0 {
		weekdays := make([]time.Weekday, 0, len(weekdayCounts))
		for wd := range weekdayCounts {
			weekdays = append(weekdays, wd)
		}
		sort.Slice(weekdays, func(i, j int) bool {
			if weekdayCounts[weekdays[i]] != weekdayCounts[weekdays[j]] {
				return weekdayCounts[weekdays[i]] > weekdayCounts[weekdays[j]]
			}
			return weekdays[i] < weekdays[j]
		})
		insights = append(insights, fmt.Sprintf(
			"You are most consistent on %ss. Try to schedule your hardest habits then!", weekdays[0]))
	}

	logged := make(map[string]bool)
	for _, e := range entries {
		logged[e.HabitID] = true
	}
	for _, h := range habits {
		if !logged[h.ID] {
			insights = append(insights, fmt.Sprintf(
				"You haven't started %q yet. How about doing just 5 minutes today?", h.Name))
		}
	}

	if len(insights) == 0 {
		insights = append(insights, "You are doing great! Keep tracking to unlock more insights.")
	}
	return insights
}
