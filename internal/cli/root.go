package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/recurrence"
	"github.com/julianstephens/ritual/internal/storage"
	"github.com/julianstephens/ritual/internal/tracker"
)

// Context is passed to every command's Run method.
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Service
}

// ParseFrequency maps a CLI frequency flag to a recurrence type.
func ParseFrequency(s string) (models.FrequencyType, error) {
	switch models.FrequencyType(strings.ToLower(strings.TrimSpace(s))) {
	case models.FrequencyDaily:
		return models.FrequencyDaily, nil
	case models.FrequencyDaysOfWeek:
		return models.FrequencyDaysOfWeek, nil
	case models.FrequencyWeekly:
		return models.FrequencyWeekly, nil
	case models.FrequencyBiweekly:
		return models.FrequencyBiweekly, nil
	case models.FrequencyMonthly:
		return models.FrequencyMonthly, nil
	case models.FrequencyBimonthly:
		return models.FrequencyBimonthly, nil
	case models.FrequencyCustom:
		return models.FrequencyCustom, nil
	default:
		return "", fmt.Errorf("invalid frequency: %s", s)
	}
}

// ParseCategory maps a CLI category flag to a habit category.
func ParseCategory(s string) (models.Category, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range models.Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s (expected health, productivity, learning, mindfulness, or other)", s)
}

// ParsePriority maps a CLI priority flag to a priority level.
func ParsePriority(s string) (models.Priority, error) {
	switch models.Priority(strings.ToLower(strings.TrimSpace(s))) {
	case models.PriorityHigh:
		return models.PriorityHigh, nil
	case models.PriorityMedium:
		return models.PriorityMedium, nil
	case models.PriorityLow:
		return models.PriorityLow, nil
	default:
		return "", fmt.Errorf("invalid priority: %s (expected high, medium, or low)", s)
	}
}

// FormatRecurrence formats a recurrence rule into a human-readable string
func FormatRecurrence(rec models.Recurrence) string {
	switch rec.Type {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyDaysOfWeek:
		return fmt.Sprintf("on %s", rec.Value)
	case models.FrequencyWeekly:
		return fmt.Sprintf("weekly on %s", rec.Value)
	case models.FrequencyBiweekly:
		return fmt.Sprintf("every other week on %s", rec.Value)
	case models.FrequencyMonthly:
		return fmt.Sprintf("monthly on day %s", rec.Value)
	case models.FrequencyBimonthly:
		return fmt.Sprintf("every other month on day %s", rec.Value)
	case models.FrequencyCustom:
		return fmt.Sprintf("every %s days", rec.Value)
	default:
		return "unknown"
	}
}

// NormalizeWeekdays canonicalizes a user-supplied weekday list into the
// stored "Mon,Wed,Fri" form.
func NormalizeWeekdays(s string) string {
	var tokens []string
	for _, wd := range recurrence.ParseWeekdays(s) {
		tokens = append(tokens, wd.String()[:3])
	}
	return strings.Join(tokens, ",")
}
