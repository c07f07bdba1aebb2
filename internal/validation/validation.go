// Package validation checks habit definitions before they reach
// storage. The recurrence evaluator fails closed on bad parameters, so
// nothing here is load-bearing for correctness; validation exists to
// reject configurations that would silently never be due.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/recurrence"
)

// ValidateHabit checks a habit definition for problems a user would
// want to know about at creation time.
func ValidateHabit(habit models.Habit) error {
	if strings.TrimSpace(habit.Name) == "" {
		return fmt.Errorf("habit name is required")
	}

	if err := ValidateCategory(habit.Category); err != nil {
		return err
	}

	if habit.TargetValue < 1 {
		return fmt.Errorf("target value must be a positive integer, got %d", habit.TargetValue)
	}

	return ValidateRecurrence(habit.Recurrence)
}

// ValidateCategory checks the category against the known set.
func ValidateCategory(c models.Category) error {
	for _, known := range models.Categories {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", c)
}

// ValidateRecurrence checks that the recurrence carries the parameter
// its type requires.
func ValidateRecurrence(rec models.Recurrence) error {
	value := strings.TrimSpace(rec.Value)

	switch rec.Type {
	case models.FrequencyDaily:
		return nil

	case models.FrequencyDaysOfWeek:
		if len(recurrence.ParseWeekdays(value)) == 0 {
			return fmt.Errorf("days_of_week requires at least one weekday (e.g. \"Mon,Wed,Fri\")")
		}
		return nil

	case models.FrequencyWeekly, models.FrequencyBiweekly:
		if _, ok := recurrence.ParseWeekday(value); !ok {
			return fmt.Errorf("%s requires a weekday (e.g. \"Tue\")", rec.Type)
		}
		return nil

	case models.FrequencyMonthly, models.FrequencyBimonthly:
		day, err := strconv.Atoi(value)
		if err != nil || day < 1 || day > 31 {
			return fmt.Errorf("%s requires a day of month between 1 and 31", rec.Type)
		}
		return nil

	case models.FrequencyCustom:
		interval, err := strconv.Atoi(value)
		if err != nil || interval < 1 {
			return fmt.Errorf("custom requires a positive day interval")
		}
		return nil

	default:
		return fmt.Errorf("unknown recurrence type %q", rec.Type)
	}
}
