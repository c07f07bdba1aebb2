package models

import "time"

// Category groups habits for display and reporting.
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"
	CategoryMindfulness  Category = "mindfulness"
	CategoryOther        Category = "other"
)

// Categories lists every valid habit category.
var Categories = []Category{
	CategoryHealth,
	CategoryProductivity,
	CategoryLearning,
	CategoryMindfulness,
	CategoryOther,
}

type FrequencyType string

const (
	FrequencyDaily      FrequencyType = "daily"
	FrequencyDaysOfWeek FrequencyType = "days_of_week"
	FrequencyWeekly     FrequencyType = "weekly"
	FrequencyBiweekly   FrequencyType = "biweekly"
	FrequencyMonthly    FrequencyType = "monthly"
	FrequencyBimonthly  FrequencyType = "bimonthly"
	FrequencyCustom     FrequencyType = "custom"
)

// Recurrence describes when a habit is due. Value carries the
// type-specific parameter: a comma-separated weekday list for
// days_of_week ("Mon,Wed,Fri"), a single weekday for weekly/biweekly
// ("Tue"), a day-of-month for monthly/bimonthly ("15"), or a day
// interval for custom ("3"). Daily takes no value. A missing or
// malformed value makes the habit never due.
type Recurrence struct {
	Type  FrequencyType `json:"type"`
	Value string        `json:"value,omitempty"`
}

// Habit represents a recurring practice to track
type Habit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Recurrence  Recurrence `json:"recurrence"`
	TargetValue int        `json:"target_value"`
	TargetUnit  string     `json:"target_unit,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Active reports whether the habit should appear in due-today views.
func (h Habit) Active() bool {
	return h.DeletedAt == nil
}
