package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ritual/internal/cli"
	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/gamification"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/suggest"
	"github.com/julianstephens/ritual/internal/tracker"
	"github.com/julianstephens/ritual/internal/utils"
	"github.com/julianstephens/ritual/internal/validation"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit an existing habit."`
	Done    HabitDoneCmd    `cmd:"" help:"Log a habit completion."`
	Today   HabitTodayCmd   `cmd:"" help:"Show today's due habits."`
	History HabitHistoryCmd `cmd:"" help:"Show habit history (ASCII grid)."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Category  string `help:"Category: health, productivity, learning, mindfulness, other." default:"other"`
	Frequency string `help:"Frequency: daily, days_of_week, weekly, biweekly, monthly, bimonthly, custom." default:"daily"`
	Value     string `help:"Frequency parameter: weekday list, weekday, day of month, or day interval." default:""`
	Target    int    `help:"Target value per due date." default:"1"`
	Unit      string `help:"Unit for the target value." default:"times"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	freq, err := cli.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}
	category, err := cli.ParseCategory(c.Category)
	if err != nil {
		return err
	}

	value := strings.TrimSpace(c.Value)
	if freq == models.FrequencyDaysOfWeek {
		value = cli.NormalizeWeekdays(value)
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        c.Name,
		Category:    category,
		Recurrence:  models.Recurrence{Type: freq, Value: value},
		TargetValue: c.Target,
		TargetUnit:  c.Unit,
		CreatedAt:   time.Now(),
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", c.Name, cli.FormatRecurrence(habit.Recurrence))
	return nil
}

type HabitListCmd struct {
	Deleted bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		}
		fmt.Printf("%s (%s, %s)%s\n", habit.Name, habit.Category, cli.FormatRecurrence(habit.Recurrence), status)
	}

	return nil
}

type HabitEditCmd struct {
	Name      string `arg:"" help:"Habit name."`
	NewName   string `help:"New habit name."`
	Category  string `help:"New category."`
	Frequency string `help:"New frequency type."`
	Value     string `help:"New frequency parameter."`
	Target    int    `help:"New target value." default:"0"`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.NewName != "" {
		habit.Name = c.NewName
	}
	if c.Category != "" {
		category, err := cli.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		habit.Category = category
	}
	if c.Frequency != "" {
		freq, err := cli.ParseFrequency(c.Frequency)
		if err != nil {
			return err
		}
		habit.Recurrence.Type = freq
	}
	if c.Value != "" {
		value := strings.TrimSpace(c.Value)
		if habit.Recurrence.Type == models.FrequencyDaysOfWeek {
			value = cli.NormalizeWeekdays(value)
		}
		habit.Recurrence.Value = value
	}
	if c.Target > 0 {
		habit.TargetValue = c.Target
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note string `help:"Optional note for this entry." default:""`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	reward, err := ctx.Tracker.LogCompletion(habit, tracker.CompletionOptions{
		Day:  c.Date,
		Note: c.Note,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Marked habit %q done. +%d XP\n", c.Name, reward.XPEarned)
	if reward.LevelUp {
		fmt.Printf("🎉 LEVEL UP! You are now %s %s (level %d)\n",
			reward.Level.Icon, reward.Level.Name, reward.Level.Number)
	}
	for _, id := range reward.NewBadges {
		if badge, ok := gamification.BadgeCatalog[id]; ok {
			fmt.Printf("%s Badge unlocked: %s (%s)\n", badge.Icon, badge.Name, badge.Description)
		}
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	today := utils.Today()
	due, err := ctx.Tracker.DueToday(today)
	if err != nil {
		return err
	}

	if len(due) == 0 {
		fmt.Println("No habits scheduled for today.")
		return nil
	}

	fmt.Printf("Habits for %s:\n\n", utils.FormatDay(today))
	recorded := 0
	for _, d := range due {
		status := "[ ]"
		if d.Done {
			status = "[x]"
			recorded++
		}
		fmt.Printf("%s %s\n", status, d.Habit.Name)
	}
	fmt.Printf("\nRecorded: %d/%d\n", recorded, len(due))

	if recorded < len(due) {
		habits, err := ctx.Store.GetAllHabits(false)
		if err != nil {
			return err
		}
		entries, err := ctx.Store.GetAllLogEntries()
		if err != nil {
			return err
		}
		if insights := suggest.Insights(habits, entries); len(insights) > 0 {
			fmt.Printf("\n%s\n", insights[0])
		}
	}

	return nil
}

type HabitHistoryCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show history for a specific habit only."`
}

func (c *HabitHistoryCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var selected []models.Habit
	if c.Habit != "" {
		for _, h := range habits {
			if h.Name == c.Habit {
				selected = []models.Habit{h}
				break
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
	} else {
		selected = habits
	}

	days := c.Days
	if days < 1 {
		days = constants.DefaultHistoryDays
	}
	endDay := utils.Today()
	startDay := endDay.AddDate(0, 0, -(days - 1))

	fmt.Printf("Habit history (last %d days):\n\n", days)

	const maxNameLen = 20
	fmt.Print("Habit               ")
	for i := 0; i < days; i++ {
		fmt.Printf(" %5s", startDay.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	fmt.Print(strings.Repeat("------", days))
	fmt.Println()

	for _, habit := range selected {
		name := habit.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		entries, err := ctx.Store.GetLogEntriesForHabit(
			habit.ID, utils.FormatDay(startDay), utils.FormatDay(endDay))
		if err != nil {
			return err
		}

		entryMap := make(map[string]bool)
		for _, entry := range entries {
			entryMap[entry.Day] = true
		}

		for i := 0; i < days; i++ {
			if entryMap[utils.FormatDay(startDay.AddDate(0, 0, i))] {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(This is a soft delete. Use 'ritual habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return err
	}

	var habit *models.Habit
	for _, h := range habits {
		if h.Name == c.Name && h.DeletedAt != nil {
			habit = &h
			break
		}
	}

	if habit == nil {
		return fmt.Errorf("deleted habit %q not found", c.Name)
	}

	if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.Name)
	return nil
}
