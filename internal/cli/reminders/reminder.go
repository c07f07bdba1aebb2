package reminders

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ritual/internal/cli"
	"github.com/julianstephens/ritual/internal/models"
)

type ReminderCmd struct {
	Add    ReminderAddCmd    `cmd:"" help:"Add a sticky reminder."`
	List   ReminderListCmd   `cmd:"" help:"List reminders."`
	Done   ReminderDoneCmd   `cmd:"" help:"Mark a reminder done."`
	Delete ReminderDeleteCmd `cmd:"" help:"Delete a reminder."`
}

type ReminderAddCmd struct {
	Text     string `arg:"" help:"Reminder text."`
	Priority string `help:"Priority: high, medium, low." default:"medium"`
}

func (c *ReminderAddCmd) Run(ctx *cli.Context) error {
	priority, err := cli.ParsePriority(c.Priority)
	if err != nil {
		return err
	}

	reminder := models.Reminder{
		ID:        uuid.New().String(),
		Text:      c.Text,
		Priority:  priority,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddReminder(reminder); err != nil {
		return err
	}

	fmt.Printf("Added reminder: %s\n", c.Text)
	return nil
}

type ReminderListCmd struct {
	All bool `help:"Include completed reminders."`
}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	reminders, err := ctx.Store.GetReminders(!c.All)
	if err != nil {
		return err
	}

	if len(reminders) == 0 {
		fmt.Println("No reminders found.")
		return nil
	}

	for _, r := range reminders {
		status := "[ ]"
		if r.Completed {
			status = "[x]"
		}
		fmt.Printf("%s %s (%s)\n", status, r.Text, r.Priority)
	}

	return nil
}

type ReminderDoneCmd struct {
	Text string `arg:"" help:"Reminder text to mark done."`
}

func (c *ReminderDoneCmd) Run(ctx *cli.Context) error {
	r, err := findReminder(ctx, c.Text, true)
	if err != nil {
		return err
	}

	if err := ctx.Store.CompleteReminder(r.ID); err != nil {
		return err
	}

	fmt.Printf("Completed reminder: %s\n", r.Text)
	return nil
}

type ReminderDeleteCmd struct {
	Text string `arg:"" help:"Reminder text to delete."`
}

func (c *ReminderDeleteCmd) Run(ctx *cli.Context) error {
	r, err := findReminder(ctx, c.Text, false)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteReminder(r.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted reminder: %s\n", r.Text)
	return nil
}

func findReminder(ctx *cli.Context, text string, pendingOnly bool) (models.Reminder, error) {
	reminders, err := ctx.Store.GetReminders(pendingOnly)
	if err != nil {
		return models.Reminder{}, err
	}
	for _, r := range reminders {
		if r.Text == text {
			return r, nil
		}
	}
	return models.Reminder{}, fmt.Errorf("reminder %q not found", text)
}
