package stats

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/cli"
	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/suggest"
	"github.com/julianstephens/ritual/internal/utils"
)

type StatsCmd struct {
	Missed MissedCmd `cmd:"" help:"Show missed due dates per habit."`
	Show   ShowCmd   `cmd:"" help:"Show per-habit performance." default:"1"`
}

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	reports, err := ctx.Tracker.Report(utils.Today())
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Printf("%-24s %8s %8s %10s %8s\n", "Habit", "Streak", "Due", "Rate", "Logged")
	for _, r := range reports {
		fmt.Printf("%-24s %8d %8d %9.1f%% %8d\n",
			truncate(r.Habit.Name, 24), r.Streak, r.TotalDue, r.CompletionRate, r.TotalLogged)
	}

	best := reports[0]
	for _, r := range reports[1:] {
		if r.Streak > best.Streak {
			best = r
		}
	}
	fmt.Printf("\n%s\n", suggest.MotivationalMessage(best.Streak))

	return nil
}

type MissedCmd struct {
	Window int `help:"Trailing window in days." default:"30"`
}

func (c *MissedCmd) Run(ctx *cli.Context) error {
	window := c.Window
	if window < 1 {
		window = constants.DefaultMissWindowDays
	}

	reports, err := ctx.Tracker.MissedReport(window, utils.Today())
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Printf("No missed due dates in the last %d days. 🎉\n", window)
		return nil
	}

	fmt.Printf("Missed due dates (last %d days):\n\n", window)
	fmt.Printf("%-24s %8s %8s %10s\n", "Habit", "Missed", "Due", "Miss rate")
	for _, r := range reports {
		fmt.Printf("%-24s %8d %8d %9.1f%%\n",
			truncate(r.Habit.Name, 24), r.MissedCount, r.TotalDue, r.MissRate)
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
