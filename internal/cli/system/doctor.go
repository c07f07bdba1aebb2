package system

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/cli"
	"github.com/julianstephens/ritual/internal/validation"
)

type DoctorCmd struct{}

// Run performs basic health checks: the store is reachable, the
// progress singleton is intact, and every habit has a recurrence its
// evaluator will actually fire on.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	failures := 0

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("✗ storage: %v\n", err)
		return fmt.Errorf("%d check(s) failed", 1)
	}
	fmt.Printf("✓ storage reachable at %s\n", ctx.Store.GetConfigPath())

	progress, err := ctx.Store.GetProgress()
	if err != nil {
		fmt.Printf("✗ user progress: %v\n", err)
		failures++
	} else {
		fmt.Printf("✓ user progress intact (%d XP, %d badges)\n", progress.TotalXP, len(progress.UnlockedBadges))
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		fmt.Printf("✗ habits: %v\n", err)
		failures++
	} else {
		fmt.Printf("✓ %d active habit(s)\n", len(habits))
		for _, h := range habits {
			if err := validation.ValidateRecurrence(h.Recurrence); err != nil {
				fmt.Printf("⚠ habit %q has a broken recurrence and will never be due: %v\n", h.Name, err)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}

	fmt.Println("All checks passed.")
	return nil
}
