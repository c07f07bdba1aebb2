package progress

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/cli"
	"github.com/julianstephens/ritual/internal/gamification"
)

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetProgress()
	if err != nil {
		return err
	}

	current, next := gamification.LevelForXP(p.TotalXP)
	fmt.Printf("%s %s (level %d)\n", current.Icon, current.Name, current.Number)
	if next != nil {
		fmt.Printf("XP: %d / %d to reach %s\n", p.TotalXP, next.XPRequired, next.Name)
	} else {
		fmt.Printf("XP: %d (max level reached!)\n", p.TotalXP)
	}

	if len(p.UnlockedBadges) == 0 {
		fmt.Println("\nNo badges yet. Log a completion to earn your first!")
		return nil
	}

	fmt.Println("\nBadges:")
	for _, id := range p.UnlockedBadges {
		if badge, ok := gamification.BadgeCatalog[id]; ok {
			fmt.Printf("%s %s: %s\n", badge.Icon, badge.Name, badge.Description)
		}
	}

	return nil
}
