package system

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		if !c.Force {
			return err
		}
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
