package commands

import (
	"context"
	"fmt"
)

// DeployCmd implements the 'deploy' command.
type DeployCmd struct {
	Force bool `help:"Force the push to the hosting branch"`
}

func (d *DeployCmd) Run(_ *Global, root *CLI) error {
	tc, err := loadToolchain(root)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := tc.probe.Ensure(ctx); err != nil {
		return err
	}

	fmt.Println("Deploying to GitHub Pages...")
	if err := tc.tool.Deploy(ctx, d.Force || tc.cfg.Deploy.Force); err != nil {
		return err
	}

	fmt.Println("Documentation deployed")
	return nil
}
