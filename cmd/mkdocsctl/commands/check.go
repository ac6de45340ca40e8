package commands

import (
	"context"
	"fmt"
)

// CheckCmd implements the 'check' command. It runs the dependency probe and
// nothing else; no generator action is invoked.
type CheckCmd struct{}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	tc, err := loadToolchain(root)
	if err != nil {
		return err
	}

	if err := tc.probe.Ensure(context.Background()); err != nil {
		return err
	}

	fmt.Println("Ready to build documentation")
	return nil
}
