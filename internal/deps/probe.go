// Package deps verifies the external Python toolchain before generator
// actions run.
package deps

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/mkdocsctl/internal/config"
	"git.home.luguber.info/inful/mkdocsctl/internal/runner"
)

// Probe checks that the configured Python modules are importable and
// installs the requirements file when they are not.
type Probe struct {
	runner       runner.Runner
	python       string
	modules      []string
	requirements string
	projectDir   string
}

// NewProbe creates a Probe from configuration.
func NewProbe(cfg *config.Config, r runner.Runner) *Probe {
	return &Probe{
		runner:       r,
		python:       cfg.Toolchain.Python,
		modules:      cfg.Toolchain.Modules,
		requirements: cfg.Toolchain.Requirements,
		projectDir:   cfg.Site.Dir,
	}
}

// importStatement builds the one-liner the interpreter evaluates.
func (p *Probe) importStatement() string {
	return "import " + strings.Join(p.modules, ", ")
}

// Ensure probes module importability and triggers a best-effort install on
// failure. It reports success unconditionally after the install attempt;
// an unusable toolchain surfaces later as a generator failure.
func (p *Probe) Ensure(ctx context.Context) error {
	probe := runner.Invocation{
		Bin:  p.python,
		Args: []string{"-c", p.importStatement()},
		Dir:  p.projectDir,
	}

	if err := p.runner.Run(ctx, probe); err == nil {
		fmt.Println("Documentation dependencies installed")
		return nil
	} else if ctx.Err() != nil {
		return ctx.Err()
	}

	fmt.Println("Missing dependencies. Installing...")
	slog.Info("Installing documentation dependencies", "requirements", p.requirements)

	install := runner.Invocation{
		Bin:  p.python,
		Args: []string{"-m", "pip", "install", "-r", p.requirements},
		Dir:  p.projectDir,
	}
	if err := p.runner.Run(ctx, install); err != nil {
		slog.Warn("Dependency install reported an error", "error", err)
	}

	fmt.Println("Dependencies installed")
	return nil
}
