// Package mkdocs wraps the external MkDocs binary. It builds invocation
// descriptors from configuration and hands them to a runner; it performs no
// site generation itself.
package mkdocs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/mkdocsctl/internal/config"
	apperrors "git.home.luguber.info/inful/mkdocsctl/internal/errors"
	"git.home.luguber.info/inful/mkdocsctl/internal/runner"
)

// Tool drives a single documentation project through the MkDocs binary.
type Tool struct {
	runner     runner.Runner
	bin        string
	projectDir string
	configFile string
	outputDir  string
}

// New creates a Tool from configuration.
func New(cfg *config.Config, r runner.Runner) *Tool {
	return &Tool{
		runner:     r,
		bin:        cfg.Toolchain.Generator,
		projectDir: cfg.Site.Dir,
		configFile: cfg.Site.ConfigFile,
		outputDir:  cfg.Site.OutputDir,
	}
}

// OutputDir returns the site output directory relative to the project.
func (t *Tool) OutputDir() string {
	return filepath.Join(t.projectDir, t.outputDir)
}

// invocation assembles the base argv for a generator subcommand.
func (t *Tool) invocation(action string, extra ...string) runner.Invocation {
	args := []string{action}
	if t.configFile != "" {
		args = append(args, "-f", t.configFile)
	}
	args = append(args, extra...)
	return runner.Invocation{Bin: t.bin, Args: args, Dir: t.projectDir}
}

// Build renders the site. With clean set, prior output is removed first
// instead of building incrementally.
func (t *Tool) Build(ctx context.Context, clean bool) error {
	inv := t.invocation("build")
	if clean {
		inv = t.invocation("build", "--clean")
	}

	slog.Info("Running generator build", "command", inv.String(), "dir", t.projectDir)
	if err := t.runner.Run(ctx, inv); err != nil {
		return apperrors.BuildFailed(err).WithContext("command", inv.String())
	}
	return nil
}

// Serve starts the generator's development server bound to addr:port and
// blocks until it exits. Cancellation of ctx is the normal way to stop the
// server and is not reported as an error.
func (t *Tool) Serve(ctx context.Context, addr string, port int) error {
	devAddr := fmt.Sprintf("%s:%d", addr, port)
	inv := t.invocation("serve", "--dev-addr", devAddr)

	slog.Info("Running generator dev server", "command", inv.String(), "addr", devAddr)
	err := t.runner.Run(ctx, inv)
	if ctx.Err() != nil {
		// Interrupted by the user; the child was signaled and its non-zero
		// exit is expected.
		return nil
	}
	if err != nil {
		return apperrors.ServeFailed(err).WithContext("command", inv.String())
	}
	return nil
}

// Deploy publishes the site to its hosting target.
func (t *Tool) Deploy(ctx context.Context, force bool) error {
	inv := t.invocation("gh-deploy")
	if force {
		inv = t.invocation("gh-deploy", "--force")
	}

	slog.Info("Running generator deploy", "command", inv.String(), "dir", t.projectDir)
	if err := t.runner.Run(ctx, inv); err != nil {
		return apperrors.DeployFailed(err).WithContext("command", inv.String())
	}
	return nil
}
