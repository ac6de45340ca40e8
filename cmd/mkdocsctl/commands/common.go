package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mkdocsctl/internal/config"
	"git.home.luguber.info/inful/mkdocsctl/internal/deps"
	"git.home.luguber.info/inful/mkdocsctl/internal/mkdocs"
	"git.home.luguber.info/inful/mkdocsctl/internal/runner"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"mkdocsctl.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build  BuildCmd  `cmd:"" help:"Build the documentation site"`
	Serve  ServeCmd  `cmd:"" help:"Serve the documentation locally"`
	Deploy DeployCmd `cmd:"" help:"Publish the documentation site"`
	Check  CheckCmd  `cmd:"" help:"Verify the documentation toolchain is ready"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
	Lint   LintCmd   `cmd:"" help:"Lint markdown sources without building"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	config.LoadEnvFiles()
	return nil
}

// toolchain bundles everything a generator-invoking command needs.
type toolchain struct {
	cfg   *config.Config
	tool  *mkdocs.Tool
	probe *deps.Probe
}

// loadToolchain resolves config and wires the exec-backed runner.
func loadToolchain(root *CLI) (*toolchain, error) {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return nil, err
	}
	r := runner.NewExecRunner()
	return &toolchain{
		cfg:   cfg,
		tool:  mkdocs.New(cfg, r),
		probe: deps.NewProbe(cfg, r),
	}, nil
}
