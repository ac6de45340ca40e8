package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mkdocsctl/cmd/mkdocsctl/commands"
	apperrors "git.home.luguber.info/inful/mkdocsctl/internal/errors"
	"git.home.luguber.info/inful/mkdocsctl/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("mkdocsctl"),
		kong.Description("Build, serve, and deploy MkDocs documentation."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, cli); err != nil {
		adapter := apperrors.NewCLIErrorAdapter(cli.Verbose)
		fmt.Fprintln(os.Stderr, adapter.FormatError(err))
		os.Exit(adapter.ExitCodeFor(err))
	}
}
