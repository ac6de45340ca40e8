package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/mkdocsctl/internal/watch"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Clean bool `help:"Remove previous output before building instead of building incrementally"`
	Watch bool `short:"w" help:"Keep running and rebuild when markdown sources change"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	tc, err := loadToolchain(root)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := tc.probe.Ensure(ctx); err != nil {
		return err
	}

	if err := b.buildOnce(ctx, tc); err != nil {
		return err
	}

	if !b.Watch {
		return nil
	}

	sigctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	docsDir := filepath.Join(tc.cfg.Site.Dir, tc.cfg.Site.DocsDir)
	watcher, err := watch.NewWatcher(500*time.Millisecond, func() {
		if err := b.buildOnce(sigctx, tc); err != nil {
			slog.Error("Rebuild failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	fmt.Println("Watching for changes. Press Ctrl+C to stop")
	return watcher.Watch(sigctx, docsDir)
}

func (b *BuildCmd) buildOnce(ctx context.Context, tc *toolchain) error {
	buildID := uuid.NewString()[:8]
	slog.Info("Starting documentation build", "build_id", buildID, "clean", b.Clean)

	fmt.Println("Building documentation...")
	start := time.Now()

	if err := tc.tool.Build(ctx, b.Clean); err != nil {
		return err
	}

	slog.Info("Documentation built", "build_id", buildID, "duration", time.Since(start))
	fmt.Println("Documentation built successfully")
	fmt.Printf("  Output directory: %s\n", tc.tool.OutputDir())
	return nil
}
