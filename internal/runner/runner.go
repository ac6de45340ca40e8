// Package runner executes external processes. Commands describe an
// invocation explicitly, including its working directory; the process-wide
// working directory is never changed.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Invocation describes a single external process run.
type Invocation struct {
	Bin  string
	Args []string
	Dir  string   // working directory for the child process
	Env  []string // extra KEY=VALUE entries appended to the process environment
}

// String renders the invocation as a command line for logs and error context.
func (inv Invocation) String() string {
	parts := append([]string{inv.Bin}, inv.Args...)
	return strings.Join(parts, " ")
}

// Runner runs external processes.
type Runner interface {
	// Run executes the invocation to completion, blocking until the child
	// exits or the context is canceled.
	Run(ctx context.Context, inv Invocation) error
	// LookPath reports the resolved path of a binary, or an error when the
	// binary is not installed.
	LookPath(bin string) (string, error)
}

// ExecRunner is the exec-backed Runner used in production. Child stdout and
// stderr pass through unmodified so generator output reaches the user.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	// GraceWait bounds how long a signaled child may linger before being killed.
	GraceWait time.Duration
}

// NewExecRunner creates an ExecRunner wired to the process stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr, GraceWait: 5 * time.Second}
}

// Run executes the invocation. On context cancellation the child receives
// SIGINT first, so long-running tools (the dev server in particular) can
// shut down cleanly; after GraceWait it is killed.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Bin, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.GraceWait

	slog.Debug("Running external command", "command", inv.String(), "dir", inv.Dir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", inv.String(), err)
	}
	return nil
}

// LookPath resolves a binary on PATH.
func (r *ExecRunner) LookPath(bin string) (string, error) {
	return exec.LookPath(bin)
}
