package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
)

const defaultServePort = 8000

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Port int `short:"p" default:"8000" help:"Port for serving documentation (default 8000)"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	tc, err := loadToolchain(root)
	if err != nil {
		return err
	}

	// Setup signal-based context so Ctrl+C stops the server cleanly.
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := tc.probe.Ensure(sigctx); err != nil {
		return err
	}

	port := resolvePort(s.Port, tc.cfg.Serve.Port)
	addr := tc.cfg.Serve.Addr

	fmt.Printf("Serving documentation on http://%s:%d\n", addr, port)
	fmt.Println("  Press Ctrl+C to stop")

	if err := tc.tool.Serve(sigctx, addr, port); err != nil {
		return err
	}

	fmt.Println("Server stopped")
	return nil
}

// resolvePort determines the final port.
// Priority: CLI flag > config serve.port > CLI default
func resolvePort(cliPort, cfgPort int) int {
	if cliPort != 0 && cliPort != defaultServePort {
		return cliPort
	}
	if cfgPort != 0 {
		return cfgPort
	}
	return defaultServePort
}
