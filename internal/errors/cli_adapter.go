package errors

import (
	"fmt"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool) *CLIErrorAdapter {
	return &CLIErrorAdapter{verbose: verbose}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if te, ok := err.(*ToolError); ok {
		return a.exitCodeFromTool(te)
	}

	return 1
}

// exitCodeFromTool maps ToolError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromTool(err *ToolError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryToolchain:
		return 8 // External toolchain error
	case CategoryBuild, CategoryServe, CategoryDeploy, CategoryFileSystem:
		return 11 // Generator action error
	case CategoryRuntime:
		return 12 // Runtime error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if te, ok := err.(*ToolError); ok {
		return a.formatTool(te)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatTool formats a ToolError for display.
func (a *CLIErrorAdapter) formatTool(err *ToolError) string {
	if a.verbose {
		return err.Error()
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return err.Message
	default:
		return fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
}
