package errors

import (
	"fmt"
	"testing"
)

func TestToolError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestToolError_WithContext(t *testing.T) {
	err := BuildFailed(fmt.Errorf("exit status 1")).
		WithContext("command", "mkdocs build")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}

	if err.Context["command"] != "mkdocs build" {
		t.Errorf("Context[command] = %v, want mkdocs build", err.Context["command"])
	}
}

func TestToolError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("exit status 2")
	err := DeployFailed(cause)

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationFailed("port", "out of range"), 2},
		{"config", ConfigNotFound("mkdocsctl.yaml"), 7},
		{"toolchain", ToolchainError("pip install", fmt.Errorf("exit status 1")), 8},
		{"build", BuildFailed(fmt.Errorf("exit status 1")), 11},
		{"serve", ServeFailed(fmt.Errorf("bind failed")), 11},
		{"deploy", DeployFailed(fmt.Errorf("push rejected")), 11},
		{"runtime", New(CategoryRuntime, SeverityFatal, "boom"), 12},
		{"plain error", fmt.Errorf("something"), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(test.err); got != test.code {
				t.Errorf("ExitCodeFor() = %d, want %d", got, test.code)
			}
		})
	}
}

func TestCLIErrorAdapter_Format(t *testing.T) {
	quiet := NewCLIErrorAdapter(false)
	verbose := NewCLIErrorAdapter(true)

	err := BuildFailed(fmt.Errorf("exit status 1"))

	if got := quiet.FormatError(err); got != "build: documentation build failed" {
		t.Errorf("quiet FormatError() = %q", got)
	}
	if got := verbose.FormatError(err); got != err.Error() {
		t.Errorf("verbose FormatError() = %q, want full error", got)
	}

	// Config errors show the bare message.
	cfgErr := ConfigNotFound("x.yaml")
	if got := quiet.FormatError(cfgErr); got != "configuration file not found" {
		t.Errorf("config FormatError() = %q", got)
	}
}
