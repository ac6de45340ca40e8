package runner

import (
	"context"
	"sync"
)

// Recorder is a Runner that records invocations instead of executing them.
// Tests script its behavior per binary or per full command line.
type Recorder struct {
	mu sync.Mutex

	// Errs maps an invocation command line (Invocation.String()) to the
	// error Run should return for it.
	Errs map[string]error
	// BinErrs maps a binary name to the error Run should return whenever
	// that binary is invoked, regardless of arguments. Errs takes precedence.
	BinErrs map[string]error
	// Missing lists binaries LookPath should report as not installed.
	Missing map[string]bool

	invocations []Invocation
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Errs:    map[string]error{},
		BinErrs: map[string]error{},
		Missing: map[string]bool{},
	}
}

// Run records the invocation and returns any scripted error.
func (r *Recorder) Run(ctx context.Context, inv Invocation) error {
	r.mu.Lock()
	r.invocations = append(r.invocations, inv)
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err, ok := r.Errs[inv.String()]; ok {
		return err
	}
	if err, ok := r.BinErrs[inv.Bin]; ok {
		return err
	}
	return nil
}

// LookPath resolves every binary except those scripted as missing.
func (r *Recorder) LookPath(bin string) (string, error) {
	if r.Missing[bin] {
		return "", &lookPathError{bin: bin}
	}
	return "/usr/bin/" + bin, nil
}

// Invocations returns a copy of every recorded invocation in order.
func (r *Recorder) Invocations() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Invocation, len(r.invocations))
	copy(out, r.invocations)
	return out
}

// Reset clears recorded invocations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations = nil
}

type lookPathError struct{ bin string }

func (e *lookPathError) Error() string {
	return "exec: " + e.bin + ": executable file not found in $PATH"
}
