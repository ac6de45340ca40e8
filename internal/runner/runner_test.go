package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvocationString(t *testing.T) {
	inv := Invocation{Bin: "mkdocs", Args: []string{"build", "--clean"}}
	assert.Equal(t, "mkdocs build --clean", inv.String())

	assert.Equal(t, "mkdocs", Invocation{Bin: "mkdocs"}.String())
}

func TestExecRunnerRun(t *testing.T) {
	var out bytes.Buffer
	r := NewExecRunner()
	r.Stdout = &out

	dir := t.TempDir()
	err := r.Run(context.Background(), Invocation{Bin: "sh", Args: []string{"-c", "pwd"}, Dir: dir})
	require.NoError(t, err)
	assert.Contains(t, out.String(), dir)
}

func TestExecRunnerRunFailure(t *testing.T) {
	r := NewExecRunner()
	r.Stderr = &bytes.Buffer{}

	err := r.Run(context.Background(), Invocation{Bin: "sh", Args: []string{"-c", "exit 3"}})
	require.Error(t, err)
	// Error carries the command line for context.
	assert.Contains(t, err.Error(), "sh -c exit 3")
}

func TestExecRunnerPassesExtraEnv(t *testing.T) {
	var out bytes.Buffer
	r := NewExecRunner()
	r.Stdout = &out

	err := r.Run(context.Background(), Invocation{
		Bin:  "sh",
		Args: []string{"-c", "printf '%s' \"$MKDOCSCTL_TEST_VAR\""},
		Env:  []string{"MKDOCSCTL_TEST_VAR=hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestExecRunnerLookPath(t *testing.T) {
	r := NewExecRunner()

	_, err := r.LookPath("sh")
	assert.NoError(t, err)

	_, err = r.LookPath("definitely-not-a-real-binary-xyz")
	assert.Error(t, err)
}

func TestRecorderScriptedErrors(t *testing.T) {
	rec := NewRecorder()
	boom := errors.New("exit status 1")
	rec.Errs["mkdocs build"] = boom

	err := rec.Run(context.Background(), Invocation{Bin: "mkdocs", Args: []string{"build"}})
	assert.Equal(t, boom, err)

	// Other invocations of the same binary succeed.
	err = rec.Run(context.Background(), Invocation{Bin: "mkdocs", Args: []string{"serve"}})
	assert.NoError(t, err)

	invs := rec.Invocations()
	require.Len(t, invs, 2)
	assert.Equal(t, "mkdocs build", invs[0].String())
	assert.Equal(t, "mkdocs serve", invs[1].String())
}

func TestRecorderMissingBinary(t *testing.T) {
	rec := NewRecorder()
	rec.Missing["mkdocs"] = true

	_, err := rec.LookPath("mkdocs")
	assert.Error(t, err)

	_, err = rec.LookPath("python3")
	assert.NoError(t, err)
}

func TestRecorderCanceledContext(t *testing.T) {
	rec := NewRecorder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rec.Run(ctx, Invocation{Bin: "mkdocs", Args: []string{"serve"}})
	assert.ErrorIs(t, err, context.Canceled)
}
