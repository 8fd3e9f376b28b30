// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlint/internal/cli/config"
	"github.com/leapstack-labs/sqlint/internal/cli/output"
	logtest "github.com/leapstack-labs/sqlint/internal/testutil"
)

// WriteFiles creates files under a temporary directory and returns it.
// Keys are slash separated paths relative to the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

// Result holds the captured output of a command run.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExecuteCommand runs cmd with args and cfg in its context, capturing
// stdout and stderr. Logs go to the test log.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) Result {
	t.Helper()
	return ExecuteCommandWithLogger(t, cmd, cfg, logtest.NewTestLogger(t), args...)
}

// ExecuteCommandWithLogger is ExecuteCommand with an explicit logger.
func ExecuteCommandWithLogger(t *testing.T, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, args ...string) Result {
	t.Helper()

	ctx := context.Background()
	if cfg != nil {
		ctx = config.WithConfig(ctx, cfg)
	}
	ctx = config.WithLogger(ctx, logger)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return Result{Stdout: out.String(), Stderr: errOut.String(), Err: err}
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
