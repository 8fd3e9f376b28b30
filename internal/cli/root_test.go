package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/internal/cli/testutil"
)

type rootRun struct {
	code   int
	stdout string
	stderr string
}

func runRoot(t *testing.T, args ...string) rootRun {
	t.Helper()
	cmd := NewRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	code := run(t.Context(), cmd)
	return rootRun{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"lint", "rules", "init", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	for _, flag := range []string{"config", "verbose", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRun_ExitCodes(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"clean.sql":    "select\n    a\nfrom t\n",
		"dirty.sql":    "select\n      a\nfrom t\n",
		".sqlint.yaml": "indent-steps: 4\n",
	})
	cfgPath := filepath.Join(dir, ".sqlint.yaml")

	t.Run("clean", func(t *testing.T) {
		res := runRoot(t, "lint", "--config", cfgPath, filepath.Join(dir, "clean.sql"))
		assert.Equal(t, 0, res.code)
		assert.Empty(t, res.stdout)
	})

	t.Run("violations", func(t *testing.T) {
		res := runRoot(t, "lint", "--config", cfgPath, filepath.Join(dir, "dirty.sql"))
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, "dirty.sql:(L2, 1): indent steps must be 4 multiples, but 6 spaces")
		assert.NotContains(t, res.stderr, "Error:")
	})

	t.Run("usage error", func(t *testing.T) {
		res := runRoot(t, "lint", "--config", cfgPath, "--severity", "fatal", filepath.Join(dir, "dirty.sql"))
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "Error: invalid severity")
	})
}

func TestRootCmd_FlagsOverrideConfigFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"q.sql":       "select\n  a\nfrom t\n",
		"sqlint.toml": "[sqlint]\nindent-steps = 4\n",
	})
	cfgPath := filepath.Join(dir, "sqlint.toml")
	sql := filepath.Join(dir, "q.sql")

	res := runRoot(t, "lint", "--config", cfgPath, sql)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "but 2 spaces")

	res = runRoot(t, "lint", "--config", cfgPath, "--indent-steps", "2", sql)
	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stdout)
}

func TestRootCmd_EnvOverridesConfigFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"q.sql":        "SELECT a\n",
		".sqlint.yaml": "keyword-style: lower\n",
	})
	t.Setenv("SQLINT_KEYWORD_STYLE", "upper-all")

	res := runRoot(t, "lint", "--config", filepath.Join(dir, ".sqlint.yaml"), filepath.Join(dir, "q.sql"))
	assert.Equal(t, 0, res.code)
}

func TestRootCmd_OutputFlag(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"q.sql":        "select a\n",
		".sqlint.yaml": "output: text\n",
	})

	res := runRoot(t, "-o", "json", "lint", "--config", filepath.Join(dir, ".sqlint.yaml"), filepath.Join(dir, "q.sql"))
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, `"summary"`)
}

func TestRootCmd_VerboseLogsConfigFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"q.sql":        "select a\n",
		".sqlint.yaml": "keyword-style: sideways\n",
	})
	cfgPath := filepath.Join(dir, ".sqlint.yaml")

	res := runRoot(t, "-v", "lint", "--config", cfgPath, filepath.Join(dir, "q.sql"))
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "using config file")
	assert.Contains(t, res.stderr, "invalid configuration value")
	assert.Contains(t, res.stderr, "key=keyword-style")
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	res := runRoot(t, "lint", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "error reading config file")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := runRoot(t, "completion", shell)
			assert.Equal(t, 0, res.code)
			assert.Contains(t, res.stdout, "sqlint")
		})
	}

	res := runRoot(t, "completion", "tcsh")
	assert.Equal(t, 2, res.code)
}

func TestRootCmd_InitThenLint(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "q.sql"), []byte("select a\n"), 0o600))

	res := runRoot(t, "init", "--config", filepath.Join(dir, "absent.yaml"), dir)
	assert.Equal(t, 2, res.code, "an explicit missing config file is an error for every command")

	res = runRoot(t, "init", dir)
	require.Equal(t, 0, res.code, res.stderr)

	res = runRoot(t, "lint", "--config", filepath.Join(dir, ".sqlint.yaml"), dir)
	assert.Equal(t, 0, res.code, res.stderr)
}
