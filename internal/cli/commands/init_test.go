package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/internal/cli/config"
	"github.com/leapstack-labs/sqlint/internal/cli/testutil"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

func TestInitCommand_YAML(t *testing.T) {
	dir := t.TempDir()

	res := testutil.ExecuteCommand(t, NewInitCommand(), nil, dir)
	require.NoError(t, res.Err)

	path := filepath.Join(dir, InitYAMLFile)
	assert.Contains(t, res.Stderr, "Created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# sqlint configuration")
	assert.Contains(t, string(data), "comma-position: head")
	assert.Contains(t, string(data), "indent-steps: 4")

	// The written file loads back to the defaults without warnings.
	cfg, err := config.LoadConfigFrom(dir, "", nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	lc, warnings := cfg.LintConfig()
	assert.Empty(t, warnings)
	assert.Equal(t, lint.DefaultOptions(), lc.GetOptions())
}

func TestInitCommand_TOML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	res := testutil.ExecuteCommand(t, NewInitCommand(), nil, "--toml", dir)
	require.NoError(t, res.Err)

	path := filepath.Join(dir, InitTOMLFile)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[sqlint]")
	assert.Contains(t, string(data), `keyword-style = "lower"`)

	cfg, err := config.LoadConfigFrom(dir, "", nil)
	require.NoError(t, err)
	lc, warnings := cfg.LintConfig()
	assert.Empty(t, warnings)
	assert.Equal(t, lint.DefaultOptions(), lc.GetOptions())
}

func TestInitCommand_Force(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, InitYAMLFile)
	require.NoError(t, os.WriteFile(path, []byte("indent-steps: 2\n"), 0o600))

	res := testutil.ExecuteCommand(t, NewInitCommand(), nil, dir)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "indent-steps: 2\n", string(data))

	res = testutil.ExecuteCommand(t, NewInitCommand(), nil, "--force", dir)
	require.NoError(t, res.Err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "indent-steps: 4")
}
