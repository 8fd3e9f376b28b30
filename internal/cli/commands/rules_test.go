package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/internal/cli/testutil"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [code]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"group", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListAll(t *testing.T) {
	res := testutil.ExecuteCommand(t, NewRulesCommand(), nil)
	require.NoError(t, res.Err)

	for _, code := range lint.Codes() {
		assert.Contains(t, res.Stdout, string(code))
		assert.Contains(t, res.Stdout, code.Name())
	}
	assert.Contains(t, res.Stdout, "15 code(s)")
	testutil.AssertNoANSI(t, res.Stdout)
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	res := testutil.ExecuteCommand(t, NewRulesCommand(), nil, "--group", "comma")
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stdout, "E301")
	assert.Contains(t, res.Stdout, "E302")
	assert.NotContains(t, res.Stdout, "E101")
	assert.Contains(t, res.Stdout, "2 code(s)")
}

func TestRulesCommand_UnknownGroup(t *testing.T) {
	res := testutil.ExecuteCommand(t, NewRulesCommand(), nil, "--group", "semantics")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), `unknown group "semantics"`)
	assert.Contains(t, res.Err.Error(), "indent, whitespace, comma, keyword, join")
}

func TestRulesCommand_SingleCode(t *testing.T) {
	res := testutil.ExecuteCommand(t, NewRulesCommand(), nil, "--format", "json", "join-context")
	require.NoError(t, res.Err)

	var got output.RulesOutput
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &got))
	require.Equal(t, 1, got.Total)
	assert.Equal(t, "E502", got.Rules[0].Code)
	assert.Equal(t, "join", got.Rules[0].Group)
	assert.Equal(t, []string{"keyword-style"}, got.Rules[0].ConfigKeys)
}

func TestRulesCommand_UnknownCode(t *testing.T) {
	res := testutil.ExecuteCommand(t, NewRulesCommand(), nil, "E999")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), `unknown code "E999"`)
}

func TestRulesCommand_JSONAll(t *testing.T) {
	res := testutil.ExecuteCommand(t, NewRulesCommand(), nil, "-f", "json")
	require.NoError(t, res.Err)

	var got output.RulesOutput
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &got))
	assert.Equal(t, len(lint.Codes()), got.Total)
	assert.Len(t, got.Rules, got.Total)
}
