package sql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/lint/sql"
	"github.com/leapstack-labs/sqlint/pkg/tree"
)

func render(violations []lint.Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.String()
	}
	return out
}

func TestAnalyzer_RuleOrder(t *testing.T) {
	src := "SELECT\n      a,b\nfrom t\nleft join u"

	got, err := sql.NewAnalyzer(nil).Analyze(src)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(L2, 1): indent steps must be 4 multiples, but 6 spaces",
		"(L2, 8): whitespace must be after comma: ,b",
		"(L1, 1): reserved keywords must be lower case: SELECT -> select",
		"(L2, 8): comma must not be end of line, expected at head of next line",
		"(L4, 1): join context must be fully: left join -> left outer join",
	}, render(got))
}

func TestAnalyzer_CleanSource(t *testing.T) {
	src := "select\n    a\n    , b\nfrom\n    t\n    inner join u\n        on t.id = u.id\nwhere\n    a = 1\n"
	got, err := sql.Lint(src, lint.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnalyzer_Config(t *testing.T) {
	cfg := lint.NewConfig().
		Disable(lint.IndentSteps).
		SetSeverity(lint.KeywordUpper, core.SeverityError)
	opts := lint.DefaultOptions()
	opts.KeywordStyle = lint.KeywordStyleUpperAll
	cfg.WithOptions(opts)

	got, err := sql.NewAnalyzer(cfg).Analyze("select\n      a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, lint.KeywordUpper, got[0].Code())
	assert.Equal(t, core.SeverityError, got[0].Severity)
}

func TestAnalyzer_Idempotent(t *testing.T) {
	src := "select  a,b\n   from t\n  join u"
	a := sql.NewAnalyzer(nil)
	first, err := a.Analyze(src)
	require.NoError(t, err)
	second, err := a.Analyze(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// brokenRule reports a violation built without required parameters.
type brokenRule struct{}

func (brokenRule) Name() string        { return "Broken" }
func (brokenRule) Description() string { return "always breaks a contract" }
func (brokenRule) Codes() []lint.Code  { return []lint.Code{lint.JoinContext} }
func (brokenRule) Check(*tree.SyntaxTree, lint.Options) []lint.Violation {
	return []lint.Violation{lint.NewViolation(1, 1, lint.NewJoinContextDetail("join", ""))}
}

func TestAnalyzer_ContractErrorIsAllOrNothing(t *testing.T) {
	rs := []lint.Rule{lintRuleFirst{}, brokenRule{}}
	got, err := sql.NewAnalyzerWithRules(nil, rs).Analyze("select  a")

	require.Error(t, err)
	assert.True(t, core.IsContractError(err))
	assert.Nil(t, got, "no partial result")
}

// lintRuleFirst produces a result before the broken rule runs.
type lintRuleFirst struct{}

func (lintRuleFirst) Name() string        { return "First" }
func (lintRuleFirst) Description() string { return "always reports" }
func (lintRuleFirst) Codes() []lint.Code  { return []lint.Code{lint.JoinTable} }
func (lintRuleFirst) Check(*tree.SyntaxTree, lint.Options) []lint.Violation {
	return []lint.Violation{lint.NewViolation(1, 1, lint.JoinTableDetail{})}
}

func TestAnalyzer_OtherPanicsPropagate(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = sql.NewAnalyzerWithRules(nil, []lint.Rule{panicRule{}}).Analyze("x")
	})
}

type panicRule struct{ brokenRule }

func (panicRule) Check(*tree.SyntaxTree, lint.Options) []lint.Violation {
	panic("unexpected")
}
