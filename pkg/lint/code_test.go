package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/pkg/core"
)

func TestCodes_Catalog(t *testing.T) {
	codes := Codes()
	require.Len(t, codes, 15)
	assert.Equal(t, IndentSteps, codes[0])
	assert.Equal(t, JoinContext, codes[len(codes)-1])

	for _, c := range codes {
		assert.True(t, c.IsValid())
		assert.NotEmpty(t, c.Name(), c)
		assert.NotEmpty(t, c.Group(), c)
		assert.NotEmpty(t, c.Template(), c)
	}
	assert.False(t, Code("E999").IsValid())
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in   string
		want Code
		ok   bool
	}{
		{"E101", IndentSteps, true},
		{"e302", CommaEnd, true},
		{"KEYWORD_UPPER_HEAD", KeywordUpperHead, true},
		{" join_table ", JoinTable, true},
		{"comma-end", CommaEnd, true},
		{"E999", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCode_Format(t *testing.T) {
	assert.Equal(t,
		"indent steps must be 4 multiples, but 6 spaces",
		IndentSteps.Format(map[string]string{"expected": "4", "actual": "6"}))
	assert.Equal(t,
		"reserved keywords must be upper case: {x} -> SELECT",
		KeywordUpper.Format(map[string]string{"actual": "{x}", "expected": "SELECT"}),
		"values are not expanded again")
	assert.Equal(t, "there are multiple whitespaces", WhitespaceMultiple.Format(nil))
}

func TestCode_Info(t *testing.T) {
	info := CommaEnd.Info()
	assert.Equal(t, "E302", info.Code)
	assert.Equal(t, "COMMA_END", info.Name)
	assert.Equal(t, "comma", info.Group)
	assert.Equal(t, core.SeverityWarning, info.DefaultSeverity)
	assert.Equal(t, []string{"comma-position"}, info.ConfigKeys)
}
