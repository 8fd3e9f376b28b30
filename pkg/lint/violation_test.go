package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/token"
)

func TestViolation_String(t *testing.T) {
	tests := []struct {
		name   string
		detail Detail
		want   string
	}{
		{
			name:   "indent steps",
			detail: NewIndentStepsDetail(4, 6),
			want:   "(L3, 1): indent steps must be 4 multiples, but 6 spaces",
		},
		{
			name:   "keyword upper",
			detail: NewKeywordStyleDetail(KeywordStyleUpperAll, "select", "SELECT"),
			want:   "(L3, 1): reserved keywords must be upper case: select -> SELECT",
		},
		{
			name:   "keyword upper head",
			detail: NewKeywordStyleDetail(KeywordStyleUpperHead, "SELECT", "Select"),
			want:   "(L3, 1): a head of reserved keywords must be upper case: SELECT -> Select",
		},
		{
			name:   "keyword lower",
			detail: NewKeywordStyleDetail(KeywordStyleLower, "FROM", "from"),
			want:   "(L3, 1): reserved keywords must be lower case: FROM -> from",
		},
		{
			name:   "comma head",
			detail: NewCommaPositionDetail(CommaPositionHead),
			want:   "(L3, 1): comma must not be head of line, expected at end of previous line",
		},
		{
			name:   "comma end",
			detail: NewCommaPositionDetail(CommaPositionEnd),
			want:   "(L3, 1): comma must not be end of line, expected at head of next line",
		},
		{
			name:   "multiple whitespace",
			detail: NewWhitespaceDetail(WhitespaceKindMultiple, 0, ""),
			want:   "(L3, 1): there are multiple whitespaces",
		},
		{
			name:   "after comma",
			detail: NewWhitespaceDetail(WhitespaceKindComma, SideAfter, ",b"),
			want:   "(L3, 1): whitespace must be after comma: ,b",
		},
		{
			name:   "before comma",
			detail: NewWhitespaceDetail(WhitespaceKindComma, SideBefore, " ,"),
			want:   "(L3, 1): whitespace must not be before comma:  ,",
		},
		{
			name:   "after bracket",
			detail: NewWhitespaceDetail(WhitespaceKindBracket, SideAfter, "( "),
			want:   "(L3, 1): whitespace must not be after bracket: ( ",
		},
		{
			name:   "before bracket",
			detail: NewWhitespaceDetail(WhitespaceKindBracket, SideBefore, " )"),
			want:   "(L3, 1): whitespace must not be before bracket:  )",
		},
		{
			name:   "after operator",
			detail: NewWhitespaceDetail(WhitespaceKindOperator, SideAfter, "=1"),
			want:   "(L3, 1): whitespace must be after binary operator: =1",
		},
		{
			name:   "before operator",
			detail: NewWhitespaceDetail(WhitespaceKindOperator, SideBefore, "a="),
			want:   "(L3, 1): whitespace must be before binary operator: a=",
		},
		{
			name:   "join table",
			detail: JoinTableDetail{},
			want:   "(L3, 1): table_name must be at the same line as join context",
		},
		{
			name:   "join context",
			detail: NewJoinContextDetail("left join", "left outer join"),
			want:   "(L3, 1): join context must be fully: left join -> left outer join",
		},
	}

	seen := make(map[Code]bool)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViolation(3, 1, tt.detail)
			assert.Equal(t, tt.want, v.String())
			assert.Equal(t, core.SeverityWarning, v.Severity)
			seen[v.Code()] = true
		})
	}
	assert.Len(t, seen, len(Codes()), "every code is covered")
}

func TestDetail_Discriminators(t *testing.T) {
	assert.Equal(t, WhitespaceBeforeOperator, NewWhitespaceDetail(WhitespaceKindOperator, SideBefore, "a+").Code())
	assert.Equal(t, CommaHead, NewCommaPositionDetail(CommaPositionHead).Code())
	assert.Equal(t, KeywordUpperHead, NewKeywordStyleDetail(KeywordStyleUpperHead, "a", "A").Code())
}

func TestDetail_ContractErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"empty target", func() { NewWhitespaceDetail(WhitespaceKindComma, SideAfter, "") }},
		{"unknown kind", func() { NewWhitespaceDetail(WhitespaceKind(99), SideAfter, "x") }},
		{"unknown side", func() { NewWhitespaceDetail(WhitespaceKindBracket, Side(0), "x") }},
		{"unknown comma position", func() { NewCommaPositionDetail("middle") }},
		{"unknown keyword style", func() { NewKeywordStyleDetail("camel", "a", "A") }},
		{"empty actual", func() { NewKeywordStyleDetail(KeywordStyleLower, "", "a") }},
		{"empty expected", func() { NewJoinContextDetail("join", "") }},
		{"non-positive steps", func() { NewIndentStepsDetail(0, 3) }},
		{"zero line", func() { NewViolation(0, 1, JoinTableDetail{}) }},
		{"nil detail", func() { NewViolation(1, 1, nil) }},
		{"literal bypassing constructor", func() { NewViolation(1, 1, WhitespaceAfterCommaDetail{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			func() {
				defer core.RecoverContract(&err)
				tt.fn()
			}()
			assert.True(t, core.IsContractError(err), "expected contract error, got %v", err)
		})
	}
}

func TestAt(t *testing.T) {
	v := At(token.Position{Line: 2, Column: 9}, JoinTableDetail{})
	assert.Equal(t, 2, v.Line)
	assert.Equal(t, 9, v.Column)
	assert.Equal(t, token.Position{Line: 2, Column: 9}, v.Pos())
}
