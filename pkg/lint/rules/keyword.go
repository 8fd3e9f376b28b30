package rules

import (
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/token"
	"github.com/leapstack-labs/sqlint/pkg/tree"
)

// KeywordStyle reports reserved keywords not cased per keyword-style.
type KeywordStyle struct{}

func (KeywordStyle) Name() string { return "KeywordStyle" }
func (KeywordStyle) Description() string {
	return "Reserved keywords must follow the configured casing (lower, upper-all or upper-head)."
}
func (KeywordStyle) Codes() []lint.Code {
	return []lint.Code{lint.KeywordUpper, lint.KeywordUpperHead, lint.KeywordLower}
}

func (KeywordStyle) Check(t *tree.SyntaxTree, opts lint.Options) []lint.Violation {
	style := opts.KeywordStyle
	var violations []lint.Violation
	for _, n := range nodes(t) {
		for i, tok := range n.Tokens() {
			if tok.Kind != token.KEYWORD {
				continue
			}
			if expected := style.Apply(tok.Text); expected != tok.Text {
				violations = append(violations,
					lint.At(n.Position(i), lint.NewKeywordStyleDetail(style, tok.Text, expected)))
			}
		}
	}
	return violations
}
