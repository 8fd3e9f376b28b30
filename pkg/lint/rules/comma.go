package rules

import (
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/token"
	"github.com/leapstack-labs/sqlint/pkg/tree"
)

// Comma reports commas on the wrong side of a line break.
//
// With comma-position=head every comma except one leading the line is
// reported as COMMA_END. With comma-position=end every comma except one
// ending the line is reported as COMMA_HEAD. Commas between a "(" and its ")"
// on the same line are not checked.
type Comma struct{}

func (Comma) Name() string { return "Comma" }
func (Comma) Description() string {
	return "Commas in multi-line lists must be at the configured side of the line (head or end)."
}
func (Comma) Codes() []lint.Code { return []lint.Code{lint.CommaHead, lint.CommaEnd} }

func (Comma) Check(t *tree.SyntaxTree, opts lint.Options) []lint.Violation {
	var violations []lint.Violation
	for _, n := range nodes(t) {
		first, last, ok := contentBounds(n)
		if !ok {
			continue
		}
		tokens := n.Tokens()

		allowed, found := last, lint.CommaPositionHead
		if opts.CommaPosition != lint.CommaPositionEnd {
			allowed, found = first, lint.CommaPositionEnd
		}

		for i := first; i <= last; i++ {
			if tokens[i].Kind != token.COMMA || i == allowed {
				continue
			}
			if enclosed(tokens[first:i], tokens[i+1:last+1]) {
				continue
			}
			violations = append(violations,
				lint.At(n.Position(i), lint.NewCommaPositionDetail(found)))
		}
	}
	return violations
}

// contentBounds returns the indexes of the first and last tokens that are
// neither whitespace nor comments.
func contentBounds(n tree.Node) (first, last int, ok bool) {
	trimmed := n.LTrim(token.WHITESPACE, token.COMMENT)
	first = n.Len() - trimmed.Len()
	trimmed = trimmed.RTrim(token.WHITESPACE, token.COMMENT)
	if trimmed.Len() == 0 {
		return 0, 0, false
	}
	return first, first + trimmed.Len() - 1, true
}

// enclosed reports whether a comma sits between an unclosed "(" before it
// and an unopened ")" after it on the same line.
func enclosed(before, after []token.Token) bool {
	return bracketBalance(before, token.BRACKET_LEFT) > 0 &&
		bracketBalance(after, token.BRACKET_RIGHT) > 0
}

// bracketBalance counts open brackets of kind minus those of the other kind.
func bracketBalance(tokens []token.Token, kind token.Kind) int {
	n := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case kind:
			n++
		case token.BRACKET_LEFT, token.BRACKET_RIGHT:
			n--
		}
	}
	return n
}
