package rules

import (
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/token"
	"github.com/leapstack-labs/sqlint/pkg/tree"
)

// joinWords are the keywords that may precede "join" in a join context.
var joinWords = map[string]bool{
	"inner": true, "outer": true, "left": true, "right": true, "cross": true, "full": true,
}

// validJoins are the fully spelled join contexts, lower-cased and single-spaced.
var validJoins = map[string]bool{
	"inner join":       true,
	"left outer join":  true,
	"right outer join": true,
	"full outer join":  true,
	"cross join":       true,
}

// expectedJoins maps the first word of a join context to its full form.
var expectedJoins = map[string][]string{
	"left":  {"left", "outer", "join"},
	"outer": {"left", "outer", "join"},
	"right": {"right", "outer", "join"},
	"full":  {"full", "outer", "join"},
	"cross": {"cross", "join"},
	"inner": {"inner", "join"},
}

// Join reports join clauses that are abbreviated or whose table is not on
// the same line as the join keyword.
type Join struct{}

func (Join) Name() string { return "Join" }
func (Join) Description() string {
	return "Join contexts must be fully spelled and the joined table must follow on the same line."
}
func (Join) Codes() []lint.Code { return []lint.Code{lint.JoinTable, lint.JoinContext} }

func (Join) Check(t *tree.SyntaxTree, opts lint.Options) []lint.Violation {
	lines := nodes(t)
	var violations []lint.Violation
	for _, n := range lines {
		violations = append(violations, checkJoinTable(n)...)
	}
	for _, n := range lines {
		violations = append(violations, checkJoinContext(n, opts.KeywordStyle)...)
	}
	return violations
}

func isJoin(tok token.Token) bool {
	return tok.Kind == token.KEYWORD && strings.EqualFold(tok.Text, "join")
}

// checkJoinTable requires a table name or a subquery after "join".
func checkJoinTable(n tree.Node) []lint.Violation {
	tokens := n.Tokens()
	var out []lint.Violation
	for i, tok := range tokens {
		if !isJoin(tok) {
			continue
		}
		if next, ok := nextContent(tokens, i); ok && isJoinTarget(next) {
			continue
		}
		out = append(out, lint.At(n.Position(i), lint.JoinTableDetail{}))
	}
	return out
}

func isJoinTarget(tok token.Token) bool {
	switch tok.Kind {
	case token.IDENTIFIER, token.BRACKET_LEFT:
		return true
	case token.KEYWORD:
		return strings.EqualFold(tok.Text, "select")
	}
	return false
}

// nextContent returns the nearest token after i that is neither whitespace nor a comment.
func nextContent(tokens []token.Token, i int) (token.Token, bool) {
	for j := i + 1; j < len(tokens); j++ {
		if !tokens[j].Is(token.WHITESPACE, token.COMMENT) {
			return tokens[j], true
		}
	}
	return token.Token{}, false
}

// checkJoinContext requires the words before "join" to form a full join context.
func checkJoinContext(n tree.Node, style lint.KeywordStyle) []lint.Violation {
	tokens := n.Tokens()
	var out []lint.Violation
	for i, tok := range tokens {
		if !isJoin(tok) {
			continue
		}

		start := i
		words := []string{tok.Text}
		for j := i - 1; j >= 0; j-- {
			prev := tokens[j]
			if prev.Kind == token.WHITESPACE {
				continue
			}
			if prev.Kind != token.KEYWORD || !joinWords[strings.ToLower(prev.Text)] {
				break
			}
			words = append([]string{prev.Text}, words...)
			start = j
		}

		actual := strings.Join(words, " ")
		if validJoins[strings.ToLower(actual)] {
			continue
		}
		out = append(out, lint.At(n.Position(start),
			lint.NewJoinContextDetail(actual, expectedJoin(strings.ToLower(words[0]), style))))
	}
	return out
}

func expectedJoin(first string, style lint.KeywordStyle) string {
	words, ok := expectedJoins[first]
	if !ok {
		words = expectedJoins["inner"]
	}
	styled := make([]string, len(words))
	for i, w := range words {
		styled[i] = style.Apply(w)
	}
	return strings.Join(styled, " ")
}
