package rules

import (
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/token"
	"github.com/leapstack-labs/sqlint/pkg/tree"
)

// Whitespace reports spacing problems. It runs four passes over the tree, so
// its results are grouped by pass: multiple whitespace, commas, brackets,
// then operators.
type Whitespace struct{}

func (Whitespace) Name() string { return "Whitespace" }
func (Whitespace) Description() string {
	return "Single spaces separate tokens: after commas and around binary operators, never inside brackets."
}
func (Whitespace) Codes() []lint.Code {
	return []lint.Code{
		lint.WhitespaceMultiple,
		lint.WhitespaceAfterComma, lint.WhitespaceBeforeComma,
		lint.WhitespaceAfterBracket, lint.WhitespaceBeforeBracket,
		lint.WhitespaceAfterOperator, lint.WhitespaceBeforeOperator,
	}
}

func (Whitespace) Check(t *tree.SyntaxTree, _ lint.Options) []lint.Violation {
	lines := nodes(t)
	var violations []lint.Violation
	for _, pass := range []func(tree.Node) []lint.Violation{
		checkMultiple,
		checkCommaSpacing,
		checkBracketSpacing,
		checkOperatorSpacing,
	} {
		for _, n := range lines {
			violations = append(violations, pass(n)...)
		}
	}
	return violations
}

func whitespace(n tree.Node, kind lint.WhitespaceKind, side lint.Side, i int, target string) lint.Violation {
	return lint.At(n.Position(i), lint.NewWhitespaceDetail(kind, side, target))
}

// checkMultiple flags runs of whitespace after the line head. Two spaces
// before an inline comment are allowed.
func checkMultiple(n tree.Node) []lint.Violation {
	tokens := n.Tokens()
	var out []lint.Violation
	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind != token.WHITESPACE || tok.Len() <= 1 {
			continue
		}
		if tok.Len() == 2 && i+1 < len(tokens) && tokens[i+1].Kind == token.COMMENT {
			continue
		}
		out = append(out, whitespace(n, lint.WhitespaceKindMultiple, 0, i, ""))
	}
	return out
}

func checkCommaSpacing(n tree.Node) []lint.Violation {
	tokens := n.Tokens()
	var out []lint.Violation
	for i, tok := range tokens {
		if tok.Kind != token.COMMA {
			continue
		}
		// index 1 whitespace is the indent
		if i >= 2 && tokens[i-1].Kind == token.WHITESPACE {
			out = append(out, whitespace(n, lint.WhitespaceKindComma, lint.SideBefore, i, tokens[i-1].Text+tok.Text))
		}
		if i+1 < len(tokens) && tokens[i+1].Kind != token.WHITESPACE {
			out = append(out, whitespace(n, lint.WhitespaceKindComma, lint.SideAfter, i, tok.Text+tokens[i+1].Text))
		}
	}
	return out
}

func checkBracketSpacing(n tree.Node) []lint.Violation {
	tokens := n.Tokens()
	var out []lint.Violation
	for i, tok := range tokens {
		switch tok.Kind {
		case token.BRACKET_LEFT:
			if i+1 < len(tokens) && tokens[i+1].Kind == token.WHITESPACE && !onlyTrailing(tokens[i+1:]) {
				out = append(out, whitespace(n, lint.WhitespaceKindBracket, lint.SideAfter, i, tok.Text+tokens[i+1].Text))
			}
		case token.BRACKET_RIGHT:
			if i >= 2 && tokens[i-1].Kind == token.WHITESPACE {
				out = append(out, whitespace(n, lint.WhitespaceKindBracket, lint.SideBefore, i, tokens[i-1].Text+tok.Text))
			}
		}
	}
	return out
}

// checkOperatorSpacing flags binary operators without surrounding whitespace.
// An operator is binary when the nearest preceding token is an identifier, a
// literal or a closing bracket; "t.*" is a qualified star, not a product.
func checkOperatorSpacing(n tree.Node) []lint.Violation {
	tokens := n.Tokens()
	var out []lint.Violation
	for i, tok := range tokens {
		if tok.Kind != token.OPERATOR {
			continue
		}
		prev, ok := previousContent(tokens, i)
		if !ok || !prev.Is(token.IDENTIFIER, token.LITERAL, token.BRACKET_RIGHT) {
			continue
		}
		if prev.Kind == token.IDENTIFIER && strings.HasSuffix(prev.Text, ".") {
			continue
		}

		if tokens[i-1].Kind != token.WHITESPACE {
			out = append(out, whitespace(n, lint.WhitespaceKindOperator, lint.SideBefore, i, tokens[i-1].Text+tok.Text))
		}
		if i+1 < len(tokens) && !tokens[i+1].Is(token.WHITESPACE, token.COMMENT, token.BRACKET_RIGHT) {
			out = append(out, whitespace(n, lint.WhitespaceKindOperator, lint.SideAfter, i, tok.Text+tokens[i+1].Text))
		}
	}
	return out
}

// previousContent returns the nearest token before i that is not whitespace.
func previousContent(tokens []token.Token, i int) (token.Token, bool) {
	for j := i - 1; j >= 0; j-- {
		if tokens[j].Kind != token.WHITESPACE {
			return tokens[j], true
		}
	}
	return token.Token{}, false
}

// onlyTrailing reports whether tokens hold nothing but whitespace and comments.
func onlyTrailing(tokens []token.Token) bool {
	for _, tok := range tokens {
		if !tok.Is(token.WHITESPACE, token.COMMENT) {
			return false
		}
	}
	return true
}
