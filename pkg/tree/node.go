package tree

import (
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/token"
)

// Node holds the tokens of one source line.
type Node struct {
	line   int
	tokens []token.Token
}

// NewNode creates a node for the given 1-based line number.
// Line 0 is reserved for the synthetic root; a negative line is a contract error.
func NewNode(line int, tokens []token.Token) Node {
	core.Require(line >= 0, "tree.NewNode", "line number must be >= 0, got %d", line)
	return Node{line: line, tokens: tokens}
}

// Line returns the 1-based line number, or 0 for the root.
func (n Node) Line() int { return n.line }

// Tokens returns the tokens of the line. The slice must not be modified.
func (n Node) Tokens() []token.Token { return n.tokens }

// Len returns the number of tokens.
func (n Node) Len() int { return len(n.tokens) }

// Token returns the i-th token.
func (n Node) Token(i int) token.Token { return n.tokens[i] }

// Indent returns the length of the leading whitespace, or 0 when the line
// does not start with whitespace. An empty line returns 0.
func (n Node) Indent() int {
	if len(n.tokens) > 0 && n.tokens[0].Kind == token.WHITESPACE {
		return n.tokens[0].Len()
	}
	return 0
}

// Text returns the source text of the line.
func (n Node) Text() string {
	return token.Join(n.tokens)
}

// Column returns the 1-based column at which token i starts.
// i may equal Len(), giving the column just past the line end.
func (n Node) Column(i int) int {
	core.Require(i >= 0 && i <= len(n.tokens), "tree.Node.Column", "token index %d out of range [0, %d]", i, len(n.tokens))
	col := 1
	for _, tok := range n.tokens[:i] {
		col += tok.Len()
	}
	return col
}

// Position returns the line and column of token i.
func (n Node) Position(i int) token.Position {
	return token.Position{Line: n.line, Column: n.Column(i)}
}

// LTrim returns a node without the leading tokens of the given kinds.
func (n Node) LTrim(kinds ...token.Kind) Node {
	start := 0
	for start < len(n.tokens) && n.tokens[start].Is(kinds...) {
		start++
	}
	return Node{line: n.line, tokens: n.tokens[start:]}
}

// RTrim returns a node without the trailing tokens of the given kinds.
func (n Node) RTrim(kinds ...token.Kind) Node {
	end := len(n.tokens)
	for end > 0 && n.tokens[end-1].Is(kinds...) {
		end--
	}
	return Node{line: n.line, tokens: n.tokens[:end]}
}

// Trim applies LTrim and RTrim.
func (n Node) Trim(kinds ...token.Kind) Node {
	return n.LTrim(kinds...).RTrim(kinds...)
}
