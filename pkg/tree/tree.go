// Package tree builds an indentation-derived tree from tokenized SQL lines.
//
// The tree is not a grammar: a line becomes a child of the nearest preceding
// line with a smaller indent. Checkers walk it in source order.
package tree

import (
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/parser"
	"github.com/leapstack-labs/sqlint/pkg/token"
)

// rootIndent sits below any real indent so that every line can attach to the root.
const rootIndent = -1

// SyntaxTree is one node of the indentation tree.
type SyntaxTree struct {
	depth    int
	parent   *SyntaxTree // not owned, used for indent comparisons only
	node     Node
	children []*SyntaxTree
	abstract bool
}

func newTree(depth int, parent *SyntaxTree, node Node, abstract bool) *SyntaxTree {
	core.Require(depth >= 0, "tree.newTree", "depth must be >= 0, got %d", depth)
	return &SyntaxTree{depth: depth, parent: parent, node: node, abstract: abstract}
}

// Build creates a tree from per-line tokens. Line numbers are 1-based
// positions in lines. In abstract mode whitespace tokens are dropped and
// lines left empty are skipped.
func Build(lines [][]token.Token, abstract bool) *SyntaxTree {
	root := newTree(0, nil, NewNode(0, nil), abstract)
	cursor := root

	for i, tokens := range lines {
		if abstract {
			tokens = dropWhitespace(tokens)
			if len(tokens) == 0 {
				continue
			}
		}

		node := NewNode(i+1, tokens)
		indent := node.Indent()
		for !cursor.IsRoot() && indent <= cursor.Indent() {
			cursor = cursor.parent
		}

		child := newTree(cursor.depth+1, cursor, node, abstract)
		cursor.children = append(cursor.children, child)
		cursor = child
	}
	return root
}

// Parse tokenizes sql and builds a lossless tree.
func Parse(sql string) *SyntaxTree {
	return Build(parser.Parse(sql), false)
}

// ParseAbstract tokenizes sql and builds a tree without whitespace tokens.
func ParseAbstract(sql string) *SyntaxTree {
	return Build(parser.Parse(sql), true)
}

func dropWhitespace(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != token.WHITESPACE {
			out = append(out, t)
		}
	}
	return out
}

// IsRoot reports whether t is the synthetic root.
func (t *SyntaxTree) IsRoot() bool { return t.parent == nil }

// IsAbstract reports whether the tree was built without whitespace.
func (t *SyntaxTree) IsAbstract() bool { return t.abstract }

// Depth returns the depth, 0 for the root.
func (t *SyntaxTree) Depth() int { return t.depth }

// Parent returns the parent, or nil for the root.
func (t *SyntaxTree) Parent() *SyntaxTree { return t.parent }

// Node returns the line held by t. The root holds an empty node on line 0.
func (t *SyntaxTree) Node() Node { return t.node }

// Children returns the child trees in source order.
func (t *SyntaxTree) Children() []*SyntaxTree { return t.children }

// Indent returns the indent of the line, or -1 for the root.
func (t *SyntaxTree) Indent() int {
	if t.IsRoot() {
		return rootIndent
	}
	return t.node.Indent()
}

// Walk calls fn for every non-root node in pre-order, which is source order.
func (t *SyntaxTree) Walk(fn func(*SyntaxTree)) {
	if !t.IsRoot() {
		fn(t)
	}
	for _, c := range t.children {
		c.Walk(fn)
	}
}

// Nodes returns every non-root node in source order.
func (t *SyntaxTree) Nodes() []Node {
	var nodes []Node
	t.Walk(func(st *SyntaxTree) {
		nodes = append(nodes, st.node)
	})
	return nodes
}

// Text reconstructs the source by joining lines in pre-order with "\n".
// For a non-abstract tree built from LF-separated text this is the input.
func (t *SyntaxTree) Text() string {
	nodes := t.Nodes()
	lines := make([]string, len(nodes))
	for i, n := range nodes {
		lines[i] = n.Text()
	}
	return strings.Join(lines, "\n")
}

// String renders the tree structure, one line per node indented by depth, for debugging.
func (t *SyntaxTree) String() string {
	var b strings.Builder
	t.Walk(func(st *SyntaxTree) {
		b.WriteString(strings.Repeat("  ", st.depth-1))
		b.WriteString(st.node.Text())
		b.WriteByte('\n')
	})
	return b.String()
}
