package rules

import (
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/tree"
)

// All returns every checker in execution order.
func All() []lint.Rule {
	return []lint.Rule{
		IndentSteps{},
		Whitespace{},
		KeywordStyle{},
		Comma{},
		Join{},
	}
}

// nodes returns the non-root lines of t in source order.
func nodes(t *tree.SyntaxTree) []tree.Node {
	if t == nil {
		return nil
	}
	return t.Nodes()
}
