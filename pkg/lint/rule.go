package lint

import "github.com/leapstack-labs/sqlint/pkg/tree"

// Rule is a style checker run over an indentation tree.
//
// Check must not fail on any input: findings are returned as violations,
// and broken internal invariants panic with *core.ContractError.
type Rule interface {
	// Name returns the checker name, e.g. "IndentSteps"
	Name() string

	// Description returns a human-readable description
	Description() string

	// Codes returns the codes the checker can report
	Codes() []Code

	// Check walks the tree and returns violations in source order.
	Check(t *tree.SyntaxTree, opts Options) []Violation
}
