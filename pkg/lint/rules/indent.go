package rules

import (
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/tree"
)

// IndentSteps reports lines whose indent is not a multiple of indent-steps.
// An indent-steps of 0 disables the check.
type IndentSteps struct{}

func (IndentSteps) Name() string { return "IndentSteps" }
func (IndentSteps) Description() string {
	return "Indentation must be a multiple of the configured step."
}
func (IndentSteps) Codes() []lint.Code { return []lint.Code{lint.IndentSteps} }

func (IndentSteps) Check(t *tree.SyntaxTree, opts lint.Options) []lint.Violation {
	steps := opts.IndentSteps
	if steps <= 0 {
		return nil
	}

	var violations []lint.Violation
	for _, n := range nodes(t) {
		if indent := n.Indent(); indent%steps != 0 {
			violations = append(violations,
				lint.NewViolation(n.Line(), 1, lint.NewIndentStepsDetail(steps, indent)))
		}
	}
	return violations
}
