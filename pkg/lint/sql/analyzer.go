package sql

import (
	"fmt"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/lint/rules"
	"github.com/leapstack-labs/sqlint/pkg/tree"
)

// Analyzer runs lint rules against SQL source.
type Analyzer struct {
	config *lint.Config
	rules  []lint.Rule
}

// NewAnalyzer creates an analyzer running rules.All() with optional configuration.
func NewAnalyzer(config *lint.Config) *Analyzer {
	return NewAnalyzerWithRules(config, rules.All())
}

// NewAnalyzerWithRules creates an analyzer running the given rules in order.
func NewAnalyzerWithRules(config *lint.Config, rs []lint.Rule) *Analyzer {
	if config == nil {
		config = lint.NewConfig()
	}
	return &Analyzer{
		config: config,
		rules:  rs,
	}
}

// Rules returns the rules in execution order.
func (a *Analyzer) Rules() []lint.Rule {
	return a.rules
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() *lint.Config {
	return a.config
}

// Analyze lints source and returns violations grouped by rule in execution
// order, each group in source order.
func (a *Analyzer) Analyze(source string) ([]lint.Violation, error) {
	return a.AnalyzeTree(tree.Parse(source))
}

// AnalyzeTree runs every rule over an already built tree.
func (a *Analyzer) AnalyzeTree(t *tree.SyntaxTree) (violations []lint.Violation, err error) {
	defer func() {
		if err != nil {
			violations = nil
			err = fmt.Errorf("analyze: %w", err)
		}
	}()
	defer core.RecoverContract(&err)

	opts := a.config.GetOptions()
	for _, rule := range a.rules {
		for _, v := range rule.Check(t, opts) {
			// Skip disabled codes
			if a.config.IsDisabled(v.Code()) {
				continue
			}
			v.Severity = a.config.GetSeverity(v.Code())
			violations = append(violations, v)
		}
	}
	return violations, nil
}

// Lint is a convenience wrapper that analyzes source with the given options
// and no disabled codes.
func Lint(source string, opts lint.Options) ([]lint.Violation, error) {
	return NewAnalyzer(lint.NewConfig().WithOptions(opts)).Analyze(source)
}
