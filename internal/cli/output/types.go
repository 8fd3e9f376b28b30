package output

import "github.com/leapstack-labs/sqlint/pkg/core"

// LintDiagnostic is one violation in JSON output.
type LintDiagnostic struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// LintFileResult holds the diagnostics of one file in JSON output.
type LintFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
	Error       string           `json:"error,omitempty"`
}

// LintSummary aggregates a lint run.
type LintSummary struct {
	Files           int   `json:"files"`
	FilesWithIssues int   `json:"files_with_issues"`
	TotalIssues     int   `json:"total_issues"`
	Errors          int   `json:"errors"`
	Warnings        int   `json:"warnings"`
	Info            int   `json:"info"`
	Hints           int   `json:"hints"`
	FailedFiles     int   `json:"failed_files"`
	DurationMS      int64 `json:"duration_ms"`
}

// LintOutput is the JSON document written by the lint command.
type LintOutput struct {
	Files   []LintFileResult `json:"files"`
	Summary LintSummary      `json:"summary"`
}

// RulesOutput is the JSON document written by the rules command.
type RulesOutput struct {
	Rules []core.RuleInfo `json:"rules"`
	Total int             `json:"total"`
}
