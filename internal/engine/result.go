package engine

import (
	"fmt"
	"time"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

// FileResult holds the outcome of linting one file.
type FileResult struct {
	Path       string
	Violations []lint.Violation
	Err        error // read or analysis failure; Violations is empty when set
}

// Result holds the outcome of a run, one entry per file in discovery order.
type Result struct {
	Files    []FileResult
	Duration time.Duration
}

// Count returns the total number of violations.
func (r *Result) Count() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Violations)
	}
	return n
}

// CountAtLeast returns the number of violations at or above threshold.
func (r *Result) CountAtLeast(threshold core.Severity) int {
	n := 0
	for _, f := range r.Files {
		for _, v := range f.Violations {
			if v.Severity.AtLeast(threshold) {
				n++
			}
		}
	}
	return n
}

// Failed returns the files that could not be linted.
func (r *Result) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Summary returns a human-readable summary.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d violation(s) in %d file(s), %d failed | Duration: %s",
		r.Count(), len(r.Files), len(r.Failed()), r.Duration.Round(time.Millisecond))
}
