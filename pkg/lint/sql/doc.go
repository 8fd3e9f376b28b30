// Package sql runs the style checkers over SQL source text.
//
// The Analyzer tokenizes the source, builds the indentation tree and runs
// every checker from pkg/lint/rules in a fixed order. A broken internal
// invariant aborts the whole run: Analyze returns an error and no violations.
package sql
