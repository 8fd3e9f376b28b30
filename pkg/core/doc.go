// Package core defines the shared language of the sqlint system.
//
// This package contains:
//   - Contract errors raised when an internal invariant is broken
//   - Severity levels for diagnostics
//   - Rule metadata (RuleInfo) for documentation and tooling
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
