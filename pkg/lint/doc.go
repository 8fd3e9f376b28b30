// Package lint provides the shared contracts of the SQL style linter.
//
// # Codes
//
// Every finding carries a Code from a closed catalog (E101..E502). A code has
// a symbolic name, a group and a message template:
//
//	lint.IndentSteps.Name()     // "INDENT_STEPS"
//	lint.IndentSteps.Template() // "indent steps must be {expected} multiples, but {actual} spaces"
//
// # Violations
//
// A Violation binds a position to a Detail. Details are a closed sum type with
// one struct per code, built through discriminated constructors:
//
//	lint.NewKeywordStyleDetail(lint.KeywordStyleUpperAll, "select", "SELECT")
//	lint.NewCommaPositionDetail(lint.CommaPositionEnd)
//	lint.NewWhitespaceDetail(lint.WhitespaceKindComma, lint.SideAfter, ",b")
//
// Missing parameters or unknown discriminators panic with *core.ContractError.
//
// # Options
//
// Raw configuration values are validated by ResolveOptions. Invalid values fall
// back to their defaults and produce a Warning:
//
//	opts, warnings := lint.ResolveOptions(map[string]any{"indent-steps": 2})
//
// # Configuration
//
// Use Config to control which codes are reported and their severity:
//
//	config := lint.NewConfig()
//	config.Disable(lint.WhitespaceMultiple)
//	config.SetSeverity(lint.JoinTable, core.SeverityError)
//
// Checkers live in pkg/lint/rules and are run by the analyzer in pkg/lint/sql.
package lint
