// Package rules contains the style checkers.
//
// Each checker implements lint.Rule and walks the indentation tree in source
// order. All returns them in the order the analyzer runs them:
//
//   - IndentSteps (E101): indents are multiples of indent-steps
//   - Whitespace (E201-E207): spacing around commas, brackets and operators
//   - KeywordStyle (E401-E403): reserved keyword casing
//   - Comma (E301-E302): commas at the head or end of lines
//   - Join (E501-E502): join clauses are complete and keep the table on the same line
package rules
