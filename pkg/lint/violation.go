package lint

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/token"
)

// =============================================================================
// Details
// =============================================================================

// Detail carries the code-specific parameters of a violation.
// The set of implementations is closed: one struct per Code.
type Detail interface {
	Code() Code
	Params() map[string]string
	validate()
}

func requireText(op, field, v string) {
	core.Require(v != "", op, "%s is required", field)
}

// IndentStepsDetail is reported when an indent is not a multiple of the step.
type IndentStepsDetail struct {
	Expected int
	Actual   int
}

// NewIndentStepsDetail creates an E101 detail.
func NewIndentStepsDetail(expected, actual int) Detail {
	d := IndentStepsDetail{Expected: expected, Actual: actual}
	d.validate()
	return d
}

func (IndentStepsDetail) Code() Code { return IndentSteps }
func (d IndentStepsDetail) Params() map[string]string {
	return map[string]string{"expected": strconv.Itoa(d.Expected), "actual": strconv.Itoa(d.Actual)}
}
func (d IndentStepsDetail) validate() {
	core.Require(d.Expected > 0, "lint.IndentStepsDetail", "expected steps must be > 0, got %d", d.Expected)
	core.Require(d.Actual >= 0, "lint.IndentStepsDetail", "actual indent must be >= 0, got %d", d.Actual)
}

// WhitespaceKind is the construct a whitespace violation is about.
type WhitespaceKind int

// Whitespace kinds.
const (
	WhitespaceKindMultiple WhitespaceKind = iota + 1
	WhitespaceKindComma
	WhitespaceKindBracket
	WhitespaceKindOperator
)

// Side is which side of the construct the whitespace is checked on.
type Side int

// Sides.
const (
	SideAfter Side = iota + 1
	SideBefore
)

// MultipleWhitespaceDetail is reported for runs of more than one whitespace.
type MultipleWhitespaceDetail struct{}

func (MultipleWhitespaceDetail) Code() Code                { return WhitespaceMultiple }
func (MultipleWhitespaceDetail) Params() map[string]string { return nil }
func (MultipleWhitespaceDetail) validate()                 {}

// WhitespaceAfterCommaDetail is reported when a comma is not followed by whitespace.
type WhitespaceAfterCommaDetail struct{ Target string }

func (WhitespaceAfterCommaDetail) Code() Code { return WhitespaceAfterComma }
func (d WhitespaceAfterCommaDetail) Params() map[string]string {
	return map[string]string{"target": d.Target}
}
func (d WhitespaceAfterCommaDetail) validate() {
	requireText("lint.WhitespaceAfterCommaDetail", "target", d.Target)
}

// WhitespaceBeforeCommaDetail is reported when whitespace precedes a comma.
type WhitespaceBeforeCommaDetail struct{ Target string }

func (WhitespaceBeforeCommaDetail) Code() Code { return WhitespaceBeforeComma }
func (d WhitespaceBeforeCommaDetail) Params() map[string]string {
	return map[string]string{"target": d.Target}
}
func (d WhitespaceBeforeCommaDetail) validate() {
	requireText("lint.WhitespaceBeforeCommaDetail", "target", d.Target)
}

// WhitespaceAfterBracketDetail is reported when whitespace follows "(".
type WhitespaceAfterBracketDetail struct{ Target string }

func (WhitespaceAfterBracketDetail) Code() Code { return WhitespaceAfterBracket }
func (d WhitespaceAfterBracketDetail) Params() map[string]string {
	return map[string]string{"target": d.Target}
}
func (d WhitespaceAfterBracketDetail) validate() {
	requireText("lint.WhitespaceAfterBracketDetail", "target", d.Target)
}

// WhitespaceBeforeBracketDetail is reported when whitespace precedes ")".
type WhitespaceBeforeBracketDetail struct{ Target string }

func (WhitespaceBeforeBracketDetail) Code() Code { return WhitespaceBeforeBracket }
func (d WhitespaceBeforeBracketDetail) Params() map[string]string {
	return map[string]string{"target": d.Target}
}
func (d WhitespaceBeforeBracketDetail) validate() {
	requireText("lint.WhitespaceBeforeBracketDetail", "target", d.Target)
}

// WhitespaceAfterOperatorDetail is reported when a binary operator is not followed by whitespace.
type WhitespaceAfterOperatorDetail struct{ Target string }

func (WhitespaceAfterOperatorDetail) Code() Code { return WhitespaceAfterOperator }
func (d WhitespaceAfterOperatorDetail) Params() map[string]string {
	return map[string]string{"target": d.Target}
}
func (d WhitespaceAfterOperatorDetail) validate() {
	requireText("lint.WhitespaceAfterOperatorDetail", "target", d.Target)
}

// WhitespaceBeforeOperatorDetail is reported when a binary operator is not preceded by whitespace.
type WhitespaceBeforeOperatorDetail struct{ Target string }

func (WhitespaceBeforeOperatorDetail) Code() Code { return WhitespaceBeforeOperator }
func (d WhitespaceBeforeOperatorDetail) Params() map[string]string {
	return map[string]string{"target": d.Target}
}
func (d WhitespaceBeforeOperatorDetail) validate() {
	requireText("lint.WhitespaceBeforeOperatorDetail", "target", d.Target)
}

// NewWhitespaceDetail creates an E201-E207 detail. Side and target are
// ignored for WhitespaceKindMultiple and required otherwise.
func NewWhitespaceDetail(kind WhitespaceKind, side Side, target string) Detail {
	var d Detail
	switch kind {
	case WhitespaceKindMultiple:
		return MultipleWhitespaceDetail{}
	case WhitespaceKindComma:
		d = pickSide(side, Detail(WhitespaceAfterCommaDetail{target}), WhitespaceBeforeCommaDetail{target})
	case WhitespaceKindBracket:
		d = pickSide(side, Detail(WhitespaceAfterBracketDetail{target}), WhitespaceBeforeBracketDetail{target})
	case WhitespaceKindOperator:
		d = pickSide(side, Detail(WhitespaceAfterOperatorDetail{target}), WhitespaceBeforeOperatorDetail{target})
	default:
		core.Contractf("lint.NewWhitespaceDetail", "unknown whitespace kind %d", kind)
	}
	d.validate()
	return d
}

func pickSide(side Side, after, before Detail) Detail {
	switch side {
	case SideAfter:
		return after
	case SideBefore:
		return before
	}
	core.Contractf("lint.NewWhitespaceDetail", "unknown side %d", side)
	return nil
}

// CommaHeadDetail is reported for a comma leading a line under comma-position=end.
type CommaHeadDetail struct{}

func (CommaHeadDetail) Code() Code                { return CommaHead }
func (CommaHeadDetail) Params() map[string]string { return nil }
func (CommaHeadDetail) validate()                 {}

// CommaEndDetail is reported for a comma ending a line under comma-position=head.
type CommaEndDetail struct{}

func (CommaEndDetail) Code() Code                { return CommaEnd }
func (CommaEndDetail) Params() map[string]string { return nil }
func (CommaEndDetail) validate()                 {}

// NewCommaPositionDetail creates the detail for a comma found at the given,
// disallowed, position of a line.
func NewCommaPositionDetail(position CommaPosition) Detail {
	switch position {
	case CommaPositionHead:
		return CommaHeadDetail{}
	case CommaPositionEnd:
		return CommaEndDetail{}
	}
	core.Contractf("lint.NewCommaPositionDetail", "unknown comma position %q", position)
	return nil
}

// keywordDetail holds the fields shared by the keyword style details.
type keywordDetail struct {
	Actual   string
	Expected string
}

func (d keywordDetail) Params() map[string]string {
	return map[string]string{"actual": d.Actual, "expected": d.Expected}
}

func (d keywordDetail) check(op string) {
	requireText(op, "actual", d.Actual)
	requireText(op, "expected", d.Expected)
}

// KeywordUpperDetail is reported under keyword-style=upper-all.
type KeywordUpperDetail struct{ keywordDetail }

func (KeywordUpperDetail) Code() Code  { return KeywordUpper }
func (d KeywordUpperDetail) validate() { d.check("lint.KeywordUpperDetail") }

// KeywordUpperHeadDetail is reported under keyword-style=upper-head.
type KeywordUpperHeadDetail struct{ keywordDetail }

func (KeywordUpperHeadDetail) Code() Code  { return KeywordUpperHead }
func (d KeywordUpperHeadDetail) validate() { d.check("lint.KeywordUpperHeadDetail") }

// KeywordLowerDetail is reported under keyword-style=lower.
type KeywordLowerDetail struct{ keywordDetail }

func (KeywordLowerDetail) Code() Code  { return KeywordLower }
func (d KeywordLowerDetail) validate() { d.check("lint.KeywordLowerDetail") }

// NewKeywordStyleDetail creates the E401-E403 detail for the configured style.
func NewKeywordStyleDetail(style KeywordStyle, actual, expected string) Detail {
	kw := keywordDetail{Actual: actual, Expected: expected}
	var d Detail
	switch style {
	case KeywordStyleUpperAll:
		d = KeywordUpperDetail{kw}
	case KeywordStyleUpperHead:
		d = KeywordUpperHeadDetail{kw}
	case KeywordStyleLower:
		d = KeywordLowerDetail{kw}
	default:
		core.Contractf("lint.NewKeywordStyleDetail", "unknown keyword style %q", style)
	}
	d.validate()
	return d
}

// JoinTableDetail is reported when a join has no table on its line.
type JoinTableDetail struct{}

func (JoinTableDetail) Code() Code                { return JoinTable }
func (JoinTableDetail) Params() map[string]string { return nil }
func (JoinTableDetail) validate()                 {}

// JoinContextDetail is reported for an abbreviated or unknown join form.
type JoinContextDetail struct {
	Actual   string
	Expected string
}

// NewJoinContextDetail creates an E502 detail.
func NewJoinContextDetail(actual, expected string) Detail {
	d := JoinContextDetail{Actual: actual, Expected: expected}
	d.validate()
	return d
}

func (JoinContextDetail) Code() Code { return JoinContext }
func (d JoinContextDetail) Params() map[string]string {
	return map[string]string{"actual": d.Actual, "expected": d.Expected}
}
func (d JoinContextDetail) validate() {
	requireText("lint.JoinContextDetail", "actual", d.Actual)
	requireText("lint.JoinContextDetail", "expected", d.Expected)
}

// =============================================================================
// Violation
// =============================================================================

// Violation is a positioned style finding.
type Violation struct {
	Line     int
	Column   int
	Detail   Detail
	Severity core.Severity
}

// NewViolation creates a violation with the code's default severity.
func NewViolation(line, column int, detail Detail) Violation {
	core.Require(line >= 1, "lint.NewViolation", "line must be >= 1, got %d", line)
	core.Require(column >= 1, "lint.NewViolation", "column must be >= 1, got %d", column)
	core.Require(detail != nil, "lint.NewViolation", "detail is required")
	detail.validate()
	return Violation{Line: line, Column: column, Detail: detail, Severity: detail.Code().DefaultSeverity()}
}

// At creates a violation at pos.
func At(pos token.Position, detail Detail) Violation {
	return NewViolation(pos.Line, pos.Column, detail)
}

// Code returns the violation code.
func (v Violation) Code() Code { return v.Detail.Code() }

// Pos returns the violation position.
func (v Violation) Pos() token.Position {
	return token.Position{Line: v.Line, Column: v.Column}
}

// Message renders the code template with the detail parameters.
func (v Violation) Message() string {
	return v.Code().Format(v.Detail.Params())
}

// String renders the violation as "(L<line>, <col>): <message>".
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Pos(), v.Message())
}
