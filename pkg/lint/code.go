package lint

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/core"
)

// Code identifies a kind of style violation, e.g. "E101".
type Code string

// Diagnostic codes.
const (
	IndentSteps Code = "E101"

	WhitespaceMultiple       Code = "E201"
	WhitespaceAfterComma     Code = "E202"
	WhitespaceBeforeComma    Code = "E203"
	WhitespaceAfterBracket   Code = "E204"
	WhitespaceBeforeBracket  Code = "E205"
	WhitespaceAfterOperator  Code = "E206"
	WhitespaceBeforeOperator Code = "E207"

	CommaHead Code = "E301"
	CommaEnd  Code = "E302"

	KeywordUpper     Code = "E401"
	KeywordUpperHead Code = "E402"
	KeywordLower     Code = "E403"

	JoinTable   Code = "E501"
	JoinContext Code = "E502"
)

type codeDef struct {
	name       string
	group      string
	template   string
	configKeys []string
}

var catalog = map[Code]codeDef{
	IndentSteps: {"INDENT_STEPS", "indent", "indent steps must be {expected} multiples, but {actual} spaces", []string{"indent-steps"}},

	WhitespaceMultiple:       {"WHITESPACE_MULTIPLE", "whitespace", "there are multiple whitespaces", nil},
	WhitespaceAfterComma:     {"WHITESPACE_AFTER_COMMA", "whitespace", "whitespace must be after comma: {target}", nil},
	WhitespaceBeforeComma:    {"WHITESPACE_BEFORE_COMMA", "whitespace", "whitespace must not be before comma: {target}", nil},
	WhitespaceAfterBracket:   {"WHITESPACE_AFTER_BRACKET", "whitespace", "whitespace must not be after bracket: {target}", nil},
	WhitespaceBeforeBracket:  {"WHITESPACE_BEFORE_BRACKET", "whitespace", "whitespace must not be before bracket: {target}", nil},
	WhitespaceAfterOperator:  {"WHITESPACE_AFTER_OPERATOR", "whitespace", "whitespace must be after binary operator: {target}", nil},
	WhitespaceBeforeOperator: {"WHITESPACE_BEFORE_OPERATOR", "whitespace", "whitespace must be before binary operator: {target}", nil},

	CommaHead: {"COMMA_HEAD", "comma", "comma must not be head of line, expected at end of previous line", []string{"comma-position"}},
	CommaEnd:  {"COMMA_END", "comma", "comma must not be end of line, expected at head of next line", []string{"comma-position"}},

	KeywordUpper:     {"KEYWORD_UPPER", "keyword", "reserved keywords must be upper case: {actual} -> {expected}", []string{"keyword-style"}},
	KeywordUpperHead: {"KEYWORD_UPPER_HEAD", "keyword", "a head of reserved keywords must be upper case: {actual} -> {expected}", []string{"keyword-style"}},
	KeywordLower:     {"KEYWORD_LOWER", "keyword", "reserved keywords must be lower case: {actual} -> {expected}", []string{"keyword-style"}},

	JoinTable:   {"JOIN_TABLE", "join", "table_name must be at the same line as join context", nil},
	JoinContext: {"JOIN_CONTEXT", "join", "join context must be fully: {actual} -> {expected}", []string{"keyword-style"}},
}

// Codes returns every code in catalog order.
func Codes() []Code {
	codes := make([]Code, 0, len(catalog))
	for c := range catalog {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// ParseCode looks up a code by id ("E101") or name ("INDENT_STEPS"), ignoring
// case. Names may be written with hyphens ("indent-steps").
func ParseCode(s string) (Code, bool) {
	s = strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	if _, ok := catalog[Code(s)]; ok {
		return Code(s), true
	}
	for c, def := range catalog {
		if def.name == s {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c is in the catalog.
func (c Code) IsValid() bool {
	_, ok := catalog[c]
	return ok
}

// Name returns the symbolic name, e.g. "INDENT_STEPS".
func (c Code) Name() string { return catalog[c].name }

// Group returns the checker family, e.g. "whitespace".
func (c Code) Group() string { return catalog[c].group }

// Template returns the message template with {placeholders}.
func (c Code) Template() string { return catalog[c].template }

// Format fills the template placeholders from params.
func (c Code) Format(params map[string]string) string {
	pairs := make([]string, 0, 2*len(params))
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(c.Template())
}

// DefaultSeverity returns the severity a code is reported with unless overridden.
func (c Code) DefaultSeverity() core.Severity {
	return core.SeverityWarning
}

// Info returns documentation metadata for the code.
func (c Code) Info() core.RuleInfo {
	def := catalog[c]
	return core.RuleInfo{
		Code:            string(c),
		Name:            def.name,
		Group:           def.group,
		Template:        def.template,
		DefaultSeverity: c.DefaultSeverity(),
		ConfigKeys:      def.configKeys,
	}
}
