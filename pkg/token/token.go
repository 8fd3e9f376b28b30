// Package token defines the lexical tokens produced by the SQL line tokenizer.
//
// Unlike a parser token, a Token here keeps its exact source text, including
// whitespace and comments, so that the tokens of a line always concatenate
// back to the original line.
package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind int32

// Token kinds.
const (
	UNKNOWN Kind = iota // catch-all for runes the tokenizer does not recognize

	WHITESPACE
	COMMENT
	KEYWORD
	IDENTIFIER
	LITERAL
	OPERATOR
	COMMA
	BRACKET_LEFT  //nolint:revive // ALL_CAPS kind names mirror the rule catalog
	BRACKET_RIGHT //nolint:revive

	maxKind
)

var kindNames = [...]string{
	UNKNOWN:       "UNKNOWN",
	WHITESPACE:    "WHITESPACE",
	COMMENT:       "COMMENT",
	KEYWORD:       "KEYWORD",
	IDENTIFIER:    "IDENTIFIER",
	LITERAL:       "LITERAL",
	OPERATOR:      "OPERATOR",
	COMMA:         "COMMA",
	BRACKET_LEFT:  "BRACKET_LEFT",
	BRACKET_RIGHT: "BRACKET_RIGHT",
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("KIND(%d)", int32(k))
}

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	return k >= UNKNOWN && k < maxKind
}

// Token is an immutable lexical unit of a single source line.
type Token struct {
	Kind Kind
	Text string
}

// New creates a token of the given kind.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// Len returns the length of the token text in runes.
// Columns are counted in runes, so a multibyte identifier occupies as many
// columns as it has characters.
func (t Token) Len() int {
	return utf8.RuneCountInString(t.Text)
}

// Is reports whether the token is one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// Upper returns the token text in upper case, for case-insensitive word checks.
func (t Token) Upper() string {
	return strings.ToUpper(t.Text)
}

// String renders the token as {KIND:text} for debugging.
func (t Token) String() string {
	return fmt.Sprintf("{%s:%q}", t.Kind, t.Text)
}

// Join concatenates the text of tokens.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
