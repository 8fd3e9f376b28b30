package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/token"
)

// SplitLines splits text on \r\n, \n and \r. A trailing line break yields a
// final empty line, so joining the result with "\n" restores LF input.
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}

// Parse tokenizes every line of sql with a single Lexer.
func Parse(sql string) [][]token.Token {
	lexer := NewLexer()
	lines := SplitLines(sql)
	result := make([][]token.Token, len(lines))
	for i, line := range lines {
		result[i] = lexer.Line(line)
	}
	return result
}
