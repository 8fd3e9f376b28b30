// Package parser splits SQL text into lines and tokenizes each line losslessly.
//
// The lexer never fails: runes it does not recognize become UNKNOWN tokens,
// and the tokens of a line always concatenate back to the line itself.
package parser

import (
	"unicode"

	"github.com/leapstack-labs/sqlint/pkg/token"
)

// Lexer tokenizes SQL one line at a time.
//
// A Lexer is stateful across lines: a /* comment left open at the end of one
// line continues on the next. Use one Lexer per statement.
type Lexer struct {
	input   []rune
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      rune // current char under examination, 0 at end of line

	inBlockComment bool
}

// NewLexer creates a Lexer with no pending block comment.
func NewLexer() *Lexer {
	return &Lexer{}
}

// InBlockComment reports whether a /* comment is still open after the last line.
func (l *Lexer) InBlockComment() bool {
	return l.inBlockComment
}

// Line tokenizes a single line of text, which must not contain line breaks.
// An empty line yields no tokens.
func (l *Lexer) Line(text string) []token.Token {
	l.input = []rune(text)
	l.pos = 0
	l.readPos = 0
	l.readChar()

	var tokens []token.Token
	if l.inBlockComment && l.pos < len(l.input) {
		tokens = append(tokens, l.readBlockCommentBody(l.pos))
	}
	for l.pos < len(l.input) {
		tokens = append(tokens, l.next())
	}
	return tokens
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) text(start int) string {
	return string(l.input[start:l.pos])
}

func (l *Lexer) single(kind token.Kind) token.Token {
	start := l.pos
	l.readChar()
	return token.New(kind, l.text(start))
}

// next reads one token starting at the current position.
func (l *Lexer) next() token.Token {
	start := l.pos

	switch {
	case isSpace(l.ch):
		for l.pos < len(l.input) && isSpace(l.ch) {
			l.readChar()
		}
		return token.New(token.WHITESPACE, l.text(start))
	case l.ch == '-' && l.peekChar() == '-', l.ch == '#':
		return l.readRest(token.COMMENT)
	case l.ch == '/' && l.peekChar() == '*':
		l.readChar()
		l.readChar()
		return l.readBlockCommentBody(start)
	case l.ch == ',':
		return l.single(token.COMMA)
	case l.ch == '(':
		return l.single(token.BRACKET_LEFT)
	case l.ch == ')':
		return l.single(token.BRACKET_RIGHT)
	case l.ch == '\'':
		return l.readQuoted(token.LITERAL)
	case l.ch == '"', l.ch == '`':
		return l.readQuoted(token.IDENTIFIER)
	case isWordChar(l.ch):
		for l.pos < len(l.input) && isWordChar(l.ch) {
			l.readChar()
		}
		word := l.text(start)
		switch {
		case isNumber(word):
			return token.New(token.LITERAL, word)
		case token.IsKeyword(word):
			return token.New(token.KEYWORD, word)
		default:
			return token.New(token.IDENTIFIER, word)
		}
	}

	if tok, ok := l.readOperator(); ok {
		return tok
	}
	return l.single(token.UNKNOWN)
}

// readOperator matches two-character operators before single ones.
func (l *Lexer) readOperator() (token.Token, bool) {
	start := l.pos
	switch pair := string([]rune{l.ch, l.peekChar()}); pair {
	case "<=", ">=", "<>", "!=", "||":
		l.readChar()
		l.readChar()
		return token.New(token.OPERATOR, l.text(start)), true
	}
	switch l.ch {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!':
		return l.single(token.OPERATOR), true
	}
	return token.Token{}, false
}

// readRest consumes the remainder of the line as one token.
func (l *Lexer) readRest(kind token.Kind) token.Token {
	start := l.pos
	for l.pos < len(l.input) {
		l.readChar()
	}
	return token.New(kind, l.text(start))
}

// readBlockCommentBody reads up to and including */, or to the end of the
// line, in which case the comment stays open for the next line.
func (l *Lexer) readBlockCommentBody(start int) token.Token {
	for l.pos < len(l.input) {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			l.inBlockComment = false
			return token.New(token.COMMENT, l.text(start))
		}
		l.readChar()
	}
	l.inBlockComment = true
	return token.New(token.COMMENT, l.text(start))
}

// readQuoted reads a quoted string. A doubled quote or a backslash escapes
// the quote character. Unterminated strings run to the end of the line.
func (l *Lexer) readQuoted(kind token.Kind) token.Token {
	start := l.pos
	quote := l.ch
	l.readChar()
	for l.pos < len(l.input) {
		switch {
		case l.ch == '\\' && l.peekChar() != 0:
			l.readChar()
		case l.ch == quote && l.peekChar() == quote:
			l.readChar()
		case l.ch == quote:
			l.readChar()
			return token.New(kind, l.text(start))
		}
		l.readChar()
	}
	return token.New(kind, l.text(start))
}

func isSpace(ch rune) bool {
	return ch != '\n' && ch != '\r' && unicode.IsSpace(ch)
}

func isWordChar(ch rune) bool {
	switch ch {
	case '_', '.', '$', '@', ':':
		return true
	}
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// isNumber reports whether word is an integer or decimal literal such as 42, 3.14 or .5.
func isNumber(word string) bool {
	digits, dots := 0, 0
	for _, r := range word {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
