package token

import "fmt"

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in runes
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// String renders the position the way diagnostics print it: (L3, 7).
func (p Position) String() string {
	return fmt.Sprintf("(L%d, %d)", p.Line, p.Column)
}
