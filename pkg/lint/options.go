package lint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Option keys as they appear in configuration files.
const (
	KeyMaxLineLength = "max-line-length"
	KeyCommaPosition = "comma-position"
	KeyKeywordStyle  = "keyword-style"
	KeyIndentSteps   = "indent-steps"
)

// Defaults applied when an option is unset or invalid.
const (
	DefaultMaxLineLength = 128
	MinMaxLineLength     = 32
	DefaultIndentSteps   = 4
)

// CommaPosition is where commas belong in a multi-line list.
type CommaPosition string

// Comma positions.
const (
	CommaPositionHead CommaPosition = "head"
	CommaPositionEnd  CommaPosition = "end"
)

// KeywordStyle is the expected casing of reserved keywords.
type KeywordStyle string

// Keyword styles.
const (
	KeywordStyleUpperAll  KeywordStyle = "upper-all"
	KeywordStyleUpperHead KeywordStyle = "upper-head"
	KeywordStyleLower     KeywordStyle = "lower"
)

// Apply returns word cased according to the style.
func (s KeywordStyle) Apply(word string) string {
	// Casers hold state, so one is created per call.
	switch s {
	case KeywordStyleUpperAll:
		return cases.Upper(language.Und).String(word)
	case KeywordStyleUpperHead:
		_, size := utf8.DecodeRuneInString(word)
		return cases.Upper(language.Und).String(word[:size]) + cases.Lower(language.Und).String(word[size:])
	default:
		return cases.Lower(language.Und).String(word)
	}
}

// Options is a validated, read-only snapshot of checker settings.
type Options struct {
	MaxLineLength int
	CommaPosition CommaPosition
	KeywordStyle  KeywordStyle
	IndentSteps   int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MaxLineLength: DefaultMaxLineLength,
		CommaPosition: CommaPositionHead,
		KeywordStyle:  KeywordStyleLower,
		IndentSteps:   DefaultIndentSteps,
	}
}

// Warning reports a configured value that was replaced by its default.
type Warning struct {
	Key      string
	Value    any
	Default  any
	Expected string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: invalid value %v (expected %s), using %v", w.Key, w.Value, w.Expected, w.Default)
}

// ResolveMaxLineLength accepts an integer >= 32.
func ResolveMaxLineLength(raw any) (int, *Warning) {
	if isUnset(raw) {
		return DefaultMaxLineLength, nil
	}
	if n, ok := intValue(raw); ok && n >= MinMaxLineLength {
		return n, nil
	}
	return DefaultMaxLineLength, &Warning{
		Key: KeyMaxLineLength, Value: raw, Default: DefaultMaxLineLength,
		Expected: fmt.Sprintf("an integer >= %d", MinMaxLineLength),
	}
}

// ResolveCommaPosition accepts "head" or "end".
func ResolveCommaPosition(raw any) (CommaPosition, *Warning) {
	if isUnset(raw) {
		return CommaPositionHead, nil
	}
	if s, ok := raw.(string); ok {
		switch p := CommaPosition(strings.ToLower(strings.TrimSpace(s))); p {
		case CommaPositionHead, CommaPositionEnd:
			return p, nil
		}
	}
	return CommaPositionHead, &Warning{
		Key: KeyCommaPosition, Value: raw, Default: CommaPositionHead,
		Expected: "head or end",
	}
}

// ResolveKeywordStyle accepts "upper-all", "upper-head" or "lower".
func ResolveKeywordStyle(raw any) (KeywordStyle, *Warning) {
	if isUnset(raw) {
		return KeywordStyleLower, nil
	}
	if s, ok := raw.(string); ok {
		switch k := KeywordStyle(strings.ToLower(strings.TrimSpace(s))); k {
		case KeywordStyleUpperAll, KeywordStyleUpperHead, KeywordStyleLower:
			return k, nil
		}
	}
	return KeywordStyleLower, &Warning{
		Key: KeyKeywordStyle, Value: raw, Default: KeywordStyleLower,
		Expected: "upper-all, upper-head or lower",
	}
}

// ResolveIndentSteps accepts an integer >= 0. Zero disables the indent check.
func ResolveIndentSteps(raw any) (int, *Warning) {
	if isUnset(raw) {
		return DefaultIndentSteps, nil
	}
	if n, ok := intValue(raw); ok && n >= 0 {
		return n, nil
	}
	return DefaultIndentSteps, &Warning{
		Key: KeyIndentSteps, Value: raw, Default: DefaultIndentSteps,
		Expected: "an integer >= 0",
	}
}

// ResolveOptions validates raw option values keyed by their config keys.
// Unknown keys are ignored.
func ResolveOptions(raw map[string]any) (Options, []Warning) {
	var (
		opts     Options
		warnings []Warning
		w        *Warning
	)
	collect := func() {
		if w != nil {
			warnings = append(warnings, *w)
		}
	}

	opts.MaxLineLength, w = ResolveMaxLineLength(raw[KeyMaxLineLength])
	collect()
	opts.CommaPosition, w = ResolveCommaPosition(raw[KeyCommaPosition])
	collect()
	opts.KeywordStyle, w = ResolveKeywordStyle(raw[KeyKeywordStyle])
	collect()
	opts.IndentSteps, w = ResolveIndentSteps(raw[KeyIndentSteps])
	collect()

	return opts, warnings
}

func isUnset(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// intValue handles the numeric types produced by YAML, TOML, JSON and env values.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}
