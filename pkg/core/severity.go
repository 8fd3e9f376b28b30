package core

import (
	"fmt"
	"strings"
)

// Severity ranks a violation. Lower values are more severe.
type Severity int

// Severity levels.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

var severityNames = [...]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
	SeverityHint:    "hint",
}

// Severities lists every level, most severe first.
func Severities() []Severity {
	return []Severity{SeverityError, SeverityWarning, SeverityInfo, SeverityHint}
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// AtLeast reports whether s is as severe as threshold or more.
func (s Severity) AtLeast(threshold Severity) bool {
	return s <= threshold
}

// MarshalText encodes the level by name so JSON output reads "warning", not 1.
func (s Severity) MarshalText() ([]byte, error) {
	if s.String() == "unknown" {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts any spelling ParseSeverity accepts.
func (s *Severity) UnmarshalText(text []byte) error {
	v, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("invalid severity %q", text)
	}
	*s = v
	return nil
}

// ParseSeverity is case-insensitive and ignores surrounding space.
// Unknown input yields SeverityWarning and false.
func ParseSeverity(s string) (Severity, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), true
		}
	}
	return SeverityWarning, false
}

// RuleInfo describes one diagnostic code for listings and JSON output.
type RuleInfo struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Template        string   `json:"template"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
}
