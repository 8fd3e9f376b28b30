package lint

import "github.com/leapstack-labs/sqlint/pkg/core"

// Config controls which codes are reported, their severity, and checker options.
type Config struct {
	// DisabledCodes contains codes to drop from results
	DisabledCodes map[Code]bool

	// SeverityOverrides changes the default severity of codes
	SeverityOverrides map[Code]core.Severity

	// Options are passed to every checker
	Options Options
}

// NewConfig creates a default configuration with all codes enabled.
func NewConfig() *Config {
	return &Config{
		DisabledCodes:     make(map[Code]bool),
		SeverityOverrides: make(map[Code]core.Severity),
		Options:           DefaultOptions(),
	}
}

// IsDisabled returns true if the code should be dropped.
func (c *Config) IsDisabled(code Code) bool {
	if c == nil {
		return false
	}
	return c.DisabledCodes[code]
}

// GetSeverity returns the severity for a code, applying any override.
func (c *Config) GetSeverity(code Code) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[code]; ok {
			return sev
		}
	}
	return code.DefaultSeverity()
}

// GetOptions returns the checker options, or the defaults for a nil config.
func (c *Config) GetOptions() Options {
	if c == nil {
		return DefaultOptions()
	}
	return c.Options
}

// Disable disables a code.
func (c *Config) Disable(code Code) *Config {
	c.DisabledCodes[code] = true
	return c
}

// SetSeverity overrides the severity for a code.
func (c *Config) SetSeverity(code Code, severity core.Severity) *Config {
	c.SeverityOverrides[code] = severity
	return c
}

// WithOptions replaces the checker options.
func (c *Config) WithOptions(opts Options) *Config {
	c.Options = opts
	return c
}
