// Package config provides configuration management for the sqlint CLI.
//
// Configuration is layered with koanf: built-in defaults, then a YAML or TOML
// config file, then SQLINT_* environment variables, then explicitly set flags.
// Raw option values are kept untyped here and resolved by pkg/lint so that
// invalid values degrade to defaults with a warning instead of failing.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

// Default values for CLI configuration.
const (
	DefaultOutput = "auto"
	DefaultJobs   = 0
)

// Config keys shared by the file, env and flag layers.
const (
	KeyDisabled = "disabled"
	KeySeverity = "severity"
	KeyOutput   = "output"
	KeyJobs     = "jobs"
	KeyVerbose  = "verbose"
)

// OptionKeys lists the lint option keys in the order they are documented.
var OptionKeys = []string{
	lint.KeyCommaPosition,
	lint.KeyKeywordStyle,
	lint.KeyIndentSteps,
	lint.KeyMaxLineLength,
}

// Config holds all CLI configuration options.
type Config struct {
	Disabled     []string          `koanf:"disabled"`
	Severity     map[string]string `koanf:"severity"`
	OutputFormat string            `koanf:"output"`
	Jobs         int               `koanf:"jobs"`
	Verbose      bool              `koanf:"verbose"`

	// Options holds the raw lint option values keyed by option name.
	Options map[string]any `koanf:"-"`

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Jobs:         DefaultJobs,
		Options:      map[string]any{},
	}
}

// LintConfig converts the CLI configuration into a lint.Config.
// Unknown codes, unknown severities and invalid option values are reported
// as warnings and otherwise ignored.
func (c *Config) LintConfig() (*lint.Config, []lint.Warning) {
	lc := lint.NewConfig()
	if c == nil {
		return lc, nil
	}

	opts, warnings := lint.ResolveOptions(c.Options)
	lc.WithOptions(opts)

	for _, raw := range splitList(c.Disabled) {
		code, ok := lint.ParseCode(raw)
		if !ok {
			warnings = append(warnings, lint.Warning{
				Key: KeyDisabled, Value: raw, Default: "none", Expected: "a rule code or name",
			})
			continue
		}
		lc.Disable(code)
	}

	keys := make([]string, 0, len(c.Severity))
	for k := range c.Severity {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, raw := range keys {
		value := c.Severity[raw]
		code, ok := lint.ParseCode(raw)
		if !ok {
			warnings = append(warnings, lint.Warning{
				Key: KeySeverity, Value: raw, Default: "none", Expected: "a rule code or name",
			})
			continue
		}
		sev, ok := core.ParseSeverity(value)
		if !ok {
			warnings = append(warnings, lint.Warning{
				Key:      fmt.Sprintf("%s.%s", KeySeverity, raw),
				Value:    value,
				Default:  code.DefaultSeverity(),
				Expected: "error, warning, info or hint",
			})
			continue
		}
		lc.SetSeverity(code, sev)
	}

	return lc, warnings
}

// splitList flattens comma separated entries, as produced by env variables.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
