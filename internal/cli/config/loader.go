package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/spf13/pflag"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// configKey is used to store the loaded config in context.
type configKey struct{}

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "SQLINT_"

// tomlSection is the table holding settings in a TOML config file.
const tomlSection = "sqlint"

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// ConfigFileNames are the config file names searched for, in priority order.
var ConfigFileNames = []string{
	".sqlint.yaml",
	".sqlint.yml",
	"sqlint.yaml",
	".sqlint.toml",
	"sqlint.toml",
}

// flagKeys maps flag names to config keys. Flags not listed here are
// command-local and never reach the config.
var flagKeys = map[string]string{
	"comma-position":  lint.KeyCommaPosition,
	"keyword-style":   lint.KeyKeywordStyle,
	"indent-steps":    lint.KeyIndentSteps,
	"max-line-length": lint.KeyMaxLineLength,
	"disable":         KeyDisabled,
	"jobs":            KeyJobs,
	"output":          KeyOutput,
	"verbose":         KeyVerbose,
}

// configIn returns the first config file present in dir.
func configIn(dir string) string {
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// FindConfigFile searches upward from startDir for a config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func FindConfigFile(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if found := configIn(dir); found != "" {
			return found
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// LoadConfig loads configuration relative to the current working directory.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return LoadConfigFrom(cwd, cfgFile, flags)
}

// LoadConfigFrom loads configuration, searching for a config file upward
// from dir when cfgFile is empty.
func LoadConfigFrom(dir, cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		KeyOutput:   DefaultOutput,
		KeyJobs:     DefaultJobs,
		KeyVerbose:  false,
		KeyDisabled: []string{},
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if cfgFile == "" {
		cfgFile = FindConfigFile(dir)
	}
	if cfgFile != "" {
		if err := loadFile(k, cfgFile); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment: SQLINT_INDENT_STEPS -> indent-steps
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Options = make(map[string]any, len(OptionKeys))
	for _, key := range OptionKeys {
		if k.Exists(key) {
			cfg.Options[key] = k.Get(key)
		}
	}
	cfg.ConfigFile = cfgFile

	return &cfg, nil
}

// loadFile loads a YAML or TOML config file, chosen by extension.
func loadFile(k *koanf.Koanf, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return loadTOML(k, path)
	}
	return k.Load(file.Provider(path), yaml.Parser())
}

// loadTOML decodes a TOML file and loads its [sqlint] table. Files without
// the table are read as flat settings.
func loadTOML(k *koanf.Koanf, path string) error {
	var doc map[string]any
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return err
	}
	section := doc
	if s, ok := doc[tomlSection].(map[string]any); ok {
		section = s
	}
	return k.Load(confmap.Provider(section, "."), nil)
}

// WithConfig returns a context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig, or the defaults.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok && c != nil {
		return c
	}
	return Default()
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
