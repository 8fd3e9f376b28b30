package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config file names written by init.
const (
	InitYAMLFile = ".sqlint.yaml"
	InitTOMLFile = "sqlint.toml"
)

const yamlHeader = `# sqlint configuration
# comma-position: head | end
# keyword-style:  upper-all | upper-head | lower
# indent-steps:   spaces per indent level, 0 disables the check
# disabled:       codes or names to skip, see "sqlint rules"
# severity:       code -> error | warning | info | hint
`

const tomlHeader = `# sqlint configuration, see "sqlint rules" for codes
`

// starterConfig is the document written by init.
type starterConfig struct {
	CommaPosition string            `yaml:"comma-position" toml:"comma-position"`
	KeywordStyle  string            `yaml:"keyword-style" toml:"keyword-style"`
	IndentSteps   int               `yaml:"indent-steps" toml:"indent-steps"`
	MaxLineLength int               `yaml:"max-line-length" toml:"max-line-length"`
	Disabled      []string          `yaml:"disabled" toml:"disabled"`
	Severity      map[string]string `yaml:"severity" toml:"severity"`
}

func newStarterConfig() starterConfig {
	opts := lint.DefaultOptions()
	return starterConfig{
		CommaPosition: string(opts.CommaPosition),
		KeywordStyle:  string(opts.KeywordStyle),
		IndentSteps:   opts.IndentSteps,
		MaxLineLength: opts.MaxLineLength,
		Disabled:      []string{},
		Severity:      map[string]string{},
	}
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force, asTOML bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter configuration file",
		Long: `Write a configuration file holding the default options.

By default .sqlint.yaml is created. Use --toml to write sqlint.toml with
a [sqlint] table instead.`,
		Example: `  # Create .sqlint.yaml in the current directory
  sqlint init

  # Create sqlint.toml in another directory
  sqlint init db/ --toml

  # Overwrite an existing file
  sqlint init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cmdCtx, err := NewCommandContextWithoutEngine(cmd)
			if err != nil {
				return err
			}

			path, err := writeStarterConfig(dir, asTOML, force)
			if err != nil {
				return err
			}
			cmdCtx.Logger.Debug("wrote config", "path", path)
			cmdCtx.Renderer.Success(fmt.Sprintf("Created %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&asTOML, "toml", false, "Write sqlint.toml instead of .sqlint.yaml")

	return cmd
}

func writeStarterConfig(dir string, asTOML, force bool) (string, error) {
	name, header := InitYAMLFile, yamlHeader
	if asTOML {
		name, header = InitTOMLFile, tomlHeader
	}
	path := filepath.Join(dir, name)

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	cfg := newStarterConfig()
	if asTOML {
		doc := struct {
			Sqlint starterConfig `toml:"sqlint"`
		}{cfg}
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return "", fmt.Errorf("encode toml: %w", err)
		}
	} else {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
