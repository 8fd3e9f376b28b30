package commands

import (
	"log/slog"

	"github.com/leapstack-labs/sqlint/internal/cli/config"
	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/internal/engine"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	LintCfg  *lint.Config
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
// Invalid configuration values are logged and replaced by their defaults.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cmdCtx, err := NewCommandContextWithoutEngine(cmd)
	if err != nil {
		return nil, err
	}

	lintCfg, warnings := cmdCtx.Cfg.LintConfig()
	for _, w := range warnings {
		cmdCtx.Logger.Warn("invalid configuration value",
			"key", w.Key, "value", w.Value, "expected", w.Expected, "using", w.Default)
	}

	cmdCtx.LintCfg = lintCfg
	cmdCtx.Engine = engine.New(engine.Config{
		Lint:   lintCfg,
		Jobs:   cmdCtx.Cfg.Jobs,
		Stdin:  cmd.InOrStdin(),
		Logger: cmdCtx.Logger,
	})
	return cmdCtx, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that never lint.
func NewCommandContextWithoutEngine(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}, nil
}
