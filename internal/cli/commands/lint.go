package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/internal/engine"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/spf13/cobra"
)

// ErrLintIssues is returned when violations at or above the severity
// threshold were reported.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths    []string // Files or directories; "-" reads stdin
	Format   string   // Output format: text, json
	Severity string   // Minimum severity: error, warning, info, hint
	Watch    bool     // Re-lint when files change
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Check SQL files for style violations",
		Long: `Check SQL files for indentation, whitespace, keyword casing,
comma placement and JOIN formatting.

Directories are searched recursively for .sql files. Violations are
printed as file:(Lline, column): message in file order.

Options are read from .sqlint.yaml or sqlint.toml, SQLINT_* environment
variables and flags, in increasing order of precedence.`,
		Example: `  # Lint the current directory
  sqlint lint

  # Lint specific files and directories
  sqlint lint queries/ report.sql

  # Read from stdin
  cat query.sql | sqlint lint -

  # Require upper-case keywords and trailing commas
  sqlint lint --keyword-style upper-all --comma-position end

  # Output as JSON
  sqlint lint --format json

  # Disable codes and only fail on errors
  sqlint lint --disable E501,E502 --severity error

  # Re-lint on every change
  sqlint lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch paths and re-lint on change")

	// Mapped onto configuration keys by the config loader.
	cmd.Flags().String("comma-position", "", "Comma position: head, end")
	cmd.Flags().String("keyword-style", "", "Keyword style: upper-all, upper-head, lower")
	cmd.Flags().Int("indent-steps", lint.DefaultIndentSteps, "Indent width in spaces (0 disables the check)")
	cmd.Flags().Int("max-line-length", lint.DefaultMaxLineLength, "Maximum line length")
	cmd.Flags().StringSlice("disable", nil, "Codes or names to disable")
	cmd.Flags().IntP("jobs", "j", 0, "Files linted in parallel (default: number of CPUs)")

	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(output.Modes()...))
	_ = cmd.RegisterFlagCompletionFunc("severity", fixedCompletion(severityNames()...))
	_ = cmd.RegisterFlagCompletionFunc("comma-position", fixedCompletion("head", "end"))
	_ = cmd.RegisterFlagCompletionFunc("keyword-style", fixedCompletion("upper-all", "upper-head", "lower"))
	_ = cmd.RegisterFlagCompletionFunc("disable", codeCompletion)

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("invalid severity %q (expected error, warning, info or hint)", opts.Severity)
	}

	// Override renderer if format flag is set
	r := cmdCtx.Renderer
	if opts.Format != "" {
		mode, err := output.ParseMode(opts.Format)
		if err != nil {
			return err
		}
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	}

	if opts.Watch {
		return watchLint(cmd.Context(), cmdCtx.Engine, r, cmdCtx.Logger, opts.Paths, threshold)
	}

	result, err := cmdCtx.Engine.Run(cmd.Context(), opts.Paths)
	if err != nil {
		return err
	}

	for _, f := range result.Failed() {
		cmdCtx.Logger.Debug("file not linted", "path", f.Path, "error", f.Err)
	}

	if err := renderLintResults(r, result, threshold); err != nil {
		return err
	}
	return lintError(result, threshold)
}

// lintError maps a result onto the command's exit status.
func lintError(result *engine.Result, threshold core.Severity) error {
	if failed := len(result.Failed()); failed > 0 {
		return fmt.Errorf("%d file(s) could not be linted", failed)
	}
	if n := result.CountAtLeast(threshold); n > 0 {
		return fmt.Errorf("%w: %d violation(s)", ErrLintIssues, n)
	}
	return nil
}

func renderLintResults(r *output.Renderer, result *engine.Result, threshold core.Severity) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(buildLintOutput(result, threshold))
	}

	styles := r.Styles()
	for _, f := range result.Files {
		if f.Err != nil {
			r.Errorf("%s %s: %v\n", styles.Error.Render("error"), f.Path, f.Err)
			continue
		}
		for _, v := range f.Violations {
			if !v.Severity.AtLeast(threshold) {
				continue
			}
			r.Printf("%s:%s\n", styles.Path.Render(f.Path), v.String())
		}
	}

	summary := summarize(result, threshold)
	if summary.TotalIssues == 0 && summary.FailedFiles == 0 {
		r.Success(fmt.Sprintf("No violations in %d file(s)", summary.Files))
		return nil
	}
	r.Errorf("%s\n", styles.Muted.Render(summaryLine(summary)))
	return nil
}

func buildLintOutput(result *engine.Result, threshold core.Severity) output.LintOutput {
	out := output.LintOutput{
		Files:   make([]output.LintFileResult, 0, len(result.Files)),
		Summary: summarize(result, threshold),
	}
	for _, f := range result.Files {
		fr := output.LintFileResult{
			Path:        f.Path,
			Diagnostics: []output.LintDiagnostic{},
		}
		if f.Err != nil {
			fr.Error = f.Err.Error()
		}
		for _, v := range f.Violations {
			if !v.Severity.AtLeast(threshold) {
				continue
			}
			fr.Diagnostics = append(fr.Diagnostics, output.LintDiagnostic{
				Line:     v.Line,
				Column:   v.Column,
				Code:     string(v.Code()),
				Name:     v.Code().Name(),
				Severity: v.Severity.String(),
				Message:  v.Message(),
			})
		}
		out.Files = append(out.Files, fr)
	}
	return out
}

func summarize(result *engine.Result, threshold core.Severity) output.LintSummary {
	s := output.LintSummary{
		Files:       len(result.Files),
		FailedFiles: len(result.Failed()),
		DurationMS:  result.Duration.Milliseconds(),
	}
	for _, f := range result.Files {
		reported := 0
		for _, v := range f.Violations {
			if !v.Severity.AtLeast(threshold) {
				continue
			}
			reported++
			switch v.Severity {
			case core.SeverityError:
				s.Errors++
			case core.SeverityWarning:
				s.Warnings++
			case core.SeverityInfo:
				s.Info++
			case core.SeverityHint:
				s.Hints++
			}
		}
		s.TotalIssues += reported
		if reported > 0 {
			s.FilesWithIssues++
		}
	}
	return s
}

func summaryLine(s output.LintSummary) string {
	parts := []string{fmt.Sprintf("%d issues in %d of %d file(s)", s.TotalIssues, s.FilesWithIssues, s.Files)}
	if s.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", s.Errors))
	}
	if s.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", s.Warnings))
	}
	if s.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", s.Info))
	}
	if s.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", s.Hints))
	}
	if s.FailedFiles > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", s.FailedFiles))
	}
	return strings.Join(parts, ", ")
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func codeCompletion(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	codes := lint.Codes()
	values := make([]string, 0, len(codes))
	for _, c := range codes {
		values = append(values, fmt.Sprintf("%s\t%s", c, c.Name()))
	}
	return values, cobra.ShellCompDirectiveNoFileComp
}

func severityNames() []string {
	var names []string
	for _, s := range core.Severities() {
		names = append(names, s.String())
	}
	return names
}
