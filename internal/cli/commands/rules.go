package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group: indent, whitespace, comma, keyword, join
	Format string // Output format: text, json
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [code]",
		Short: "List violation codes",
		Long: `List every violation code sqlint can report, with its name, group,
default severity and message template.

Codes and names are accepted wherever a code is configured, for example
in the disabled list or the severity map.`,
		Example: `  # List all codes
  sqlint rules

  # Show a single code
  sqlint rules E302
  sqlint rules comma-end

  # Only whitespace codes, as JSON
  sqlint rules --group whitespace --format json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: codeCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	_ = cmd.RegisterFlagCompletionFunc("group", fixedCompletion(groups()...))
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(output.Modes()...))

	return cmd
}

func runRules(cmd *cobra.Command, opts *RulesOptions, args []string) error {
	cmdCtx, err := NewCommandContextWithoutEngine(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer
	if opts.Format != "" {
		mode, err := output.ParseMode(opts.Format)
		if err != nil {
			return err
		}
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	}

	infos, err := selectRules(opts.Group, args)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.RulesOutput{Rules: infos, Total: len(infos)})
	default:
		listRules(r, infos)
		return nil
	}
}

func selectRules(group string, args []string) ([]core.RuleInfo, error) {
	if len(args) == 1 {
		code, ok := lint.ParseCode(args[0])
		if !ok {
			return nil, fmt.Errorf("unknown code %q", args[0])
		}
		return []core.RuleInfo{code.Info()}, nil
	}

	group = strings.ToLower(strings.TrimSpace(group))
	var infos []core.RuleInfo
	for _, code := range lint.Codes() {
		if group != "" && code.Group() != group {
			continue
		}
		infos = append(infos, code.Info())
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("unknown group %q (expected one of %s)", group, strings.Join(groups(), ", "))
	}
	return infos, nil
}

func listRules(r *output.Renderer, infos []core.RuleInfo) {
	rows := make([]table.Row, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, table.Row{info.Code, info.Name, info.Group, info.DefaultSeverity.String(), info.Template})
	}
	r.Table(table.Row{"Code", "Name", "Group", "Severity", "Message"}, rows)
	r.Printf("%s\n", r.Styles().Muted.Render(fmt.Sprintf("%d code(s)", len(infos))))
}

// groups returns the code groups in catalog order.
func groups() []string {
	var out []string
	seen := map[string]bool{}
	for _, code := range lint.Codes() {
		if g := code.Group(); !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}
