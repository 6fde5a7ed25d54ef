package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/writegood/internal/cli/output"
	"github.com/leapstack-labs/writegood/pkg/lint"
	_ "github.com/leapstack-labs/writegood/pkg/lint/rules" // register prose rules
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule]",
		Short: "List available rules",
		Long: `List all available rules with their documentation.

The Enabled column reflects the current configuration, including
.writegood.yaml and WRITEGOOD_CHECKS__<RULE> environment variables.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # List all rules
  writegood rules

  # Show details for a specific rule
  writegood rules passive

  # List rules in the clarity group
  writegood rules --group clarity

  # Output as JSON
  writegood rules --format json`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return lint.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

// RuleEntry is a rule with its effective enabled state.
type RuleEntry struct {
	lint.RuleInfo `yaml:",inline"`
	Enabled       bool `json:"enabled" yaml:"enabled"`
}

// RulesOutput is the structured output for the rules listing.
type RulesOutput struct {
	Rules []RuleEntry `json:"rules" yaml:"rules"`
	Count struct {
		Enabled int `json:"enabled" yaml:"enabled"`
		Total   int `json:"total" yaml:"total"`
	} `json:"count" yaml:"count"`
}

// ruleEntries returns the registered rules, in registration order, filtered
// by group.
func ruleEntries(lintCfg *lint.Config, group string) []RuleEntry {
	var entries []RuleEntry
	for _, def := range lint.GetAll() {
		if group != "" && !strings.EqualFold(def.Group, group) {
			continue
		}
		entries = append(entries, RuleEntry{
			RuleInfo: lint.GetRuleInfo(def),
			Enabled:  lintCfg.IsEnabled(def),
		})
	}
	return entries
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	entries := ruleEntries(cmdCtx.Cfg.LintConfig(), opts.Group)
	if len(entries) == 0 && opts.Group != "" {
		return fmt.Errorf("no rules in group %q", opts.Group)
	}

	out := RulesOutput{Rules: entries}
	for _, e := range entries {
		if e.Enabled {
			out.Count.Enabled++
		}
	}
	out.Count.Total = len(entries)

	if ok, err := r.Structured(out); ok {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		return listRulesMarkdown(r, entries, opts.Verbose)
	}
	return listRulesText(r, out, opts.Verbose)
}

// groupTitle renders a group name as a heading, "clarity" -> "Clarity".
func groupTitle(group string) string {
	return cases.Title(language.English).String(group)
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

// listRulesText outputs rules as a table.
func listRulesText(r *output.Renderer, out RulesOutput, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Rules (%d of %d enabled)", out.Count.Enabled, out.Count.Total)))
	r.Println("")

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)

	header := table.Row{"Rule", "Group", "Enabled", "Description"}
	if verbose {
		header = append(header, "Example")
	}
	t.AppendHeader(header)

	for _, e := range out.Rules {
		row := table.Row{e.Name, groupTitle(e.Group), onOff(e.Enabled), e.Description}
		if verbose {
			row = append(row, e.BadExample)
		}
		t.AppendRow(row)
	}
	t.Render()

	r.Println("")
	r.Println(styles.Muted.Render("Use 'writegood rules <rule>' for detailed documentation"))
	r.Println("")

	return nil
}

// listRulesMarkdown outputs rules in markdown format, grouped.
func listRulesMarkdown(r *output.Renderer, entries []RuleEntry, verbose bool) error {
	r.Println("# Rules")
	r.Println("")

	currentGroup := ""
	for _, e := range entries {
		if e.Group != currentGroup {
			if currentGroup != "" {
				r.Println("")
			}
			currentGroup = e.Group
			r.Println("## " + groupTitle(currentGroup))
			r.Println("")
		}

		r.Printf("- **%s** - %s (`%s`)\n", e.Name, e.Description, onOff(e.Enabled))
		if verbose && e.Rationale != "" {
			r.Println("  > " + e.Rationale)
		}
	}

	r.Println("")
	return nil
}

func showRule(cmd *cobra.Command, name string, opts *RulesOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	def, ok := lint.GetByName(name)
	if !ok {
		return fmt.Errorf("rule %q not found", name)
	}
	entry := RuleEntry{
		RuleInfo: lint.GetRuleInfo(def),
		Enabled:  cmdCtx.Cfg.LintConfig().IsEnabled(def),
	}

	if ok, err := r.Structured(entry); ok {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		return showRuleMarkdown(r, entry)
	}
	return showRuleText(r, entry)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, e RuleEntry) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(e.Name))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), groupTitle(e.Group))
	r.Printf("  %s: %s\n", styles.Bold.Render("Enabled"), onOff(e.Enabled))
	r.Printf("  %s: %q\n", styles.Bold.Render("Message"), "<span> "+e.Explanation)
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + e.Description)
	r.Println("")

	if e.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + e.Rationale)
		r.Println("")
	}

	if e.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		r.Println(styles.Muted.Render("  " + e.BadExample))
		r.Println("")
	}

	if e.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		r.Println(styles.Success.Render("  " + e.GoodExample))
		r.Println("")
	}

	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, e RuleEntry) error {
	r.Printf("# %s\n\n", e.Name)
	r.Printf("**Group:** %s | **Enabled:** `%s`\n\n", groupTitle(e.Group), onOff(e.Enabled))
	r.Println(e.Description)
	r.Println("")

	if e.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(e.Rationale)
		r.Println("")
	}

	if e.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("> " + e.BadExample)
		r.Println("")
	}

	if e.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("> " + e.GoodExample)
		r.Println("")
	}

	return nil
}
