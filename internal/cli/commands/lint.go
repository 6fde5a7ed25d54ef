package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"
	"strings"

	"github.com/leapstack-labs/writegood/internal/cli/config"
	"github.com/leapstack-labs/writegood/internal/cli/output"
	"github.com/leapstack-labs/writegood/pkg/annotate"
	"github.com/leapstack-labs/writegood/pkg/lint"
	_ "github.com/leapstack-labs/writegood/pkg/lint/rules" // register prose rules
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format    string   // Output format: auto, text, markdown, json, yaml
	Disable   []string // Rules to disable
	Enable    []string // Rules to enable, including ones off by default
	Only      []string // Run only these rules
	Whitelist []string // Span texts never reported
	Jobs      int      // Files linted in parallel, 0 uses the config
	Watch     bool     // Re-lint files as they change
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Check prose for weasel words, passive voice and other problems",
		Long: `Check English prose for common style problems.

Each file is checked independently. With no files, or with "-", text is read
from standard input. HTML files are converted to Markdown before checking.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # Check a file
  writegood lint README.md

  # Check text from a pipe
  echo "So the cat was stolen." | writegood lint

  # Also flag every form of "to be"
  writegood lint --enable eprime docs/*.md

  # Only look for passive voice
  writegood lint --only passive chapter1.txt

  # Re-check files whenever they are saved
  writegood lint --watch draft.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rules to disable")
	cmd.Flags().StringSliceVar(&opts.Enable, "enable", nil, "Rules to enable")
	cmd.Flags().StringSliceVar(&opts.Only, "only", nil, "Run only these rules")
	cmd.Flags().StringSliceVar(&opts.Whitelist, "whitelist", nil, "Words or phrases never to report")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Files to check in parallel (default from config)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch files and re-check on change")

	_ = cmd.RegisterFlagCompletionFunc("disable", completeRuleNames)
	_ = cmd.RegisterFlagCompletionFunc("enable", completeRuleNames)
	_ = cmd.RegisterFlagCompletionFunc("only", completeRuleNames)

	return cmd
}

func completeRuleNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lint.Names(), cobra.ShellCompDirectiveNoFileComp
}

func runLint(cmd *cobra.Command, args []string, opts *LintOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}
	analyzer := lint.NewAnalyzer(lintCfg).WithLogger(cmdCtx.Logger)

	paths := args
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = cfg.Concurrency
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Watch {
		for _, p := range paths {
			if isStdin(p) {
				return fmt.Errorf("--watch needs file arguments, not standard input")
			}
		}
		return watchFiles(ctx, r, analyzer, paths, cmdCtx.Logger)
	}

	results, err := lintPaths(ctx, analyzer, paths, cmd.InOrStdin(), jobs, cmdCtx.Logger)
	if err != nil {
		return err
	}

	found := renderLintResults(r, results)
	if err := readErrors(results); err != nil {
		return err
	}
	if found {
		return fmt.Errorf("lint issues found")
	}
	return nil
}

// buildLintConfig merges the loaded config with command-line overrides.
// Precedence: --only, then --enable/--disable, then config checks.
func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	lintCfg := cfg.LintConfig()

	for _, name := range concat(opts.Enable, opts.Disable, opts.Only) {
		if _, ok := lint.GetByName(name); !ok {
			return nil, fmt.Errorf("unknown rule %q (run 'writegood rules' to list rules)", strings.TrimSpace(name))
		}
	}

	for _, name := range opts.Enable {
		lintCfg.Enable(name)
	}
	for _, name := range opts.Disable {
		lintCfg.Disable(name)
	}

	// If --only specified, disable all others
	if len(opts.Only) > 0 {
		only := make(map[string]bool, len(opts.Only))
		for _, name := range opts.Only {
			only[strings.ToLower(strings.TrimSpace(name))] = true
		}
		for _, name := range lint.Names() {
			lintCfg.Set(name, only[strings.ToLower(name)])
		}
	}

	lintCfg.Allow(opts.Whitelist...)
	return lintCfg, nil
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// lintFileResult holds lint results for a single document. Err is set when
// the document could not be read; Text and Suggestions are then empty.
type lintFileResult struct {
	Path        string
	Text        string
	Suggestions []lint.Suggestion
	Err         error
}

// lintPaths checks every path with at most jobs files in flight. Results keep
// the order of paths. A file that cannot be read gets a result carrying the
// error; only cancellation stops the run.
func lintPaths(ctx context.Context, analyzer *lint.Analyzer, paths []string, stdin io.Reader, jobs int, logger *slog.Logger) ([]lintFileResult, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]lintFileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := readDocument(path, stdin)
			if err != nil {
				results[i] = lintFileResult{Path: displayPath(path), Err: err}
				logger.Debug("failed to read file", "path", path, "error", err)
				return nil
			}
			results[i] = lintDocument(analyzer, doc)
			logger.Debug("checked file", "path", doc.Path, "suggestions", len(results[i].Suggestions))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readErrors joins the read errors of results, or returns nil.
func readErrors(results []lintFileResult) error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

func displayPath(path string) string {
	if isStdin(path) {
		return stdinName
	}
	return path
}

func lintDocument(analyzer *lint.Analyzer, doc document) lintFileResult {
	return lintFileResult{
		Path:        doc.Path,
		Text:        doc.Text,
		Suggestions: analyzer.Analyze(doc.Text),
	}
}

// LintSummary counts the suggestions of a run.
type LintSummary struct {
	FilesChecked    int            `json:"files_checked" yaml:"files_checked"`
	FilesFailed     int            `json:"files_failed,omitempty" yaml:"files_failed,omitempty"`
	FilesWithIssues int            `json:"files_with_issues" yaml:"files_with_issues"`
	TotalIssues     int            `json:"total_issues" yaml:"total_issues"`
	ByRule          map[string]int `json:"by_rule" yaml:"by_rule"`
}

// LintSuggestion is one suggestion in structured output.
type LintSuggestion struct {
	Index       int      `json:"index" yaml:"index"`
	Offset      int      `json:"offset" yaml:"offset"`
	Line        int      `json:"line" yaml:"line"`
	Column      int      `json:"column" yaml:"column"`
	Text        string   `json:"text" yaml:"text"`
	Reason      string   `json:"reason" yaml:"reason"`
	Rules       []string `json:"rules" yaml:"rules"`
	Replacement string   `json:"replacement,omitempty" yaml:"replacement,omitempty"`
}

// LintFileOutput is the structured output for one document.
type LintFileOutput struct {
	Path        string           `json:"path" yaml:"path"`
	Error       string           `json:"error,omitempty" yaml:"error,omitempty"`
	Suggestions []LintSuggestion `json:"suggestions" yaml:"suggestions"`
}

// LintOutput is the structured output of a lint run.
type LintOutput struct {
	Files   []LintFileOutput `json:"files" yaml:"files"`
	Summary LintSummary      `json:"summary" yaml:"summary"`
}

func summarize(results []lintFileResult) LintSummary {
	summary := LintSummary{ByRule: map[string]int{}}
	for _, res := range results {
		if res.Err != nil {
			summary.FilesFailed++
			continue
		}
		summary.FilesChecked++
		if len(res.Suggestions) > 0 {
			summary.FilesWithIssues++
		}
		summary.TotalIssues += len(res.Suggestions)
		for _, s := range res.Suggestions {
			for _, rule := range s.Rules {
				summary.ByRule[rule]++
			}
		}
	}
	return summary
}

func buildLintOutput(results []lintFileResult) LintOutput {
	out := LintOutput{
		Files:   make([]LintFileOutput, 0, len(results)),
		Summary: summarize(results),
	}
	for _, res := range results {
		file := LintFileOutput{
			Path:        res.Path,
			Suggestions: make([]LintSuggestion, 0, len(res.Suggestions)),
		}
		if res.Err != nil {
			file.Error = res.Err.Error()
		}
		for _, s := range res.Suggestions {
			pos := annotate.Locate(res.Text, s.Index)
			file.Suggestions = append(file.Suggestions, LintSuggestion{
				Index:       s.Index,
				Offset:      s.Offset,
				Line:        pos.Line,
				Column:      pos.Column,
				Text:        s.Text(res.Text),
				Reason:      s.Reason,
				Rules:       s.Rules,
				Replacement: s.Replacement,
			})
		}
		out.Files = append(out.Files, file)
	}
	return out
}

// renderLintResults prints the results and reports whether any suggestion
// was found.
func renderLintResults(r *output.Renderer, results []lintFileResult) bool {
	summary := summarize(results)

	if ok, err := r.Structured(buildLintOutput(results)); ok {
		if err != nil {
			r.Error(err.Error())
		}
		return summary.TotalIssues > 0
	}

	markdown := r.EffectiveMode() == output.ModeMarkdown
	for _, res := range results {
		switch {
		case res.Err != nil:
			r.Error(res.Err.Error())
		case len(res.Suggestions) == 0:
		case markdown:
			renderFileMarkdown(r, res)
		default:
			renderFileText(r, res)
		}
	}

	if summary.TotalIssues == 0 {
		if summary.FilesChecked > 0 {
			r.Success(fmt.Sprintf("No issues found in %d %s", summary.FilesChecked, plural(summary.FilesChecked, "file")))
		}
		return false
	}

	r.Printf("Summary: %d %s in %d of %d %s%s\n",
		summary.TotalIssues, plural(summary.TotalIssues, "suggestion"),
		summary.FilesWithIssues, summary.FilesChecked, plural(summary.FilesChecked, "file"),
		formatByRule(summary.ByRule),
	)
	return true
}

func annotateAll(res lintFileResult) []annotate.Annotation {
	annotations := make([]annotate.Annotation, 0, len(res.Suggestions))
	for _, s := range res.Suggestions {
		annotations = append(annotations, annotate.Resolve(res.Text, s))
	}
	return annotations
}

func renderFileText(r *output.Renderer, res lintFileResult) {
	styles := r.Styles()
	r.Println(styles.FilePath.Render(res.Path))
	r.Println("")
	for _, a := range annotateAll(res) {
		r.Println(a.Line)
		r.Println(styles.Caret.Render(a.Underline))
		r.Println(a.Message())
		if a.Suggestion.Replacement != "" {
			r.Println(styles.Muted.Render("  try: " + a.Suggestion.Replacement))
		}
		r.Println("")
	}
}

func renderFileMarkdown(r *output.Renderer, res lintFileResult) {
	r.Printf("## %s\n\n", res.Path)
	for _, a := range annotateAll(res) {
		s := a.Suggestion
		r.Println("```text")
		r.Println(a.Line)
		r.Println(a.Underline)
		r.Println("```")
		r.Printf("%s", a.Message())
		if s.Replacement != "" {
			r.Printf(" (try `%s`)", s.Replacement)
		}
		r.Println("")
		r.Println("")
	}
}

// formatByRule renders per-rule counts as " (passive: 2, weasel: 1)".
func formatByRule(byRule map[string]int) string {
	if len(byRule) == 0 {
		return ""
	}
	names := make([]string, 0, len(byRule))
	for name := range byRule {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %d", name, byRule[name]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
