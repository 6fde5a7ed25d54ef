package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/writegood/internal/cli/output"
	"github.com/leapstack-labs/writegood/pkg/lint"
	_ "github.com/leapstack-labs/writegood/pkg/lint/rules" // register prose rules
	"github.com/spf13/cobra"
)

const replPrompt = "writegood> "

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Check sentences interactively",
		Long: `Start an interactive session. Every line you enter is checked and
annotated immediately. Dot commands toggle rules for the session.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

// historyFile returns the REPL history path, or "" when no cache directory
// is available.
func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "writegood")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx, err := NewCommandContext(cmd, "")
	if err != nil {
		return err
	}
	session := newREPLSession(cmdCtx.Renderer, cmdCtx.Cfg.LintConfig())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile(),
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "writegood REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type a sentence to check it, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if quit := session.Handle(line); quit {
			break
		}
	}

	return nil
}

// replSession holds the state of one interactive session.
type replSession struct {
	r   *output.Renderer
	cfg *lint.Config
}

func newREPLSession(r *output.Renderer, cfg *lint.Config) *replSession {
	return &replSession{r: r, cfg: cfg}
}

// Handle processes one input line and reports whether the session should end.
func (s *replSession) Handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ".") {
		return s.handleDotCommand(trimmed)
	}

	suggestions := lint.NewAnalyzer(s.cfg).Analyze(line)
	if len(suggestions) == 0 {
		s.r.Success("Looks good")
		s.r.Println("")
		return false
	}

	res := lintFileResult{Path: stdinName, Text: line, Suggestions: suggestions}
	if s.r.EffectiveMode() == output.ModeMarkdown {
		renderFileMarkdown(s.r, res)
	} else {
		s.renderSuggestions(res)
	}
	return false
}

func (s *replSession) renderSuggestions(res lintFileResult) {
	styles := s.r.Styles()
	for _, a := range annotateAll(res) {
		s.r.Println(a.Line)
		s.r.Println(styles.Caret.Render(a.Underline))
		s.r.Println(a.Message())
		s.r.Println("")
	}
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		s.printHelp()

	case ".rules":
		for _, def := range lint.GetAll() {
			s.r.Printf("  %-10s %s\n", def.Name, onOff(s.cfg.IsEnabled(def)))
		}

	case ".enable", ".disable":
		if len(args) == 0 {
			s.r.Error(fmt.Sprintf("usage: %s <rule>...", command))
			break
		}
		for _, name := range args {
			def, ok := lint.GetByName(name)
			if !ok {
				s.r.Error(fmt.Sprintf("unknown rule %q", name))
				continue
			}
			enabled := command == ".enable"
			s.cfg.Set(def.Name, enabled)
			s.r.Printf("%s %s\n", def.Name, onOff(enabled))
		}

	case ".whitelist":
		if len(args) == 0 {
			s.r.Printf("whitelist: %s\n", strings.Join(s.cfg.Whitelist, ", "))
			break
		}
		s.cfg.Allow(strings.Join(args, " "))
		s.r.Printf("whitelisted %q\n", strings.Join(args, " "))

	default:
		s.r.Error(fmt.Sprintf("unknown command %s (try .help)", command))
	}

	return false
}

func (s *replSession) printHelp() {
	s.r.Println("Commands:")
	s.r.Println("  .help               Show this help")
	s.r.Println("  .rules              List rules and whether they are on")
	s.r.Println("  .enable <rule>...   Turn rules on")
	s.r.Println("  .disable <rule>...  Turn rules off")
	s.r.Println("  .whitelist [text]   Never report text, or show the whitelist")
	s.r.Println("  .quit               Exit")
	s.r.Println("")
	s.r.Println("Anything else is checked as prose.")
}

func newREPLCompleter() *readline.PrefixCompleter {
	ruleItems := make([]readline.PrefixCompleterInterface, 0, lint.Count())
	for _, name := range lint.Names() {
		ruleItems = append(ruleItems, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".rules"),
		readline.PcItem(".enable", ruleItems...),
		readline.PcItem(".disable", ruleItems...),
		readline.PcItem(".whitelist"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
