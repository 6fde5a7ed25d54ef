package commands

import (
	"log/slog"

	"github.com/leapstack-labs/writegood/internal/cli/config"
	"github.com/leapstack-labs/writegood/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd. A non-empty format
// overrides the configured output mode and must name a known mode.
func NewCommandContext(cmd *cobra.Command, format string) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		var err error
		if mode, err = output.ParseMode(format); err != nil {
			return nil, err
		}
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}, nil
}

// getConfig returns the loaded configuration, or defaults when the command
// runs without the root command (as in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}
