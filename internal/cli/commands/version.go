package commands

import (
	"fmt"
	"runtime"

	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Rules     int    `json:"rules" yaml:"rules"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display the writegood version, the commit and date it was built from,
and how many rules are registered. Use --format json or yaml for machine-readable output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info.GoVersion = runtime.Version()
			info.Rules = lint.Count()

			cmdCtx, err := NewCommandContext(cmd, format)
			if err != nil {
				return err
			}
			if ok, err := cmdCtx.Renderer.Structured(info); ok {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "writegood v%s\n", info.Version)
			_, _ = fmt.Fprintf(out, "commit %s, built %s with %s\n", info.Commit, info.BuildDate, info.GoVersion)
			_, _ = fmt.Fprintf(out, "%d prose rules registered\n", info.Rules)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json, yaml")
	return cmd
}
