package commands

import (
	"github.com/leapstack-labs/writegood/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and browser playground",
		Long: `Start an HTTP server that checks prose.

Endpoints:
  GET  /                 Playground that checks text as you type
  POST /api/check        {"text": "...", "options": {"passive": false}}
  GET  /api/rules        All rules with their enabled state
  GET  /api/rules/{name} One rule
  GET  /healthz          Liveness probe
  GET  /metrics          Prometheus metrics

The server uses the checks and whitelist from the loaded configuration
unless a request sets its own options.`,
		Example: `  # Serve on the default port
  writegood serve

  # Serve on another port
  writegood serve --port 9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd, "")
			if err != nil {
				return err
			}
			srvCfg := cmdCtx.Cfg.GetServerConfig()
			if !cmd.Flags().Changed("port") {
				port = srvCfg.Port
			}

			srv := server.New(server.Config{
				Port:          port,
				Lint:          cmdCtx.Cfg.LintConfig(),
				Logger:        cmdCtx.Logger,
				SessionSecret: srvCfg.SessionSecret,
			})
			cmdCtx.Renderer.Printf("Serving on http://localhost:%d (Ctrl+C to stop)\n", port)
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config, 8765)")
	return cmd
}
