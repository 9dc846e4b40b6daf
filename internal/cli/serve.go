package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordgrid/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Endpoints:

  GET  /healthz
  GET  /v1/neighbors/{cell}?width=4&height=4
  POST /v1/solve[?trace=1]

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			runner := c.newRunner(ctx, noCache)
			defer runner.Close()
			runner.MaxVisits = c.Config.Server.MaxVisits

			c.Logger.Info("listening", "addr", addr, "cache", c.Config.Cache.Backend)
			return server.New(runner, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}
