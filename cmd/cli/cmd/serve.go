package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cloud-cost/internal/app"
)

func (c *cli) newServeCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the comparison engine over HTTP until interrupted.

Examples:
  cloud-cost serve
  cloud-cost serve --address :9090 --config cloud-cost.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				c.cfg.Server.Address = address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Serve(ctx, c.cfg, c.logger, Version)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "listen address (default from config)")
	return cmd
}
