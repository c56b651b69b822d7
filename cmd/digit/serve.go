package main

import (
	"fmt"
	"os"

	"github.com/aretw0/digit/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the operation catalog over HTTP:

  GET  /health, /info, /openapi.json, /swagger, /events, /metrics
  GET  /plugins, /plugins/{id}, /plugins/{id}/operations
  POST /plugins/{id}/operations/{op}   (JSON object of arguments)`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("port") {
			cfg.HTTP.Port, _ = cmd.Flags().GetInt("port")
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		if err := cli.Serve(ctx, cfg.HTTP, logger); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
		if sig := ctx.Signal(); sig != nil {
			logger.Debug("stopped by signal", "signal", sig.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (overrides config)")
}
