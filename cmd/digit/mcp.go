package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aretw0/digit/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes every operation as an MCP tool named <plugin>_<operation>
(for example digit_clamp), plus a digit://catalog resource.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("transport") {
			cfg.MCP.Transport, _ = cmd.Flags().GetString("transport")
		}
		if cmd.Flags().Changed("port") {
			cfg.MCP.Port, _ = cmd.Flags().GetInt("port")
		}

		// Keep stray log output off Stdout, which carries JSON-RPC on stdio.
		log.SetOutput(os.Stderr)

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		if err := cli.ServeMCP(ctx, cfg.MCP, logger); err != nil {
			logger.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
		logger.Info("MCP Server stopped gracefully")
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse' (overrides config)")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on, SSE only (overrides config)")
}
