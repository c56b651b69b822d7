package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/digit/internal/config"
	"github.com/aretw0/digit/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "digit",
	Short: "Digit is a numeric and geometry plugin host",
	Long: `Digit hosts the Digit plugin: number classification, rounding, clamping,
tolerance comparison, aggregates, fixed-digit rounding, angle conversion,
distance, circle intersection and Bezier evaluation.

Operations can be called from the command line, over HTTP or as MCP tools.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the config file (.yaml or .json)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
}

// setup loads the config file and builds the logger, applying the persistent
// flag overrides.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(level), nil
}
