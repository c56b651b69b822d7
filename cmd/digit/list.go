package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/internal/cli"
	"github.com/aretw0/digit/internal/logging"
	"github.com/aretw0/digit/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered plugins and their operations",
	Long: `Prints the operation catalog. On a terminal the catalog is rendered as
styled markdown; use --plain (or pipe the output) for one line per operation,
or --mermaid for a flowchart (--highlight Digit.clamp marks operations).`,
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		highlight, _ := cmd.Flags().GetStringSlice("highlight")

		format := cli.FormatRendered
		switch {
		case mermaid:
			format = cli.FormatMermaid
		case plain || !tui.IsTerminal(os.Stdout):
			format = cli.FormatPlain
		}

		_, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if format == cli.FormatRendered {
			logger = logging.NewNop()
			tui.PrintBanner(os.Stdout, digit.Version)
		}

		ctx := context.Background()
		h, _, err := cli.NewHost(ctx, cli.HostOptions{Logger: logger})
		if err != nil {
			fmt.Printf("Error initializing digit: %v\n", err)
			os.Exit(1)
		}
		defer h.Close(ctx)

		if err := cli.PrintCatalog(os.Stdout, h, format, highlight...); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("plain", false, "Print one line per operation instead of rendered markdown")
	listCmd.Flags().Bool("mermaid", false, "Print a Mermaid flowchart of plugins and operations")
	listCmd.Flags().StringSlice("highlight", nil, "Plugin.operation keys to highlight in the Mermaid flowchart")
}
