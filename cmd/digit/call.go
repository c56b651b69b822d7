package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/digit/internal/cli"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <operation> [key=value ...]",
	Short: "Invoke an operation",
	Long: `Invokes one operation of a registered plugin and prints the result.

The operation may be qualified as Plugin.operation; bare names address the
Digit plugin. Arguments are key=value pairs. Numbers accept NaN, +Inf and -Inf,
points accept "x,y", number lists accept "1,2,3", and values starting with
'{' or '[' are parsed as JSON.`,
	Example: `  digit call clamp digit=15 min=0 max=10
  digit call keepBits digit=3.14159 bits=2
  digit call cubicBezier t=0.5 p1=0,0 c1=1,2 c2=2,2 p2=3,0
  digit call Digit.average digits=1,2,3 --json`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")

		_, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		h, _, err := cli.NewHost(ctx, cli.HostOptions{Logger: logger})
		if err != nil {
			fmt.Printf("Error initializing digit: %v\n", err)
			os.Exit(1)
		}

		err = cli.Call(ctx, h, os.Stdout, cli.CallOptions{Target: args[0], Args: args[1:], JSON: jsonOut})
		h.Close(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().Bool("json", false, "Print the result as a JSON object")
}
