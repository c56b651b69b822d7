package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/digit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of digit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("digit version %s\n", strings.TrimSpace(digit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
