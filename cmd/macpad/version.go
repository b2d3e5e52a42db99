package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macpad/macpad"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of macpad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "macpad version %s\n", strings.TrimSpace(macpad.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
