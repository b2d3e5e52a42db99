package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select [index]",
	Short: "Switch to another tab",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		if err := ws.Tabs.Select(context.Background(), index); err != nil {
			return err
		}
		note, _ := ws.Tabs.Current()
		fmt.Fprintf(cmd.OutOrStdout(), "Selected %d: %s\n", index, note.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
