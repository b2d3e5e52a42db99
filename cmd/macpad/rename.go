package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename [index] [title]",
	Short: "Change the title of a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		title := strings.TrimSpace(args[1])
		if title == "" {
			return fmt.Errorf("title is required")
		}

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		if !ws.Notes.Rename(context.Background(), index, title) {
			return fmt.Errorf("no note at index %d", index)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed %d to %s\n", index, title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
