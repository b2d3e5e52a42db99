package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macpad/macpad/pkg/core"
)

var (
	newContent string
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a note in a new tab",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(args[0])
		if title == "" {
			return fmt.Errorf("title is required")
		}

		ws, err := openWorkspace()
		if err != nil {
			return err
		}

		note := core.NewNote(title, newContent)
		if err := ws.Tabs.Open(context.Background(), note); err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created note %d: %s\n", ws.Notes.Len()-1, note.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newContent, "content", "", "Initial content")
}
