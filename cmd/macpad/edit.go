package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit [index]",
	Short: "Replace the content of a note",
	Long: `Replace the content of the note at index (default: selected tab).
The new content is taken from --content, or read from stdin when the flag is absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		index, err := tabIndex(ws, args)
		if err != nil {
			return err
		}

		content := editContent
		if !cmd.Flags().Changed("content") {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			content = string(data)
		}

		if !ws.Notes.UpdateContent(context.Background(), index, content) {
			return fmt.Errorf("no note at index %d", index)
		}
		note, _ := ws.Notes.At(index)
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%d words)\n", note.Title, note.WordCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
}
