package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macpad/macpad/pkg/transfer"
)

var (
	saveIndex int
)

var saveCmd = &cobra.Command{
	Use:   "save [path]",
	Short: "Save a note to a text file",
	Long: `Save writes the content of the selected note (or --index) to path.
When path is a directory the file is named "<title>.txt".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}

		var index int
		if cmd.Flags().Changed("index") {
			index = saveIndex
		} else if index, err = tabIndex(ws, nil); err != nil {
			return err
		}
		note, ok := ws.Notes.At(index)
		if !ok {
			return fmt.Errorf("no note at index %d", index)
		}

		path, err := transfer.ExportFile(note, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", note.Title, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().IntVar(&saveIndex, "index", 0, "Tab index to save (default: selected tab)")
}
