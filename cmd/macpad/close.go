package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var closeCmd = &cobra.Command{
	Use:   "close [index]",
	Short: "Close a tab, deleting its note",
	Long:  `Close permanently removes the note at index (default: selected tab) and moves the selection to a neighbouring tab.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		index, err := tabIndex(ws, args)
		if err != nil {
			return err
		}

		note, _ := ws.Notes.At(index)
		if !ws.Tabs.Close(context.Background(), index) {
			return fmt.Errorf("no note at index %d", index)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Closed %s\n", note.Title)
		if current, ok := ws.Tabs.Current(); ok {
			selected, _ := ws.Tabs.Selected()
			fmt.Fprintf(out, "Selected %d: %s\n", selected, current.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(closeCmd)
}
