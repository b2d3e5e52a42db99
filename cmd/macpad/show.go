package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show [index]",
	Short: "Print a note",
	Long:  `Print the content of the note at index, or of the selected tab. Use --json for the full record.`,
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
		note, ok := ws.Notes.At(index)
		if !ok {
			return fmt.Errorf("no note at index %d", index)
		}

		out := cmd.OutOrStdout()
		if showJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(note)
		}

		fmt.Fprint(out, note.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
