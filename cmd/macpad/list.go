package main

import (
	"encoding/json"
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// maxTitleWidth is the display width at which titles are cut in the listing.
const maxTitleWidth = 40

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open notes in tab order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		notes := ws.Notes.Notes()
		out := cmd.OutOrStdout()

		if listJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(notes)
		}

		if len(notes) == 0 {
			fmt.Fprintln(out, "No notes yet. Create one with 'macpad new <title>'.")
			return nil
		}
		titles := make([]string, len(notes))
		width := 0
		for i, note := range notes {
			titles[i] = runewidth.Truncate(note.Title, maxTitleWidth, "...")
			width = max(width, runewidth.StringWidth(titles[i]))
		}

		selected, _ := ws.Tabs.Selected()
		for i, note := range notes {
			marker := " "
			if i == selected {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %d  %s  (%d words)\n", marker, i, runewidth.FillRight(titles[i], width), note.WordCount())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
