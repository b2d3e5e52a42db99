package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	notesource "github.com/macpad/macpad/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow changes to the notes made by other processes",
	Long: `Watch keeps the collection loaded and prints an event every time another
macpad process (or an editor) changes the preference file. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ws, err := openWorkspace()
		if err != nil {
			return err
		}

		source := notesource.NewSource(ws.Notes)
		if err := source.Start(ctx); err != nil {
			return err
		}
		if err := ws.Watch(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Watching %d notes...\n", ws.Notes.Len())
		for e := range source.Events() {
			fmt.Fprintln(out, e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
