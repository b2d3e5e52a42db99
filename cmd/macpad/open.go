package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macpad/macpad/pkg/transfer"
)

var openCmd = &cobra.Command{
	Use:   "open [file or pattern]...",
	Short: "Open text files as new notes",
	Long: `Open reads .txt/.text files into new tabs titled after the file name.
Arguments may be glob patterns, including "**". A file that cannot be read
is reported and skipped; the remaining files are still opened.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := transfer.Expand(args...)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no files match %v", args)
		}

		ws, err := openWorkspace()
		if err != nil {
			return err
		}

		ctx := context.Background()
		failed := 0
		for _, path := range paths {
			note, err := transfer.ImportFile(path)
			if err == nil {
				err = ws.Tabs.Open(ctx, note)
			}
			if err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "Error opening file: %v\n", err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", note.Title)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files could not be opened", failed, len(paths))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
