package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/macpad/macpad/pkg/core"
)

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Show or change the editor font size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFont(cmd.OutOrStdout(), func(f *core.FontPreference, _ context.Context) float64 {
			return f.Size()
		})
	},
}

var fontIncreaseCmd = &cobra.Command{
	Use:     "increase",
	Aliases: []string{"+"},
	Short:   "Increase the font size by one point",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFont(cmd.OutOrStdout(), (*core.FontPreference).Increase)
	},
}

var fontDecreaseCmd = &cobra.Command{
	Use:     "decrease",
	Aliases: []string{"-"},
	Short:   "Decrease the font size by one point",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFont(cmd.OutOrStdout(), (*core.FontPreference).Decrease)
	},
}

var fontResetCmd = &cobra.Command{
	Use:     "reset",
	Aliases: []string{"0"},
	Short:   "Reset the font size to the default",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFont(cmd.OutOrStdout(), (*core.FontPreference).Reset)
	},
}

func withFont(out io.Writer, fn func(*core.FontPreference, context.Context) float64) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	size := fn(ws.Font, context.Background())
	fmt.Fprintf(out, "Font size: %g\n", size)
	return nil
}

func init() {
	rootCmd.AddCommand(fontCmd)
	fontCmd.AddCommand(fontIncreaseCmd, fontDecreaseCmd, fontResetCmd)
}
