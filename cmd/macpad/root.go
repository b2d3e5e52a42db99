package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/macpad/macpad"
	"github.com/macpad/macpad/internal/platform"
	"github.com/macpad/macpad/pkg/core"
)

var (
	verbose    bool
	storePath  string
	configPath string
	ephemeral  bool
	readOnly   bool

	fileConfig platform.FileConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "macpad",
	Short: "A tabbed note keeper backed by a single preference file",
	Long: `macpad keeps an ordered list of notes, shown as tabs, in a small
preference file. Every change is written back immediately.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = platform.DefaultConfigPath(); err != nil {
				return err
			}
		}
		cfg, err := platform.LoadConfig(path)
		if err != nil {
			return err
		}
		fileConfig = cfg

		level, err := cfg.Level()
		if err != nil {
			return err
		}
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Preference file or directory (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <config dir>/macpad/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep everything in memory for this invocation")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Never write the preference file")
}

// openWorkspace loads the workspace selected by the global flags and config.
func openWorkspace() (*core.Workspace, error) {
	path := storePath
	if path == "" {
		path = fileConfig.StorePath
	}

	opts := []macpad.Option{
		macpad.WithLogger(slog.Default()),
		macpad.WithReadOnly(readOnly || fileConfig.ReadOnly),
		// The CLI always targets the real preference file.
		macpad.WithDevSafety(false),
	}
	if ephemeral {
		opts = append(opts, macpad.WithAdapter("memory"))
	}

	ws, err := macpad.New(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes: %w", err)
	}
	return ws, nil
}

// tabIndex resolves an optional index argument, defaulting to the selected tab.
func tabIndex(ws *core.Workspace, args []string) (int, error) {
	if len(args) > 0 {
		return parseIndex(args[0])
	}
	index, ok := ws.Tabs.Selected()
	if !ok {
		return 0, fmt.Errorf("no notes open")
	}
	return index, nil
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid tab index %q", s)
	}
	return index, nil
}
