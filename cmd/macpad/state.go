package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/macpad/macpad/pkg/adapters/fs"
	"github.com/macpad/macpad/pkg/core"
)

var (
	stateDiagram bool
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print internal state of the workspace and its store",
	Long:  `Print the workspace state as JSON, or as a Mermaid diagram with --diagram.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		var intro introspection.Introspectable = ws
		state, ok := intro.State().(core.WorkspaceState)
		if !ok {
			return fmt.Errorf("unexpected workspace state %T", intro.State())
		}

		if stateDiagram {
			config := introspection.DefaultDiagramConfig()
			config.SecondaryID = "workspace"
			config.SecondaryLabel = "Workspace Topology"
			fmt.Fprintln(cmd.OutOrStdout(), introspection.TreeDiagram(buildStateTree(state), config))
			return nil
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(state)
	},
}

type stateNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []stateNode
}

func buildStateTree(state core.WorkspaceState) stateNode {
	// Status values must match introspection.DefaultStyles().
	selected := "none"
	if state.Selected != nil {
		selected = strconv.Itoa(*state.Selected)
	}

	storeNode := stateNode{
		Name:     "Store",
		Status:   "running",
		Metadata: map[string]string{"type": state.StoreType},
	}
	if fsState, ok := state.Store.(fs.StoreState); ok {
		storeNode.Metadata["path"] = fsState.Path
		storeNode.Metadata["format"] = fsState.Format
		watcher := "suspended"
		if fsState.WatcherActive {
			watcher = "running"
		}
		if fsState.ReadOnly {
			storeNode.Status = "suspended"
		}
		storeNode.Children = []stateNode{{
			Name:     "Watcher",
			Status:   watcher,
			Metadata: map[string]string{"type": "goroutine"},
		}}
	}

	return stateNode{
		Name:   "Workspace",
		Status: "running",
		Metadata: map[string]string{
			"type": "container",
		},
		Children: []stateNode{
			{
				Name:   "Notes",
				Status: "running",
				Metadata: map[string]string{
					"key":         state.Manager.Key,
					"notes":       strconv.Itoa(state.Manager.Notes),
					"subscribers": strconv.Itoa(state.Manager.Subscribers),
				},
			},
			{
				Name:     "Tabs",
				Status:   "running",
				Metadata: map[string]string{"selected": selected},
			},
			{
				Name:     "Font",
				Status:   "running",
				Metadata: map[string]string{"size": strconv.FormatFloat(state.FontSize, 'g', -1, 64)},
			},
			storeNode,
		},
	}
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().BoolVar(&stateDiagram, "diagram", false, "Print a Mermaid diagram instead of JSON")
}
