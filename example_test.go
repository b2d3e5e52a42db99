package macpad_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/macpad/macpad"
)

// Example_basic opens a workspace, adds two notes and closes the first tab.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "macpad-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ws, err := macpad.New(filepath.Join(tmpDir, "preferences.json"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := ws.Tabs.Open(ctx, macpad.NewNote("A")); err != nil {
		log.Fatal(err)
	}
	if err := ws.Tabs.Open(ctx, macpad.NewNote("B", "second note")); err != nil {
		log.Fatal(err)
	}
	if err := ws.Tabs.Select(ctx, 0); err != nil {
		log.Fatal(err)
	}

	ws.Tabs.Close(ctx, 0)

	current, _ := ws.Tabs.Current()
	fmt.Printf("Tabs: %d, current: %s\n", ws.Notes.Len(), current.Title)
	// Output:
	// Tabs: 1, current: B
}

// Example_reopen shows that the collection survives a restart.
func Example_reopen() {
	tmpDir, err := os.MkdirTemp("", "macpad-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "preferences.yaml")
	ws, err := macpad.New(path)
	if err != nil {
		log.Fatal(err)
	}
	_ = ws.Tabs.Open(context.Background(), macpad.NewNote("Groceries", "milk eggs bread"))

	reopened, err := macpad.New(path)
	if err != nil {
		log.Fatal(err)
	}
	note, _ := reopened.Tabs.Current()
	fmt.Printf("%s (%d words)\n", note.Title, note.WordCount())
	// Output:
	// Groceries (3 words)
}
