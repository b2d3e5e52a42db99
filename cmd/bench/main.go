package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/macpad/macpad"
	"github.com/macpad/macpad/pkg/adapters/fs"
	"github.com/macpad/macpad/pkg/core"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	words := flag.Int("words", 200, "Words per note")
	format := flag.String("format", "json", "Preference file format (json or yaml)")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "macpad_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()
	path := filepath.Join(benchDir, "preferences."+*format)

	// Write the collection in one go, the way an existing install looks.
	fmt.Printf("Generating %d notes in %s...\n", *count, path)
	startGen := time.Now()
	body := strings.TrimSpace(strings.Repeat("lorem ipsum ", *words/2))
	notes := make([]core.Note, *count)
	for i := range notes {
		notes[i] = core.NewNote(fmt.Sprintf("Note %d", i), body)
	}
	data, err := core.EncodeNotes(notes)
	if err != nil {
		panic(err)
	}
	store, err := fs.NewStore(fs.Config{Path: path})
	if err != nil {
		panic(err)
	}
	ctx := context.TODO()
	if err := store.Initialize(ctx); err != nil {
		panic(err)
	}
	if err := store.Set(ctx, core.NotesKey, data); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v (%d bytes)\n", time.Since(startGen), len(data))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Run 1: startup, as every CLI invocation does it.
	fmt.Println("Opening workspace (cold)...")
	startOpen := time.Now()
	ws, err := macpad.New(path, macpad.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	openDuration := time.Since(startOpen)
	fmt.Printf("Open Result: %v (Items: %d)\n", openDuration, ws.Notes.Len())

	// Run 2: each mutation re-serializes the whole collection.
	const mutations = 20
	fmt.Printf("Running %d add/close cycles...\n", mutations)
	startMut := time.Now()
	for i := 0; i < mutations; i++ {
		if err := ws.Tabs.Open(ctx, core.NewNote(fmt.Sprintf("Bench %d", i), body)); err != nil {
			panic(err)
		}
		ws.Tabs.CloseCurrent(ctx)
	}
	perMutation := time.Since(startMut) / (2 * mutations)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes, %s):\n", *count, *format)
	fmt.Printf("  Open:     %v\n", openDuration)
	fmt.Printf("  Mutation: %v\n", perMutation)
	fmt.Printf("--------------------------------------------------\n")
}
