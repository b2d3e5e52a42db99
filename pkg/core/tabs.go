package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
)

// Tabs tracks which note is selected and keeps the selection consistent
// as notes are opened and closed. The selected index is persisted as a
// scalar so it survives restarts.
type Tabs struct {
	notes  *Manager
	store  PreferenceStore
	logger *slog.Logger

	mu       sync.Mutex
	selected int
}

// NewTabs creates a tab controller over the given Manager.
func NewTabs(notes *Manager, store PreferenceStore, logger *slog.Logger) *Tabs {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tabs{notes: notes, store: store, logger: logger}
}

// Load restores the persisted selection. It must run after the Manager has
// loaded; a stored index outside the collection resets to 0.
func (t *Tabs) Load(ctx context.Context) int {
	index := 0
	v, err := t.store.GetScalar(ctx, SelectedTabKey)
	switch {
	case err == nil && v >= 0 && !math.IsNaN(v):
		index = int(v)
	case err != nil && !errors.Is(err, ErrNotFound):
		t.logger.Warn("failed to read selected tab", "error", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if n := t.notes.Len(); n > 0 && index >= n {
		index = 0
	}
	t.selected = index
	return index
}

// Selected returns the selected index, or false when there are no tabs.
func (t *Tabs) Selected() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.notes.Len()
	if n == 0 {
		return 0, false
	}
	return ClampSelection(t.selected, n), true
}

// Current returns the selected note.
func (t *Tabs) Current() (Note, bool) {
	index, ok := t.Selected()
	if !ok {
		return Note{}, false
	}
	return t.notes.At(index)
}

// Select makes index the active tab.
func (t *Tabs) Select(ctx context.Context, index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n := t.notes.Len(); index < 0 || index >= n {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, n)
	}
	t.selected = index
	t.persistLocked(ctx)
	return nil
}

// Open appends note and selects it.
func (t *Tabs) Open(ctx context.Context, note Note) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.notes.Add(ctx, note); err != nil {
		return err
	}
	t.selected = t.notes.Len() - 1
	t.persistLocked(ctx)
	return nil
}

// Close removes the tab at index and moves the selection accordingly.
// An index outside the collection is ignored and reported as false.
func (t *Tabs) Close(ctx context.Context, index int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	length := t.notes.Len()
	if index < 0 || index >= length {
		return false
	}

	next := NextSelection(t.selected, length, index)
	// A reload may have shrunk the collection since Len was read.
	if !t.notes.DeleteAt(ctx, index) {
		return false
	}
	t.selected = ClampSelection(next, t.notes.Len())
	t.persistLocked(ctx)
	return true
}

// CloseCurrent closes the selected tab.
func (t *Tabs) CloseCurrent(ctx context.Context) bool {
	index, ok := t.Selected()
	if !ok {
		return false
	}
	return t.Close(ctx, index)
}

// Reconcile clamps the selection after the collection changed underneath,
// e.g. after an external reload.
func (t *Tabs) Reconcile(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	clamped := ClampSelection(t.selected, t.notes.Len())
	if clamped != t.selected {
		t.selected = clamped
		t.persistLocked(ctx)
	}
}

func (t *Tabs) persistLocked(ctx context.Context) {
	if err := t.store.SetScalar(ctx, SelectedTabKey, float64(t.selected)); err != nil {
		t.logger.Warn("failed to persist selected tab", "error", err)
	}
}
