package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/lifecycle"
)

// Workspace bundles the note collection, the tab selection and the font
// preference over a single PreferenceStore.
type Workspace struct {
	Notes *Manager
	Tabs  *Tabs
	Font  *FontPreference

	store  PreferenceStore
	logger *slog.Logger
}

// NewWorkspace wires the components over store.
func NewWorkspace(store PreferenceStore, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	notes := NewManager(store, WithManagerLogger(logger))
	return &Workspace{
		Notes:  notes,
		Tabs:   NewTabs(notes, store, logger),
		Font:   NewFontPreference(store, logger),
		store:  store,
		logger: logger,
	}
}

// Load restores notes, selection and font size, in that order.
func (w *Workspace) Load(ctx context.Context) {
	notes := w.Notes.Load(ctx)
	selected := w.Tabs.Load(ctx)
	size := w.Font.Load(ctx)
	w.logger.Debug("workspace loaded", "notes", len(notes), "selected", selected, "font_size", size)
}

// Store returns the underlying store.
func (w *Workspace) Store() PreferenceStore {
	return w.store
}

// Watch follows external modifications of the store until ctx is done,
// reloading whatever changed. Manager subscribers observe reloads as
// EventReload.
func (w *Workspace) Watch(ctx context.Context) error {
	watchable, ok := w.store.(Watchable)
	if !ok {
		return ErrNotWatchable
	}
	changes, err := watchable.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch store: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case c, ok := <-changes:
				if !ok {
					return nil
				}
				w.apply(ctx, c)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		w.logger.Error("workspace watcher failed", "error", err)
	}))
	return nil
}

func (w *Workspace) apply(ctx context.Context, c Change) {
	w.logger.Debug("store changed", "keys", c.Keys)
	if c.Has(w.Notes.key) {
		if err := w.Notes.Reload(ctx); err != nil {
			w.logger.Warn("ignoring unreadable notes change", "error", err)
		}
		w.Tabs.Reconcile(ctx)
	}
	if c.Has(SelectedTabKey) {
		w.Tabs.Load(ctx)
	}
	if c.Has(FontSizeKey) {
		w.Font.Load(ctx)
	}
}
