package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Font size bounds, in points.
const (
	DefaultFontSize = 14.0
	MinFontSize     = 8.0
	MaxFontSize     = 36.0
	FontSizeStep    = 1.0
)

// FontPreference is the editor font size setting.
type FontPreference struct {
	store  PreferenceStore
	logger *slog.Logger

	mu   sync.Mutex
	size float64
}

// NewFontPreference creates a preference holding the default size until Load.
func NewFontPreference(store PreferenceStore, logger *slog.Logger) *FontPreference {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FontPreference{store: store, logger: logger, size: DefaultFontSize}
}

// Load reads the stored size. Absent or non-positive values yield the default.
func (f *FontPreference) Load(ctx context.Context) float64 {
	size := DefaultFontSize
	v, err := f.store.GetScalar(ctx, FontSizeKey)
	switch {
	case err == nil && v > 0:
		size = v
	case err != nil && !errors.Is(err, ErrNotFound):
		f.logger.Warn("failed to read font size", "error", err)
	}

	f.mu.Lock()
	f.size = size
	f.mu.Unlock()
	return size
}

// Size returns the current size.
func (f *FontPreference) Size() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size
}

// Increase grows the size by one step, never past MaxFontSize.
func (f *FontPreference) Increase(ctx context.Context) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.size < MaxFontSize {
		f.size = min(f.size+FontSizeStep, MaxFontSize)
		f.persistLocked(ctx)
	}
	return f.size
}

// Decrease shrinks the size by one step, never below MinFontSize.
func (f *FontPreference) Decrease(ctx context.Context) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.size > MinFontSize {
		f.size = max(f.size-FontSizeStep, MinFontSize)
		f.persistLocked(ctx)
	}
	return f.size
}

// Reset restores DefaultFontSize.
func (f *FontPreference) Reset(ctx context.Context) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.size = DefaultFontSize
	f.persistLocked(ctx)
	return f.size
}

func (f *FontPreference) persistLocked(ctx context.Context) {
	if err := f.store.SetScalar(ctx, FontSizeKey, f.size); err != nil {
		f.logger.Warn("failed to persist font size", "error", err)
	}
}
