package macpad

import (
	"log/slog"

	"github.com/macpad/macpad/internal/platform"
	"github.com/macpad/macpad/pkg/core"
)

// --- Types ---

// Note is a public alias for the note entity.
type Note = core.Note

// Workspace is a public alias for the loaded note workspace.
type Workspace = core.Workspace

// --- Configuration ---

// Option defines a functional option for configuring macpad.
type Option = platform.Option

// WithLogger sets the logger for the workspace.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom preference store.
func WithStore(store core.PreferenceStore) Option {
	return platform.WithStore(store)
}

// WithAdapter selects the store adapter by name ("fs" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithSerializer overrides the preference file format (an fs.Serializer).
func WithSerializer(s any) Option {
	return platform.WithSerializer(s)
}

// WithReadOnly never writes the preference file.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety toggles the sandbox applied under `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithWatcherErrorHandler registers a callback for preference watcher errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New opens the preference store at path and returns a loaded Workspace.
func New(path string, opts ...Option) (*core.Workspace, error) {
	return platform.New(path, opts...)
}

// Init opens the preference store without loading a workspace.
func Init(path string, opts ...Option) (core.PreferenceStore, error) {
	return platform.Init(path, opts...)
}

// NewNote creates a note with a fresh identifier.
func NewNote(title string, content ...string) Note {
	return core.NewNote(title, content...)
}
