package platform

import (
	"log/slog"

	"github.com/macpad/macpad/pkg/core"
)

// options holds the internal configuration for a workspace.
type options struct {
	store      core.PreferenceStore
	logger     *slog.Logger
	adapter    string
	config     map[string]interface{}
	serializer any
}

// Option defines a functional option for configuring macpad.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:   nil,
		logger:  nil,
		adapter: "fs",
		config:  make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the workspace and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom preference store (e.g. a fake in tests).
// If provided, the adapter selection is skipped.
func WithStore(store core.PreferenceStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithAdapter selects the store adapter by name: "fs" (default) or "memory".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithSerializer overrides the file format of the fs adapter.
// The value must implement fs.Serializer; this is checked during Init.
func WithSerializer(s any) Option {
	return func(o *options) {
		o.serializer = s
	}
}

// WithReadOnly opens the store without ever writing to it.
// Mutations still apply in memory but persisting them fails silently.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithForceTemp forces the preference file into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) the preference file is re-rooted into a temporary directory.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while
// watching the preference file.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
