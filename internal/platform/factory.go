package platform

import (
	"context"
	"fmt"

	"github.com/macpad/macpad/pkg/adapters/fs"
	"github.com/macpad/macpad/pkg/adapters/memory"
	"github.com/macpad/macpad/pkg/core"
)

// New opens the store at path and returns a loaded workspace.
//
//	ws, err := macpad.New("", macpad.WithLogger(logger))
//
// An empty path selects the default preference file.
func New(path string, opts ...Option) (*core.Workspace, error) {
	store, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	ws := core.NewWorkspace(store, o.logger)
	ws.Load(context.Background())
	return ws, nil
}

// Init creates and initializes the preference store selected by opts.
func Init(path string, opts ...Option) (core.PreferenceStore, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return o.store, nil
	}

	switch o.adapter {
	case "fs":
		return initFS(path, o)
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(path string, o *options) (core.PreferenceStore, error) {
	tempDir, _ := o.config["temp_dir"].(bool)
	isReadOnly, _ := o.config["read_only"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	if path == "" {
		var err error
		if path, err = DefaultStorePath(); err != nil {
			return nil, err
		}
	}
	path = StoreFile(path)

	// Read-only access cannot damage anything, so it skips the sandbox.
	bypassSafety := isReadOnly || !devSafety
	useTemp := tempDir || (IsDevRun() && !bypassSafety)
	resolved := ResolveStorePath(path, useTemp)

	if o.logger != nil && useTemp && resolved != path {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolved)
	}

	config := fs.Config{
		Path:         resolved,
		Logger:       o.logger,
		ReadOnly:     isReadOnly,
		ErrorHandler: errorHandler,
	}
	if o.serializer != nil {
		s, ok := o.serializer.(fs.Serializer)
		if !ok {
			return nil, fmt.Errorf("serializer must implement fs.Serializer, got %T", o.serializer)
		}
		config.Serializer = s
	}

	store, err := fs.NewStore(config)
	if err != nil {
		return nil, err
	}
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}
