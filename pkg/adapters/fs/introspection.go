package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	Format        string     `json:"format"`
	Keys          []string   `json:"keys"`
	ReadOnly      bool       `json:"read_only"`
	WatcherActive bool       `json:"watcher_active"`
	LastReload    *time.Time `json:"last_reload,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	keys := s.Keys()

	s.mu.RLock()
	defer s.mu.RUnlock()

	format := "custom"
	switch s.serializer.(type) {
	case *JSONSerializer:
		format = "json"
	case *YAMLSerializer:
		format = "yaml"
	}

	return StoreState{
		Path:          s.Path,
		Format:        format,
		Keys:          keys,
		ReadOnly:      s.config.ReadOnly,
		WatcherActive: s.watcherActive,
		LastReload:    s.lastReload,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Store) recordReload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastReload = &now
}
