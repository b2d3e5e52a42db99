// Package memory provides an in-process core.PreferenceStore.
// It backs ephemeral sessions and tests.
package memory

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/macpad/macpad/pkg/core"
)

// ErrWriteFailed is returned by writes while FailWrites is enabled.
var ErrWriteFailed = errors.New("memory store: write failed")

// Store keeps preferences in maps.
type Store struct {
	mu      sync.RWMutex
	data    map[string][]byte
	scalars map[string]float64
	writes  int
	fail    bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		data:    make(map[string][]byte),
		scalars: make(map[string]float64),
	}
}

// FailWrites makes subsequent Set and SetScalar calls fail without
// changing any value.
func (s *Store) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

// Writes counts successful Set and SetScalar calls.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Keys lists every stored key, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := slices.Collect(maps.Keys(s.data))
	for k := range s.scalars {
		if _, dup := s.data[k]; !dup {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	return bytes.Clone(v), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return ErrWriteFailed
	}
	s.data[key] = bytes.Clone(value)
	s.writes++
	return nil
}

func (s *Store) GetScalar(ctx context.Context, key string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.scalars[key]
	if !ok {
		return 0, core.ErrNotFound
	}
	return v, nil
}

func (s *Store) SetScalar(ctx context.Context, key string, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return ErrWriteFailed
	}
	s.scalars[key] = value
	s.writes++
	return nil
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Keys    []string `json:"keys"`
	Writes  int      `json:"writes"`
	Failing bool     `json:"failing"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	keys := s.Keys()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{Keys: keys, Writes: s.writes, Failing: s.fail}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-store"
}

var _ core.PreferenceStore = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
