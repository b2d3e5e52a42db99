package fs

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/macpad/macpad/pkg/core"
)

// DefaultFileName is the preference file created inside the config directory.
const DefaultFileName = "preferences.json"

// Store implements core.PreferenceStore on top of a single preference file.
// The whole document is held in memory and rewritten atomically on every Set.
type Store struct {
	Path       string
	config     Config
	serializer Serializer

	mu      sync.RWMutex
	data    map[string][]byte
	scalars map[string]float64
	// Digest of the file content last written or read by this store.
	lastSeen uint64

	watcherActive bool
	lastReload    *time.Time
}

// Config holds the configuration for the file-backed store.
type Config struct {
	Path         string
	Logger       *slog.Logger
	ReadOnly     bool
	Serializer   Serializer  // Overrides the serializer picked from the file extension.
	ErrorHandler func(error) // Receives watcher failures; they are logged otherwise.
}

// NewStore creates a store for config.Path. Nothing is read until Initialize.
func NewStore(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("preference file path is required")
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	serializer := config.Serializer
	if serializer == nil {
		var err error
		if serializer, err = SerializerFor(config.Path); err != nil {
			return nil, err
		}
	}
	return &Store{
		Path:       config.Path,
		config:     config,
		serializer: serializer,
		data:       make(map[string][]byte),
		scalars:    make(map[string]float64),
	}, nil
}

// Initialize creates the parent directory and loads the preference file.
// A corrupt file is moved aside and the store starts empty.
func (s *Store) Initialize(ctx context.Context) error {
	if !s.config.ReadOnly {
		if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
			return fmt.Errorf("failed to create preference directory: %w", err)
		}
	}

	raw, data, scalars, err := s.readFile()
	if err != nil {
		if raw == nil || s.config.ReadOnly {
			return err
		}
		backup := s.Path + ".bak"
		s.config.Logger.Warn("preference file is corrupt, starting empty", "path", s.Path, "backup", backup, "error", err)
		if err := os.Rename(s.Path, backup); err != nil {
			return fmt.Errorf("failed to move corrupt preference file: %w", err)
		}
		raw, data, scalars = []byte{}, map[string][]byte{}, map[string]float64{}
	}

	s.mu.Lock()
	s.data, s.scalars, s.lastSeen = data, scalars, xxhash.Sum64(raw)
	s.mu.Unlock()

	s.config.Logger.Debug("preferences loaded", "path", s.Path, "keys", len(data)+len(scalars))
	return nil
}

// readFile returns the raw bytes and the decoded values. A missing file is
// an empty document. When decoding fails raw is returned alongside the error.
func (s *Store) readFile() ([]byte, map[string][]byte, map[string]float64, error) {
	raw, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return []byte{}, map[string][]byte{}, map[string]float64{}, nil
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read preference file: %w", err)
	}
	doc, err := s.serializer.Parse(bytes.NewReader(raw))
	if err != nil {
		return raw, nil, nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	data, scalars, err := decodeDocument(doc)
	if err != nil {
		return raw, nil, nil, fmt.Errorf("failed to decode %s: %w", s.Path, err)
	}
	return raw, data, scalars, nil
}

func decodeDocument(doc *Document) (map[string][]byte, map[string]float64, error) {
	data := make(map[string][]byte, len(doc.Data))
	for k, v := range doc.Data {
		b, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid value for key %q: %w", k, err)
		}
		data[k] = b
	}
	scalars := make(map[string]float64, len(doc.Scalars))
	maps.Copy(scalars, doc.Scalars)
	return data, scalars, nil
}

func encodeDocument(data map[string][]byte, scalars map[string]float64) Document {
	doc := Document{}
	if len(data) > 0 {
		doc.Data = make(map[string]string, len(data))
		for k, v := range data {
			doc.Data[k] = base64.StdEncoding.EncodeToString(v)
		}
	}
	if len(scalars) > 0 {
		doc.Scalars = maps.Clone(scalars)
	}
	return doc
}

// Get implements core.PreferenceStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	return bytes.Clone(v), nil
}

// Set implements core.PreferenceStore.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	s.data[key] = bytes.Clone(value)
	if err := s.flushLocked(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

// GetScalar implements core.PreferenceStore.
func (s *Store) GetScalar(ctx context.Context, key string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.scalars[key]
	if !ok {
		return 0, core.ErrNotFound
	}
	return v, nil
}

// SetScalar implements core.PreferenceStore.
func (s *Store) SetScalar(ctx context.Context, key string, value float64) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.scalars[key]
	s.scalars[key] = value
	if err := s.flushLocked(); err != nil {
		if had {
			s.scalars[key] = prev
		} else {
			delete(s.scalars, key)
		}
		return err
	}
	return nil
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

func (s *Store) flushLocked() error {
	out, err := s.serializer.Serialize(encodeDocument(s.data, s.scalars))
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}
	if err := WriteFileAtomic(s.Path, out, 0644); err != nil {
		return err
	}
	s.lastSeen = xxhash.Sum64(out)
	return nil
}

// Reload re-reads the preference file and returns the keys whose values
// differ from the in-memory state. Content identical to the last write or
// read is a no-op.
//
// The read happens under the write lock: every Set flushes under the same
// lock, so a read can never observe a file older than lastSeen.
func (s *Store) Reload(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	raw, data, scalars, err := s.readFile()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	digest := xxhash.Sum64(raw)
	if digest == s.lastSeen {
		s.mu.Unlock()
		return nil, nil
	}

	changed := diffKeys(s.data, data, bytes.Equal)
	changed = append(changed, diffKeys(s.scalars, scalars, func(a, b float64) bool { return a == b })...)
	s.data, s.scalars, s.lastSeen = data, scalars, digest
	s.mu.Unlock()

	s.recordReload()
	slices.Sort(changed)
	return slices.Compact(changed), nil
}

func diffKeys[V any](old, cur map[string]V, eq func(a, b V) bool) []string {
	var keys []string
	for k, v := range cur {
		if ov, ok := old[k]; !ok || !eq(ov, v) {
			keys = append(keys, k)
		}
	}
	for k := range old {
		if _, ok := cur[k]; !ok {
			keys = append(keys, k)
		}
	}
	return keys
}

var _ core.PreferenceStore = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
