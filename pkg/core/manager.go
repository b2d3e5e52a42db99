package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
)

// Manager owns the ordered note collection and is the only component that
// writes it to the store. Every mutation re-serializes the whole collection.
type Manager struct {
	store  PreferenceStore
	logger *slog.Logger
	key    string

	mu    sync.Mutex
	notes []Note

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithManagerLogger sets the logger used for persistence diagnostics.
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithNotesKey overrides the store key holding the collection.
func WithNotesKey(key string) ManagerOption {
	return func(m *Manager) {
		if key != "" {
			m.key = key
		}
	}
}

// NewManager creates a Manager over store. The collection starts empty until Load.
func NewManager(store PreferenceStore, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		key:    NotesKey,
		subs:   make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EncodeNotes serializes a collection in the persisted format.
func EncodeNotes(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	return json.Marshal(notes)
}

// DecodeNotes parses the persisted format.
func DecodeNotes(data []byte) ([]Note, error) {
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid notes payload: %w", err)
	}
	return notes, nil
}

// Load replaces the in-memory collection with the persisted one.
// A missing key or an undecodable payload yields an empty collection.
func (m *Manager) Load(ctx context.Context) []Note {
	notes, err := m.read(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.Warn("discarding stored notes", "key", m.key, "error", err)
		}
		notes = nil
	}

	m.mu.Lock()
	m.notes = notes
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(Event{Type: EventLoad, Index: -1, Notes: snapshot})
	return slices.Clone(snapshot)
}

// Reload re-reads the collection after an external change.
// Unlike Load, a corrupt payload leaves the current collection untouched.
// The read and the swap happen under the same lock as mutations, so a
// concurrent Add is either part of the re-read data or applied after it.
func (m *Manager) Reload(ctx context.Context) error {
	m.mu.Lock()
	notes, err := m.read(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		m.mu.Unlock()
		return err
	}
	m.notes = notes
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(Event{Type: EventReload, Index: -1, Notes: snapshot})
	return nil
}

func (m *Manager) read(ctx context.Context) ([]Note, error) {
	data, err := m.store.Get(ctx, m.key)
	if err != nil {
		return nil, err
	}
	notes, err := DecodeNotes(data)
	if err != nil {
		return nil, err
	}
	return dedupe(notes, m.logger), nil
}

// dedupe drops records repeating an id seen earlier in the list.
func dedupe(notes []Note, logger *slog.Logger) []Note {
	seen := make(map[string]struct{}, len(notes))
	out := notes[:0]
	for _, n := range notes {
		if _, ok := seen[n.id]; ok {
			logger.Warn("dropping duplicate note", "id", n.id, "title", n.Title)
			continue
		}
		seen[n.id] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Save writes the full collection to the store.
// Failures are logged and otherwise ignored.
func (m *Manager) Save(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveLocked(ctx)
}

func (m *Manager) saveLocked(ctx context.Context) {
	data, err := EncodeNotes(m.notes)
	if err != nil {
		m.logger.Warn("failed to encode notes", "error", err)
		return
	}
	if err := m.store.Set(ctx, m.key, data); err != nil {
		m.logger.Warn("failed to persist notes", "key", m.key, "error", err)
		return
	}
	m.logger.Debug("notes persisted", "count", len(m.notes))
}

// Add appends note to the end of the collection and saves.
func (m *Manager) Add(ctx context.Context, note Note) error {
	if note.id == "" {
		return ErrInvalidNote
	}
	note = note.normalized()

	m.mu.Lock()
	if slices.ContainsFunc(m.notes, func(n Note) bool { return n.id == note.id }) {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrDuplicateID, note.id)
	}
	m.notes = append(m.notes, note)
	m.saveLocked(ctx)
	index := len(m.notes) - 1
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(Event{Type: EventAdd, Index: index, Note: note, Notes: snapshot})
	return nil
}

// DeleteAt removes the note at index and saves.
// An index outside [0, Len()) is ignored and reported as false.
func (m *Manager) DeleteAt(ctx context.Context, index int) bool {
	m.mu.Lock()
	if index < 0 || index >= len(m.notes) {
		m.mu.Unlock()
		return false
	}
	removed := m.notes[index]
	m.notes = slices.Delete(m.notes, index, index+1)
	m.saveLocked(ctx)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(Event{Type: EventDelete, Index: index, Note: removed, Notes: snapshot})
	return true
}

// UpdateContent replaces the body of the note at index and saves.
func (m *Manager) UpdateContent(ctx context.Context, index int, content string) bool {
	return m.update(ctx, index, func(n *Note) { n.Content = content })
}

// Rename changes the title of the note at index and saves.
func (m *Manager) Rename(ctx context.Context, index int, title string) bool {
	return m.update(ctx, index, func(n *Note) { n.Title = title })
}

func (m *Manager) update(ctx context.Context, index int, fn func(*Note)) bool {
	m.mu.Lock()
	if index < 0 || index >= len(m.notes) {
		m.mu.Unlock()
		return false
	}
	fn(&m.notes[index])
	m.notes[index] = m.notes[index].normalized()
	updated := m.notes[index]
	m.saveLocked(ctx)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(Event{Type: EventUpdate, Index: index, Note: updated, Notes: snapshot})
	return true
}

// Notes returns a copy of the collection in tab order.
func (m *Manager) Notes() []Note {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Len returns the number of notes.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notes)
}

// At returns the note at index.
func (m *Manager) At(index int) (Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.notes) {
		return Note{}, false
	}
	return m.notes[index], true
}

// IndexOf returns the position of the note with id, or -1.
func (m *Manager) IndexOf(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.IndexFunc(m.notes, func(n Note) bool { return n.id == id })
}

func (m *Manager) snapshotLocked() []Note {
	out := make([]Note, len(m.notes))
	copy(out, m.notes)
	return out
}

// Subscribe registers fn to receive every Event. The returned function
// removes the subscription.
func (m *Manager) Subscribe(fn func(Event)) (cancel func()) {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager) publish(e Event) {
	m.subMu.Lock()
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.subs[id])
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
