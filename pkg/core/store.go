package core

import "context"

// PreferenceStore is the key-value port used for every persisted setting.
// Structured values (the note collection) are stored as bytes, plain
// settings (font size, selected tab) as scalars.
//
// Get and GetScalar return ErrNotFound when the key is absent.
type PreferenceStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	GetScalar(ctx context.Context, key string) (float64, error)
	SetScalar(ctx context.Context, key string, value float64) error
}

// Change describes keys that were modified outside of this process.
type Change struct {
	Keys      []string
	Timestamp int64 // Unix timestamp
}

// Has reports whether key is part of the change.
func (c Change) Has(key string) bool {
	for _, k := range c.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Watchable is implemented by stores that can report external modifications.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Change, error)
}

// Persisted keys.
const (
	NotesKey       = "SavedNotes"
	FontSizeKey    = "fontSize"
	SelectedTabKey = "selectedTab"
)
