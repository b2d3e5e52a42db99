package core

import (
	"github.com/aretw0/introspection"
)

// ManagerState exposes internal state for observability.
type ManagerState struct {
	Key         string `json:"key"`
	Notes       int    `json:"notes"`
	Subscribers int    `json:"subscribers"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	m.mu.Lock()
	count := len(m.notes)
	m.mu.Unlock()

	m.subMu.Lock()
	subs := len(m.subs)
	m.subMu.Unlock()

	return ManagerState{Key: m.key, Notes: count, Subscribers: subs}
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "manager"
}

// WorkspaceState aggregates the state of a Workspace and its store.
type WorkspaceState struct {
	Manager   ManagerState `json:"manager"`
	Selected  *int         `json:"selected,omitempty"`
	FontSize  float64      `json:"font_size"`
	StoreType string       `json:"store_type"`
	Store     any          `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (w *Workspace) State() any {
	st := WorkspaceState{
		Manager:   w.Notes.State().(ManagerState),
		FontSize:  w.Font.Size(),
		StoreType: "unknown",
	}
	if index, ok := w.Tabs.Selected(); ok {
		st.Selected = &index
	}
	if comp, ok := w.store.(introspection.Component); ok {
		st.StoreType = comp.ComponentType()
	}
	if intro, ok := w.store.(introspection.Introspectable); ok {
		st.Store = intro.State()
	}
	return st
}

// ComponentType implements introspection.Component.
func (w *Workspace) ComponentType() string {
	return "workspace"
}

var _ introspection.Introspectable = (*Manager)(nil)
var _ introspection.Component = (*Manager)(nil)
var _ introspection.Introspectable = (*Workspace)(nil)
var _ introspection.Component = (*Workspace)(nil)
