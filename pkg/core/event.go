package core

import "fmt"

// EventType represents the kind of change applied to the collection.
type EventType string

const (
	EventLoad   EventType = "LOAD"
	EventAdd    EventType = "ADD"
	EventDelete EventType = "DELETE"
	EventUpdate EventType = "UPDATE"
	EventReload EventType = "RELOAD"
)

// Event is published to subscribers after every successful mutation.
// Notes is a snapshot of the collection after the change.
type Event struct {
	Type  EventType
	Index int
	Note  Note
	Notes []Note
}

func (e Event) String() string {
	switch e.Type {
	case EventLoad, EventReload:
		return fmt.Sprintf("%s (%d notes)", e.Type, len(e.Notes))
	default:
		return fmt.Sprintf("%s #%d %q", e.Type, e.Index, e.Note.Title)
	}
}
