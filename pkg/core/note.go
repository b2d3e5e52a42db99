package core

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Note is the central entity of the domain.
// Its identity (ID) and creation time are fixed at construction; Title and
// Content are free to change.
type Note struct {
	id        string
	createdAt time.Time

	Title   string
	Content string
}

// NewNote creates a note with a fresh identifier.
// Content is optional and defaults to the empty string.
func NewNote(title string, content ...string) Note {
	n := Note{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC().Round(0),
		Title:     title,
	}
	if len(content) > 0 {
		n.Content = content[0]
	}
	return n.normalized()
}

// normalized replaces invalid UTF-8 in Title and Content with U+FFFD, the
// same substitution the JSON encoding would make, so the in-memory note
// always equals its persisted form.
func (n Note) normalized() Note {
	n.Title = strings.ToValidUTF8(n.Title, string(utf8.RuneError))
	n.Content = strings.ToValidUTF8(n.Content, string(utf8.RuneError))
	return n
}

// ID returns the stable identifier of the note.
func (n Note) ID() string { return n.id }

// CreatedAt returns the creation timestamp (UTC).
func (n Note) CreatedAt() time.Time { return n.createdAt }

// WordCount counts whitespace separated words in the content.
func (n Note) WordCount() int {
	return len(strings.Fields(n.Content))
}

// FileName is the suggested export name for the note.
func (n Note) FileName() string {
	return n.Title + ".txt"
}

// noteRecord is the persisted shape of a Note. Field order is part of the format.
type noteRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// MarshalJSON implements json.Marshaler.
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(noteRecord{
		ID:        n.id,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.createdAt,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Note) UnmarshalJSON(data []byte) error {
	var rec noteRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	n.id = rec.ID
	n.createdAt = rec.CreatedAt.UTC()
	n.Title = rec.Title
	n.Content = rec.Content
	return nil
}
