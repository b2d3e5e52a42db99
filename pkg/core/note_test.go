package core_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macpad/macpad/pkg/core"
)

func TestNewNote(t *testing.T) {
	before := time.Now().UTC()
	n := core.NewNote("Groceries")

	assert.NotEmpty(t, n.ID())
	assert.Equal(t, "Groceries", n.Title)
	assert.Empty(t, n.Content)
	assert.False(t, n.CreatedAt().Before(before.Truncate(time.Second)))
	assert.Equal(t, time.UTC, n.CreatedAt().Location())

	withBody := core.NewNote("", "body")
	assert.Equal(t, "", withBody.Title, "empty titles are allowed")
	assert.Equal(t, "body", withBody.Content)
}

func TestNewNote_InvalidUTF8(t *testing.T) {
	n := core.NewNote("a\xffb", "\xc3(body")
	assert.Equal(t, "a\uFFFDb", n.Title)
	assert.Equal(t, "\uFFFD(body", n.Content)
}

func TestNewNote_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := core.NewNote("n").ID()
		require.False(t, seen[id], "id %s generated twice", id)
		seen[id] = true
	}
}

func TestNote_EditsKeepIdentity(t *testing.T) {
	n := core.NewNote("draft")
	id, created := n.ID(), n.CreatedAt()

	n.Title = "final"
	n.Content = "rewritten"

	assert.Equal(t, id, n.ID())
	assert.Equal(t, created, n.CreatedAt())
}

func TestNote_WordCount(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"   \n\t ", 0},
		{"one", 1},
		{"one two  three", 3},
		{"  leading and trailing  \n", 3},
		{"line one\nline two\n\nline three", 6},
	}
	for _, tt := range tests {
		n := core.NewNote("t", tt.content)
		assert.Equal(t, tt.want, n.WordCount(), "content %q", tt.content)
	}
}

func TestNote_FileName(t *testing.T) {
	assert.Equal(t, "Meeting notes.txt", core.NewNote("Meeting notes").FileName())
}

func TestNote_JSONFieldOrder(t *testing.T) {
	n := core.NewNote("A", "body")
	data, err := json.Marshal(n)
	require.NoError(t, err)

	s := string(data)
	idPos := strings.Index(s, `"id"`)
	titlePos := strings.Index(s, `"title"`)
	contentPos := strings.Index(s, `"content"`)
	createdPos := strings.Index(s, `"createdAt"`)
	assert.True(t, idPos < titlePos && titlePos < contentPos && contentPos < createdPos, "unexpected field order: %s", s)

	var back core.Note
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, n, back)
}
