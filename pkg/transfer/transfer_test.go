package transfer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macpad/macpad/pkg/core"
	"github.com/macpad/macpad/pkg/transfer"
)

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"notes.txt":             "notes",
		"/tmp/a/Groceries.text": "Groceries",
		"archive.tar.txt":       "archive.tar",
		"README":                "README",
	}
	for in, want := range tests {
		assert.Equal(t, want, transfer.Title(in), in)
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Text File", func(t *testing.T) {
		path := filepath.Join(dir, "Todo.txt")
		require.NoError(t, os.WriteFile(path, []byte("buy milk\nwalk dog"), 0644))

		note, err := transfer.ImportFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Todo", note.Title)
		assert.Equal(t, "buy milk\nwalk dog", note.Content)
		assert.NotEmpty(t, note.ID())
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		path := filepath.Join(dir, "latin1.txt")
		require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0644))

		_, err := transfer.ImportFile(path)
		assert.ErrorIs(t, err, transfer.ErrEncoding)
	})

	t.Run("Unsupported Type", func(t *testing.T) {
		path := filepath.Join(dir, "image.png")
		require.NoError(t, os.WriteFile(path, []byte("png"), 0644))

		_, err := transfer.ImportFile(path)
		assert.ErrorIs(t, err, transfer.ErrUnsupportedType)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := transfer.ImportFile(filepath.Join(dir, "missing.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestImport(t *testing.T) {
	note, err := transfer.Import("Letter.TXT", strings.NewReader("Dear ..."))
	require.NoError(t, err)
	assert.Equal(t, "Letter", note.Title)
	assert.Equal(t, "Dear ...", note.Content)
}

func TestExport(t *testing.T) {
	note := core.NewNote("Plan", "step one\nstep two\n")

	var buf bytes.Buffer
	require.NoError(t, transfer.Export(note, &buf))
	assert.Equal(t, note.Content, buf.String())
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	note := core.NewNote("Plan", "exact content")

	t.Run("Into Directory", func(t *testing.T) {
		path, err := transfer.ExportFile(note, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "Plan.txt"), path)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "exact content", string(got))
	})

	t.Run("Replaces File", func(t *testing.T) {
		target := filepath.Join(dir, "out.txt")
		require.NoError(t, os.WriteFile(target, []byte("old and longer content"), 0644))

		path, err := transfer.ExportFile(note, target)
		require.NoError(t, err)
		assert.Equal(t, target, path)
		got, _ := os.ReadFile(target)
		assert.Equal(t, "exact content", string(got))
	})

	t.Run("Missing Directory", func(t *testing.T) {
		_, err := transfer.ExportFile(note, filepath.Join(dir, "nope", "out.txt"))
		assert.Error(t, err)
	})
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "sub/c.txt", "sub/deep/d.txt", "e.md"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	}
	j := func(name string) string { return filepath.Join(dir, name) }

	t.Run("Single Level", func(t *testing.T) {
		got, err := transfer.Expand(j("*.txt"))
		require.NoError(t, err)
		assert.Equal(t, []string{j("a.txt"), j("b.txt")}, got)
	})

	t.Run("Recursive", func(t *testing.T) {
		got, err := transfer.Expand(j("**/*.txt"))
		require.NoError(t, err)
		assert.Equal(t, []string{j("a.txt"), j("b.txt"), j("sub/c.txt"), j("sub/deep/d.txt")}, got)
	})

	t.Run("Deduplicates And Keeps Plain Paths", func(t *testing.T) {
		got, err := transfer.Expand(j("a.txt"), j("*.txt"), j("missing.txt"))
		require.NoError(t, err)
		assert.Equal(t, []string{j("a.txt"), j("b.txt"), j("missing.txt")}, got)
	})

	t.Run("Invalid Pattern", func(t *testing.T) {
		_, err := transfer.Expand(j("[.txt"))
		assert.Error(t, err)
	})
}
