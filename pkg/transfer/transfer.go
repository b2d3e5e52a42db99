// Package transfer moves notes between the collection and plain text files.
package transfer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/macpad/macpad/pkg/adapters/fs"
	"github.com/macpad/macpad/pkg/core"
)

var (
	// ErrEncoding is returned when a file is not valid UTF-8 text.
	ErrEncoding = errors.New("file is not valid UTF-8 text")
	// ErrUnsupportedType is returned for files outside AllowedExtensions.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// AllowedExtensions lists the file types accepted by ImportFile.
var AllowedExtensions = []string{".txt", ".text"}

// ImportFile reads a text file into a new note titled after the file name.
func ImportFile(path string) (core.Note, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(AllowedExtensions, ext) {
		return core.Note{}, fmt.Errorf("%w: %s", ErrUnsupportedType, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return core.Note{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	note, err := Import(filepath.Base(path), f)
	if err != nil {
		return core.Note{}, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return note, nil
}

// Import builds a note from r. The title is name without its extension.
func Import(name string, r io.Reader) (core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Note{}, err
	}
	if !utf8.Valid(data) {
		return core.Note{}, ErrEncoding
	}
	return core.NewNote(Title(name), string(data)), nil
}

// Title strips directories and the extension from a file name.
func Title(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Export writes the note content to w.
func Export(note core.Note, w io.Writer) error {
	_, err := io.WriteString(w, note.Content)
	return err
}

// ExportFile writes the note content to path, replacing any existing file.
// When path is a directory the note's FileName is used inside it.
func ExportFile(note core.Note, path string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, note.FileName())
	}
	if err := fs.WriteFileAtomic(path, []byte(note.Content), 0644); err != nil {
		return "", fmt.Errorf("failed to save note %q: %w", note.Title, err)
	}
	return path, nil
}

// Expand resolves file arguments that may contain glob patterns
// (including "**"). Plain paths are kept even when they do not exist so the
// import reports the failure. The result is sorted and de-duplicated.
func Expand(patterns ...string) ([]string, error) {
	var paths []string
	for _, p := range patterns {
		if !hasMeta(p) {
			paths = append(paths, filepath.Clean(p))
			continue
		}
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
