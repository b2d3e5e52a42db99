package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/macpad/macpad/pkg/adapters/fs"
)

// AppDirName is the directory created under the user config directory.
const AppDirName = "macpad"

// DefaultDir returns the per-user configuration directory for macpad.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// DefaultStorePath returns the default preference file.
func DefaultStorePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fs.DefaultFileName), nil
}

// StoreFile maps a user supplied location to a preference file. Existing
// directories and paths without an extension get the default file name.
func StoreFile(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, fs.DefaultFileName)
	}
	if filepath.Ext(path) == "" {
		return filepath.Join(path, fs.DefaultFileName)
	}
	return path
}
