package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveStorePath returns the preference file to use. When forceTemp is set
// the file is re-rooted into a temporary directory so development runs do
// not touch the user's real preferences. Paths already inside the system
// temp directory (e.g. from t.TempDir()) are trusted as is.
func ResolveStorePath(userPath string, forceTemp bool) string {
	if !forceTemp {
		return userPath
	}

	clean := filepath.Clean(userPath)
	rel, err := filepath.Rel(os.TempDir(), clean)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	parent := filepath.Base(filepath.Dir(clean))
	if parent == "." || parent == string(os.PathSeparator) {
		parent = "default"
	}
	return filepath.Join(os.TempDir(), "macpad-dev", parent, filepath.Base(clean))
}
