package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// TempFilePrefix marks staging files left next to a target while it is being
// replaced. A crash mid-write can leave one behind; it is never read back.
const TempFilePrefix = "macpad-tmp-"

// staged is a temp file in the target's directory that either replaces the
// target on commit or disappears on discard.
type staged struct {
	target string
	file   *os.File
	done   bool
}

func stage(target string, perm os.FileMode) (*staged, error) {
	f, err := os.CreateTemp(filepath.Dir(target), TempFilePrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", target, err)
	}
	st := &staged{target: target, file: f}
	// Mode is set before any byte lands so the content is never readable
	// with CreateTemp's default 0600 by a watcher racing the rename.
	if err := f.Chmod(perm); err != nil && runtime.GOOS != "windows" {
		st.discard()
		return nil, fmt.Errorf("stage %s: chmod: %w", target, err)
	}
	return st, nil
}

func (st *staged) commit(data []byte) error {
	if _, err := st.file.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", st.target, err)
	}
	if err := st.file.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", st.target, err)
	}
	if err := st.file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", st.target, err)
	}
	if err := os.Rename(st.file.Name(), st.target); err != nil {
		return fmt.Errorf("replace %s: %w", st.target, err)
	}
	st.done = true
	syncDir(filepath.Dir(st.target))
	return nil
}

// discard is a no-op after a successful commit.
func (st *staged) discard() {
	if st.done {
		return
	}
	st.file.Close()
	os.Remove(st.file.Name())
}

// syncDir flushes the directory entry created by a rename. Failures are
// ignored: the data itself is already durable and some platforms refuse
// to fsync directories.
func syncDir(dir string) {
	if runtime.GOOS == "windows" {
		return
	}
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	d.Close()
}

// WriteFileAtomic replaces filename with data so readers observe either the
// old content or the new content, never a partial write.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	st, err := stage(filename, perm)
	if err != nil {
		return err
	}
	defer st.discard()
	return st.commit(data)
}
