package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macpad/macpad/pkg/adapters/fs"
	"github.com/macpad/macpad/pkg/core"
)

func receive(t *testing.T, ch <-chan core.Change) core.Change {
	t.Helper()
	select {
	case c, ok := <-ch:
		require.True(t, ok, "change channel closed")
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change")
		return core.Change{}
	}
}

func TestStore_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	s := openStore(t, path, false)
	require.NoError(t, s.SetScalar(ctx, core.FontSizeKey, 14))

	changes, err := s.Watch(ctx)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return s.State().(fs.StoreState).WatcherActive
	}, time.Second, 10*time.Millisecond)

	// Our own write must not come back as a change.
	require.NoError(t, s.SetScalar(ctx, core.SelectedTabKey, 0))

	other := openStore(t, path, false)
	require.NoError(t, other.SetScalar(ctx, core.FontSizeKey, 24))

	c := receive(t, changes)
	assert.Equal(t, []string{core.FontSizeKey}, c.Keys)
	assert.True(t, c.Has(core.FontSizeKey))

	size, err := s.GetScalar(ctx, core.FontSizeKey)
	require.NoError(t, err)
	assert.Equal(t, 24.0, size)
	assert.NotNil(t, s.State().(fs.StoreState).LastReload)
}

func TestStore_WatchIgnoresSiblings(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	s := openStore(t, filepath.Join(dir, "prefs.json"), false)
	changes, err := s.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{"scalars":{"fontSize":9}}`), 0644))

	select {
	case c := <-changes:
		t.Fatalf("unexpected change %v", c.Keys)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStore_WatchSurvivesCorruptWrite(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	errs := make(chan error, 16)
	s, err := fs.NewStore(fs.Config{Path: path, ErrorHandler: func(err error) {
		select {
		case errs <- err:
		default:
		}
	}})
	require.NoError(t, err)
	require.NoError(t, s.Initialize(ctx))

	changes, err := s.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{half written"), 0644))
	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("corrupt write was not reported")
	}

	require.NoError(t, fs.WriteFileAtomic(path, []byte(`{"scalars":{"fontSize":30}}`), 0644))
	c := receive(t, changes)
	assert.Equal(t, []string{core.FontSizeKey}, c.Keys)
}

func TestStore_WatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := openStore(t, filepath.Join(t.TempDir(), "prefs.json"), false)

	changes, err := s.Watch(ctx)
	require.NoError(t, err)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, s.State().(fs.StoreState).WatcherActive)
}
