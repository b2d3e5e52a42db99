package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macpad/macpad/pkg/adapters/memory"
	"github.com/macpad/macpad/pkg/core"
)

func newTabs(t *testing.T, store *memory.Store, names ...string) (*core.Manager, *core.Tabs) {
	t.Helper()
	ctx := context.TODO()
	m := core.NewManager(store)
	m.Load(ctx)
	tabs := core.NewTabs(m, store, nil)
	tabs.Load(ctx)
	for _, name := range names {
		require.NoError(t, tabs.Open(ctx, core.NewNote(name)))
	}
	return m, tabs
}

func TestTabs_Empty(t *testing.T) {
	_, tabs := newTabs(t, memory.NewStore())

	_, ok := tabs.Selected()
	assert.False(t, ok)
	_, ok = tabs.Current()
	assert.False(t, ok)
	assert.False(t, tabs.CloseCurrent(context.TODO()))
	assert.ErrorIs(t, tabs.Select(context.TODO(), 0), core.ErrIndexOutOfRange)
}

func TestTabs_OpenSelectsNewTab(t *testing.T) {
	_, tabs := newTabs(t, memory.NewStore(), "a", "b", "c")

	index, ok := tabs.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, index)

	current, ok := tabs.Current()
	require.True(t, ok)
	assert.Equal(t, "c", current.Title)
}

func TestTabs_Select(t *testing.T) {
	ctx := context.TODO()
	_, tabs := newTabs(t, memory.NewStore(), "a", "b")

	require.NoError(t, tabs.Select(ctx, 0))
	index, _ := tabs.Selected()
	assert.Equal(t, 0, index)

	for _, bad := range []int{-1, 2} {
		assert.ErrorIs(t, tabs.Select(ctx, bad), core.ErrIndexOutOfRange)
	}
	index, _ = tabs.Selected()
	assert.Equal(t, 0, index, "failed select keeps the selection")
}

func TestTabs_Close(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		closing  int
		want     []string
		wantSel  string
	}{
		{name: "Selected Last", selected: 2, closing: 2, want: []string{"a", "b"}, wantSel: "b"},
		{name: "Selected Middle", selected: 1, closing: 1, want: []string{"a", "c"}, wantSel: "c"},
		{name: "Before Selection", selected: 2, closing: 0, want: []string{"b", "c"}, wantSel: "c"},
		{name: "After Selection", selected: 0, closing: 1, want: []string{"a", "c"}, wantSel: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			m, tabs := newTabs(t, memory.NewStore(), "a", "b", "c")
			require.NoError(t, tabs.Select(ctx, tt.selected))

			require.True(t, tabs.Close(ctx, tt.closing))
			assert.Equal(t, tt.want, titles(m.Notes()))
			current, ok := tabs.Current()
			require.True(t, ok)
			assert.Equal(t, tt.wantSel, current.Title)
		})
	}
}

func TestTabs_CloseOutOfRange(t *testing.T) {
	ctx := context.TODO()
	store := memory.NewStore()
	m, tabs := newTabs(t, store, "a")
	writes := store.Writes()

	assert.False(t, tabs.Close(ctx, 1))
	assert.False(t, tabs.Close(ctx, -1))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, writes, store.Writes())
}

func TestTabs_CloseLastTab(t *testing.T) {
	ctx := context.TODO()
	m, tabs := newTabs(t, memory.NewStore(), "only")

	require.True(t, tabs.CloseCurrent(ctx))
	assert.Equal(t, 0, m.Len())
	_, ok := tabs.Selected()
	assert.False(t, ok)
}

func TestTabs_SelectionPersists(t *testing.T) {
	ctx := context.TODO()
	store := memory.NewStore()
	_, tabs := newTabs(t, store, "a", "b", "c")
	require.NoError(t, tabs.Select(ctx, 1))

	_, reopened := newTabs(t, store)
	index, ok := reopened.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, index)
}

func TestTabs_LoadResetsStaleSelection(t *testing.T) {
	ctx := context.TODO()
	store := memory.NewStore()
	newTabs(t, store, "a", "b")
	require.NoError(t, store.SetScalar(ctx, core.SelectedTabKey, 7))

	_, tabs := newTabs(t, store)
	index, ok := tabs.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, index)
}

func TestTabs_Reconcile(t *testing.T) {
	ctx := context.TODO()
	store := memory.NewStore()
	m, tabs := newTabs(t, store, "a", "b", "c")

	// Shrink the collection without going through Tabs.
	require.True(t, m.DeleteAt(ctx, 2))
	require.True(t, m.DeleteAt(ctx, 1))
	tabs.Reconcile(ctx)

	index, ok := tabs.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, index)
	stored, err := store.GetScalar(ctx, core.SelectedTabKey)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored)
}

// TestTabs_EndToEnd closes the first of two tabs while it is selected.
func TestTabs_EndToEnd(t *testing.T) {
	ctx := context.TODO()
	store := memory.NewStore()
	m, tabs := newTabs(t, store, "A", "B")
	require.NoError(t, tabs.Select(ctx, 0))

	require.True(t, tabs.Close(ctx, 0))

	index, ok := tabs.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, []string{"B"}, titles(m.Notes()))

	persisted := core.NewManager(store).Load(ctx)
	require.Len(t, persisted, 1)
	assert.Equal(t, "B", persisted[0].Title)
}

func TestTabs_CloseAfterCollectionShrank(t *testing.T) {
	ctx := context.TODO()
	store := memory.NewStore()
	m, tabs := newTabs(t, store, "a", "b", "c")

	// Another writer removes notes behind the tab bar's back.
	other := core.NewManager(store)
	other.Load(ctx)
	require.True(t, other.DeleteAt(ctx, 2))
	require.True(t, other.DeleteAt(ctx, 1))
	require.NoError(t, m.Reload(ctx))

	assert.False(t, tabs.Close(ctx, 2))
	assert.Equal(t, 1, m.Len())

	tabs.Reconcile(ctx)
	index, ok := tabs.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, index)
	assert.True(t, tabs.Close(ctx, 0))
	assert.Equal(t, 0, m.Len())
}
