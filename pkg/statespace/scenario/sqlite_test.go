package scenario

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *GraphStore {
	t.Helper()
	store, err := NewGraphStore(filepath.Join(t.TempDir(), "graphs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestGraphStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	edges := []Edge{{"b", "c", 2}, {"a", "b", 1.5}, {"a", "c", 9}}
	require.NoError(t, store.SaveGraph(ctx, "g1", edges))

	got, err := store.LoadEdges(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, edges, got, "insertion order preserved")

	t.Run("save replaces", func(t *testing.T) {
		require.NoError(t, store.SaveGraph(ctx, "g1", []Edge{{"x", "y", 1}}))
		got, err := store.LoadEdges(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, []Edge{{"x", "y", 1}}, got)
	})

	t.Run("missing graph", func(t *testing.T) {
		_, err := store.LoadEdges(ctx, "nope")
		assert.ErrorIs(t, err, ErrGraphNotFound)
	})
}

func TestGraphStore_LoadGraph(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGraph(ctx, "line", []Edge{{"a", "b", 1}, {"b", "c", 1}}))

	g, err := store.LoadGraph(ctx, "line", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, g.Neighbors("b"))

	g, err = store.LoadGraph(ctx, "line", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, g.Neighbors("b"))
}

func TestGraphStore_GraphsAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGraph(ctx, "zeta", []Edge{{"a", "b", 1}}))
	require.NoError(t, store.SaveGraph(ctx, "alpha", []Edge{{"a", "b", 1}}))

	names, err := store.Graphs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	require.NoError(t, store.DeleteGraph(ctx, "alpha"))
	names, err = store.Graphs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta"}, names)
}

func TestGraphStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphs.db")
	ctx := context.Background()

	store, err := NewGraphStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveGraph(ctx, "g", []Edge{{"a", "b", 3}}))
	require.NoError(t, store.Close())

	reopened, err := NewGraphStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	edges, err := reopened.LoadEdges(ctx, "g")
	require.NoError(t, err)
	assert.Equal(t, []Edge{{"a", "b", 3}}, edges)
}

func TestGraphStore_Closed(t *testing.T) {
	store, err := NewGraphStore(":memory:")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "close is idempotent")

	assert.ErrorIs(t, store.SaveGraph(ctx, "g", nil), ErrStoreClosed)
	_, err = store.LoadEdges(ctx, "g")
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = store.Graphs(ctx)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, store.DeleteGraph(ctx, "g"), ErrStoreClosed)
}
