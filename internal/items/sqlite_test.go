package items

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	ferrors "git.home.luguber.info/inful/itemsvc/internal/foundation/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

func TestSQLiteStore_ListEmpty(t *testing.T) {
	store := newTestSQLiteStore(t)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSQLiteStore_InsertThenList(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Insert(ctx, "widget"))
	require.NoError(t, store.Insert(ctx, "gadget"))

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, Item{ID: 1, Name: "widget"}, items[0])
	assert.Equal(t, Item{ID: 2, Name: "gadget"}, items[1])
}

func TestSQLiteStore_NameIsBoundNotInterpolated(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)
	hostile := "x'); DROP TABLE items; --"

	require.NoError(t, store.Insert(ctx, hostile))

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, hostile, items[0].Name)
}

func TestSQLiteStore_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Insert(ctx, fmt.Sprintf("item-%d", i))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, n)
}

func TestSQLiteStore_MissingTableIsStoreError(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "empty.db"))

	_, err := store.List(context.Background())
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryStore))

	err = store.Insert(context.Background(), "widget")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryStore))
}
