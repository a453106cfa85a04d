package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/snippets/pkg/types"
)

// openStore creates a fresh store in a temp dir, torn down with the test.
func openStore(t *testing.T) *Store {
	t.Helper()
	file := filepath.Join(t.TempDir(), "test.session.sqlite")
	store, err := Open(file)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesSchema(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fresh.session.sqlite")
	store, err := Open(file)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(file)
	require.NoError(t, err)

	// Schema is usable right away.
	require.NoError(t, store.UpsertBreadcrumb("s1", "probe", types.BreadcrumbTypeArbitrary, map[string]any{"ok": true}))
}

func TestOpenExistingFileKeepsData(t *testing.T) {
	file := filepath.Join(t.TempDir(), "reopen.session.sqlite")

	store, err := Open(file)
	require.NoError(t, err)
	require.NoError(t, store.UpsertBreadcrumb("s1", "addr", types.BreadcrumbTypeAddress, "erd1aaa"))
	require.NoError(t, store.Close())

	reopened, err := Open(file)
	require.NoError(t, err)
	defer reopened.Close()

	record, err := reopened.GetBreadcrumb("s1", "addr")
	require.NoError(t, err)
	assert.Equal(t, "erd1aaa", record.Payload)
}

func TestOpenIncompatibleSchema(t *testing.T) {
	file := filepath.Join(t.TempDir(), "foreign.sqlite")
	require.NoError(t, os.WriteFile(file, []byte("not a database"), 0o644))

	_, err := Open(file)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrStoreOpen)
}

func TestOpenUnwritablePath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "nested", "x.sqlite"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrStoreOpen)
}

func TestCloseFailsFastAfterwards(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Close())

	err := store.UpsertBreadcrumb("s1", "late", types.BreadcrumbTypeArbitrary, nil)
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = store.GetBreadcrumb("s1", "late")
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	assert.ErrorIs(t, store.Close(), types.ErrStoreClosed)
}

func TestDestroyRemovesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doomed.session.sqlite")
	store, err := Open(file)
	require.NoError(t, err)

	require.NoError(t, store.Destroy())

	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))

	// Every call after destroy fails rather than silently succeeding.
	_, err = store.ListBreadcrumbs("s1")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = store.InsertInteraction(&types.InteractionRecord{Scope: "s1"})
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}
