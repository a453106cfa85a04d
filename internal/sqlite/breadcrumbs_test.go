package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/snippets/pkg/types"
)

func TestUpsertBreadcrumbReplacesInPlace(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.UpsertBreadcrumb("s1", "addr", types.BreadcrumbTypeAddress, map[string]any{"value": "erd1first"}))
	require.NoError(t, store.UpsertBreadcrumb("s1", "addr", types.BreadcrumbTypeAddress, map[string]any{"value": "erd1second"}))

	record, err := store.GetBreadcrumb("s1", "addr")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"value": "erd1second"}, record.Payload)

	// Exactly one row survives repeated upserts.
	all, err := store.ListBreadcrumbs("s1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertBreadcrumbReplacesType(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.UpsertBreadcrumb("s1", "thing", types.BreadcrumbTypeArbitrary, "v1"))
	require.NoError(t, store.UpsertBreadcrumb("s1", "thing", types.BreadcrumbTypeToken, "v2"))

	record, err := store.GetBreadcrumb("s1", "thing")
	require.NoError(t, err)
	assert.Equal(t, types.BreadcrumbTypeToken, record.Type)
	assert.Equal(t, "v2", record.Payload)
}

func TestGetBreadcrumbMissing(t *testing.T) {
	store := openStore(t)

	_, err := store.GetBreadcrumb("s1", "never-written")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBreadcrumbNotFound)
}

func TestGetBreadcrumbNilPayloadRoundTrips(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.UpsertBreadcrumb("s1", "empty", types.BreadcrumbTypeArbitrary, nil))

	record, err := store.GetBreadcrumb("s1", "empty")
	require.NoError(t, err)
	// Absent payload hydrates to an empty mapping, not nil and not an error.
	assert.Equal(t, map[string]any{}, record.Payload)
}

func TestBreadcrumbScopeIsolation(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.UpsertBreadcrumb("s1", "addr", types.BreadcrumbTypeAddress, "erd1s1"))
	require.NoError(t, store.UpsertBreadcrumb("s2", "addr", types.BreadcrumbTypeAddress, "erd1s2"))

	record, err := store.GetBreadcrumb("s1", "addr")
	require.NoError(t, err)
	assert.Equal(t, "erd1s1", record.Payload)

	record, err = store.GetBreadcrumb("s2", "addr")
	require.NoError(t, err)
	assert.Equal(t, "erd1s2", record.Payload)

	// Same name in another scope is a distinct row.
	s1, err := store.ListBreadcrumbs("s1")
	require.NoError(t, err)
	assert.Len(t, s1, 1)
}

func TestListBreadcrumbsByType(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.UpsertBreadcrumb("s1", "owner", types.BreadcrumbTypeAddress, "erd1owner"))
	require.NoError(t, store.UpsertBreadcrumb("s1", "contract", types.BreadcrumbTypeAddress, "erd1contract"))
	require.NoError(t, store.UpsertBreadcrumb("s1", "gold", types.BreadcrumbTypeToken, map[string]any{"identifier": "GLD-abcdef"}))
	require.NoError(t, store.UpsertBreadcrumb("s2", "stranger", types.BreadcrumbTypeAddress, "erd1other"))

	addresses, err := store.ListBreadcrumbsByType("s1", types.BreadcrumbTypeAddress)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	for _, record := range addresses {
		assert.Equal(t, "s1", record.Scope)
		assert.Equal(t, types.BreadcrumbTypeAddress, record.Type)
	}

	tokens, err := store.ListBreadcrumbsByType("s1", types.BreadcrumbTypeToken)
	require.NoError(t, err)
	assert.Len(t, tokens, 1)

	none, err := store.ListBreadcrumbsByType("s1", "no-such-type")
	require.NoError(t, err)
	assert.Empty(t, none)
}
