package snapshots

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/snippets/internal/sqlite"
	"github.com/dukaforge/snippets/pkg/types"
)

// fakeProvider answers account queries from fixed state. Failing stages are
// toggled per test.
type fakeProvider struct {
	types.NetworkProvider
	account     *types.AccountOnNetwork
	fungible    []types.FungibleTokenOfAccount
	nonFungible []types.NonFungibleTokenOfAccount
	failTokens  bool
}

func (p *fakeProvider) GetAccount(ctx context.Context, address string) (*types.AccountOnNetwork, error) {
	return p.account, nil
}

func (p *fakeProvider) GetFungibleTokensOfAccount(ctx context.Context, address string) ([]types.FungibleTokenOfAccount, error) {
	if p.failTokens {
		return nil, errors.New("token query failed")
	}
	return p.fungible, nil
}

func (p *fakeProvider) GetNonFungibleTokensOfAccount(ctx context.Context, address string) ([]types.NonFungibleTokenOfAccount, error) {
	return p.nonFungible, nil
}

func openStore(t *testing.T) types.Storage {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "snapshots.session.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTakeSnapshotReducesTokens(t *testing.T) {
	provider := &fakeProvider{
		account: &types.AccountOnNetwork{Address: "erd1alice", Nonce: 4, Balance: "777"},
		fungible: []types.FungibleTokenOfAccount{
			{Identifier: "GLD-abcdef", Name: "Gold", Balance: "500", Decimals: 18},
			{Identifier: "SLV-123456", Name: "Silver", Balance: "42", Decimals: 6},
		},
		nonFungible: []types.NonFungibleTokenOfAccount{
			{Identifier: "ART-fedcba-01", Collection: "ART-fedcba", Name: "Artwork", Nonce: 1},
		},
	}
	store := openStore(t)
	service := NewService(provider, store, "s1", "run-1")

	require.NoError(t, service.TakeSnapshotOfAccount(context.Background(), "erd1alice", nil))

	records, err := store.ListAccountSnapshots("s1")
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "run-1", got.CorrelationTag)
	assert.Equal(t, uint64(4), got.Nonce)
	assert.Equal(t, "777", got.Balance)

	// Only identifier+balance survives for fungibles.
	require.Len(t, got.FungibleTokens, 2)
	assert.Equal(t, types.FungibleAmount{Identifier: "GLD-abcdef", Balance: "500"}, got.FungibleTokens[0])

	// Only identifier+nonce survives for non-fungibles.
	require.Len(t, got.NonFungibleTokens, 1)
	assert.Equal(t, types.NonFungibleItem{Identifier: "ART-fedcba-01", Nonce: 1}, got.NonFungibleTokens[0])
}

func TestTakeSnapshotWithCorrelation(t *testing.T) {
	provider := &fakeProvider{account: &types.AccountOnNetwork{Address: "erd1bob", Nonce: 1, Balance: "1"}}
	store := openStore(t)
	service := NewService(provider, store, "s1", "run-1")

	after := int64(12)
	require.NoError(t, service.TakeSnapshotOfAccount(context.Background(), "erd1bob", &Correlation{AfterInteraction: &after}))

	records, err := store.ListAccountSnapshots("s1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].TakenBeforeInteraction)
	require.NotNil(t, records[0].TakenAfterInteraction)
	assert.Equal(t, int64(12), *records[0].TakenAfterInteraction)
}

func TestTakeSnapshotWritesNothingOnFailure(t *testing.T) {
	provider := &fakeProvider{
		account:    &types.AccountOnNetwork{Address: "erd1carol", Nonce: 0, Balance: "0"},
		failTokens: true,
	}
	store := openStore(t)
	service := NewService(provider, store, "s1", "run-1")

	err := service.TakeSnapshotOfAccount(context.Background(), "erd1carol", nil)
	require.Error(t, err)

	records, err := store.ListAccountSnapshots("s1")
	require.NoError(t, err)
	assert.Empty(t, records)
}
