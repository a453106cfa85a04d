// Package snapshots captures point-in-time account state into the session
// store. Snapshots deliberately reduce token holdings to identifier+balance
// and identifier+nonce pairs; all other token metadata is dropped.
package snapshots

import (
	"context"
	"log/slog"

	"github.com/dukaforge/snippets/pkg/types"
)

// Correlation optionally links a snapshot to an interaction it was taken
// around. At most one of the two fields is meaningful per snapshot.
type Correlation struct {
	BeforeInteraction *int64
	AfterInteraction  *int64
}

// Service reads account state from the network and writes reduced snapshots
// into one scope of the store. Every snapshot is stamped with the run's
// correlation tag.
type Service struct {
	provider    types.NetworkProvider
	storage     types.Storage
	scope       string
	correlation string
}

// NewService creates a snapshot service for the given scope.
func NewService(provider types.NetworkProvider, storage types.Storage, scope, correlation string) *Service {
	return &Service{provider: provider, storage: storage, scope: scope, correlation: correlation}
}

// TakeSnapshotOfAccount queries the account's nonce, balance, and token
// holdings, then inserts one snapshot row. Provider failures propagate
// unchanged and nothing is written until all three queries succeed, so no
// partial snapshot ever reaches the store.
func (s *Service) TakeSnapshotOfAccount(ctx context.Context, address string, correlation *Correlation) error {
	account, err := s.provider.GetAccount(ctx, address)
	if err != nil {
		return err
	}
	fungibleTokens, err := s.provider.GetFungibleTokensOfAccount(ctx, address)
	if err != nil {
		return err
	}
	nonFungibleTokens, err := s.provider.GetNonFungibleTokensOfAccount(ctx, address)
	if err != nil {
		return err
	}

	record := &types.AccountSnapshotRecord{
		CorrelationTag:    s.correlation,
		Scope:             s.scope,
		Address:           address,
		Nonce:             account.Nonce,
		Balance:           account.Balance,
		FungibleTokens:    reduceFungible(fungibleTokens),
		NonFungibleTokens: reduceNonFungible(nonFungibleTokens),
	}
	if correlation != nil {
		record.TakenBeforeInteraction = correlation.BeforeInteraction
		record.TakenAfterInteraction = correlation.AfterInteraction
	}

	if err := s.storage.InsertAccountSnapshot(record); err != nil {
		return err
	}

	slog.Info("account snapshot taken", "scope", s.scope, "address", address,
		"fungible", len(record.FungibleTokens), "nonFungible", len(record.NonFungibleTokens))
	return nil
}

func reduceFungible(tokens []types.FungibleTokenOfAccount) []types.FungibleAmount {
	reduced := make([]types.FungibleAmount, len(tokens))
	for i, token := range tokens {
		reduced[i] = types.FungibleAmount{Identifier: token.Identifier, Balance: token.Balance}
	}
	return reduced
}

func reduceNonFungible(tokens []types.NonFungibleTokenOfAccount) []types.NonFungibleItem {
	reduced := make([]types.NonFungibleItem, len(tokens))
	for i, token := range tokens {
		reduced[i] = types.NonFungibleItem{Identifier: token.Identifier, Nonce: token.Nonce}
	}
	return reduced
}
