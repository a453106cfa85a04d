package network

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/snippets/pkg/types"
)

// scriptedProvider returns one canned GetTransaction answer per call, then
// repeats the last one. Only GetTransaction is exercised by the watcher.
type scriptedProvider struct {
	types.NetworkProvider
	answers []*types.TransactionOnNetwork
	errs    []error
	calls   int
}

func (p *scriptedProvider) GetTransaction(ctx context.Context, hash string) (*types.TransactionOnNetwork, error) {
	i := p.calls
	if i >= len(p.answers) {
		i = len(p.answers) - 1
	}
	p.calls++
	if p.errs != nil && p.errs[i] != nil {
		return nil, p.errs[i]
	}
	return p.answers[i], nil
}

func TestAwaitCompletedReturnsTerminalTransaction(t *testing.T) {
	provider := &scriptedProvider{
		answers: []*types.TransactionOnNetwork{
			{Hash: "cafe01", Status: types.TxStatusPending},
			{Hash: "cafe01", Status: types.TxStatusPending},
			{Hash: "cafe01", Status: types.TxStatusSuccessful, Round: 99},
		},
	}
	watcher := NewTransactionWatcher(provider, time.Millisecond, time.Second)

	tx, err := watcher.AwaitCompleted(context.Background(), "cafe01")
	require.NoError(t, err)
	assert.Equal(t, types.TxStatusSuccessful, tx.Status)
	assert.Equal(t, uint64(99), tx.Round)
	assert.GreaterOrEqual(t, provider.calls, 3)
}

func TestAwaitCompletedToleratesTransientFetchErrors(t *testing.T) {
	provider := &scriptedProvider{
		answers: []*types.TransactionOnNetwork{
			nil,
			{Hash: "cafe02", Status: types.TxStatusFailed},
		},
		errs: []error{errors.New("transaction not found"), nil},
	}
	watcher := NewTransactionWatcher(provider, time.Millisecond, time.Second)

	tx, err := watcher.AwaitCompleted(context.Background(), "cafe02")
	require.NoError(t, err)
	assert.Equal(t, types.TxStatusFailed, tx.Status)
}

func TestAwaitCompletedTimeout(t *testing.T) {
	provider := &scriptedProvider{
		answers: []*types.TransactionOnNetwork{{Hash: "cafe03", Status: types.TxStatusPending}},
	}
	watcher := NewTransactionWatcher(provider, time.Millisecond, 20*time.Millisecond)

	_, err := watcher.AwaitCompleted(context.Background(), "cafe03")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrAwaitTimeout)
}

func TestAwaitCompletedContextCancellation(t *testing.T) {
	provider := &scriptedProvider{
		answers: []*types.TransactionOnNetwork{{Hash: "cafe04", Status: types.TxStatusPending}},
	}
	watcher := NewTransactionWatcher(provider, 5*time.Millisecond, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := watcher.AwaitCompleted(ctx, "cafe04")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// An already-canceled context never reaches the provider.
	assert.Zero(t, provider.calls)
}
