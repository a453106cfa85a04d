package network

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukaforge/snippets/pkg/types"
)

// Watcher polling defaults. One round is ~6 seconds on the public networks,
// so 6s polling with a 10-minute ceiling mirrors the usual completion window.
const (
	DefaultPollingInterval = 6 * time.Second
	DefaultAwaitTimeout    = 10 * time.Minute
)

// TransactionWatcher blocks the calling goroutine until a transaction reaches
// a terminal status or the timeout elapses. There is no cancellation
// primitive besides the context; timeout expiry surfaces as ErrAwaitTimeout,
// never as a default value.
type TransactionWatcher struct {
	provider types.NetworkProvider
	interval time.Duration
	timeout  time.Duration
}

// NewTransactionWatcher creates a watcher over the given provider.
// Non-positive interval or timeout fall back to the defaults.
func NewTransactionWatcher(provider types.NetworkProvider, interval, timeout time.Duration) *TransactionWatcher {
	if interval <= 0 {
		interval = DefaultPollingInterval
	}
	if timeout <= 0 {
		timeout = DefaultAwaitTimeout
	}
	return &TransactionWatcher{provider: provider, interval: interval, timeout: timeout}
}

// AwaitCompleted polls the transaction until it reports a terminal status.
// Fetch errors are treated as transient (the transaction may not be indexed
// yet) and polling continues until the deadline.
func (w *TransactionWatcher) AwaitCompleted(ctx context.Context, hash string) (*types.TransactionOnNetwork, error) {
	deadline := time.NewTimer(w.timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tx, err := w.provider.GetTransaction(ctx, hash)
		if err != nil {
			slog.Debug("transaction not yet available", "hash", hash, "error", err)
		} else if tx.IsCompleted() {
			return tx, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, fmt.Errorf("%w: transaction %s after %s", types.ErrAwaitTimeout, hash, w.timeout)
		case <-ticker.C:
		}
	}
}
