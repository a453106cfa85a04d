package session

import (
	"fmt"

	"github.com/dukaforge/snippets/pkg/types"
)

// EventLog appends lifecycle notifications to the session store. Entries are
// free-form and never mutated; interactors call the On* hooks around
// transaction submission and completion. Every entry is stamped with the
// run's correlation tag.
type EventLog struct {
	storage     types.Storage
	scope       string
	correlation string
}

// NewEventLog creates an event log writing into the given scope.
func NewEventLog(storage types.Storage, scope, correlation string) *EventLog {
	return &EventLog{storage: storage, scope: scope, correlation: correlation}
}

// OnTransactionSent records that a transaction was broadcast.
func (l *EventLog) OnTransactionSent(hash string, interaction *int64) error {
	return l.storage.InsertEvent(&types.EventRecord{
		CorrelationTag: l.correlation,
		Scope:          l.scope,
		Kind:           types.EventTransactionSent,
		Summary:        fmt.Sprintf("transaction %s sent", hash),
		Payload:        map[string]any{"hash": hash},
		Interaction:    interaction,
	})
}

// OnTransactionCompleted records that a transaction reached a terminal status.
func (l *EventLog) OnTransactionCompleted(tx *types.TransactionOnNetwork, interaction *int64) error {
	return l.storage.InsertEvent(&types.EventRecord{
		CorrelationTag: l.correlation,
		Scope:          l.scope,
		Kind:           types.EventTransactionCompleted,
		Summary:        fmt.Sprintf("transaction %s completed with status %s", tx.Hash, tx.Status),
		Payload: map[string]any{
			"hash":   tx.Hash,
			"status": tx.Status,
			"round":  tx.Round,
			"epoch":  tx.Epoch,
		},
		Interaction: interaction,
	})
}

// OnContractDeployed records a contract deployment broadcast, together with
// the deterministically computed contract address.
func (l *EventLog) OnContractDeployed(hash, contractAddress string) error {
	return l.storage.InsertEvent(&types.EventRecord{
		CorrelationTag: l.correlation,
		Scope:          l.scope,
		Kind:           types.EventContractDeployed,
		Summary:        fmt.Sprintf("contract %s deployment sent in transaction %s", contractAddress, hash),
		Payload:        map[string]any{"hash": hash, "contract": contractAddress},
	})
}
