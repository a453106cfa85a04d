package types

// Event kinds emitted by the session event log.
const (
	EventTransactionSent      = "transactionSent"
	EventTransactionCompleted = "transactionCompleted"
	EventContractDeployed     = "contractDeployed"
)

// EventRecord is an append-only free-form log entry. Never mutated or deleted.
// Interaction optionally references an interaction by its store-assigned ID;
// referential integrity is not enforced since interactions are never deleted.
type EventRecord struct {
	CorrelationTag string
	Scope          string
	Kind           string
	Summary        string
	Payload        any
	Interaction    *int64
}
