package types

// InteractionRecord is an append-only record of one chain transaction
// performed during a session. Output is absent at insert time and attached
// exactly once after the transaction is confirmed and parsed; every other
// field is immutable once inserted.
type InteractionRecord struct {
	ID              int64  // Store-assigned, monotonically increasing.
	CorrelationTag  string
	Scope           string
	Action          string // e.g. "deploy", "add".
	UserAddress     string
	ContractAddress string
	TransactionHash string
	Timestamp       string // RFC 3339.
	Round           uint64
	Epoch           uint64
	BlockNonce      uint64
	HyperblockNonce uint64
	Input           any // Serialized arguments.
	Transfers       any // Serialized value/token transfers.
	Output          any // Nil until SetInteractionOutput.
}
