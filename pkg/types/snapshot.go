package types

// FungibleAmount is the reduced form of a fungible token holding kept in an
// account snapshot: identifier and balance only, all other token metadata is
// deliberately dropped.
type FungibleAmount struct {
	Identifier string `json:"identifier"`
	Balance    string `json:"balance"`
}

// NonFungibleItem is the reduced form of a non-fungible token holding kept in
// an account snapshot: identifier and nonce only.
type NonFungibleItem struct {
	Identifier string `json:"identifier"`
	Nonce      uint64 `json:"nonce"`
}

// AccountSnapshotRecord is an append-only capture of one account's observed
// state at one point in time. Immutable once written. At most one of the
// before/after correlations is meaningful per snapshot; both may be nil for a
// standalone capture.
type AccountSnapshotRecord struct {
	CorrelationTag         string
	Scope                  string
	Address                string
	Nonce                  uint64
	Balance                string
	FungibleTokens         []FungibleAmount
	NonFungibleTokens      []NonFungibleItem
	TakenBeforeInteraction *int64 // Interaction ID, if taken right before one.
	TakenAfterInteraction  *int64 // Interaction ID, if taken right after one.
}
