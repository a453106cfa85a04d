package types

import "context"

// NetworkConfig holds the network parameters cached by a session after
// SyncNetworkConfig. Transactions cannot be built without it.
type NetworkConfig struct {
	ChainID        string
	GasPerDataByte uint64
	MinGasLimit    uint64
	MinGasPrice    uint64
	RoundDuration  uint64 // Milliseconds.
}

// AccountOnNetwork is the on-chain state of one account as reported by the
// network provider.
type AccountOnNetwork struct {
	Address string
	Nonce   uint64
	Balance string
}

// FungibleTokenOfAccount is one fungible token holding as reported by the
// network provider, before snapshot reduction.
type FungibleTokenOfAccount struct {
	Identifier string
	Name       string
	Balance    string
	Decimals   int
}

// NonFungibleTokenOfAccount is one non-fungible token holding as reported by
// the network provider, before snapshot reduction.
type NonFungibleTokenOfAccount struct {
	Identifier string
	Collection string
	Name       string
	Nonce      uint64
}

// Token is the reduced token descriptor saved and loaded through session
// breadcrumbs.
type Token struct {
	Identifier string `json:"identifier"`
	Decimals   int    `json:"decimals"`
}

// Transaction is a signed (or about-to-be-signed) transaction handed to the
// network provider for submission. Construction and ABI encoding happen in
// contract-specific interactors; this type is only transport.
type Transaction struct {
	Nonce     uint64
	Value     string
	Sender    string
	Receiver  string
	GasPrice  uint64
	GasLimit  uint64
	Data      []byte
	ChainID   string
	Version   int
	Signature []byte
}

// Terminal transaction statuses reported by the network.
const (
	TxStatusPending    = "pending"
	TxStatusSuccessful = "success"
	TxStatusFailed     = "fail"
	TxStatusInvalid    = "invalid"
)

// TransactionOnNetwork is the network's view of a submitted transaction.
type TransactionOnNetwork struct {
	Hash            string
	Status          string
	Sender          string
	Receiver        string
	Value           string
	Data            []byte
	Timestamp       int64
	Round           uint64
	Epoch           uint64
	BlockNonce      uint64
	HyperblockNonce uint64
}

// IsCompleted reports whether the transaction reached a terminal status.
func (t *TransactionOnNetwork) IsCompleted() bool {
	switch t.Status {
	case TxStatusSuccessful, TxStatusFailed, TxStatusInvalid:
		return true
	}
	return false
}

// ContractQuery is a read-only VM query against a deployed contract.
type ContractQuery struct {
	ContractAddress string
	FuncName        string
	Caller          string
	Value           string
	Args            [][]byte
}

// ContractQueryResponse is the VM's answer to a ContractQuery.
type ContractQueryResponse struct {
	ReturnCode    string
	ReturnMessage string
	ReturnData    [][]byte
}

// Signer signs transactions on behalf of a test user. Key handling and
// cryptography live entirely behind this interface.
type Signer interface {
	Sign(tx *Transaction) error
}

// NetworkProvider is the external chain-client capability consumed by the
// harness. The harness never constructs, signs, or encodes transactions
// itself; it submits what interactors build and reads back observed state.
type NetworkProvider interface {
	GetNetworkConfig(ctx context.Context) (*NetworkConfig, error)
	GetAccount(ctx context.Context, address string) (*AccountOnNetwork, error)
	GetFungibleTokensOfAccount(ctx context.Context, address string) ([]FungibleTokenOfAccount, error)
	GetNonFungibleTokensOfAccount(ctx context.Context, address string) ([]NonFungibleTokenOfAccount, error)
	SendTransaction(ctx context.Context, tx *Transaction) (string, error)
	QueryContract(ctx context.Context, query *ContractQuery) (*ContractQueryResponse, error)
	GetTransaction(ctx context.Context, hash string) (*TransactionOnNetwork, error)
}
