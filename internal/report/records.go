package report

import "github.com/dukaforge/snippets/pkg/types"

// JSONL export shapes. Kept separate from the store records so the export
// format stays stable regardless of internal field changes.

type breadcrumbJSONL struct {
	CorrelationTag string `json:"correlation_tag,omitempty"`
	Scope          string `json:"scope"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Payload        any    `json:"payload"`
}

type interactionJSONL struct {
	ID              int64  `json:"id"`
	CorrelationTag  string `json:"correlation_tag,omitempty"`
	Scope           string `json:"scope"`
	Action          string `json:"action"`
	UserAddress     string `json:"user_address,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
	Round           uint64 `json:"round,omitempty"`
	Epoch           uint64 `json:"epoch,omitempty"`
	BlockNonce      uint64 `json:"block_nonce,omitempty"`
	HyperblockNonce uint64 `json:"hyperblock_nonce,omitempty"`
	Input           any    `json:"input"`
	Transfers       any    `json:"transfers"`
	Output          any    `json:"output,omitempty"`
}

type snapshotJSONL struct {
	CorrelationTag         string                  `json:"correlation_tag,omitempty"`
	Scope                  string                  `json:"scope"`
	Address                string                  `json:"address"`
	Nonce                  uint64                  `json:"nonce"`
	Balance                string                  `json:"balance"`
	FungibleTokens         []types.FungibleAmount  `json:"fungible_tokens"`
	NonFungibleTokens      []types.NonFungibleItem `json:"non_fungible_tokens"`
	TakenBeforeInteraction *int64                  `json:"taken_before_interaction,omitempty"`
	TakenAfterInteraction  *int64                  `json:"taken_after_interaction,omitempty"`
}

type eventJSONL struct {
	CorrelationTag string `json:"correlation_tag,omitempty"`
	Scope          string `json:"scope"`
	Kind           string `json:"kind"`
	Summary        string `json:"summary,omitempty"`
	Payload        any    `json:"payload"`
	Interaction    *int64 `json:"interaction,omitempty"`
}

func breadcrumbJSONLRecords(records []*types.BreadcrumbRecord) []breadcrumbJSONL {
	out := make([]breadcrumbJSONL, len(records))
	for i, record := range records {
		out[i] = breadcrumbJSONL{
			CorrelationTag: record.CorrelationTag,
			Scope:          record.Scope,
			Name:           record.Name,
			Type:           record.Type,
			Payload:        record.Payload,
		}
	}
	return out
}

func interactionJSONLRecords(records []*types.InteractionRecord) []interactionJSONL {
	out := make([]interactionJSONL, len(records))
	for i, record := range records {
		out[i] = interactionJSONL{
			ID:              record.ID,
			CorrelationTag:  record.CorrelationTag,
			Scope:           record.Scope,
			Action:          record.Action,
			UserAddress:     record.UserAddress,
			ContractAddress: record.ContractAddress,
			TransactionHash: record.TransactionHash,
			Timestamp:       record.Timestamp,
			Round:           record.Round,
			Epoch:           record.Epoch,
			BlockNonce:      record.BlockNonce,
			HyperblockNonce: record.HyperblockNonce,
			Input:           record.Input,
			Transfers:       record.Transfers,
			Output:          record.Output,
		}
	}
	return out
}

func snapshotJSONLRecords(records []*types.AccountSnapshotRecord) []snapshotJSONL {
	out := make([]snapshotJSONL, len(records))
	for i, record := range records {
		out[i] = snapshotJSONL{
			CorrelationTag:         record.CorrelationTag,
			Scope:                  record.Scope,
			Address:                record.Address,
			Nonce:                  record.Nonce,
			Balance:                record.Balance,
			FungibleTokens:         record.FungibleTokens,
			NonFungibleTokens:      record.NonFungibleTokens,
			TakenBeforeInteraction: record.TakenBeforeInteraction,
			TakenAfterInteraction:  record.TakenAfterInteraction,
		}
	}
	return out
}

func eventJSONLRecords(records []*types.EventRecord) []eventJSONL {
	out := make([]eventJSONL, len(records))
	for i, record := range records {
		out[i] = eventJSONL{
			CorrelationTag: record.CorrelationTag,
			Scope:          record.Scope,
			Kind:           record.Kind,
			Summary:        record.Summary,
			Payload:        record.Payload,
			Interaction:    record.Interaction,
		}
	}
	return out
}
