// Account snapshot operations: append-only captures of observed account
// state, optionally correlated to an interaction.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/snippets/pkg/types"
)

// InsertAccountSnapshot appends one account snapshot. Snapshots are never
// referenced by ID elsewhere, so none is returned.
func (s *Store) InsertAccountSnapshot(record *types.AccountSnapshotRecord) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	// Nil token lists serialize as empty lists, mirroring the payload codec's
	// empty-object sentinel.
	fungibleTokens := record.FungibleTokens
	if fungibleTokens == nil {
		fungibleTokens = []types.FungibleAmount{}
	}
	nonFungibleTokens := record.NonFungibleTokens
	if nonFungibleTokens == nil {
		nonFungibleTokens = []types.NonFungibleItem{}
	}

	fungible, err := serializeItem(fungibleTokens)
	if err != nil {
		return err
	}
	nonFungible, err := serializeItem(nonFungibleTokens)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO account_snapshot (correlation_tag, scope, address, nonce, balance,
            fungible_tokens, non_fungible_tokens, taken_before_interaction, taken_after_interaction)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.CorrelationTag, record.Scope, record.Address, record.Nonce, record.Balance,
		fungible, nonFungible, record.TakenBeforeInteraction, record.TakenAfterInteraction,
	)
	if err != nil {
		return fmt.Errorf("inserting account snapshot: %w", err)
	}
	return nil
}

// ListAccountSnapshots returns all snapshots in the scope, in insertion order.
func (s *Store) ListAccountSnapshots(scope string) ([]*types.AccountSnapshotRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT correlation_tag, scope, address, nonce, balance,
            fungible_tokens, non_fungible_tokens, taken_before_interaction, taken_after_interaction
         FROM account_snapshot WHERE scope = ? ORDER BY id`,
		scope,
	)
	if err != nil {
		return nil, fmt.Errorf("listing account snapshots: %w", err)
	}
	defer rows.Close()

	records := []*types.AccountSnapshotRecord{}
	for rows.Next() {
		record, err := hydrateAccountSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating account snapshot: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account snapshots: %w", err)
	}
	return records, nil
}

// hydrateAccountSnapshot converts one row into a record, decoding the token
// lists into their reduced shapes.
func hydrateAccountSnapshot(rows *sql.Rows) (*types.AccountSnapshotRecord, error) {
	var record types.AccountSnapshotRecord
	var fungible, nonFungible string
	var before, after sql.NullInt64
	err := rows.Scan(
		&record.CorrelationTag, &record.Scope, &record.Address, &record.Nonce, &record.Balance,
		&fungible, &nonFungible, &before, &after,
	)
	if err != nil {
		return nil, err
	}

	if err := deserializeInto(fungible, &record.FungibleTokens); err != nil {
		return nil, err
	}
	if err := deserializeInto(nonFungible, &record.NonFungibleTokens); err != nil {
		return nil, err
	}
	if before.Valid {
		record.TakenBeforeInteraction = &before.Int64
	}
	if after.Valid {
		record.TakenAfterInteraction = &after.Int64
	}
	return &record, nil
}
