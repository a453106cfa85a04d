// Interaction operations: the append-only transaction ledger. Rows are
// inserted before confirmation; the output column is filled in later, once,
// by store-assigned ID. Everything else is immutable after insert.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/snippets/pkg/types"
)

// InsertInteraction appends one interaction and returns the store-assigned,
// monotonically increasing ID. The record's Output field is ignored; output
// arrives later through SetInteractionOutput.
func (s *Store) InsertInteraction(record *types.InteractionRecord) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	input, err := serializeItem(record.Input)
	if err != nil {
		return 0, err
	}
	transfers, err := serializeItem(record.Transfers)
	if err != nil {
		return 0, err
	}

	result, err := db.Exec(
		`INSERT INTO interaction (correlation_tag, scope, action, user_address, contract_address,
            transaction_hash, timestamp, round, epoch, block_nonce, hyperblock_nonce, input, transfers, output)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		record.CorrelationTag, record.Scope, record.Action, record.UserAddress, record.ContractAddress,
		record.TransactionHash, record.Timestamp, record.Round, record.Epoch,
		record.BlockNonce, record.HyperblockNonce, input, transfers,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting interaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading interaction id: %w", err)
	}
	return id, nil
}

// SetInteractionOutput attaches the parsed transaction outcome to exactly one
// interaction. Returns ErrNotFound when the ID does not exist.
func (s *Store) SetInteractionOutput(id int64, output any) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	serialized, err := serializeItem(output)
	if err != nil {
		return err
	}

	result, err := db.Exec("UPDATE interaction SET output = ? WHERE id = ?", serialized, id)
	if err != nil {
		return fmt.Errorf("setting interaction output: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking interaction update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: interaction %d", types.ErrNotFound, id)
	}
	return nil
}

// ListInteractions returns all interactions in the scope, ordered by
// store-assigned ID, which is insertion order.
func (s *Store) ListInteractions(scope string) ([]*types.InteractionRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT id, correlation_tag, scope, action, user_address, contract_address,
            transaction_hash, timestamp, round, epoch, block_nonce, hyperblock_nonce, input, transfers, output
         FROM interaction WHERE scope = ? ORDER BY id`,
		scope,
	)
	if err != nil {
		return nil, fmt.Errorf("listing interactions: %w", err)
	}
	defer rows.Close()

	records := []*types.InteractionRecord{}
	for rows.Next() {
		record, err := hydrateInteraction(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating interaction: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interactions: %w", err)
	}
	return records, nil
}

// hydrateInteraction converts one row into a record. A NULL output column
// hydrates to a nil Output, marking a not-yet-confirmed interaction.
func hydrateInteraction(rows *sql.Rows) (*types.InteractionRecord, error) {
	var record types.InteractionRecord
	var input, transfers string
	var output sql.NullString
	err := rows.Scan(
		&record.ID, &record.CorrelationTag, &record.Scope, &record.Action,
		&record.UserAddress, &record.ContractAddress, &record.TransactionHash,
		&record.Timestamp, &record.Round, &record.Epoch, &record.BlockNonce,
		&record.HyperblockNonce, &input, &transfers, &output,
	)
	if err != nil {
		return nil, err
	}

	if record.Input, err = deserializeItem(input); err != nil {
		return nil, err
	}
	if record.Transfers, err = deserializeItem(transfers); err != nil {
		return nil, err
	}
	if output.Valid {
		if record.Output, err = deserializeItem(output.String); err != nil {
			return nil, err
		}
	}
	return &record, nil
}
