// Event operations: the append-only session event log.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/snippets/pkg/types"
)

// InsertEvent appends one event log entry.
func (s *Store) InsertEvent(record *types.EventRecord) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	payload, err := serializeItem(record.Payload)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT INTO event (correlation_tag, scope, kind, summary, payload, interaction) VALUES (?, ?, ?, ?, ?, ?)",
		record.CorrelationTag, record.Scope, record.Kind, record.Summary, payload, record.Interaction,
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// ListEvents returns all events in the scope, in insertion order.
func (s *Store) ListEvents(scope string) ([]*types.EventRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT correlation_tag, scope, kind, summary, payload, interaction FROM event WHERE scope = ? ORDER BY id",
		scope,
	)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	records := []*types.EventRecord{}
	for rows.Next() {
		var record types.EventRecord
		var payload string
		var interaction sql.NullInt64
		if err := rows.Scan(&record.CorrelationTag, &record.Scope, &record.Kind, &record.Summary, &payload, &interaction); err != nil {
			return nil, fmt.Errorf("hydrating event: %w", err)
		}
		if record.Payload, err = deserializeItem(payload); err != nil {
			return nil, err
		}
		if interaction.Valid {
			record.Interaction = &interaction.Int64
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return records, nil
}
