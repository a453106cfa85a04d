// Breadcrumb operations: named, latest-value-wins facts within a scope.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/snippets/pkg/types"
)

// UpsertBreadcrumb inserts the breadcrumb, or replaces the payload and type
// in place when (scope, name) already exists. The ON CONFLICT clause makes
// the upsert a single atomic statement, so there is no lookup-then-write
// window even if a caller retries concurrently.
func (s *Store) UpsertBreadcrumb(scope, name, breadcrumbType string, payload any) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	serialized, err := serializeItem(payload)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO breadcrumb (scope, name, type, payload) VALUES (?, ?, ?, ?)
         ON CONFLICT (scope, name) DO UPDATE SET type = excluded.type, payload = excluded.payload`,
		scope, name, breadcrumbType, serialized,
	)
	if err != nil {
		return fmt.Errorf("upserting breadcrumb %s: %w", name, err)
	}
	return nil
}

// GetBreadcrumb returns the breadcrumb named (scope, name).
// Returns ErrBreadcrumbNotFound when no such breadcrumb was ever written.
func (s *Store) GetBreadcrumb(scope, name string) (*types.BreadcrumbRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT id, correlation_tag, scope, name, type, payload FROM breadcrumb WHERE scope = ? AND name = ?",
		scope, name,
	)
	record, err := hydrateBreadcrumb(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", types.ErrBreadcrumbNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("getting breadcrumb %s: %w", name, err)
	}
	return record, nil
}

// ListBreadcrumbs returns all breadcrumbs in the scope. Order is
// store-defined; insertion order is not preserved across updates.
func (s *Store) ListBreadcrumbs(scope string) ([]*types.BreadcrumbRecord, error) {
	return s.listBreadcrumbs(
		"SELECT id, correlation_tag, scope, name, type, payload FROM breadcrumb WHERE scope = ? ORDER BY id",
		scope,
	)
}

// ListBreadcrumbsByType returns the breadcrumbs in the scope carrying the
// given type tag.
func (s *Store) ListBreadcrumbsByType(scope, breadcrumbType string) ([]*types.BreadcrumbRecord, error) {
	return s.listBreadcrumbs(
		"SELECT id, correlation_tag, scope, name, type, payload FROM breadcrumb WHERE scope = ? AND type = ? ORDER BY id",
		scope, breadcrumbType,
	)
}

func (s *Store) listBreadcrumbs(query string, args ...any) ([]*types.BreadcrumbRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing breadcrumbs: %w", err)
	}
	defer rows.Close()

	records := []*types.BreadcrumbRecord{}
	for rows.Next() {
		record, err := hydrateBreadcrumb(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating breadcrumb: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating breadcrumbs: %w", err)
	}
	return records, nil
}

// hydrateBreadcrumb converts one row into a record, decoding the payload.
func hydrateBreadcrumb(scan func(...any) error) (*types.BreadcrumbRecord, error) {
	var record types.BreadcrumbRecord
	var payload string
	if err := scan(&record.ID, &record.CorrelationTag, &record.Scope, &record.Name, &record.Type, &payload); err != nil {
		return nil, err
	}
	value, err := deserializeItem(payload)
	if err != nil {
		return nil, err
	}
	record.Payload = value
	return &record, nil
}
