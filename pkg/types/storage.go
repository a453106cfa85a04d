package types

// Storage is the persistent, scoped state store backing a test session.
// A store is owned by exactly one session process for its lifetime; writes are
// not coordinated across processes.
//
// Breadcrumbs are latest-value-wins by (scope, name). Interactions, account
// snapshots, and events are append-only; an interaction's output is attached
// exactly once, after confirmation. Scoped listings are snapshot-consistent as
// of the call and ordered by store-assigned ID.
type Storage interface {
	// UpsertBreadcrumb inserts or replaces the breadcrumb named (scope, name)
	// in a single atomic statement. Idempotent under retry.
	UpsertBreadcrumb(scope, name, breadcrumbType string, payload any) error

	// GetBreadcrumb returns the breadcrumb named (scope, name).
	// Returns ErrBreadcrumbNotFound if absent.
	GetBreadcrumb(scope, name string) (*BreadcrumbRecord, error)

	// ListBreadcrumbs returns all breadcrumbs in the scope.
	ListBreadcrumbs(scope string) ([]*BreadcrumbRecord, error)

	// ListBreadcrumbsByType returns the breadcrumbs in the scope with the
	// given type tag.
	ListBreadcrumbsByType(scope, breadcrumbType string) ([]*BreadcrumbRecord, error)

	// InsertInteraction appends an interaction (output ignored) and returns
	// the store-assigned ID.
	InsertInteraction(record *InteractionRecord) (int64, error)

	// SetInteractionOutput attaches the parsed output to exactly one
	// interaction. Returns ErrNotFound if the ID does not exist.
	SetInteractionOutput(id int64, output any) error

	// ListInteractions returns all interactions in the scope, by ID.
	ListInteractions(scope string) ([]*InteractionRecord, error)

	// InsertAccountSnapshot appends an account snapshot.
	InsertAccountSnapshot(record *AccountSnapshotRecord) error

	// ListAccountSnapshots returns all snapshots in the scope, by insertion.
	ListAccountSnapshots(scope string) ([]*AccountSnapshotRecord, error)

	// InsertEvent appends an event log entry.
	InsertEvent(record *EventRecord) error

	// ListEvents returns all events in the scope, by insertion.
	ListEvents(scope string) ([]*EventRecord, error)

	// Close releases the backing resource. Further calls return ErrStoreClosed.
	Close() error

	// Destroy closes the store and irreversibly deletes the backing file.
	Destroy() error
}
