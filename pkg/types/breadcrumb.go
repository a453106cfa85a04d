package types

// Well-known breadcrumb types. The type is a free-form tag; these are the
// values written by the Session convenience helpers.
const (
	BreadcrumbTypeAddress   = "address"
	BreadcrumbTypeToken     = "token"
	BreadcrumbTypeArbitrary = "breadcrumb"
)

// BreadcrumbRecord is a named, mutable, latest-value-wins fact within a scope.
// At most one live breadcrumb exists per (scope, name); writing again with the
// same name replaces the payload and type in place.
type BreadcrumbRecord struct {
	ID             int64  // Store-assigned row ID.
	CorrelationTag string // Optional free-form tag correlating related records.
	Scope          string // Session namespace.
	Name           string // Unique within the scope.
	Type           string // Free-form tag (address, token, breadcrumb, ...).
	Payload        any    // Decoded structured value; never nil after hydration.
}
