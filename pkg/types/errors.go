package types

import "errors"

// Session construction errors.
var (
	ErrSessionConfigNotFound = errors.New("session config file not found")
	ErrBadSessionConfig      = errors.New("bad session config")
)

// Storage errors.
var (
	ErrStoreOpen          = errors.New("cannot open session store")
	ErrStoreClosed        = errors.New("session store is closed")
	ErrBreadcrumbNotFound = errors.New("breadcrumb not found")
	ErrNotFound           = errors.New("record not found")
)

// Network interaction errors. Failures coming from the chain itself are not
// interpreted here; they pass through to the caller unchanged.
var (
	ErrAwaitTimeout           = errors.New("transaction completion wait timed out")
	ErrNetworkConfigNotSynced = errors.New("network config not synced")
)
