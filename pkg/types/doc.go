// Package types defines the record types, session configuration, the network
// provider interface, and standard errors for the snippets test harness.
//
// Records are partitioned by scope: an opaque string naming one test session's
// namespace inside a shared store file. The Storage interface is the single
// source of truth for everything a test run accumulates; callers only ever see
// hydrated records, never raw rows.
package types
