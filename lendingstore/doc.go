// Package lendingstore defines the persistence contracts of the lending
// backend: the transactional store interfaces consumed by the command and
// query handlers, the storage-level errors, the audit record DTO, and the
// dependency-free observability interfaces.
//
// The Postgres implementation lives in the postgresengine subpackage;
// OpenTelemetry implementations of the observability interfaces live in the
// oteladapters subpackage (a nested module, so the root module carries no
// otel dependency).
package lendingstore
