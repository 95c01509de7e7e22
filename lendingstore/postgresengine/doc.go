// Package postgresengine implements the lendingstore contracts on PostgreSQL.
//
// All SQL is built with goqu (postgres dialect) and executed as parameterized
// statements through an adapter layer that supports pgxpool, database/sql and
// sqlx connections. Every operation runs inside a transaction opened by
// WithinTx; serialization failures and deadlocks are mapped to
// lendingstore.ErrConcurrencyConflict so callers can retry.
package postgresengine
