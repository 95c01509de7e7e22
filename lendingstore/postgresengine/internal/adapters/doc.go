// Package adapters abstracts the supported database connection types
// (pgxpool, database/sql, sqlx) and their transactions behind small
// interfaces so the engine can build and execute SQL without knowing
// which driver is underneath.
package adapters
