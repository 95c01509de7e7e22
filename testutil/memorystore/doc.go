// Package memorystore provides an in-memory lendingstore.TxRunner test double.
//
// It keeps the whole store state in maps guarded by one mutex and gives each
// transaction a deep copy of that state, so a failed transaction really rolls
// back and handler tests can assert atomicity without a database.
package memorystore
