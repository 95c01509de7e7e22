// Package observability provides spy implementations of the lendingstore
// observability interfaces for testing instrumentation without a backend.
package observability
