// Package core contains the pure domain model of the lending backend:
// entities, roles and capability checks, payment methods, due-date and
// fine policy, the error taxonomy, and the domain events recorded in the
// audit trail. Nothing in this package performs I/O.
package core
