// Package shell wires the functional core to the outside world: it runs
// commands against the lending store with retry on concurrency conflicts,
// serializes domain events into audit records, and reports handler outcomes.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
