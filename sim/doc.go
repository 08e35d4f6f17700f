// Package sim provides the discrete-event simulation kernel for the
// call-center model: an M/M/c queue of callers served by a fixed pool of
// identical agents.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - customer.go: Customer lifecycle (arrived → queued → in_service → departed)
//   - event.go: Event types that drive the simulation (arrival, grant, departure)
//   - simulator.go: The event loop, clock, and drain/cutoff semantics
//
// # Determinism
//
// Each replication owns one VariateSource seeded from its SimulationKey and
// one EventQueue that orders events by (timestamp, scheduling order). Given
// the same Config and key, a replication is bit-for-bit reproducible.
//
// # Sub-packages
//   - sim/experiment/: replication runner and cross-replication aggregation
//   - sim/erlang/: closed-form Erlang C reference model
//   - sim/trace/: per-customer trace recording
package sim
