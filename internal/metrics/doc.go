// Package metrics provides lock-free counters for tickauth observability.
//
// Counters are stored in cache-line-padded uint64 slots and incremented
// atomically, so the login/register hot path never takes a lock or
// allocates to record a metric.
//
// # Architecture boundaries
//
// This package owns metric storage and snapshot creation. Export
// (Prometheus, OTel) lives in metrics/export/ and reads Snapshot values.
//
// # What this package must NOT do
//
//   - Perform I/O or network calls.
//   - Import the root package or any sibling package.
//   - Expose global metric registries.
package metrics
