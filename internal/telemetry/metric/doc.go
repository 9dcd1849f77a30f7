// Package metric provides Prometheus metrics for uacore.
//
// Metrics cover the configuration life cycle: snapshots loaded, reloads
// triggered by file changes, and validation failures. The registry is
// self-contained so tests and embedding processes can expose or inspect
// it without touching the global Prometheus state.
package metric
