// Package metrics implements Metrics (spec.md §4.8): per-region texture and
// shape descriptors, per-network connectivity figures, and per-fibre
// waviness/cross-link statistics.
package metrics
