// Package network implements the modified FIRE (Fibre Image Recognition and
// Extraction) graph-growing algorithm (spec.md §4.4 NetworkExtractor) and
// its post-hoc simplification into a reduced graph (spec.md §4.5
// NetworkSimplifier).
//
// Extraction seeds nucleation points on a tubeness map, grows trajectories
// outward with merge/absorb/extend/advance rules, and terminates when no
// node is marked growing. Simplification then collapses degree-2 chains so
// graph-theoretic metrics operate on the reduced topology while fibre
// extraction (package fibre) still walks the full graph.
package network
