// Package persist implements the spec.md §6 on-disk artifact formats: the
// node-link graph JSON (round-trip-exact), run-length-encoded region JSON,
// and tabular metric rows. This is the only package that knows about file
// formats — model, network, segment and metrics stay free of serialization
// concerns.
//
// The node-link schema is adapted from the teacher's converters package
// (two-way adapters between core.Graph and external graph representations,
// gonum/graph among them) generalized from an in-memory graph-library
// adapter to an on-disk JSON adapter for model.Graph.
package persist
