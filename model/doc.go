// Package model defines the Node, Edge, Graph, Fibre, Region and ImageStack
// types shared by every analysis package (preprocess, filters, tensor,
// network, fibre, segment, metrics, runner, persist), plus the sentinel
// errors and ErrorKind taxonomy used to classify failures.
//
// Graph is an arena: nodes and edges are addressed by stable integer ids
// rather than pointers, so higher-level entities (Fibre, Region) can
// reference graph state with plain []int slices instead of cyclic pointer
// graphs. A Graph is born empty, grown by network.Extractor, then frozen;
// Region values derived from a frozen graph are never mutated after
// creation, and every metric is a pure function of these frozen entities.
package model
