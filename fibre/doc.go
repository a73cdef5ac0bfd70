// Package fibre implements FibreAssigner (spec.md §4.6): decomposition of a
// connected subgraph into maximally-linear fibre chains.
//
// Endpoint ranking runs a Dijkstra shortest-path search on edge `r`, adapted
// from the teacher's dijkstra package (lazy decrease-key, min-heap over
// container/heap) to operate directly on model.Graph's int ids and float64
// weights instead of the teacher's string-keyed core.Graph.
package fibre
