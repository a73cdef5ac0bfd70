// Package segment implements Segmenter (spec.md §4.7): build fibre/cell
// binary masks from the network plus a k-means BD (blue-dominant) filter,
// then reconcile the two masks by region-swap.
//
// Mask rasterization and connected-component region extraction are adapted
// from the teacher's gridgraph package (BFS-based island detection over a
// 2-D grid of values), generalized from gridgraph's integer land-value
// grid to a binary fibre/cell mask over image coordinates.
package segment
