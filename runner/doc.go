// Package runner implements the concurrent per-image batch pipeline
// (spec.md §4.9, §5 Concurrency): a coarse-grained worker pool where each
// worker owns one image end to end (preprocess, extraction, segmentation,
// metrics) and reports completion/failure through a single event channel to
// a supervisor that assembles the global/fibre/cell tables.
//
// The ctx.Err() polling idiom between units of work is grounded on the
// teacher's flow.Dinic (ctx.Err() checked between BFS phases and between
// augmenting-path searches); the worker-per-slice dispatch with a buffered
// fan-in channel is grounded on _examples/js-arias-phygeo's
// infer/walk/concurrency.go pixel-likelihood worker pool.
package runner
