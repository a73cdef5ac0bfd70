// Package pyfibre implements the collagen/extracellular-matrix analysis
// pipeline: load a multi-channel fluorescence micrograph, extract the
// fibre network, segment cell and fibre regions, and emit network, fibre
// and region metrics as graph and tabular artifacts.
//
// The pipeline is organized as a chain of single-purpose subpackages
// rather than one monolithic package, mirroring how a FIRE-style
// extraction is actually staged:
//
//	model/      — ImageStack, Graph, Region and the shared error taxonomy
//	preprocess/ — percentile clipping, non-local-means denoise, CLAHE equalize
//	tensor/     — Gaussian smoothing and the Hessian/structure-tensor grid
//	filters/    — tubeness ridge response and hysteresis thresholding
//	network/    — FIRE-style skeleton extraction into a Graph, and its simplification
//	fibre/      — fibre assignment and cross-link density
//	metrics/    — network, fibre and region (shape/GLCM/Hu) statistics
//	segment/    — fibre/cell binary segmentation (shg-only or BD k-means)
//	persist/    — node-link JSON, RLE region JSON and CSV artifact codecs
//	runner/     — per-image analysis and the concurrent batch runner
//	internal/linalg — dense eigendecomposition backing metrics/network.go
//
// A caller drives the whole pipeline through runner.Run, which dispatches
// one goroutine per worker's slice of images over runner.Config-tuned
// stages and reports
// progress and per-image failures over a single event channel.
package pyfibre
