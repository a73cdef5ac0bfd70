// Package preprocess rescales, denoises and contrast-equalises a single
// image channel before filtering (spec.md §4.1).
//
// All three operations work on row-major float64 slices rather than
// image.Image: the upstream TIFF reader (an external collaborator, spec.md
// §6) already yields float channels in model.ImageStack, and keeping the
// hot path on flat slices avoids a conversion in and out of Go's image
// package per pixel.
package preprocess
