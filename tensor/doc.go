// Package tensor computes per-pixel structure, hessian and nematic 2×2
// tensors and their eigen-summary (anisotropy, angle, energy) — spec.md
// §4.3. Every tensor is built from Gaussian-smoothed derivatives at a
// caller-supplied scale sigma; Gaussian smoothing itself lives in
// gaussian.go since structure/hessian/nematic all need it.
package tensor
