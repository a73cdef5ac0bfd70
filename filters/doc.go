// Package filters turns a denoised image into a ridge-enhanced scalar map
// (Tubeness) and a binary mask from it (Hysteresis) — spec.md §4.2.
package filters
