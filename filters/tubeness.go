// File: tubeness.go
// Frangi-style ridge-response filter (spec.md §4.2 tubeness): at every
// pixel, compute the Hessian at scale sigma; let lambda1<=lambda2 be its
// eigenvalues; the response is max(0,-lambda2) when lambda2<0, else 0.
package filters

import (
	"math"

	"github.com/fibrenet/pyfibre-go/tensor"
)

// Tubeness returns a non-negative ridge-response map for a rows×cols
// row-major image at the given scale sigma.
func Tubeness(image []float64, rows, cols int, sigma float64) []float64 {
	grid := &tensor.Grid{Rows: rows, Cols: cols, Data: image}
	h := tensor.HessianTensor(grid, sigma)

	out := make([]float64, rows*cols)
	for i := range out {
		hxx, hxy, hyy := h.T00[i], h.T01[i], h.T11[i]
		l1, l2 := symmetricEigenvalues(hxx, hxy, hyy)
		if l1 > l2 {
			l1, l2 = l2, l1
		}
		if l2 < 0 {
			out[i] = -l2
		}
	}
	return out
}

// symmetricEigenvalues returns the two eigenvalues of [[a,b],[b,d]] via the
// closed-form quadratic formula.
func symmetricEigenvalues(a, b, d float64) (l1, l2 float64) {
	trace := a + d
	diff := a - d
	disc := math.Sqrt(diff*diff + 4*b*b)
	return (trace - disc) / 2, (trace + disc) / 2
}
