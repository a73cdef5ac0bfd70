// File: ring.go
// Ring sampling around a center point, used by both nucleation's initial
// branches (radius r_thresh/2) and growth's per-step ring (radius 2) —
// spec.md §4.4.
package network

import (
	"math"

	"github.com/fibrenet/pyfibre-go/model"
)

// ringSamplesPerUnit controls the angular resolution of ring sampling: a
// ring of radius r is sampled at roughly 2*pi*r*ringSamplesPerUnit points,
// dense enough that 1-pixel-thick rings resolve distinct local maxima.
const ringSamplesPerUnit = 2.0

// branchPoint is one local-maximum candidate found on a ring: its
// coordinate, its vector from the ring center, and the vector's length.
type branchPoint struct {
	XY     model.Vec2
	Vector model.Vec2
	R      float64
}

// newBranches samples a ring of the given radius around center and returns
// every angular local maximum of image whose value is >= thresh.
func newBranches(image []float64, rows, cols int, center model.Vec2, radius, thresh float64) []branchPoint {
	if radius <= 0 {
		return nil
	}
	n := int(math.Ceil(2 * math.Pi * radius * ringSamplesPerUnit))
	if n < 8 {
		n = 8
	}

	vals := make([]float64, n)
	coords := make([]model.Vec2, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		row := center.Row + radius*math.Sin(theta)
		col := center.Col + radius*math.Cos(theta)
		coords[i] = model.Vec2{Row: row, Col: col}
		vals[i] = sampleBilinear(image, rows, cols, row, col)
	}

	var out []branchPoint
	for i := 0; i < n; i++ {
		if vals[i] < thresh {
			continue
		}
		prev := vals[(i-1+n)%n]
		next := vals[(i+1)%n]
		if vals[i] >= prev && vals[i] >= next {
			vec := coords[i].Sub(center)
			out = append(out, branchPoint{XY: coords[i], Vector: vec, R: vec.Norm()})
		}
	}
	return out
}

// sampleBilinear samples image (rows×cols, row-major) at fractional
// (row, col), clamping to the image bounds.
func sampleBilinear(image []float64, rows, cols int, row, col float64) float64 {
	if row < 0 {
		row = 0
	}
	if row > float64(rows-1) {
		row = float64(rows - 1)
	}
	if col < 0 {
		col = 0
	}
	if col > float64(cols-1) {
		col = float64(cols - 1)
	}
	r0, c0 := int(math.Floor(row)), int(math.Floor(col))
	r1, c1 := r0+1, c0+1
	if r1 > rows-1 {
		r1 = rows - 1
	}
	if c1 > cols-1 {
		c1 = cols - 1
	}
	fr, fc := row-float64(r0), col-float64(c0)

	v00 := image[r0*cols+c0]
	v01 := image[r0*cols+c1]
	v10 := image[r1*cols+c0]
	v11 := image[r1*cols+c1]
	top := v00*(1-fc) + v01*fc
	bot := v10*(1-fc) + v11*fc
	return top*(1-fr) + bot*fr
}
