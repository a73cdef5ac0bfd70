// File: gaussian.go
// Separable Gaussian smoothing and first/second derivative kernels shared
// by structure_tensor, hessian_tensor and nematic_tensor (spec.md §4.3).
package tensor

import "math"

// Grid is a row-major rows×cols float64 image, the common input/output
// shape for every tensor computation in this package.
type Grid struct {
	Rows, Cols int
	Data       []float64
}

// NewGrid allocates a zeroed rows×cols Grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// At returns the value at (r,c) with edge-replicated boundary handling.
func (g *Grid) At(r, c int) float64 {
	if r < 0 {
		r = 0
	}
	if r >= g.Rows {
		r = g.Rows - 1
	}
	if c < 0 {
		c = 0
	}
	if c >= g.Cols {
		c = g.Cols - 1
	}
	return g.Data[r*g.Cols+c]
}

// Set writes the value at (r,c).
func (g *Grid) Set(r, c int, v float64) { g.Data[r*g.Cols+c] = v }

// gaussianKernel1D returns a normalized 1-D Gaussian kernel of the given
// sigma, truncated at ±4*sigma (or at least 1 tap).
func gaussianKernel1D(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}
	radius := int(math.Ceil(4 * sigma))
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// SmoothGaussian applies a separable Gaussian blur of the given sigma.
func SmoothGaussian(g *Grid, sigma float64) *Grid {
	kernel := gaussianKernel1D(sigma)
	radius := len(kernel) / 2

	tmp := NewGrid(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sum += kernel[k+radius] * g.At(r, c+k)
			}
			tmp.Set(r, c, sum)
		}
	}
	out := NewGrid(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sum += kernel[k+radius] * tmp.At(r+k, c)
			}
			out.Set(r, c, sum)
		}
	}
	return out
}

// gradients returns central-difference first derivatives (dRow, dCol).
func gradients(g *Grid) (dr, dc *Grid) {
	dr, dc = NewGrid(g.Rows, g.Cols), NewGrid(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			dr.Set(r, c, (g.At(r+1, c)-g.At(r-1, c))/2)
			dc.Set(r, c, (g.At(r, c+1)-g.At(r, c-1))/2)
		}
	}
	return dr, dc
}

// secondDerivatives returns the three distinct second-partials of g after
// smoothing at scale sigma: Hrr, Hrc, Hcc.
func secondDerivatives(g *Grid, sigma float64) (hrr, hrc, hcc *Grid) {
	smoothed := SmoothGaussian(g, sigma)
	dr, dc := gradients(smoothed)
	drr, drc := gradients(dr)
	_, dcc := gradients(dc)
	return drr, drc, dcc
}
