// File: fourier.go
// fourier-SDI and angle-SDI (spec.md §4.8), grounded on
// gonum.org/v1/gonum/dsp/fourier's real-input FFT (no other FFT
// implementation is present in the retrieved pack).
package metrics

import (
	"math"
	"math/cmplx"

	"github.com/fibrenet/pyfibre-go/tensor"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FourierSDI returns mean(|FFT|)/max(|FFT|) of the flattened, row-major
// intensity sequence — the Spectrum Dispersion Index.
func FourierSDI(intensity []float64) float64 {
	n := len(intensity)
	if n == 0 {
		return 0
	}
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, intensity)

	var sum, max float64
	for _, c := range coeffs {
		mag := cmplx.Abs(c)
		sum += mag
		if mag > max {
			max = mag
		}
	}
	if max == 0 {
		return 0
	}
	return (sum / float64(len(coeffs))) / max
}

// AngleSDI computes the anisotropy-weighted dispersion of the nematic
// tensor's angle map over a region's intensity sub-image (spec.md §4.8).
func AngleSDI(intensity []float64, rows, cols int) float64 {
	if rows == 0 || cols == 0 {
		return 0
	}
	grid := &tensor.Grid{Rows: rows, Cols: cols, Data: intensity}
	field := tensor.NematicTensor(grid, 1.0)
	summaries := tensor.SummarizeField(field)

	var sumSin, sumCos, sumWeight float64
	for _, s := range summaries {
		theta := s.AngleDeg * math.Pi / 180
		sumSin += s.Anisotropy * math.Sin(2*theta)
		sumCos += s.Anisotropy * math.Cos(2*theta)
		sumWeight += s.Anisotropy
	}
	if sumWeight == 0 {
		return 0
	}
	r := math.Hypot(sumSin, sumCos) / sumWeight
	return 1 - r
}
