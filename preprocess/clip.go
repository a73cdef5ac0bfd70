// File: clip.go
// Percentile-clip rescaling (spec.md §4.1 clip).
package preprocess

import (
	"math"
	"sort"
)

// Clip rescales image so the pLow percentile maps to 0 and the pHigh
// percentile maps to 1; values outside are clamped. pLow/pHigh are in
// [0,100]. A zero-dynamic-range input (every finite pixel equal) returns an
// all-zero slice of the same length rather than dividing by zero.
//
// Complexity: O(n log n) for the percentile sort, O(n) for the rescale.
func Clip(image []float64, pLow, pHigh float64) ([]float64, error) {
	for _, v := range image {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}

	lo := percentile(image, pLow)
	hi := percentile(image, pHigh)

	out := make([]float64, len(image))
	if hi-lo == 0 {
		return out, nil
	}

	span := hi - lo
	for i, v := range image {
		x := (v - lo) / span
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
		out[i] = x
	}
	return out, nil
}

// percentile returns the linear-interpolated p-th percentile (0..100) of
// data, matching numpy.percentile's default ("linear") method.
func percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := (p / 100.0) * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
