// File: hysteresis.go
// Two-threshold hysteresis mask (spec.md §4.2 hysteresis): high =
// alpha*Otsu(image); low = 0.5*high; pixels above high seed the mask,
// pixels above low connected (8-connectivity) to a seed join it.
//
// Otsu's threshold selection follows the textbook between-class-variance
// maximization; grounded on the corpus's own multi-level-threshold
// processors (other_examples/...otsu2d-processor.go), adapted here to the
// single-level case spec.md calls for.
package filters

const otsuBins = 256

// Otsu returns the image-value threshold maximizing inter-class variance
// over a 256-bin histogram of image, which is assumed to lie in [0,1].
func Otsu(image []float64) float64 {
	var lo, hi float64 = 0, 1
	for _, v := range image {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		return lo
	}

	hist := make([]int, otsuBins)
	for _, v := range image {
		bin := int((v - lo) / span * float64(otsuBins-1))
		if bin < 0 {
			bin = 0
		}
		if bin >= otsuBins {
			bin = otsuBins - 1
		}
		hist[bin]++
	}

	total := len(image)
	var sumAll float64
	for i, c := range hist {
		sumAll += float64(i) * float64(c)
	}

	var sumB, wB float64
	var bestVar float64
	bestBin := 0
	for t := 0; t < otsuBins; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sumAll - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > bestVar {
			bestVar = between
			bestBin = t
		}
	}

	return lo + float64(bestBin+1)/float64(otsuBins-1)*span
}

// Hysteresis returns a boolean mask: pixels reachable (8-connected) from a
// seed (value >= alpha*Otsu(image)) through pixels with value >= 0.5*that
// high threshold.
func Hysteresis(image []float64, rows, cols int, alpha float64) []bool {
	high := alpha * Otsu(image)
	low := 0.5 * high

	mask := make([]bool, rows*cols)
	queue := make([]int, 0, rows*cols/4)
	for i, v := range image {
		if v >= high {
			mask[i] = true
			queue = append(queue, i)
		}
	}

	for len(queue) > 0 {
		idx := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		r, c := idx/cols, idx%cols
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				nr, nc := r+dr, c+dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				nidx := nr*cols + nc
				if mask[nidx] {
					continue
				}
				if image[nidx] >= low {
					mask[nidx] = true
					queue = append(queue, nidx)
				}
			}
		}
	}
	return mask
}
