// File: regionswap.go
// region_swap reconciliation between fibre and cell masks (spec.md §4.7),
// grounded on
// _examples/original_source/pyfibre/model/tools/utilities.py's
// region_swap: a cell region with enough SHG signal is fibre-like, and
// symmetrically a fibre region with enough PL signal is cell-like.
package segment

// regionSwap reassigns pixels between cellMask and fibreMask: a cell
// region whose area is >= cellAreaThresh and whose mean value in
// cellRefImage exceeds cellFrac*globalMax(cellRefImage) is moved to
// fibreMask; symmetrically for fibreMask using fibreRefImage.
func regionSwap(cellMask, fibreMask *Mask, cellRefImage, fibreRefImage []float64, cellAreaThresh int, cellFrac float64, fibreAreaThresh int, fibreFrac float64) {
	swapInto(cellMask, fibreMask, cellRefImage, cellAreaThresh, cellFrac)
	swapInto(fibreMask, cellMask, fibreRefImage, fibreAreaThresh, fibreFrac)
}

// swapInto moves every region of `from` satisfying the area/intensity
// threshold onto `to`, clearing it from `from`.
func swapInto(from, to *Mask, refImage []float64, areaThresh int, frac float64) {
	globalMax := 0.0
	for _, v := range refImage {
		if v > globalMax {
			globalMax = v
		}
	}
	if globalMax == 0 {
		return
	}
	threshold := frac * globalMax

	regions := Regions(from, refImage)
	for _, r := range regions {
		if r.Area() < areaThresh {
			continue
		}
		var sum float64
		for _, v := range r.Intensity {
			sum += v
		}
		meanVal := sum / float64(r.Area())
		if meanVal <= threshold {
			continue
		}
		for lr := 0; lr < r.Rows; lr++ {
			for lc := 0; lc < r.Cols; lc++ {
				if !r.Mask[lr*r.Cols+lc] {
					continue
				}
				gr, gc := r.MinRow+lr, r.MinCol+lc
				from.set(gr, gc, false)
				to.set(gr, gc, true)
			}
		}
	}
}
