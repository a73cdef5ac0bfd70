// File: pipeline.go
// Segment (spec.md §4.7 Segmenter): selects the shg-only or BD-filter
// pipeline by which channel roles are present, and emits filtered
// FibreSegment/CellSegment collections.
package segment

import (
	"math"

	"github.com/fibrenet/pyfibre-go/model"
	"github.com/fibrenet/pyfibre-go/preprocess"
	"github.com/fibrenet/pyfibre-go/tensor"
)

const (
	dilationRadius   = 8
	holeAreaLimit    = 200
	smoothSigma      = 0.25
	maskThreshold    = 0.5
	fibreMinArea     = 100
	fibreMinFrac     = 0.1
	cellMinAreaSHG   = 200
	cellMinFracSHG   = 0.001
	cellMinAreaBD    = 200
	cellMinFracBD    = 0.01
	cellSwapArea     = 250
	cellSwapFrac     = 0.01
	fibreSwapArea    = 150
	fibreSwapFrac    = 0.1
	fibreFilterHigh  = 2.0
	fibreFilterLow   = 0.25
	fibreFilterSigma = 0.5
)

// Segment builds a fibre binary and cell binary from network (the extracted
// fibre-network graph) and the channels present in stack, then extracts
// area/intensity-filtered FibreSegment and CellSegment collections.
func Segment(stack *model.ImageStack, network *model.Graph) ([]model.FibreSegment, []model.CellSegment, error) {
	rows, cols := stack.Rows, stack.Cols
	shg := stack.Channels[model.RoleSHG]

	raster := Rasterize(network, rows, cols)
	dilated := Dilate(raster, dilationRadius)
	filled := FillHoles(dilated, holeAreaLimit)

	var fibreMask, cellMask *Mask
	if stack.Has(model.RolePL) && stack.Has(model.RoleTrans) {
		var err error
		fibreFilter := weightedFibreFilter(filled, rows, cols)
		fibreMask, cellMask, err = bdPipeline(stack, fibreFilter, rows, cols)
		if err != nil {
			return nil, nil, err
		}
	} else {
		fibreMask, cellMask = shgPipeline(filled, rows, cols)
	}

	fibreMask = FillHoles(fibreMask, holeAreaLimit)
	cellMask = FillHoles(cellMask, holeAreaLimit)

	cellRef := shg
	cellMinArea, cellMinFrac := cellMinAreaSHG, cellMinFracSHG
	if stack.Has(model.RolePL) && stack.Has(model.RoleTrans) {
		cellRef = stack.Channels[model.RolePL]
		cellMinArea, cellMinFrac = cellMinAreaBD, cellMinFracBD
	}

	fibreRegions := filterRegions(Regions(fibreMask, shg), fibreMinArea, fibreMinFrac)
	cellRegions := filterRegions(Regions(cellMask, cellRef), cellMinArea, cellMinFrac)

	fibreSegs := make([]model.FibreSegment, len(fibreRegions))
	for i, r := range fibreRegions {
		fibreSegs[i] = model.FibreSegment{Region: r}
	}
	cellSegs := make([]model.CellSegment, len(cellRegions))
	for i, r := range cellRegions {
		cellSegs[i] = model.CellSegment{Region: r}
	}

	return fibreSegs, cellSegs, nil
}

// weightedFibreFilter produces a smoothed intensity field (high inside the
// rasterised, dilated, hole-filled network and low outside), used to weight
// the BD filter's SHG channel so clustering favours already-detected fibre
// pixels.
func weightedFibreFilter(filled *Mask, rows, cols int) *tensor.Grid {
	grid := tensor.NewGrid(rows, cols)
	for i, v := range filled.Data {
		if v {
			grid.Data[i] = fibreFilterHigh
		} else {
			grid.Data[i] = fibreFilterLow
		}
	}
	return tensor.SmoothGaussian(grid, fibreFilterSigma)
}

// shgPipeline implements spec.md §4.7's shg-only pipeline: Gaussian-smooth
// the filled network mask at sigma 0.25 and threshold at 0.5.
func shgPipeline(filled *Mask, rows, cols int) (fibreMask, cellMask *Mask) {
	grid := tensor.NewGrid(rows, cols)
	for i, v := range filled.Data {
		if v {
			grid.Data[i] = 1
		}
	}
	smoothed := tensor.SmoothGaussian(grid, smoothSigma)

	fibreMask = NewMask(rows, cols)
	for i, v := range smoothed.Data {
		fibreMask.Data[i] = v > maskThreshold
	}
	cellMask = fibreMask.Complement()
	return fibreMask, cellMask
}

// bdPipeline implements spec.md §4.7's shg+pl+trans pipeline: construct the
// composite stack, run the BD (k-means) filter, then reconcile with
// region_swap.
func bdPipeline(stack *model.ImageStack, fibreFilter *tensor.Grid, rows, cols int) (fibreMask, cellMask *Mask, err error) {
	shg := stack.Channels[model.RoleSHG]
	pl := stack.Channels[model.RolePL]
	trans := stack.Channels[model.RoleTrans]

	equalizedTrans, err := preprocess.Equalize(trans, rows, cols)
	if err != nil {
		return nil, nil, err
	}

	n := rows * cols
	chA := make([]float64, n)
	chB := make([]float64, n)
	for i := 0; i < n; i++ {
		chA[i] = shg[i] * fibreFilter.Data[i]
		chB[i] = math.Sqrt(pl[i] * trans[i])
	}

	upscaled, upRows, upCols := upscaleChannels([3][]float64{chA, chB, equalizedTrans}, rows, cols)
	upscaledMask, err := bdFilter(upscaled, upRows, upCols)
	if err != nil {
		return nil, nil, err
	}
	cellMask = downscaleMask(upscaledMask, upRows, upCols, rows, cols)
	fibreMask = cellMask.Complement()

	regionSwap(cellMask, fibreMask, shg, pl, cellSwapArea, cellSwapFrac, fibreSwapArea, fibreSwapFrac)
	return fibreMask, cellMask, nil
}

// filterRegions keeps only regions with area >= minArea and mean intensity
// >= minFrac (spec.md §4.7's "minimum mean-intensity fraction of
// region-area"; images are normalised to [0,1] by preprocess, so a mean
// intensity fraction is directly comparable to the raw mean).
func filterRegions(regions []model.Region, minArea int, minFrac float64) []model.Region {
	var out []model.Region
	for _, r := range regions {
		area := r.Area()
		if area < minArea {
			continue
		}
		var sum float64
		for _, v := range r.Intensity {
			sum += v
		}
		if area > 0 && sum/float64(area) < minFrac {
			continue
		}
		out = append(out, r)
	}
	return out
}
