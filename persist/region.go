// File: region.go
// Run-length-encoded region JSON for `<stem>_fibre_segment.json` and
// `<stem>_cell_segment.json` (spec.md §6): bbox + RLE mask, intensity
// stored densely since RLE only pays off for the binary mask.
package persist

import "github.com/fibrenet/pyfibre-go/model"

// rleRegion is the on-disk shape of one region entry.
type rleRegion struct {
	MinRow    int       `json:"min_row"`
	MinCol    int       `json:"min_col"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	MaskRuns  []int     `json:"mask_runs"` // alternating false/true run lengths, starting false
	Intensity []float64 `json:"intensity"`
}

// EncodeRegion converts a model.Region to its RLE on-disk form.
func EncodeRegion(r model.Region) rleRegion {
	return rleRegion{
		MinRow: r.MinRow, MinCol: r.MinCol,
		Rows: r.Rows, Cols: r.Cols,
		MaskRuns:  runLengthEncode(r.Mask),
		Intensity: append([]float64(nil), r.Intensity...),
	}
}

// DecodeRegion reconstructs a model.Region from its RLE on-disk form.
func DecodeRegion(rr rleRegion) model.Region {
	return model.Region{
		MinRow: rr.MinRow, MinCol: rr.MinCol,
		Rows: rr.Rows, Cols: rr.Cols,
		Mask:      runLengthDecode(rr.MaskRuns, rr.Rows*rr.Cols),
		Intensity: append([]float64(nil), rr.Intensity...),
	}
}

// runLengthEncode returns alternating run lengths of mask, always starting
// with a (possibly zero-length) run of false.
func runLengthEncode(mask []bool) []int {
	var runs []int
	cur := false
	count := 0
	for _, v := range mask {
		if v == cur {
			count++
			continue
		}
		runs = append(runs, count)
		cur = v
		count = 1
	}
	runs = append(runs, count)
	return runs
}

// runLengthDecode reconstructs a mask of the given length from alternating
// run lengths starting with false.
func runLengthDecode(runs []int, n int) []bool {
	if n == 0 {
		return nil
	}
	mask := make([]bool, n)
	idx := 0
	cur := false
	for _, run := range runs {
		for i := 0; i < run && idx < n; i++ {
			mask[idx] = cur
			idx++
		}
		cur = !cur
	}
	return mask
}
