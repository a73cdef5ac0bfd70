// File: maxima.go
// Nucleation seeding (spec.md §4.4): local maxima with connectivity
// nuc_radius and value >= nuc_thresh, reduced by greedy distance filtering.
package network

import (
	"sort"

	"github.com/fibrenet/pyfibre-go/model"
)

// localMaximum reports whether (r,c) is >= every pixel within a disk of the
// given radius (offsets with dr²+dc² <= radius²), approximating skimage's
// local_maxima with a disk-shaped connectivity of that radius.
func localMaximum(image []float64, rows, cols, r, c, radius int) bool {
	v := image[r*cols+c]
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if dr*dr+dc*dc > radius*radius {
				continue
			}
			nr, nc := r+dr, c+dc
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if image[nr*cols+nc] > v {
				return false
			}
		}
	}
	return true
}

// nucleationCandidate pairs a candidate nucleation coordinate with its
// tubeness value, for descending-intensity sorting.
type nucleationCandidate struct {
	XY    model.Vec2
	Value float64
}

// NucleationPoints finds local maxima of image (the tubeness map) with
// connectivity nucRadius and value >= nucThresh, then greedily reduces
// co-located maxima: sorted descending by intensity, a maximum survives
// only if no previously-kept maximum lies within rThresh pixels.
func NucleationPoints(image []float64, rows, cols int, nucRadius int, nucThresh, rThresh float64) []model.Vec2 {
	var candidates []nucleationCandidate
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := image[r*cols+c]
			if v < nucThresh {
				continue
			}
			if localMaximum(image, rows, cols, r, c, nucRadius) {
				candidates = append(candidates, nucleationCandidate{
					XY:    model.Vec2{Row: float64(r), Col: float64(c)},
					Value: v,
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Value > candidates[j].Value
	})

	var kept []model.Vec2
	for _, cand := range candidates {
		ok := true
		for _, k := range kept {
			if cand.XY.Dist(k) < rThresh {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, cand.XY)
		}
	}
	return kept
}
