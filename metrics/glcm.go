// File: glcm.go
// Grey-Level Co-occurrence Matrix texture features (spec.md §4.8): 2
// distances x 4 angles, 256 grey levels, symmetric and normalised, with
// angle-averaged derived statistics. No GLCM implementation exists
// anywhere in the retrieved pack, so this is a justified stdlib
// implementation (math/sort only).
package metrics

import "math"

const glcmLevels = 256

var glcmDistances = [2]int{1, 2}

// glcmOffsets are the four angle offsets (0, pi/4, pi/2, 3pi/4) expressed
// as (dRow, dCol) unit steps, paired with each distance at use time.
var glcmOffsets = [4][2]int{{0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// GLCMFeatures are the angle-averaged texture statistics derived from the
// 2-distance x 4-angle co-occurrence matrices.
type GLCMFeatures struct {
	Contrast     float64
	Homogeneity  float64
	Dissimilarity float64
	Correlation  float64
	Energy       float64
	IDM          float64
	Variance     float64
	Cluster      float64
	Entropy      float64
}

// glcmQuantize maps [0,1]-normalised intensities to [0, glcmLevels) grey
// levels, restricted to the region's mask.
func glcmQuantize(intensity []float64, mask []bool) []int {
	levels := make([]int, len(intensity))
	for i, v := range intensity {
		if !mask[i] {
			levels[i] = -1
			continue
		}
		l := int(v * float64(glcmLevels-1))
		if l < 0 {
			l = 0
		}
		if l > glcmLevels-1 {
			l = glcmLevels - 1
		}
		levels[i] = l
	}
	return levels
}

// ComputeGLCM returns the angle-averaged GLCM texture features of a region
// whose intensity has been quantised onto a rows x cols grid (region-local
// coordinates), masked to its own pixels.
func ComputeGLCM(intensity []float64, mask []bool, rows, cols int) GLCMFeatures {
	levels := glcmQuantize(intensity, mask)

	var sums GLCMFeatures
	var count int
	for _, d := range glcmDistances {
		for _, off := range glcmOffsets {
			m := buildCooccurrence(levels, rows, cols, d*off[0], d*off[1])
			if m == nil {
				continue
			}
			f := deriveFeatures(m)
			sums.Contrast += f.Contrast
			sums.Homogeneity += f.Homogeneity
			sums.Dissimilarity += f.Dissimilarity
			sums.Correlation += f.Correlation
			sums.Energy += f.Energy
			sums.IDM += f.IDM
			sums.Variance += f.Variance
			sums.Cluster += f.Cluster
			sums.Entropy += f.Entropy
			count++
		}
	}
	if count == 0 {
		return GLCMFeatures{}
	}
	n := float64(count)
	return GLCMFeatures{
		Contrast: sums.Contrast / n, Homogeneity: sums.Homogeneity / n,
		Dissimilarity: sums.Dissimilarity / n, Correlation: sums.Correlation / n,
		Energy: sums.Energy / n, IDM: sums.IDM / n, Variance: sums.Variance / n,
		Cluster: sums.Cluster / n, Entropy: sums.Entropy / n,
	}
}

// buildCooccurrence accumulates a symmetric, normalised glcmLevels x
// glcmLevels co-occurrence matrix for the given (dRow, dCol) step,
// returning nil if no valid pixel pair exists.
func buildCooccurrence(levels []int, rows, cols, dRow, dCol int) [][]float64 {
	m := make([][]float64, glcmLevels)
	for i := range m {
		m[i] = make([]float64, glcmLevels)
	}
	var total float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a := levels[r*cols+c]
			if a < 0 {
				continue
			}
			nr, nc := r+dRow, c+dCol
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			b := levels[nr*cols+nc]
			if b < 0 {
				continue
			}
			m[a][b]++
			m[b][a]++
			total += 2
		}
	}
	if total == 0 {
		return nil
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] /= total
		}
	}
	return m
}

// deriveFeatures computes the standard Haralick texture statistics from one
// normalised co-occurrence matrix.
func deriveFeatures(m [][]float64) GLCMFeatures {
	n := len(m)
	var muI, muJ float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			muI += float64(i) * m[i][j]
			muJ += float64(j) * m[i][j]
		}
	}
	var sigmaI, sigmaJ float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sigmaI += (float64(i) - muI) * (float64(i) - muI) * m[i][j]
			sigmaJ += (float64(j) - muJ) * (float64(j) - muJ) * m[i][j]
		}
	}
	sigmaI = math.Sqrt(sigmaI)
	sigmaJ = math.Sqrt(sigmaJ)

	var f GLCMFeatures
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := m[i][j]
			if p == 0 {
				continue
			}
			d := float64(i - j)
			f.Contrast += d * d * p
			f.Homogeneity += p / (1 + d*d)
			f.Dissimilarity += math.Abs(d) * p
			f.Energy += p * p
			f.IDM += p / (1 + math.Abs(d))
			f.Variance += (float64(i) - muI) * (float64(i) - muI) * p
			s := float64(i) + float64(j) - muI - muJ
			f.Cluster += s * s * s * p
			f.Entropy -= p * math.Log(p)
			if sigmaI > 0 && sigmaJ > 0 {
				f.Correlation += (float64(i) - muI) * (float64(j) - muJ) * p / (sigmaI * sigmaJ)
			}
		}
	}
	return f
}
