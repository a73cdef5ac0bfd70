// File: hu.go
// The first seven Hu invariant moments of a region's binary mask
// (spec.md §4.8), a classical shape descriptor. No pack library computes
// these; implemented on math/stdlib.
package metrics

import "math"

// HuMoments computes the first seven scale/rotation/translation-invariant
// Hu moments of a rows x cols binary mask.
func HuMoments(mask []bool, rows, cols int) [7]float64 {
	m00, m10, m01 := rawMoment(mask, rows, cols, 0, 0), rawMoment(mask, rows, cols, 1, 0), rawMoment(mask, rows, cols, 0, 1)
	if m00 == 0 {
		return [7]float64{}
	}
	xBar, yBar := m10/m00, m01/m00

	mu := func(p, q int) float64 { return centralMoment(mask, rows, cols, p, q, xBar, yBar) }
	nu := func(p, q int) float64 {
		gamma := float64(p+q)/2 + 1
		return mu(p, q) / math.Pow(m00, gamma)
	}

	n20, n02, n11 := nu(2, 0), nu(0, 2), nu(1, 1)
	n30, n03, n21, n12 := nu(3, 0), nu(0, 3), nu(2, 1), nu(1, 2)

	h1 := n20 + n02
	h2 := (n20-n02)*(n20-n02) + 4*n11*n11
	h3 := (n30-3*n12)*(n30-3*n12) + (3*n21-n03)*(3*n21-n03)
	h4 := (n30+n12)*(n30+n12) + (n21+n03)*(n21+n03)
	h5 := (n30-3*n12)*(n30+n12)*((n30+n12)*(n30+n12)-3*(n21+n03)*(n21+n03)) +
		(3*n21-n03)*(n21+n03)*(3*(n30+n12)*(n30+n12)-(n21+n03)*(n21+n03))
	h6 := (n20-n02)*((n30+n12)*(n30+n12)-(n21+n03)*(n21+n03)) + 4*n11*(n30+n12)*(n21+n03)
	h7 := (3*n21-n03)*(n30+n12)*((n30+n12)*(n30+n12)-3*(n21+n03)*(n21+n03)) -
		(n30-3*n12)*(n21+n03)*(3*(n30+n12)*(n30+n12)-(n21+n03)*(n21+n03))

	return [7]float64{h1, h2, h3, h4, h5, h6, h7}
}

func rawMoment(mask []bool, rows, cols, p, q int) float64 {
	var sum float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !mask[r*cols+c] {
				continue
			}
			sum += math.Pow(float64(r), float64(p)) * math.Pow(float64(c), float64(q))
		}
	}
	return sum
}

func centralMoment(mask []bool, rows, cols, p, q int, rBar, cBar float64) float64 {
	var sum float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !mask[r*cols+c] {
				continue
			}
			sum += math.Pow(float64(r)-rBar, float64(p)) * math.Pow(float64(c)-cBar, float64(q))
		}
	}
	return sum
}
