// File: equalize.go
// Contrast-limited adaptive histogram equalisation (spec.md §4.1 equalize).
package preprocess

import "math"

const (
	defaultTiles     = 8    // default kernel: 8x8 tiles
	defaultBins      = 256  // grey levels
	defaultClipLimit = 0.01 // fraction of pixels-per-tile above which a bin is clipped
)

// Equalize applies CLAHE with the default 8×8 tile kernel and a clip limit
// of 1% of the tile's pixel count per bin. Values are assumed to already be
// in [0,1] (post-Clip). A zero-dynamic-range image short-circuits to zero.
func Equalize(image []float64, rows, cols int) ([]float64, error) {
	for _, v := range image {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}
	if dynamicRange(image) == 0 {
		return make([]float64, len(image)), nil
	}

	tilesY, tilesX := defaultTiles, defaultTiles
	if rows < tilesY {
		tilesY = rows
	}
	if cols < tilesX {
		tilesX = cols
	}
	if tilesY < 1 {
		tilesY = 1
	}
	if tilesX < 1 {
		tilesX = 1
	}

	tileH := (rows + tilesY - 1) / tilesY
	tileW := (cols + tilesX - 1) / tilesX

	// Build a clipped-histogram CDF mapping for every tile.
	maps := make([][]float64, tilesY*tilesX)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			r0, r1 := ty*tileH, min(rows, (ty+1)*tileH)
			c0, c1 := tx*tileW, min(cols, (tx+1)*tileW)
			maps[ty*tilesX+tx] = tileCDF(image, rows, cols, r0, r1, c0, c1)
		}
	}

	out := make([]float64, len(image))
	for r := 0; r < rows; r++ {
		// Bilinear interpolation between the 4 nearest tile centers.
		fy := (float64(r)+0.5)/float64(tileH) - 0.5
		ty0 := int(math.Floor(fy))
		wy := fy - float64(ty0)
		ty1 := ty0 + 1
		ty0 = clampInt(ty0, 0, tilesY-1)
		ty1 = clampInt(ty1, 0, tilesY-1)

		for c := 0; c < cols; c++ {
			fx := (float64(c)+0.5)/float64(tileW) - 0.5
			tx0 := int(math.Floor(fx))
			wx := fx - float64(tx0)
			tx1 := tx0 + 1
			tx0 = clampInt(tx0, 0, tilesX-1)
			tx1 = clampInt(tx1, 0, tilesX-1)

			v := image[r*cols+c]
			bin := int(v * float64(defaultBins-1))
			bin = clampInt(bin, 0, defaultBins-1)

			v00 := maps[ty0*tilesX+tx0][bin]
			v01 := maps[ty0*tilesX+tx1][bin]
			v10 := maps[ty1*tilesX+tx0][bin]
			v11 := maps[ty1*tilesX+tx1][bin]

			top := v00*(1-wx) + v01*wx
			bot := v10*(1-wx) + v11*wx
			out[r*cols+c] = top*(1-wy) + bot*wy
		}
	}
	return out, nil
}

// tileCDF builds the clipped-histogram cumulative distribution for one
// tile, returning a [0,1]-valued lookup table of length defaultBins.
func tileCDF(image []float64, rows, cols, r0, r1, c0, c1 int) []float64 {
	hist := make([]float64, defaultBins)
	n := 0
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			bin := clampInt(int(image[r*cols+c]*float64(defaultBins-1)), 0, defaultBins-1)
			hist[bin]++
			n++
		}
	}
	if n == 0 {
		lut := make([]float64, defaultBins)
		for i := range lut {
			lut[i] = float64(i) / float64(defaultBins-1)
		}
		return lut
	}

	// Clip and redistribute excess mass uniformly across bins.
	limit := defaultClipLimit * float64(n)
	var excess float64
	for i, v := range hist {
		if v > limit {
			excess += v - limit
			hist[i] = limit
		}
	}
	redistribute := excess / float64(defaultBins)
	for i := range hist {
		hist[i] += redistribute
	}

	lut := make([]float64, defaultBins)
	var cum float64
	for i, v := range hist {
		cum += v
		lut[i] = cum / float64(n)
	}
	return lut
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
