// File: resize.go
// Up-scale/down-scale step around the BD filter (spec.md §4.7's original
// "rescale by scale, cluster, rescale back to image shape" two-step,
// preserved from segmentation.py's rgb_segmentation/cell_segmentation
// default scale=2: clustering a larger image is more accurate, and the
// resulting mask is resized back down to the source resolution).
//
// golang.org/x/image/draw has no direct []float64-plane API, so grayImage
// adapts a float64 grid to image.Image at 16-bit depth; draw.CatmullRom
// approximates skimage's anti-aliased rescale, draw.BiLinear approximates
// its reflect-mode resize back down.
package segment

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// bdScale is the up-scaling factor applied to the composite stack before
// k-means clustering.
const bdScale = 2.0

// grayImage adapts a row-major [0,1] float64 plane to image.Image at
// 16-bit grayscale depth, the precision draw's scalers operate at.
type grayImage struct {
	rows, cols int
	data       []float64
}

func (g *grayImage) ColorModel() color.Model { return color.Gray16Model }
func (g *grayImage) Bounds() image.Rectangle { return image.Rect(0, 0, g.cols, g.rows) }
func (g *grayImage) At(x, y int) color.Color {
	v := g.data[y*g.cols+x]
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return color.Gray16{Y: uint16(v * 65535)}
}

// scalePlane resizes a row-major [0,1] float64 plane from (rows,cols) to
// (outRows,outCols) using scaler.
func scalePlane(data []float64, rows, cols, outRows, outCols int, scaler draw.Interpolator) []float64 {
	src := &grayImage{rows: rows, cols: cols, data: data}
	dst := image.NewGray16(image.Rect(0, 0, outCols, outRows))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out := make([]float64, outRows*outCols)
	for y := 0; y < outRows; y++ {
		for x := 0; x < outCols; x++ {
			out[y*outCols+x] = float64(dst.Gray16At(x, y).Y) / 65535
		}
	}
	return out
}

// upscaleChannels scales three composite-stack channels up by bdScale, for
// more accurate k-means clustering, returning the new dimensions.
func upscaleChannels(channels [3][]float64, rows, cols int) (out [3][]float64, outRows, outCols int) {
	outRows = int(float64(rows)*bdScale + 0.5)
	outCols = int(float64(cols)*bdScale + 0.5)
	for i, ch := range channels {
		out[i] = scalePlane(ch, rows, cols, outRows, outCols, draw.CatmullRom)
	}
	return out, outRows, outCols
}

// downscaleMask resizes a cluster-label mask back down from
// (inRows,inCols) to the source (rows,cols), re-binarizing at 0.5.
func downscaleMask(m *Mask, inRows, inCols, rows, cols int) *Mask {
	plane := make([]float64, len(m.Data))
	for i, v := range m.Data {
		if v {
			plane[i] = 1
		}
	}
	resized := scalePlane(plane, inRows, inCols, rows, cols, draw.BiLinear)

	out := NewMask(rows, cols)
	for i, v := range resized {
		out.Data[i] = v >= 0.5
	}
	return out
}
