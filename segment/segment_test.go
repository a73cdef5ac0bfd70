package segment_test

import (
	"testing"

	"github.com/fibrenet/pyfibre-go/model"
	"github.com/fibrenet/pyfibre-go/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightLineGraph(rows, cols int) *model.Graph {
	g := model.NewGraph()
	mid := rows / 2
	a := g.AddNode(model.Vec2{Row: float64(mid), Col: 5})
	b := g.AddNode(model.Vec2{Row: float64(mid), Col: float64(cols - 5)})
	_, _ = g.AddEdge(a, b, float64(cols-10))
	return g
}

func TestSegment_SHGOnly_MasksAreDisjoint(t *testing.T) {
	rows, cols := 60, 60
	stack := model.NewImageStack(rows, cols)
	shg := make([]float64, rows*cols)
	for i := range shg {
		shg[i] = 0.5
	}
	stack.Channels[model.RoleSHG] = shg

	g := straightLineGraph(rows, cols)
	fibreSegs, cellSegs, err := segment.Segment(stack, g)
	require.NoError(t, err)

	pixelOwner := make(map[int]string)
	for _, fs := range fibreSegs {
		for lr := 0; lr < fs.Region.Rows; lr++ {
			for lc := 0; lc < fs.Region.Cols; lc++ {
				if !fs.Region.At(lr, lc) {
					continue
				}
				key := (fs.Region.MinRow+lr)*cols + (fs.Region.MinCol + lc)
				pixelOwner[key] = "fibre"
			}
		}
	}
	for _, cs := range cellSegs {
		for lr := 0; lr < cs.Region.Rows; lr++ {
			for lc := 0; lc < cs.Region.Cols; lc++ {
				if !cs.Region.At(lr, lc) {
					continue
				}
				key := (cs.Region.MinRow+lr)*cols + (cs.Region.MinCol + lc)
				_, alreadyFibre := pixelOwner[key]
				assert.False(t, alreadyFibre, "pixel assigned to both fibre and cell segments")
			}
		}
	}
}

func TestRasterize_DrawsNodesAndEdgePath(t *testing.T) {
	rows, cols := 20, 20
	g := model.NewGraph()
	a := g.AddNode(model.Vec2{Row: 2, Col: 2})
	b := g.AddNode(model.Vec2{Row: 2, Col: 10})
	_, err := g.AddEdge(a, b, 8)
	require.NoError(t, err)

	m := segment.Rasterize(g, rows, cols)
	for c := 2; c <= 10; c++ {
		assert.True(t, m.Data[2*cols+c], "expected rasterized line pixel at col %d", c)
	}
}

func TestDilate_GrowsMaskByRadius(t *testing.T) {
	m := segment.NewMask(20, 20)
	m.Data[10*20+10] = true

	dilated := segment.Dilate(m, 3)
	assert.True(t, dilated.Data[10*20+13])
	assert.False(t, dilated.Data[10*20+14])
}

func TestFillHoles_FillsSmallInteriorHoleNotBorder(t *testing.T) {
	rows, cols := 10, 10
	m := segment.NewMask(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				m.Data[r*cols+c] = true
			}
		}
	}
	// interior is one big false hole (8x8=64 pixels); too big to fill with
	// a small max-area budget, but fillable with a generous one.
	filled := segment.FillHoles(m, 100)
	assert.True(t, filled.Data[5*cols+5])
}

func TestRegions_ExtractsBoundingBoxAndIntensity(t *testing.T) {
	rows, cols := 10, 10
	m := segment.NewMask(rows, cols)
	m.Data[2*cols+2] = true
	m.Data[2*cols+3] = true
	image := make([]float64, rows*cols)
	image[2*cols+2] = 0.7
	image[2*cols+3] = 0.3

	regions := segment.Regions(m, image)
	require.Len(t, regions, 1)
	r := regions[0]
	assert.Equal(t, 2, r.MinRow)
	assert.Equal(t, 2, r.MinCol)
	assert.Equal(t, 2, r.Area())
}
