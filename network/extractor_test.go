package network_test

import (
	"math"
	"testing"

	"github.com/fibrenet/pyfibre-go/filters"
	"github.com/fibrenet/pyfibre-go/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// crossImage builds a 50x50 image with two diagonals of 1.0 on a zero
// background (spec.md §8 end-to-end scenario 1).
func crossImage(n int) ([]float64, int, int) {
	image := make([]float64, n*n)
	for i := 0; i < n; i++ {
		image[i*n+i] = 1.0
		image[i*n+(n-1-i)] = 1.0
	}
	return image, n, n
}

func TestExtractor_EmptyImage_NoNucleation(t *testing.T) {
	rows, cols := 20, 20
	tubeness := make([]float64, rows*cols)
	image := make([]float64, rows*cols)

	x := network.NewExtractor()
	_, err := x.Run(tubeness, image, rows, cols)
	assert.ErrorIs(t, err, network.ErrNoNucleation)
}

func TestExtractor_SinglePixelSpike_OneNodeNoEdges(t *testing.T) {
	rows, cols := 20, 20
	tubeness := make([]float64, rows*cols)
	tubeness[10*cols+10] = 5.0
	image := make([]float64, rows*cols)

	x := network.NewExtractor()
	g, err := x.Run(tubeness, image, rows, cols)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
}

func TestExtractor_CrossImage_ProducesValidGraph(t *testing.T) {
	rows, cols := 50, 50
	image, _, _ := crossImage(rows)
	tubeness := filters.Tubeness(image, rows, cols, 1.0)

	x := network.NewExtractor(network.WithNucThresh(0.01))
	g, err := x.Run(tubeness, image, rows, cols)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Greater(t, g.NumNodes(), 0)
}

func TestExtractor_Graph_EveryEdgePositiveNoSelfLoop(t *testing.T) {
	rows, cols := 50, 50
	image, _, _ := crossImage(rows)
	tubeness := filters.Tubeness(image, rows, cols, 1.0)

	x := network.NewExtractor(network.WithNucThresh(0.01))
	g, err := x.Run(tubeness, image, rows, cols)
	require.NoError(t, err)

	for _, eid := range g.EdgeIDs() {
		e := g.Edge(eid)
		assert.Greater(t, e.R, 0.0)
		assert.NotEqual(t, e.A, e.B)
	}
	for _, nid := range g.NodeIDs() {
		n := g.Node(nid)
		if n.Growing {
			assert.Equal(t, 1, g.Degree(nid))
		}
	}
}

func TestThetaThresh_MatchesClosedForm(t *testing.T) {
	p := network.DefaultParams()
	want := math.Cos((180-p.AngleThreshDeg)*math.Pi/180) + 1
	assert.InDelta(t, want, p.ThetaThresh(), 1e-12)
}
