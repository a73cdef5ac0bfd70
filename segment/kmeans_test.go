package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKmeans_TwoWellSeparatedClusters_Converges(t *testing.T) {
	var samples [][]float64
	for i := 0; i < 20; i++ {
		samples = append(samples, []float64{0, 0})
	}
	for i := 0; i < 20; i++ {
		samples = append(samples, []float64{10, 10})
	}

	res := kmeans(samples, 2, 3, 50)
	assert.True(t, res.converged)
	assert.Equal(t, res.labels[0], res.labels[19])
	assert.NotEqual(t, res.labels[0], res.labels[20])
}

func TestKmeans_ZeroMaxIter_NeverConverges(t *testing.T) {
	samples := [][]float64{{0, 0}, {1, 1}, {5, 5}, {6, 6}}
	res := kmeans(samples, 2, 2, 0)
	assert.False(t, res.converged)
}

func TestBdFilter_UniformInput_ConvergesImmediately(t *testing.T) {
	channels := [3][]float64{
		make([]float64, 4),
		make([]float64, 4),
		make([]float64, 4),
	}
	mask, err := bdFilter(channels, 2, 2)
	assert.NoError(t, err)
	assert.NotNil(t, mask)
}
