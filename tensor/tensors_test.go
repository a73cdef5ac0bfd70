package tensor_test

import (
	"testing"

	"github.com/fibrenet/pyfibre-go/tensor"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_IsotropicTensorHasZeroAnisotropy(t *testing.T) {
	s := tensor.Summarize(1, 0, 1)
	assert.InDelta(t, 0, s.Anisotropy, 1e-9)
}

func TestSummarize_ZeroTensor(t *testing.T) {
	s := tensor.Summarize(0, 0, 0)
	assert.Equal(t, 0.0, s.Anisotropy)
	assert.Equal(t, 0.0, s.Energy)
}

func TestSummarize_AnisotropicTensor(t *testing.T) {
	s := tensor.Summarize(4, 0, 1)
	assert.InDelta(t, 0.6, s.Anisotropy, 1e-9) // (4-1)/(4+1)
	assert.InDelta(t, 5, s.Energy, 1e-9)
}

func TestNematicTensor_ZeroGradientIsZeroTensor(t *testing.T) {
	g := tensor.NewGrid(5, 5)
	for i := range g.Data {
		g.Data[i] = 0.5
	}
	field := tensor.NematicTensor(g, 1.0)
	// center pixel: constant image => zero gradient everywhere => zero tensor
	idx := 2*5 + 2
	assert.InDelta(t, 0, field.T00[idx], 1e-9)
	assert.InDelta(t, 0, field.T01[idx], 1e-9)
	assert.InDelta(t, 0, field.T11[idx], 1e-9)
}

func TestStructureTensor_RidgeHasNonzeroEnergy(t *testing.T) {
	rows, cols := 11, 11
	g := tensor.NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c == cols/2 {
				g.Set(r, c, 1.0)
			}
		}
	}
	field := tensor.StructureTensor(g, 1.0)
	summaries := tensor.SummarizeField(field)
	center := summaries[5*cols+5]
	assert.Greater(t, center.Energy, 0.0)
}
