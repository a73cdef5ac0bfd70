package linalg_test

import (
	"math"
	"sort"
	"testing"

	"github.com/fibrenet/pyfibre-go/internal/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEigen_Diagonal(t *testing.T) {
	m := linalg.NewDense(3)
	m.Set(0, 0, 1)
	m.Set(1, 1, 2)
	m.Set(2, 2, 3)

	vals, _, err := linalg.Eigen(m, 1e-12, 100)
	require.NoError(t, err)
	sort.Float64s(vals)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, vals, 1e-9)
}

func TestEigen_2x2Analytic(t *testing.T) {
	m := linalg.NewDense(2)
	m.Set(0, 0, 2)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)
	m.Set(1, 1, 2)

	vals, _, err := linalg.Eigen(m, 1e-12, 100)
	require.NoError(t, err)
	sort.Float64s(vals)
	assert.InDelta(t, 1.0, vals[0], 1e-9)
	assert.InDelta(t, 3.0, vals[1], 1e-9)
}

func TestEigen_RejectsAsymmetric(t *testing.T) {
	m := linalg.NewDense(2)
	m.Set(0, 1, 1)
	m.Set(1, 0, 5)

	_, _, err := linalg.Eigen(m, 1e-9, 50)
	assert.ErrorIs(t, err, linalg.ErrNotSymmetric)
}

func TestEigen_LaplacianPathGraph_AlgebraicConnectivity(t *testing.T) {
	// Path graph 0-1-2: Laplacian eigenvalues are 0, 1, 3.
	n := 3
	lap := linalg.NewDense(n)
	deg := []float64{1, 2, 1}
	for i := 0; i < n; i++ {
		lap.Set(i, i, deg[i])
	}
	lap.Set(0, 1, -1)
	lap.Set(1, 0, -1)
	lap.Set(1, 2, -1)
	lap.Set(2, 1, -1)

	vals, _, err := linalg.Eigen(lap, 1e-12, 200)
	require.NoError(t, err)
	sort.Float64s(vals)
	assert.InDelta(t, 0.0, vals[0], 1e-9)
	assert.InDelta(t, 1.0, vals[1], 1e-9) // algebraic connectivity
	assert.InDelta(t, 3.0, vals[2], 1e-9)
	assert.True(t, math.Abs(vals[0]) < 1e-9)
}
