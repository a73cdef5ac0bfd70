package preprocess_test

import (
	"testing"

	"github.com/fibrenet/pyfibre-go/preprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClip_RescalesToUnitRange(t *testing.T) {
	image := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out, err := preprocess.Clip(image, 0, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0, out[0], 1e-9)
	assert.InDelta(t, 1, out[len(out)-1], 1e-9)
}

func TestClip_ZeroDynamicRangeShortCircuits(t *testing.T) {
	image := []float64{5, 5, 5, 5}
	out, err := preprocess.Clip(image, 0, 100)
	require.NoError(t, err)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

func TestClip_RejectsNonFinite(t *testing.T) {
	var nan float64
	nan = nan / nan
	_, err := preprocess.Clip([]float64{nan}, 0, 100)
	assert.ErrorIs(t, err, preprocess.ErrNonFinite)
}

func TestDenoise_ZeroDynamicRangeShortCircuits(t *testing.T) {
	image := make([]float64, 25)
	for i := range image {
		image[i] = 0.3
	}
	out, err := preprocess.Denoise(image, 5, 5, 3, 2)
	require.NoError(t, err)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

func TestDenoise_SmoothsIsolatedSpike(t *testing.T) {
	rows, cols := 9, 9
	// A faint checkerboard background gives the Laplacian-MAD estimator a
	// non-zero noise sigma; on a perfectly flat background sigma (and so h)
	// is 0 and Denoise returns its input unchanged.
	image := make([]float64, rows*cols)
	for i := range image {
		image[i] = 0.2
		if (i/cols+i%cols)%2 == 0 {
			image[i] = 0.25
		}
	}
	image[4*cols+4] = 0.9
	out, err := preprocess.Denoise(image, rows, cols, 3, 3)
	require.NoError(t, err)
	assert.Less(t, out[4*cols+4], image[4*cols+4])
}

func TestEqualize_ZeroDynamicRangeShortCircuits(t *testing.T) {
	image := make([]float64, 64)
	for i := range image {
		image[i] = 0.5
	}
	out, err := preprocess.Equalize(image, 8, 8)
	require.NoError(t, err)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

func TestEqualize_PreservesUnitRange(t *testing.T) {
	rows, cols := 16, 16
	image := make([]float64, rows*cols)
	for i := range image {
		image[i] = float64(i%rows) / float64(rows-1)
	}
	out, err := preprocess.Equalize(image, rows, cols)
	require.NoError(t, err)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
