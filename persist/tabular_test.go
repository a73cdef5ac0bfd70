package persist

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/fibrenet/pyfibre-go/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGlobalMetrics_HeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	err := WriteGlobalMetrics(&buf, metrics.NetworkMetrics{
		DegreeCorrelation: 0.5, MaxEigenvalue: 4, AlgebraicConn: 1, MaxBetweenness: 0.2,
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, globalMetricHeader, rows[0])
	assert.Equal(t, []string{"0.5", "4", "1", "0.2"}, rows[1])
}

func TestWriteFibreMetrics_OneRowPerFibre(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFibreMetrics(&buf, []metrics.FibreStats{
		{Waviness: 1, EuclidL: 10, FibreL: 10, CrossLinkDensity: 0},
		{Waviness: 0.9, EuclidL: 9, FibreL: 10, CrossLinkDensity: 0},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3) // header + 2 rows
}

func TestWriteFibreSegmentMetrics_IncludesSDIColumns(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFibreSegmentMetrics(&buf, []metrics.FibreSegmentMetrics{{}})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "fourier_sdi")
	assert.Contains(t, rows[0], "angle_sdi")
}

func TestWriteCellSegmentMetrics_OmitsSDIColumns(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCellSegmentMetrics(&buf, []metrics.CellSegmentMetrics{{}})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.NotContains(t, rows[0], "fourier_sdi")
	assert.NotContains(t, rows[0], "angle_sdi")
}
