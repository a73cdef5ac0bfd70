package persist

import (
	"testing"

	"github.com/fibrenet/pyfibre-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLengthEncodeDecode_RoundTrips(t *testing.T) {
	mask := []bool{false, false, true, true, true, false, true, false, false}
	runs := runLengthEncode(mask)
	got := runLengthDecode(runs, len(mask))
	assert.Equal(t, mask, got)
}

func TestRunLengthEncodeDecode_AllTrueStartsWithZeroRun(t *testing.T) {
	mask := []bool{true, true, true}
	runs := runLengthEncode(mask)
	require.Equal(t, 0, runs[0]) // leading zero-length false run
	got := runLengthDecode(runs, len(mask))
	assert.Equal(t, mask, got)
}

func TestRunLengthEncodeDecode_Empty(t *testing.T) {
	var mask []bool
	runs := runLengthEncode(mask)
	got := runLengthDecode(runs, 0)
	assert.Equal(t, mask, got)
}

func TestEncodeDecodeRegion_RoundTrips(t *testing.T) {
	r := model.Region{
		MinRow: 3, MinCol: 4,
		Rows: 2, Cols: 2,
		Mask:      []bool{true, false, false, true},
		Intensity: []float64{0.1, 0.2, 0.3, 0.4},
	}
	rr := EncodeRegion(r)
	got := DecodeRegion(rr)

	assert.Equal(t, r.MinRow, got.MinRow)
	assert.Equal(t, r.MinCol, got.MinCol)
	assert.Equal(t, r.Rows, got.Rows)
	assert.Equal(t, r.Cols, got.Cols)
	assert.Equal(t, r.Mask, got.Mask)
	assert.Equal(t, r.Intensity, got.Intensity)
}

func TestFibreCellSegmentsJSON_RoundTrips(t *testing.T) {
	segs := []model.FibreSegment{
		{Region: model.Region{Rows: 1, Cols: 2, Mask: []bool{true, false}, Intensity: []float64{0.5, 0.0}}},
	}
	data, err := EncodeFibreSegments(segs)
	require.NoError(t, err)
	got, err := DecodeFibreSegments(data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, segs[0].Region.Mask, got[0].Region.Mask)

	cells := []model.CellSegment{
		{Region: model.Region{Rows: 1, Cols: 2, Mask: []bool{false, true}, Intensity: []float64{0.0, 0.9}}},
	}
	cdata, err := EncodeCellSegments(cells)
	require.NoError(t, err)
	cgot, err := DecodeCellSegments(cdata)
	require.NoError(t, err)
	require.Len(t, cgot, 1)
	assert.Equal(t, cells[0].Region.Mask, cgot[0].Region.Mask)
}
