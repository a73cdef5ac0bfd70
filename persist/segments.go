// File: segments.go
// `<stem>_fibre_segment.json` / `<stem>_cell_segment.json` artifacts
// (spec.md §6): arrays of RLE regions, one file per segment kind.
package persist

import (
	"encoding/json"

	"github.com/fibrenet/pyfibre-go/model"
)

// EncodeFibreSegments renders a fibre-segment artifact.
func EncodeFibreSegments(segs []model.FibreSegment) ([]byte, error) {
	rows := make([]rleRegion, len(segs))
	for i, s := range segs {
		rows[i] = EncodeRegion(s.Region)
	}
	return json.Marshal(rows)
}

// DecodeFibreSegments parses a fibre-segment artifact.
func DecodeFibreSegments(data []byte) ([]model.FibreSegment, error) {
	var rows []rleRegion
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	segs := make([]model.FibreSegment, len(rows))
	for i, rr := range rows {
		segs[i] = model.FibreSegment{Region: DecodeRegion(rr)}
	}
	return segs, nil
}

// EncodeCellSegments renders a cell-segment artifact.
func EncodeCellSegments(segs []model.CellSegment) ([]byte, error) {
	rows := make([]rleRegion, len(segs))
	for i, s := range segs {
		rows[i] = EncodeRegion(s.Region)
	}
	return json.Marshal(rows)
}

// DecodeCellSegments parses a cell-segment artifact.
func DecodeCellSegments(data []byte) ([]model.CellSegment, error) {
	var rows []rleRegion
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	segs := make([]model.CellSegment, len(rows))
	for i, rr := range rows {
		segs[i] = model.CellSegment{Region: DecodeRegion(rr)}
	}
	return segs, nil
}
