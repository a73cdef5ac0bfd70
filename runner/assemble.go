// File: assemble.go
// Final table assembly (spec.md §4.9: "on completion the runner assembles
// three tables ... by row-concatenating per-image results"). Each row
// keeps its originating image path so persist can annotate outputs.
package runner

import "github.com/fibrenet/pyfibre-go/metrics"

// GlobalRow is one row of the assembled global-metric table.
type GlobalRow struct {
	Path    string
	Metrics metrics.NetworkMetrics
}

// FibreRow is one row of the assembled fibre-metric table.
type FibreRow struct {
	Path  string
	Stats metrics.FibreStats
}

// SegmentRow is one row of an assembled fibre- or cell-segment metric
// table.
type SegmentRow struct {
	Path string
	// exactly one of Fibre, Cell is set depending on the table.
	Fibre metrics.FibreSegmentMetrics
	Cell  metrics.CellSegmentMetrics
}

// Tables holds the four row-concatenated batch outputs: global, fibre,
// fibre-segment and cell-segment rows.
type Tables struct {
	Global      []GlobalRow
	Fibre       []FibreRow
	FibreSegs   []SegmentRow
	CellSegs    []SegmentRow
}

// Assemble row-concatenates every completed image's per-image results, in
// the order they appear in batch.Results (event-arrival order).
func Assemble(batch Batch) Tables {
	var t Tables
	for _, r := range batch.Results {
		t.Global = append(t.Global, GlobalRow{Path: r.Path, Metrics: r.Global})
		for _, f := range r.FibreRows {
			t.Fibre = append(t.Fibre, FibreRow{Path: r.Path, Stats: f})
		}
		for _, s := range r.FibreSegs {
			t.FibreSegs = append(t.FibreSegs, SegmentRow{Path: r.Path, Fibre: s})
		}
		for _, s := range r.CellSegs {
			t.CellSegs = append(t.CellSegs, SegmentRow{Path: r.Path, Cell: s})
		}
	}
	return t
}
