// File: analyze.go
// Single-image pipeline: preprocess the SHG channel, grow and simplify the
// fibre network, assign fibres, segment, and compute metrics (spec.md
// §4.1-4.8 chained in sequence). This is the unit of work one runner
// worker owns for the lifetime of one image (spec.md §5 Memory).
package runner

import (
	"github.com/fibrenet/pyfibre-go/filters"
	"github.com/fibrenet/pyfibre-go/fibre"
	"github.com/fibrenet/pyfibre-go/metrics"
	"github.com/fibrenet/pyfibre-go/model"
	"github.com/fibrenet/pyfibre-go/network"
	"github.com/fibrenet/pyfibre-go/preprocess"
	"github.com/fibrenet/pyfibre-go/segment"
)

// ImageResult is the full set of per-image outputs a worker hands to the
// supervisor for row-concatenation into the batch tables.
type ImageResult struct {
	Path        string
	Graph       *model.Graph
	Global      metrics.NetworkMetrics
	FibreRows   []metrics.FibreStats
	FibreSegs   []metrics.FibreSegmentMetrics
	CellSegs    []metrics.CellSegmentMetrics
}

// Analyze runs the full pipeline on one already-loaded image stack. A
// missing SHG channel or failed model.ImageStack.Validate is reported as a
// fatal model.KindInputShape error. A preprocessing error or extraction
// producing no nucleation point degrades to an empty-but-successful
// ImageResult; a segmentation error keeps the graph, network and fibre rows
// and reports zero fibre/cell segments. Neither fails the image, per
// spec.md §7's local-recovery rule for non-fatal error kinds.
func Analyze(path string, stack *model.ImageStack, cfg Config) (ImageResult, error) {
	result := ImageResult{Path: path}

	if err := stack.Validate(); err != nil {
		return result, model.NewKindError(model.KindInputShape, err)
	}
	shg, ok := stack.Channels[model.RoleSHG]
	if !ok {
		return result, model.NewKindError(model.KindInputShape, model.ErrUnsupportedRoles)
	}
	rows, cols := stack.Rows, stack.Cols

	clipped, err := preprocess.Clip(shg, cfg.LowClip, cfg.HighClip)
	if err != nil {
		return emptyResult(result), nil
	}
	denoised, err := preprocess.Denoise(clipped, rows, cols, cfg.NLPatch, cfg.NLDistance)
	if err != nil {
		return emptyResult(result), nil
	}

	tubeness := filters.Tubeness(denoised, rows, cols, cfg.Sigma)

	g, err := network.NewExtractor().Run(tubeness, denoised, rows, cols)
	if err != nil {
		return emptyResult(result), nil
	}
	result.Graph = g

	reduced := network.Simplify(g)
	result.Global = metrics.Network(reduced)

	fibres, err := fibre.Assign(g)
	if err != nil {
		fibres = nil
	}
	crossLink := fibre.CrossLinkDensity(g, fibres)
	result.FibreRows = metrics.FibreRows(fibres, crossLink)

	fibreSegs, cellSegs, err := segment.Segment(stack, g)
	if err != nil {
		return result, nil // Segmentation kind: degrade to zero segments, keep network/fibre rows
	}
	result.FibreSegs = make([]metrics.FibreSegmentMetrics, len(fibreSegs))
	for i, s := range fibreSegs {
		result.FibreSegs[i] = metrics.FibreSegment(s)
	}
	result.CellSegs = make([]metrics.CellSegmentMetrics, len(cellSegs))
	for i, s := range cellSegs {
		result.CellSegs[i] = metrics.CellSegment(s)
	}

	return result, nil
}

// emptyResult clears any partial fields so a degraded image reports the
// zero-row table spec.md §7 calls for.
func emptyResult(r ImageResult) ImageResult {
	r.Graph = nil
	r.Global = metrics.NetworkMetrics{}
	r.FibreRows = nil
	r.FibreSegs = nil
	r.CellSegs = nil
	return r
}
