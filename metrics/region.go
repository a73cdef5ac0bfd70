// File: region.go
// Top-level per-region metric assembly (spec.md §4.8): FibreSegment gets
// the full feature set including fourier/angle SDI; CellSegment gets
// everything except those two (no directional-fibre structure to measure).
package metrics

import "github.com/fibrenet/pyfibre-go/model"

// FibreSegmentMetrics is the full spec.md §4.8 feature set for a
// FibreSegment.
type FibreSegmentMetrics struct {
	Shape    ShapeStats
	GLCM     GLCMFeatures
	Hu       [7]float64
	FourierSDI float64
	AngleSDI   float64
}

// CellSegmentMetrics is the spec.md §4.8 feature set for a CellSegment
// (Shape/GLCM/Hu only — no fourier/angle SDI).
type CellSegmentMetrics struct {
	Shape ShapeStats
	GLCM  GLCMFeatures
	Hu    [7]float64
}

// FibreSegment computes the full metric set for a FibreSegment region.
func FibreSegment(seg model.FibreSegment) FibreSegmentMetrics {
	r := seg.Region
	return FibreSegmentMetrics{
		Shape:      Shape(r.Mask, r.Intensity, r.Rows, r.Cols),
		GLCM:       ComputeGLCM(r.Intensity, r.Mask, r.Rows, r.Cols),
		Hu:         HuMoments(r.Mask, r.Rows, r.Cols),
		FourierSDI: FourierSDI(r.Intensity),
		AngleSDI:   AngleSDI(r.Intensity, r.Rows, r.Cols),
	}
}

// CellSegment computes the metric set for a CellSegment region.
func CellSegment(seg model.CellSegment) CellSegmentMetrics {
	r := seg.Region
	return CellSegmentMetrics{
		Shape: Shape(r.Mask, r.Intensity, r.Rows, r.Cols),
		GLCM:  ComputeGLCM(r.Intensity, r.Mask, r.Rows, r.Cols),
		Hu:    HuMoments(r.Mask, r.Rows, r.Cols),
	}
}
