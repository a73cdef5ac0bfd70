// File: tabular.go
// Tabular row writers for `<stem>_global_metric`, `<stem>_fibre_metric`
// and `<stem>_cell_metric` (spec.md §6). Plain CSV via encoding/csv: no
// library in the retrieval pack offers a dataframe/tabular writer (the
// teacher's own repo has none either), and the spec explicitly keeps the
// pandas-style table writer itself out of the core's scope — only the row
// shapes are ours to produce.
package persist

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fibrenet/pyfibre-go/metrics"
)

var globalMetricHeader = []string{
	"degree_correlation", "max_eigenvalue", "algebraic_connectivity", "max_betweenness",
}

// WriteGlobalMetrics writes the per-image network metric row.
func WriteGlobalMetrics(w io.Writer, m metrics.NetworkMetrics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(globalMetricHeader); err != nil {
		return err
	}
	row := []string{
		formatFloat(m.DegreeCorrelation),
		formatFloat(m.MaxEigenvalue),
		formatFloat(m.AlgebraicConn),
		formatFloat(m.MaxBetweenness),
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

var fibreMetricHeader = []string{"waviness", "euclid_l", "fibre_l", "cross_link_density"}

// WriteFibreMetrics writes one row per fibre.
func WriteFibreMetrics(w io.Writer, rows []metrics.FibreStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fibreMetricHeader); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			formatFloat(r.Waviness),
			formatFloat(r.EuclidL),
			formatFloat(r.FibreL),
			formatFloat(r.CrossLinkDensity),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var segmentMetricHeader = []string{
	"area", "mean", "std", "entropy", "linearity", "eccentricity", "density", "coverage",
	"glcm_contrast", "glcm_homogeneity", "glcm_dissimilarity", "glcm_correlation",
	"glcm_energy", "glcm_idm", "glcm_variance", "glcm_cluster", "glcm_entropy",
	"hu1", "hu2", "hu3", "hu4", "hu5", "hu6", "hu7",
	"fourier_sdi", "angle_sdi",
}

// WriteFibreSegmentMetrics writes one row per fibre segment, including the
// fourier/angle SDI columns the cell table omits.
func WriteFibreSegmentMetrics(w io.Writer, rows []metrics.FibreSegmentMetrics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(segmentMetricHeader); err != nil {
		return err
	}
	for _, r := range rows {
		row := shapeGLCMHuRow(r.Shape, r.GLCM, r.Hu)
		row = append(row, formatFloat(r.FourierSDI), formatFloat(r.AngleSDI))
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var cellMetricHeader = segmentMetricHeader[:len(segmentMetricHeader)-2]

// WriteCellSegmentMetrics writes one row per cell segment.
func WriteCellSegmentMetrics(w io.Writer, rows []metrics.CellSegmentMetrics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cellMetricHeader); err != nil {
		return err
	}
	for _, r := range rows {
		row := shapeGLCMHuRow(r.Shape, r.GLCM, r.Hu)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func shapeGLCMHuRow(s metrics.ShapeStats, g metrics.GLCMFeatures, hu [7]float64) []string {
	row := []string{
		strconv.Itoa(s.Area),
		formatFloat(s.Mean),
		formatFloat(s.Std),
		formatFloat(s.Entropy),
		formatFloat(s.Linearity),
		formatFloat(s.Eccentricity),
		formatFloat(s.Density),
		formatFloat(s.Coverage),
		formatFloat(g.Contrast),
		formatFloat(g.Homogeneity),
		formatFloat(g.Dissimilarity),
		formatFloat(g.Correlation),
		formatFloat(g.Energy),
		formatFloat(g.IDM),
		formatFloat(g.Variance),
		formatFloat(g.Cluster),
		formatFloat(g.Entropy),
	}
	for _, h := range hu {
		row = append(row, formatFloat(h))
	}
	return row
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
