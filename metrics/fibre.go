// File: fibre.go
// Per-fibre metrics (spec.md §4.8): waviness and length are already carried
// on model.Fibre by the fibre package; FibreStats packages them alongside
// the shared cross-link density figure for row assembly.
package metrics

import "github.com/fibrenet/pyfibre-go/model"

// FibreStats is one row of the per-fibre metric table.
type FibreStats struct {
	Waviness        float64
	EuclidL         float64
	FibreL          float64
	CrossLinkDensity float64
}

// FibreRows builds one FibreStats row per fibre, sharing the single
// network-wide crossLinkDensity value (spec.md §4.8: "count of nodes with
// degree > 2 divided by fibre count").
func FibreRows(fibres []model.Fibre, crossLinkDensity float64) []FibreStats {
	rows := make([]FibreStats, len(fibres))
	for i, f := range fibres {
		rows[i] = FibreStats{
			Waviness:         f.Waviness,
			EuclidL:          f.EuclidL,
			FibreL:           f.FibreL,
			CrossLinkDensity: crossLinkDensity,
		}
	}
	return rows
}
