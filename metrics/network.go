// File: network.go
// Per-network metrics (spec.md §4.8): degree correlation, max adjacency
// eigenvalue, algebraic connectivity (Fiedler value). The Jacobi
// eigensolver is the teacher's own (adapted into internal/linalg); the
// supplementary betweenness-centrality cross-check is grounded on
// _examples/other_examples/...beadwork__pkg-analysis-graph.go's
// simple.UndirectedGraph + gonum.org/v1/gonum/graph/network usage.
package metrics

import (
	"sort"

	"github.com/fibrenet/pyfibre-go/internal/linalg"
	"github.com/fibrenet/pyfibre-go/network"
	gonumnetwork "gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat"
)

// NetworkMetrics holds the per-connected-component figures of spec.md §4.8.
type NetworkMetrics struct {
	DegreeCorrelation float64
	MaxEigenvalue     float64
	AlgebraicConn     float64
	MaxBetweenness    float64 // supplementary cross-check, not spec-required
}

// Network computes NetworkMetrics for a simplified (degree!=2) graph.
func Network(r *network.ReducedGraph) NetworkMetrics {
	if len(r.Nodes) == 0 {
		return NetworkMetrics{}
	}

	index := make(map[int]int, len(r.Nodes))
	for i, id := range r.Nodes {
		index[id] = i
	}
	n := len(r.Nodes)

	adj := linalg.NewDense(n)
	for _, e := range r.Edges {
		if e.A == e.B {
			continue // self-loops do not contribute to simple adjacency
		}
		i, j := index[e.A], index[e.B]
		adj.Set(i, j, 1)
		adj.Set(j, i, 1)
	}

	laplacian := linalg.NewDense(n)
	for i := 0; i < n; i++ {
		var deg float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			deg += adj.At(i, j)
			laplacian.Set(i, j, -adj.At(i, j))
		}
		laplacian.Set(i, i, deg)
	}

	adjEig, _, err := linalg.Eigen(adj, 1e-9, 200)
	var maxEig float64
	if err == nil {
		maxEig = maxOf(adjEig)
	}

	lapEig, _, err := linalg.Eigen(laplacian, 1e-9, 200)
	var algConn float64
	if err == nil {
		algConn = secondSmallest(lapEig)
	}

	corr := degreeCorrelation(r)
	betw := maxBetweenness(r)

	return NetworkMetrics{
		DegreeCorrelation: corr,
		MaxEigenvalue:     maxEig,
		AlgebraicConn:     algConn,
		MaxBetweenness:    betw,
	}
}

// degreeCorrelation computes the squared Pearson correlation of endpoint
// degrees across every edge, weighted by r (spec.md §4.8).
func degreeCorrelation(r *network.ReducedGraph) float64 {
	var xs, ys, weights []float64
	for _, e := range r.Edges {
		xs = append(xs, float64(r.Degree(e.A)))
		ys = append(ys, float64(r.Degree(e.B)))
		weights = append(weights, e.R)
	}
	if len(xs) < 2 {
		return 0
	}
	c := stat.Correlation(xs, ys, weights)
	return c * c
}

// maxBetweenness builds a gonum simple.UndirectedGraph mirroring r (minus
// self-loops, which gonum's simple graph does not represent) and returns
// the maximum betweenness-centrality value as a supplementary connectivity
// figure alongside the Fiedler value.
func maxBetweenness(r *network.ReducedGraph) float64 {
	g := simple.NewUndirectedGraph()
	for _, id := range r.Nodes {
		g.AddNode(simple.Node(id))
	}
	for _, e := range r.Edges {
		if e.A == e.B {
			continue
		}
		if g.HasEdgeBetween(int64(e.A), int64(e.B)) {
			continue
		}
		g.SetEdge(g.NewEdge(g.Node(int64(e.A)), g.Node(int64(e.B))))
	}

	scores := gonumnetwork.Betweenness(g)
	var max float64
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	return max
}

func maxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// secondSmallest returns the Fiedler value: the second-smallest eigenvalue
// of the graph Laplacian (the smallest is always ~0).
func secondSmallest(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if len(sorted) < 2 {
		return 0
	}
	return sorted[1]
}
