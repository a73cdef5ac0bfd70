// File: simplify.go
// NetworkSimplifier (spec.md §4.5): collapse degree-2 chains into single
// edges between the surviving degree!=2 nodes; a closed chain attached to
// a single survivor collapses to a self-loop on that survivor.
//
// ReducedGraph is a separate, minimal type rather than a model.Graph
// because self-loops are a valid simplification outcome (spec.md §4.5,
// §8 invariants) while model.Graph forbids them by construction for the
// full FIRE graph.
package network

import (
	"sort"

	"github.com/fibrenet/pyfibre-go/model"
)

// ReducedEdge is a collapsed chain between two surviving node ids (A may
// equal B for a closed chain — a self-loop).
type ReducedEdge struct {
	A, B int
	R    float64
}

// ReducedGraph is the output of Simplify: the surviving (degree!=2) node
// ids and the chain-collapsed edges between them.
type ReducedGraph struct {
	Nodes []int
	Edges []ReducedEdge
}

// Degree returns the number of reduced edges incident to id, counting a
// self-loop twice (as is conventional for degree with loops).
func (r *ReducedGraph) Degree(id int) int {
	n := 0
	for _, e := range r.Edges {
		if e.A == id {
			n++
		}
		if e.B == id {
			n++
		}
	}
	return n
}

// Simplify reduces g to its degree!=2 skeleton. Connectivity is preserved:
// two surviving nodes are connected in the reduced graph iff they were
// connected in g (spec.md §8).
func Simplify(g *model.Graph) *ReducedGraph {
	survivors := make(map[int]bool)
	for _, id := range g.NodeIDs() {
		if g.Degree(id) != 2 {
			survivors[id] = true
		}
	}

	out := &ReducedGraph{}
	for id := range survivors {
		out.Nodes = append(out.Nodes, id)
	}
	sort.Ints(out.Nodes)

	visited := make(map[int]bool)
	for _, s := range out.Nodes {
		for _, eid := range g.IncidentEdges(s) {
			if visited[eid] {
				continue
			}
			target, sum := walkChain(g, s, eid, visited)
			out.Edges = append(out.Edges, ReducedEdge{A: s, B: target, R: sum})
		}
	}
	return out
}

// walkChain follows the chain starting at survivor `from` via edge
// `startEdge`, through any number of degree-2 nodes, until it reaches
// another surviving (degree!=2) node, marking every traversed edge as
// visited and returning that node's id and the summed edge length.
func walkChain(g *model.Graph, from, startEdge int, visited map[int]bool) (target int, sum float64) {
	visited[startEdge] = true
	e := g.Edge(startEdge)
	sum = e.R
	cur := e.Other(from)
	arrivedVia := startEdge

	for g.Degree(cur) == 2 {
		var nextEdge int
		for _, eid := range g.IncidentEdges(cur) {
			if eid != arrivedVia {
				nextEdge = eid
				break
			}
		}
		ed := g.Edge(nextEdge)
		visited[nextEdge] = true
		sum += ed.R
		arrivedVia = nextEdge
		cur = ed.Other(cur)
	}
	return cur, sum
}
