// File: assign.go
// FibreAssigner (spec.md §4.6): greedy straightness-maximizing decomposition
// of a connected subgraph into fibre chains.
package fibre

import (
	"math"
	"sort"

	"github.com/fibrenet/pyfibre-go/model"
)

// minFibreNodes is the minimum chain length for a walk to be emitted as a
// fibre (spec.md §4.6 step 3).
const minFibreNodes = 4

// Assign decomposes g into fibre chains. Returns ErrEmptyGraph if g has no
// nodes.
func Assign(g *model.Graph) ([]model.Fibre, error) {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}

	var endpoints []int
	for _, id := range ids {
		if g.Degree(id) == 1 {
			endpoints = append(endpoints, id)
		}
	}
	if len(endpoints) == 0 {
		return nil, nil
	}

	type ranked struct {
		id   int
		rank float64
	}
	rankedEndpoints := make([]ranked, len(endpoints))
	for i, id := range endpoints {
		rankedEndpoints[i] = ranked{id: id, rank: eccentricity(g, id, endpoints)}
	}
	sort.SliceStable(rankedEndpoints, func(i, j int) bool {
		return rankedEndpoints[i].rank > rankedEndpoints[j].rank
	})

	claimed := make(map[int]bool)
	var fibres []model.Fibre

	for _, re := range rankedEndpoints {
		if claimed[re.id] {
			continue
		}
		chain := walkFibre(g, re.id, claimed)
		for _, id := range chain {
			claimed[id] = true
		}
		if len(chain) < minFibreNodes {
			continue
		}
		fibres = append(fibres, buildFibre(g, chain))
	}

	return fibres, nil
}

// walkFibre greedily walks from start, at every step choosing the unclaimed
// neighbour whose segment has the smallest angular deviation from the
// running direction, stopping at the next degree-1 node or when every
// neighbour is already claimed (spec.md §4.6 step 2).
func walkFibre(g *model.Graph, start int, claimed map[int]bool) []int {
	chain := []int{start}
	visited := map[int]bool{start: true}

	cur := start
	var direction model.Vec2
	haveDirection := false

	for {
		neighbors := g.Neighbors(cur)
		var candidates []int
		for _, n := range neighbors {
			if visited[n] || claimed[n] {
				continue
			}
			candidates = append(candidates, n)
		}
		if len(candidates) == 0 {
			break
		}

		var next int
		if !haveDirection || len(candidates) == 1 {
			next = candidates[0]
		} else {
			curXY := g.Node(cur).XY
			best := candidates[0]
			bestCos := segmentCos(direction, curXY, g.Node(best).XY)
			for _, c := range candidates[1:] {
				cos := segmentCos(direction, curXY, g.Node(c).XY)
				if cos > bestCos {
					bestCos = cos
					best = c
				}
			}
			next = best
		}

		nextXY := g.Node(next).XY
		curXY := g.Node(cur).XY
		seg := nextXY.Sub(curXY)
		if n := seg.Norm(); n > 0 {
			direction = model.Vec2{Row: seg.Row / n, Col: seg.Col / n}
			haveDirection = true
		}

		chain = append(chain, next)
		visited[next] = true
		cur = next

		if g.Degree(next) == 1 {
			break
		}
	}

	return chain
}

// segmentCos returns cos(theta) between direction and the unit vector from
// curXY to candidateXY; smallest angular deviation maximizes this value.
func segmentCos(direction, curXY, candidateXY model.Vec2) float64 {
	seg := candidateXY.Sub(curXY)
	n := seg.Norm()
	if n == 0 {
		return -1
	}
	unit := model.Vec2{Row: seg.Row / n, Col: seg.Col / n}
	return direction.Row*unit.Row + direction.Col*unit.Col
}

// buildFibre computes the Fibre attributes for a completed chain.
func buildFibre(g *model.Graph, chain []int) model.Fibre {
	first := g.Node(chain[0]).XY
	last := g.Node(chain[len(chain)-1]).XY

	euclidL := first.Dist(last)
	var fibreL float64
	for i := 0; i+1 < len(chain); i++ {
		eid, ok := g.EdgeBetween(chain[i], chain[i+1])
		if !ok {
			continue
		}
		fibreL += g.Edge(eid).R
	}

	var waviness float64
	if fibreL > 0 {
		waviness = euclidL / fibreL
	}

	diff := last.Sub(first)
	var direction model.Vec2
	if n := diff.Norm(); n > 0 {
		direction = model.Vec2{Row: diff.Row / n, Col: diff.Col / n}
	}
	angle := math.Atan2(direction.Col, direction.Row) * 180 / math.Pi
	if angle < 0 {
		angle += 180
	}

	return model.Fibre{
		Nodes:     chain,
		EuclidL:   euclidL,
		FibreL:    fibreL,
		Waviness:  waviness,
		Direction: direction,
		AngleDeg:  angle,
	}
}

// CrossLinkDensity returns the count of nodes with degree > 2 across g
// divided by the number of fibres (spec.md §4.8 per-fibre metric).
func CrossLinkDensity(g *model.Graph, fibres []model.Fibre) float64 {
	if len(fibres) == 0 {
		return 0
	}
	var branching int
	for _, id := range g.NodeIDs() {
		if g.Degree(id) > 2 {
			branching++
		}
	}
	return float64(branching) / float64(len(fibres))
}
