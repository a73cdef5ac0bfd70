package fibre

import (
	"container/heap"

	"github.com/fibrenet/pyfibre-go/model"
)

// distanceItem pairs a node id with its current best-known distance from
// the search source, for the min-heap priority queue.
type distanceItem struct {
	id   int
	dist float64
}

// distancePQ is a min-heap of *distanceItem ordered by dist ascending. Stale
// entries (superseded by a cheaper push) are left in place and skipped when
// popped — the same lazy decrease-key strategy as the teacher's dijkstra.
type distancePQ []*distanceItem

func (pq distancePQ) Len() int            { return len(pq) }
func (pq distancePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distancePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distancePQ) Push(x interface{}) { *pq = append(*pq, x.(*distanceItem)) }
func (pq *distancePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// shortestDistances runs Dijkstra from source over g's edge weights (r),
// returning the distance to every reachable node. Unreached nodes are
// absent from the result.
func shortestDistances(g *model.Graph, source int) map[int]float64 {
	dist := map[int]float64{source: 0}
	visited := make(map[int]bool)

	pq := &distancePQ{{id: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*distanceItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		for _, eid := range g.IncidentEdges(item.id) {
			e := g.Edge(eid)
			if e == nil {
				continue
			}
			other := e.Other(item.id)
			if visited[other] {
				continue
			}
			nd := item.dist + e.R
			if cur, ok := dist[other]; !ok || nd < cur {
				dist[other] = nd
				heap.Push(pq, &distanceItem{id: other, dist: nd})
			}
		}
	}
	return dist
}

// eccentricity returns the maximum shortest-path distance from source to
// any other node in endpoints, used to rank candidate fibre starting points
// by descending reachable chain length (spec.md §4.6 step 1).
func eccentricity(g *model.Graph, source int, endpoints []int) float64 {
	dist := shortestDistances(g, source)
	max := 0.0
	for _, id := range endpoints {
		if id == source {
			continue
		}
		if d, ok := dist[id]; ok && d > max {
			max = d
		}
	}
	return max
}
