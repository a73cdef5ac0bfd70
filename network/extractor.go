// File: extractor.go
// The modified FIRE algorithm (spec.md §4.4): nucleate, grow trajectories
// with merge/absorb/extend/advance rules, terminate when nothing is
// growing. Tie-break rules (lowest surviving id on merge, maximum-length
// branch on extend, r_thresh/10 stub suppression on terminate) are carried
// verbatim from the original implementation
// (_examples/original_source/pyfibre/model/tools/network_extraction.py).
package network

import (
	"math"

	"github.com/fibrenet/pyfibre-go/model"
	"github.com/rs/zerolog/log"
)

// Extractor grows a single fibre-network graph from a tubeness map and the
// underlying (denoised) intensity image.
type Extractor struct {
	params Params
}

// NewExtractor returns an Extractor configured with the given options over
// DefaultParams().
func NewExtractor(opts ...Option) *Extractor {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return &Extractor{params: p}
}

// Run executes the full FIRE pipeline: nucleation on tubeness, then
// iterative growth on image (both rows×cols, row-major). Returns
// ErrNoNucleation if zero nucleation points survive (spec.md §7/§8).
func (x *Extractor) Run(tubeness, image []float64, rows, cols int) (*model.Graph, error) {
	p := x.params
	nucCoords := NucleationPoints(tubeness, rows, cols, p.NucRadius, p.NucThresh, p.RThresh)
	if len(nucCoords) == 0 {
		return nil, ErrNoNucleation
	}

	g := model.NewGraph()
	var growing []int

	for _, xy := range nucCoords {
		nuc := g.AddNode(xy)
		g.Node(nuc).Nuc = nuc
		g.Node(nuc).Growing = false

		branches := newBranches(image, rows, cols, xy, p.RThresh/2, p.LMPThresh)
		for _, b := range branches {
			id := g.AddNode(b.XY)
			n := g.Node(id)
			n.Nuc = nuc
			n.Growing = true
			// direction = -vector/r: points back toward the nucleation point.
			n.Direction = model.Vec2{Row: -b.Vector.Row / b.R, Col: -b.Vector.Col / b.R}
			if _, err := g.AddEdge(nuc, id, b.R); err != nil {
				continue
			}
			growing = append(growing, id)
		}
	}

	log.Debug().Int("nucleations", len(nucCoords)).Int("nodes", g.NumNodes()).Int("fibres_to_grow", len(growing)).Msg("network: initialised")

	iter := 0
	for len(growing) > 0 {
		nodeXY := snapshotCoords(g)
		next := make([]int, 0, len(growing))
		for _, id := range growing {
			if !g.Node(id).Growing {
				continue
			}
			x.grow(g, id, nodeXY, image, rows, cols, p)
		}
		for _, id := range g.NodeIDs() {
			n := g.Node(id)
			if n != nil && n.Growing {
				next = append(next, id)
			}
		}
		growing = next
		iter++
		log.Debug().Int("iteration", iter).Int("nodes", g.NumNodes()).Int("left", len(growing)).Msg("network: growth step")
		if iter > 100000 {
			break // pathological safety valve; never hit on well-formed inputs
		}
	}

	return g, nil
}

// snapshotCoords captures every node's xy as of the start of the current
// outer growth iteration. The original builds tot_node_coord once per
// `while` pass, before its inner per-fibre loop runs, so a node created or
// moved by growing one fibre is invisible to merge checks against other
// fibres grown later in the same pass; merges against it become possible
// only starting the next pass. grow/findMergeTarget must consult this
// frozen snapshot rather than the live graph to preserve that ordering.
func snapshotCoords(g *model.Graph) map[int]model.Vec2 {
	coords := make(map[int]model.Vec2, g.NumNodes())
	for _, id := range g.NodeIDs() {
		if n := g.Node(id); n != nil {
			coords[id] = n.XY
		}
	}
	return coords
}

// grow applies one growth step to the end node id (spec.md §4.4 steps 1-5).
func (x *Extractor) grow(g *model.Graph, id int, nodeXY map[int]model.Vec2, image []float64, rows, cols int, p Params) {
	end := g.Node(id)
	neighbors := g.Neighbors(id)
	if len(neighbors) == 0 {
		end.Growing = false
		return
	}
	prior := neighbors[0]
	priorNode := g.Node(prior)
	nucNode := g.Node(end.Nuc)
	edgeID, _ := g.EdgeBetween(id, prior)
	edge := g.Edge(edgeID)

	branches := newBranches(image, rows, cols, end.XY, 2, p.LMPThresh)
	thetaThresh := p.ThetaThresh()

	var surviving []branchPoint
	for _, b := range branches {
		cos := branchAngle(end.Direction, b.Vector, b.R)
		if math.Abs(cos+1) <= thetaThresh {
			surviving = append(surviving, b)
		}
	}

	if len(surviving) == 0 {
		end.Growing = false
		if edge != nil && edge.R <= p.RThresh/10 {
			transferEdges(g, id, prior)
		}
		return
	}

	// Step 4: merge into an existing, unconnected node within 1px of a
	// surviving branch candidate.
	if mergeTarget, ok := findMergeTarget(nodeXY, id, neighbors, surviving); ok {
		transferEdges(g, id, mergeTarget)
		end.Growing = false
		return
	}

	// Step 5: extend or advance using the longest surviving branch.
	best := surviving[0]
	for _, b := range surviving[1:] {
		if b.R > best.R {
			best = b
		}
	}
	q := best.XY
	newEndVec := q.Sub(priorNode.XY)
	newEndR := newEndVec.Norm()

	newDirVec := q.Sub(nucNode.XY)
	newDirR := newDirVec.Norm()
	var direction model.Vec2
	if newDirR > 0 {
		direction = model.Vec2{Row: newDirVec.Row / newDirR, Col: newDirVec.Col / newDirR}
	}

	if newEndR >= p.RThresh {
		newID := g.AddNode(q)
		newNode := g.Node(newID)
		newNode.Nuc = end.Nuc
		newNode.Direction = direction
		newNode.Growing = true
		_, _ = g.AddEdge(id, newID, q.Dist(end.XY))
		end.Growing = false
		return
	}

	end.XY = q
	if edge != nil {
		edge.R = newEndR
	}
	end.Direction = direction
}

// branchAngle returns cos(theta) between direction and vector/r.
func branchAngle(direction, vector model.Vec2, r float64) float64 {
	if r == 0 {
		return -1
	}
	unit := model.Vec2{Row: vector.Row / r, Col: vector.Col / r}
	return direction.Row*unit.Row + direction.Col*unit.Col
}

// findMergeTarget returns the lowest-id node (other than id's already-
// connected neighbors) whose xy, as of the start of the current growth
// iteration (nodeXY, see snapshotCoords), lies within 1px of any
// surviving branch candidate, if any.
func findMergeTarget(nodeXY map[int]model.Vec2, id int, connected []int, branches []branchPoint) (int, bool) {
	connectedSet := make(map[int]bool, len(connected)+1)
	connectedSet[id] = true
	for _, n := range connected {
		connectedSet[n] = true
	}

	best := -1
	for nodeID, xy := range nodeXY {
		if connectedSet[nodeID] {
			continue
		}
		for _, b := range branches {
			if xy.Dist(b.XY) <= 1.0 {
				if best == -1 || nodeID < best {
					best = nodeID
				}
				break
			}
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// transferEdges moves every edge incident to `from` so it instead connects
// to `to`, then removes `from`. Used by both merge (step 4) and stub
// suppression (step 3).
func transferEdges(g *model.Graph, from, to int) {
	if from == to {
		return
	}
	for _, eid := range g.IncidentEdges(from) {
		e := g.Edge(eid)
		if e == nil {
			continue
		}
		other := e.Other(from)
		if other == to {
			g.RemoveEdge(eid)
			continue
		}
		if _, exists := g.EdgeBetween(to, other); exists {
			g.RemoveEdge(eid)
			continue
		}
		r := e.R
		g.RemoveEdge(eid)
		_, _ = g.AddEdge(to, other, r)
	}
	g.RemoveNode(from)
}
