// File: graph.go
// Node-link JSON codec for model.Graph (spec.md §6): round-trips node ids,
// xy, and edge r bit-exactly.
package persist

import (
	"encoding/json"

	"github.com/fibrenet/pyfibre-go/model"
)

// nodeLinkNode is one entry of the "nodes" array.
type nodeLinkNode struct {
	ID int        `json:"id"`
	XY [2]float64 `json:"xy"`
}

// nodeLinkLink is one entry of the "links" array.
type nodeLinkLink struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	R      float64 `json:"r"`
}

// nodeLinkDoc is the on-disk `<stem>_network.json` shape.
type nodeLinkDoc struct {
	Directed   bool                   `json:"directed"`
	Multigraph bool                   `json:"multigraph"`
	Graph      map[string]interface{} `json:"graph"`
	Nodes      []nodeLinkNode         `json:"nodes"`
	Links      []nodeLinkLink         `json:"links"`
}

// EncodeGraph renders g as the node-link JSON document described in
// spec.md §6.
func EncodeGraph(g *model.Graph) ([]byte, error) {
	doc := nodeLinkDoc{
		Directed:   false,
		Multigraph: false,
		Graph:      map[string]interface{}{},
	}
	for _, id := range g.NodeIDs() {
		n := g.Node(id)
		doc.Nodes = append(doc.Nodes, nodeLinkNode{ID: id, XY: [2]float64{n.XY.Row, n.XY.Col}})
	}
	for _, id := range g.EdgeIDs() {
		e := g.Edge(id)
		doc.Links = append(doc.Links, nodeLinkLink{Source: e.A, Target: e.B, R: e.R})
	}
	return json.Marshal(doc)
}

// DecodeGraph parses a node-link JSON document back into a model.Graph,
// preserving node ids and edge r exactly.
func DecodeGraph(data []byte) (*model.Graph, error) {
	var doc nodeLinkDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Directed || doc.Multigraph {
		return nil, ErrUnsupportedVersion
	}

	g := model.NewGraph()
	for _, n := range doc.Nodes {
		if err := g.AddNodeWithID(n.ID, model.Vec2{Row: n.XY[0], Col: n.XY[1]}); err != nil {
			return nil, err
		}
	}
	for i, l := range doc.Links {
		if err := g.AddEdgeWithID(i, l.Source, l.Target, l.R); err != nil {
			return nil, err
		}
	}
	return g, nil
}
