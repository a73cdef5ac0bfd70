package persist

import (
	"testing"

	"github.com/fibrenet/pyfibre-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeGraph_RoundTripIsBitExact(t *testing.T) {
	g := model.NewGraph()
	a := g.AddNode(model.Vec2{Row: 1.5, Col: 2.25})
	b := g.AddNode(model.Vec2{Row: -3.125, Col: 0})
	c := g.AddNode(model.Vec2{Row: 10, Col: 10.000001})
	_, err := g.AddEdge(a, b, 1.5)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 2.0)
	require.NoError(t, err)

	data, err := EncodeGraph(g)
	require.NoError(t, err)

	got, err := DecodeGraph(data)
	require.NoError(t, err)

	assert.ElementsMatch(t, g.NodeIDs(), got.NodeIDs())
	for _, id := range g.NodeIDs() {
		want := g.Node(id)
		have := got.Node(id)
		require.NotNil(t, have)
		assert.Equal(t, want.XY, have.XY)
	}
	assert.Equal(t, g.NumEdges(), got.NumEdges())
	for _, id := range g.EdgeIDs() {
		e := g.Edge(id)
		_, ok := got.EdgeBetween(e.A, e.B)
		assert.True(t, ok)
	}
}

// TestEncodeDecodeGraph_NonContiguousIDsSurvive exercises AddNodeWithID /
// AddEdgeWithID on a graph whose ids have gaps, as FIRE's merge/stub
// suppression leaves behind after RemoveNode.
func TestEncodeDecodeGraph_NonContiguousIDsSurvive(t *testing.T) {
	g := model.NewGraph()
	a := g.AddNode(model.Vec2{Row: 0, Col: 0})
	b := g.AddNode(model.Vec2{Row: 1, Col: 0})
	c := g.AddNode(model.Vec2{Row: 2, Col: 0})
	_, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 1)
	require.NoError(t, err)

	g.RemoveNode(a) // leaves a gap in node ids; b survives with its original id

	data, err := EncodeGraph(g)
	require.NoError(t, err)

	got, err := DecodeGraph(data)
	require.NoError(t, err)

	assert.ElementsMatch(t, g.NodeIDs(), got.NodeIDs())
	assert.Contains(t, got.NodeIDs(), b)
	assert.Contains(t, got.NodeIDs(), c)
	assert.NotContains(t, got.NodeIDs(), a)

	// Adding a fresh node after decode must not collide with any loaded id.
	fresh := got.AddNode(model.Vec2{Row: 9, Col: 9})
	assert.NotContains(t, []int{b, c}, fresh)
}

func TestDecodeGraph_RejectsDirectedOrMultigraph(t *testing.T) {
	_, err := DecodeGraph([]byte(`{"directed":true,"multigraph":false,"graph":{},"nodes":[],"links":[]}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = DecodeGraph([]byte(`{"directed":false,"multigraph":true,"graph":{},"nodes":[],"links":[]}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestEncodeGraph_EmptyGraph(t *testing.T) {
	g := model.NewGraph()
	data, err := EncodeGraph(g)
	require.NoError(t, err)

	got, err := DecodeGraph(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumNodes())
	assert.Equal(t, 0, got.NumEdges())
}
