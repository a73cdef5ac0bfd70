package model_test

import (
	"testing"

	"github.com/fibrenet/pyfibre-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddNodeEdge_Invariants(t *testing.T) {
	g := model.NewGraph()
	a := g.AddNode(model.Vec2{Row: 0, Col: 0})
	b := g.AddNode(model.Vec2{Row: 3, Col: 4})

	eid, err := g.AddEdge(a, b, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Degree(a))
	assert.Equal(t, 1, g.Degree(b))
	assert.NoError(t, g.Validate())

	e := g.Edge(eid)
	require.NotNil(t, e)
	assert.Equal(t, 5.0, e.R)
}

func TestGraph_AddEdge_RejectsSelfLoopAndBadRadius(t *testing.T) {
	g := model.NewGraph()
	a := g.AddNode(model.Vec2{})

	_, err := g.AddEdge(a, a, 1)
	assert.ErrorIs(t, err, model.ErrSelfLoop)

	b := g.AddNode(model.Vec2{Row: 1})
	_, err = g.AddEdge(a, b, 0)
	assert.ErrorIs(t, err, model.ErrBadRadius)
}

func TestGraph_AddEdge_RejectsDuplicate(t *testing.T) {
	g := model.NewGraph()
	a := g.AddNode(model.Vec2{})
	b := g.AddNode(model.Vec2{Row: 1})
	_, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)

	_, err = g.AddEdge(a, b, 2)
	assert.ErrorIs(t, err, model.ErrDuplicateEdge)
}

func TestGraph_GrowingNodeMustHaveDegreeOne(t *testing.T) {
	g := model.NewGraph()
	a := g.AddNode(model.Vec2{})
	b := g.AddNode(model.Vec2{Row: 1})
	c := g.AddNode(model.Vec2{Row: 2})
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(a, c, 1)

	g.Node(a).Growing = true
	assert.Error(t, g.Validate())

	g.Node(a).Growing = false
	assert.NoError(t, g.Validate())
}

func TestImageStack_ValidateRoleCombinations(t *testing.T) {
	s := model.NewImageStack(2, 2)
	s.Channels[model.RoleSHG] = []float64{0, 0.5, 1, 0.25}
	assert.NoError(t, s.Validate())

	s.Channels[model.RolePL] = []float64{0, 0, 0, 0}
	assert.NoError(t, s.Validate())

	s.Channels[model.RoleTrans] = []float64{0, 0, 0, 0}
	assert.NoError(t, s.Validate())
}

func TestImageStack_ValidateRejectsShapeMismatch(t *testing.T) {
	s := model.NewImageStack(2, 2)
	s.Channels[model.RoleSHG] = []float64{0, 0, 0} // wrong length
	assert.ErrorIs(t, s.Validate(), model.ErrShapeMismatch)
}

func TestImageStack_ValidateRejectsNonFinite(t *testing.T) {
	s := model.NewImageStack(1, 1)
	s.Channels[model.RoleSHG] = []float64{nanValue()}
	assert.ErrorIs(t, s.Validate(), model.ErrNonFinite)
}

func nanValue() float64 {
	var z float64
	return z / z
}
