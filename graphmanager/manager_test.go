package graphmanager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/graphmanager"
)

func triangleGraph(t *testing.T) *geograph.Graph {
	t.Helper()
	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("A", 40.0, 44.0))
	require.NoError(t, g.AddVertex("B", 40.1, 44.1))
	require.NoError(t, g.AddVertex("C", 40.2, 44.2))
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)

	return g
}

func TestManager_RegisterAndGet(t *testing.T) {
	m := graphmanager.New()
	g := triangleGraph(t)
	require.NoError(t, m.Register("city1", "City One", "a test graph", g))

	got, meta, err := m.Get("city1")
	require.NoError(t, err)
	assert.Same(t, g, got)
	assert.Equal(t, 3, meta.NodeCount)
	assert.Equal(t, 2, meta.EdgeCount)
	assert.Equal(t, 40.0, meta.MinLat)
	assert.Equal(t, 40.2, meta.MaxLat)
}

func TestManager_GetUnknownGraph(t *testing.T) {
	m := graphmanager.New()
	_, _, err := m.Get("does-not-exist")
	assert.ErrorIs(t, err, graphmanager.ErrGraphNotFound)
}

func TestManager_List(t *testing.T) {
	m := graphmanager.New()
	require.NoError(t, m.Register("b", "B", "", triangleGraph(t)))
	require.NoError(t, m.Register("a", "A", "", triangleGraph(t)))

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].GraphID)
	assert.Equal(t, "b", list[1].GraphID)
}

func TestManager_FindNode_DirectMatch(t *testing.T) {
	m := graphmanager.New()
	require.NoError(t, m.Register("g1", "G1", "", triangleGraph(t)))

	id, err := m.FindNode("g1", "B")
	require.NoError(t, err)
	assert.Equal(t, "B", id)
}

func TestManager_FindNode_IntegerNormalization(t *testing.T) {
	m := graphmanager.New()
	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("42"))
	require.NoError(t, m.Register("osm", "OSM", "", g))

	id, err := m.FindNode("osm", "042")
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestManager_FindNode_CaseInsensitive(t *testing.T) {
	m := graphmanager.New()
	require.NoError(t, m.Register("g1", "G1", "", triangleGraph(t)))

	id, err := m.FindNode("g1", "b")
	require.NoError(t, err)
	assert.Equal(t, "B", id)
}

func TestManager_FindNode_NotFound(t *testing.T) {
	m := graphmanager.New()
	require.NoError(t, m.Register("g1", "G1", "", triangleGraph(t)))

	_, err := m.FindNode("g1", "Z")
	assert.ErrorIs(t, err, graphmanager.ErrNodeNotFound)
}

func TestManager_ValidateNode(t *testing.T) {
	m := graphmanager.New()
	require.NoError(t, m.Register("g1", "G1", "", triangleGraph(t)))

	v, err := m.ValidateNode("g1", "a")
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "A", v.NodeID)
	assert.Equal(t, 40.0, v.Lat)

	v2, err := m.ValidateNode("g1", "nope")
	require.NoError(t, err)
	assert.False(t, v2.Valid)
}

func TestManager_Reachable(t *testing.T) {
	m := graphmanager.New()
	require.NoError(t, m.Register("g1", "G1", "", triangleGraph(t)))

	reachable, err := m.Reachable("g1", "A", "C")
	require.NoError(t, err)
	assert.True(t, reachable)
}

func TestManager_Reachable_Disconnected(t *testing.T) {
	m := graphmanager.New()
	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("X"))
	require.NoError(t, g.AddVertex("Y"))
	require.NoError(t, m.Register("g1", "G1", "", g))

	reachable, err := m.Reachable("g1", "X", "Y")
	require.NoError(t, err)
	assert.False(t, reachable)
}

func TestManager_SerializeGraph(t *testing.T) {
	m := graphmanager.New()
	require.NoError(t, m.Register("g1", "G1", "desc", triangleGraph(t)))

	raw, err := m.SerializeGraph("g1")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"graph_id":"g1"`)
	assert.Contains(t, string(raw), `"source":"A"`)
}

func TestManager_SerializeGraph_CollapsesParallelEdges(t *testing.T) {
	m := graphmanager.New()
	g := geograph.NewGraph(geograph.WithMultiEdges())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	require.NoError(t, m.Register("g1", "G1", "", g))

	raw, err := m.SerializeGraph("g1")
	require.NoError(t, err)
	edges := gjson.GetBytes(raw, "edges").Array()
	require.Len(t, edges, 1)
	assert.Equal(t, float64(2), edges[0].Get("length").Float())
}
