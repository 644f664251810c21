package ucs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/ucs"
)

func TestSearch_NilGraph(t *testing.T) {
	res, err := ucs.Search(nil, "A", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ucs.ErrNilGraph)
}

func TestSearch_EmptySource(t *testing.T) {
	g := geograph.NewGraph()
	res, err := ucs.Search(g, "", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ucs.ErrEmptySource)
}

// G1: triangle graph where the cheap two-hop path beats the direct edge.
func TestSearch_TriangleCheaperTwoHop(t *testing.T) {
	g := geograph.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 10)
	require.NoError(t, err)

	res, err := ucs.Search(g, "A", "C")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.PathIDs)
	assert.Equal(t, float64(2), res.Cost)
}

// G2: edge inflation on the direct edge should switch the winning path.
func TestSearch_EdgeInflationSwitchesPath(t *testing.T) {
	g := geograph.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	eid, err := g.AddEdge("A", "C", 1)
	require.NoError(t, err)

	res, err := ucs.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.PathIDs)

	require.NoError(t, g.SetLength(eid, 100))

	res, err = ucs.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.PathIDs)
}

// G3: disconnected goal returns Found=false, not an error.
func TestSearch_Disconnected(t *testing.T) {
	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	res, err := ucs.Search(g, "A", "B")
	require.NoError(t, err)
	assert.False(t, res.Found)
}
