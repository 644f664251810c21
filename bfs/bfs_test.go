package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvardanyan/pathtrace/bfs"
	"github.com/nvardanyan/pathtrace/geograph"
)

func TestSearch_NilGraph(t *testing.T) {
	res, err := bfs.Search(nil, "A", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestSearch_StartNotFound(t *testing.T) {
	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	res, err := bfs.Search(g, "missing", "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestSearch_DisconnectedGoal(t *testing.T) {
	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	res, err := bfs.Search(g, "A", "B", bfs.WithGraphMode())
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSearch_TriangleFewestEdges(t *testing.T) {
	g := geograph.NewGraph()
	_, err := g.AddEdge("A", "B", 100)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 100)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 1) // cheaper by length, but BFS ignores weight
	require.NoError(t, err)

	res, err := bfs.Search(g, "A", "C", bfs.WithGraphMode())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "C"}, res.PathIDs)
}
