package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/registry"
)

func TestNew_LoadsManifest(t *testing.T) {
	algos, heuristics, err := registry.New()
	require.NoError(t, err)
	assert.Contains(t, algos.List(), "ucs")
	assert.Contains(t, algos.List(), "dstar_lite")
	assert.Contains(t, heuristics.List(), "haversine")
}

func TestAlgorithmRegistry_UnknownName(t *testing.T) {
	algos, _, err := registry.New()
	require.NoError(t, err)

	g := geograph.NewGraph()
	_, err = algos.Run("not-a-real-algorithm", g, "A", "B", registry.RunOptions{})
	assert.ErrorIs(t, err, registry.ErrUnknownAlgorithm)
}

func TestAlgorithmRegistry_RunUCS(t *testing.T) {
	algos, _, err := registry.New()
	require.NoError(t, err)

	g := geograph.NewGraph()
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 10)
	require.NoError(t, err)

	res, err := algos.Run("ucs", g, "A", "C", registry.RunOptions{})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, float64(2), res.Cost)
}

func TestAlgorithmRegistry_BFSAndDFSVariantsAllReachable(t *testing.T) {
	algos, _, err := registry.New()
	require.NoError(t, err)

	g := geograph.NewGraph()
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)

	for _, name := range []string{"bfs_tree", "bfs_graph", "dfs_tree", "dfs_graph"} {
		res, err := algos.Run(name, g, "A", "C", registry.RunOptions{})
		require.NoError(t, err, name)
		assert.True(t, res.Found, name)
	}
}

func TestAlgorithmRegistry_RunAStarDefaultsHeuristic(t *testing.T) {
	algos, _, err := registry.New()
	require.NoError(t, err)

	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("A", 40.0, 44.0))
	require.NoError(t, g.AddVertex("B", 40.1, 44.1))
	_, err = g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	info, err := algos.Info("astar")
	require.NoError(t, err)
	assert.True(t, info.RequiresHeuristic)

	res, err := algos.Run("astar", g, "A", "B", registry.RunOptions{})
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestAlgorithmRegistry_RunDStarLiteRespectsChosenHeuristic(t *testing.T) {
	algos, heuristics, err := registry.New()
	require.NoError(t, err)

	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("A", 40.0, 44.0))
	require.NoError(t, g.AddVertex("B", 40.1, 44.1))
	_, err = g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	zero, err := heuristics.Build("zero", g)
	require.NoError(t, err)

	res, err := algos.Run("dstar_lite", g, "A", "B", registry.RunOptions{TwoPointHeuristic: zero})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, float64(5), res.Cost)
}

func TestHeuristicRegistry_BuildHaversine(t *testing.T) {
	_, heuristics, err := registry.New()
	require.NoError(t, err)

	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("A", 0.0, 0.0))
	require.NoError(t, g.AddVertex("B", 0.0, 1.0))

	h, err := heuristics.Build("haversine", g)
	require.NoError(t, err)
	assert.Greater(t, h("A", "B"), 0.0)
}

func TestHeuristicRegistry_UnknownName(t *testing.T) {
	_, heuristics, err := registry.New()
	require.NoError(t, err)

	_, err = heuristics.Build("does-not-exist", geograph.NewGraph())
	assert.ErrorIs(t, err, registry.ErrUnknownHeuristic)
}
