package graphstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/graphstate"
	"github.com/nvardanyan/pathtrace/search"
)

func triangleGraph(t *testing.T) *geograph.Graph {
	t.Helper()
	g := geograph.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("C"))
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 5)
	require.NoError(t, err)

	return g
}

func TestLister_Actions(t *testing.T) {
	g := triangleGraph(t)
	l := graphstate.Lister{G: g}

	actions, err := l.Actions(graphstate.New(g, "A"))
	require.NoError(t, err)
	require.Len(t, actions, 2)

	var ids []string
	for _, a := range actions {
		s, err := a.Apply()
		require.NoError(t, err)
		ids = append(ids, s.ID())
	}
	assert.ElementsMatch(t, []string{"B", "C"}, ids)
}

func TestState_ReverseActions(t *testing.T) {
	g := triangleGraph(t)
	s := graphstate.New(g, "C")

	rev, ok := search.State(s).(search.ReversibleState)
	require.True(t, ok)

	actions := rev.ReverseActions()
	require.Len(t, actions, 2)
}
