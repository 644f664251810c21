package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvardanyan/pathtrace/search"
)

// chainState/chainAction model a trivial linear chain 0->1->2->...->n-1,
// independent of geograph, to exercise the search kernel in isolation.

type chainGraph struct {
	n int
}

type chainState struct {
	id int
	g  *chainGraph
}

func (s chainState) ID() string { return itoa(s.id) }

type chainAction struct {
	from, to int
	g        *chainGraph
}

func (a chainAction) Cost() float64 { return 1 }
func (a chainAction) Apply() (search.State, error) {
	return chainState{id: a.to, g: a.g}, nil
}
func (a chainAction) Source() search.State { return chainState{id: a.from, g: a.g} }

type chainLister struct{}

func (chainLister) Actions(s search.State) ([]search.Action, error) {
	cs := s.(chainState)
	if cs.id+1 >= cs.g.n {
		return nil, nil
	}

	return []search.Action{chainAction{from: cs.id, to: cs.id + 1, g: cs.g}}, nil
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}

	return string(buf[pos:])
}

func TestRun_FIFOFindsGoal(t *testing.T) {
	g := &chainGraph{n: 5}
	start := chainState{id: 0, g: g}
	goal := search.GoalTestFunc(func(s search.State) bool { return s.(chainState).id == 4 })

	node, found, err := search.Run(start, goal, chainLister{}, search.NewFIFOFrontier(),
		search.WithGoalTiming(search.TestOnExpansion))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "4", node.State.ID())
	assert.Equal(t, float64(4), node.PathG)

	states, _ := node.Path()
	require.Len(t, states, 5)
	assert.Equal(t, "0", states[0].ID())
	assert.Equal(t, "4", states[4].ID())
}

func TestRun_NoGoalExhaustsFrontier(t *testing.T) {
	g := &chainGraph{n: 3}
	start := chainState{id: 0, g: g}
	goal := search.GoalTestFunc(func(s search.State) bool { return s.(chainState).id == 99 })

	node, found, err := search.Run(start, goal, chainLister{}, search.NewFIFOFrontier())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, node)
}

func TestRun_BestFirstUCSEval(t *testing.T) {
	g := &chainGraph{n: 6}
	start := chainState{id: 0, g: g}
	goal := search.GoalTestFunc(func(s search.State) bool { return s.(chainState).id == 5 })

	frontier := search.NewBestFirstFrontier(search.UCSEval)
	node, found, err := search.Run(start, goal, chainLister{}, frontier)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, float64(5), node.PathG)
}

func TestRun_ObserverSeesPopulatedFrontier(t *testing.T) {
	g := &chainGraph{n: 5}
	start := chainState{id: 0, g: g}
	goal := search.GoalTestFunc(func(s search.State) bool { return s.(chainState).id == 4 })

	var events []search.TraceEvent
	obs := search.ObserverFunc(func(e search.TraceEvent) { events = append(events, e) })

	_, found, err := search.Run(start, goal, chainLister{}, search.NewFIFOFrontier(),
		search.WithObserver(obs), search.WithGoalTiming(search.TestOnExpansion))
	require.NoError(t, err)
	require.True(t, found)
	require.NotEmpty(t, events)

	sawPopulatedFrontier := false
	for _, e := range events {
		if e.Kind == search.EventNodeExpanded && len(e.Frontier) > 0 {
			sawPopulatedFrontier = true
		}
	}
	assert.True(t, sawPopulatedFrontier, "expected at least one node_expanded event to carry a non-empty frontier")
}

func TestFrontier_FIFOAndLIFOReportIDsInPopOrder(t *testing.T) {
	fifo := search.NewFIFOFrontier()
	fifo.Push(&search.Node{State: chainState{id: 1}})
	fifo.Push(&search.Node{State: chainState{id: 2}})
	assert.Equal(t, []string{"1", "2"}, search.Snapshot(fifo))

	lifo := search.NewLIFOFrontier()
	lifo.Push(&search.Node{State: chainState{id: 1}})
	lifo.Push(&search.Node{State: chainState{id: 2}})
	assert.Equal(t, []string{"2", "1"}, search.Snapshot(lifo))
}

func TestFrontier_BestFirstReportsIDsInEvalOrder(t *testing.T) {
	frontier := search.NewBestFirstFrontier(search.UCSEval)
	frontier.Push(&search.Node{State: chainState{id: 1}, PathG: 5})
	frontier.Push(&search.Node{State: chainState{id: 2}, PathG: 1})
	assert.Equal(t, []string{"2", "1"}, search.Snapshot(frontier))
}

func TestRun_NilStartReturnsError(t *testing.T) {
	_, found, err := search.Run(nil, search.GoalTestFunc(func(search.State) bool { return true }),
		chainLister{}, search.NewFIFOFrontier())
	require.Error(t, err)
	assert.False(t, found)
	assert.ErrorIs(t, err, search.ErrNilState)
}
