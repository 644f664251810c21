// Package graphstate adapts a *geograph.Graph into the search package's
// State/Action/ActionLister contracts, so bfs, dfs, ucs, and astar can
// drive search.Run, and bidirectional its own frontiers, over a road
// network.
package graphstate

import (
	"fmt"

	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/search"
)

// State wraps a geograph vertex id as a search.State over g.
type State struct {
	g  *geograph.Graph
	id string
}

// New returns the State for vertex id in g. It does not validate that id
// exists; the algorithm packages check g.HasVertex before calling it.
func New(g *geograph.Graph, id string) State {
	return State{g: g, id: id}
}

// ID implements search.State.
func (s State) ID() string { return s.id }

// Graph returns the underlying graph, for callers that need vertex
// coordinates. The heuristic package does not use it; it takes raw
// coordinates or a heuristic.CoordLookup.
func (s State) Graph() *geograph.Graph { return s.g }

// ReverseActions implements search.ReversibleState: virtual actions that,
// applied from s, move to a predecessor of s in the original (forward)
// graph — i.e. some vertex X with an edge X->s. This lets a backward
// search frontier walk from the goal toward the start using the same
// Action/Apply contract the forward frontier uses, even though the
// underlying edge direction is reversed.
func (s State) ReverseActions() []search.Action {
	edges, err := s.g.ReverseNeighbors(s.id)
	if err != nil {
		return nil
	}
	actions := make([]search.Action, 0, len(edges))
	for _, e := range edges {
		predecessor := e.From
		if e.From == s.id {
			predecessor = e.To
		}
		actions = append(actions, Action{g: s.g, from: s.id, to: predecessor, cost: e.Length})
	}

	return actions
}

// Action is one traversal of a geograph edge from one vertex to another.
type Action struct {
	g        *geograph.Graph
	from, to string
	cost     float64
}

// Cost implements search.Action.
func (a Action) Cost() float64 { return a.cost }

// Apply implements search.Action.
func (a Action) Apply() (search.State, error) {
	return State{g: a.g, id: a.to}, nil
}

// Source implements search.Action.
func (a Action) Source() search.State { return State{g: a.g, id: a.from} }

// String aids debugging and trace output.
func (a Action) String() string {
	return fmt.Sprintf("%s->%s (%.1fm)", a.from, a.to, a.cost)
}

// Lister adapts *geograph.Graph as a search.ActionLister over forward
// (From->To) edges.
type Lister struct {
	G *geograph.Graph
}

// Actions implements search.ActionLister.
func (l Lister) Actions(s search.State) ([]search.Action, error) {
	gs, ok := s.(State)
	if !ok {
		return nil, fmt.Errorf("graphstate: unexpected state type %T", s)
	}
	edges, err := l.G.Neighbors(gs.id)
	if err != nil {
		return nil, err
	}
	out := make([]search.Action, 0, len(edges))
	for _, e := range edges {
		to := e.To
		if e.To == gs.id && !e.Directed {
			to = e.From
		}
		if to == gs.id {
			continue
		}
		out = append(out, Action{g: l.G, from: gs.id, to: to, cost: e.Length})
	}

	return out, nil
}

// ReverseLister adapts *geograph.Graph as a search.ActionLister over
// ReverseActions, for bidirectional search's backward frontier.
type ReverseLister struct {
	G *geograph.Graph
}

// Actions implements search.ActionLister.
func (l ReverseLister) Actions(s search.State) ([]search.Action, error) {
	gs, ok := s.(State)
	if !ok {
		return nil, fmt.Errorf("graphstate: unexpected state type %T", s)
	}

	return gs.ReverseActions(), nil
}
