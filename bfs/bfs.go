// Package bfs: breadth-first search driver.
//
// # BFS — Breadth-First Search
//
// BFS explores the graph level by level, guaranteeing the fewest-edges
// path to the goal (not necessarily the cheapest by edge length). Because
// every level is fully expanded before the next, testing for the goal at
// generation time (rather than at expansion time) is a sound
// optimization: the first-generated goal node is already optimal for
// edge count, so there's no need to wait for it to reach the front of the
// queue.
//
// Complexity: O(V + E) for graph mode; tree mode can revisit vertices
// along every distinct path, so its worst case is exponential in depth.
package bfs

import (
	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/graphstate"
	"github.com/nvardanyan/pathtrace/search"
)

// Search runs breadth-first search on g from startID to goalID.
func Search(g *geograph.Graph, startID, goalID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	mode := search.ModeTree
	if o.Graph {
		mode = search.ModeGraph
	}

	start := graphstate.New(g, startID)
	goal := search.GoalTestFunc(func(s search.State) bool { return s.ID() == goalID })
	lister := graphstate.Lister{G: g}

	node, found, err := search.Run(start, goal, lister, search.NewFIFOFrontier(),
		search.WithContext(o.Ctx),
		search.WithObserver(o.Observer),
		search.WithMode(mode),
		search.WithGoalTiming(search.TestOnGeneration),
	)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Result{Found: false}, nil
	}

	states, _ := node.Path()
	ids := make([]string, len(states))
	for i, s := range states {
		ids[i] = s.ID()
	}

	return &Result{Found: true, PathIDs: ids, Cost: node.PathG}, nil
}
