// Package dfs: depth-first search driver.
//
// # DFS — Depth-First Search
//
// DFS explores as far as possible along each branch before backtracking,
// using a LIFO frontier. It gives no optimality guarantee on path length
// or cost; it is useful for connectivity checks and as a baseline
// comparison in the trace visualizer.
//
// Complexity: O(V + E) in graph mode; tree mode may revisit vertices
// along distinct paths.
package dfs

import (
	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/graphstate"
	"github.com/nvardanyan/pathtrace/search"
)

// Search runs depth-first search on g from startID to goalID.
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

	node, found, err := search.Run(start, goal, lister, search.NewLIFOFrontier(),
		search.WithContext(o.Ctx),
		search.WithObserver(o.Observer),
		search.WithMode(mode),
		search.WithGoalTiming(search.TestOnExpansion),
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
