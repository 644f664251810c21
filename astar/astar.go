package astar

import (
	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/graphstate"
	"github.com/nvardanyan/pathtrace/search"
)

// Search runs A* on g from startID to goalID using the heuristic supplied
// via WithHeuristic. Returns ErrHeuristicRequired if none was given.
func Search(g *geograph.Graph, startID, goalID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if startID == "" {
		return nil, ErrEmptySource
	}
	if !g.HasVertex(startID) {
		return nil, ErrSourceNotFound
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Heuristic == nil {
		return nil, ErrHeuristicRequired
	}

	start := graphstate.New(g, startID)
	goal := search.GoalTestFunc(func(s search.State) bool { return s.ID() == goalID })
	lister := graphstate.Lister{G: g}

	eval := search.AStarEvalFunc(func(s search.State) float64 { return o.Heuristic(s.ID()) })
	frontier := search.NewBestFirstFrontier(eval)

	node, found, err := search.Run(start, goal, lister, frontier,
		search.WithContext(o.Ctx),
		search.WithObserver(o.Observer),
		search.WithMode(search.ModeGraph),
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
