package bidirectional

import (
	"math"

	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/graphstate"
	"github.com/nvardanyan/pathtrace/search"
)

// Search runs bidirectional uniform-cost search on g between startID and
// goalID: a forward frontier from start and a backward frontier from goal
// expand simultaneously, stopping as soon as neither frontier's best
// remaining cost can possibly beat the best complete path found so far —
// the min(g_min_fwd, g_min_bwd) >= C_best termination rule.
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
	if !g.HasVertex(goalID) {
		return nil, ErrGoalNotFound
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if startID == goalID {
		return &Result{Found: true, PathIDs: []string{startID}, Cost: 0, MeetNode: startID}, nil
	}

	fwdFrontier := search.NewBestFirstFrontier(search.UCSEval)
	bwdFrontier := search.NewBestFirstFrontier(search.UCSEval)
	fwdBest := fwdFrontier.(search.Bester)
	bwdBest := bwdFrontier.(search.Bester)

	fwdRoot := &search.Node{State: graphstate.New(g, startID)}
	bwdRoot := &search.Node{State: graphstate.New(g, goalID)}
	fwdFrontier.Push(fwdRoot)
	bwdFrontier.Push(bwdRoot)

	fwdReached := map[string]*search.Node{startID: fwdRoot}
	bwdReached := map[string]*search.Node{goalID: bwdRoot}

	fwdLister := graphstate.Lister{G: g}
	bwdLister := graphstate.ReverseLister{G: g}

	bestTotal := math.Inf(1)
	var meetID string
	fwdExpanded := []string{}
	bwdExpanded := []string{}

	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		bf, okF := fwdBest.Best()
		bb, okB := bwdBest.Best()
		if !okF && !okB {
			break
		}
		if math.Min(bf, bb) >= bestTotal {
			break
		}

		expandForward := okF && (!okB || bf <= bb)

		if expandForward {
			n, ok := fwdFrontier.Pop()
			if !ok {
				continue
			}
			fwdExpanded = append(fwdExpanded, n.State.ID())
			if bn, ok := bwdReached[n.State.ID()]; ok {
				if total := n.PathG + bn.PathG; total < bestTotal {
					bestTotal = total
					meetID = n.State.ID()
				}
			}
			expandSide(n, fwdLister, fwdFrontier, fwdReached)
			emitExpanded(o.Observer, n, search.DirectionForward, fwdFrontier, fwdExpanded)
		} else {
			n, ok := bwdFrontier.Pop()
			if !ok {
				continue
			}
			bwdExpanded = append(bwdExpanded, n.State.ID())
			if fn, ok := fwdReached[n.State.ID()]; ok {
				if total := n.PathG + fn.PathG; total < bestTotal {
					bestTotal = total
					meetID = n.State.ID()
				}
			}
			expandSide(n, bwdLister, bwdFrontier, bwdReached)
			emitExpanded(o.Observer, n, search.DirectionBackward, bwdFrontier, bwdExpanded)
		}
	}

	if meetID == "" {
		return &Result{Found: false}, nil
	}

	fwdNode := fwdReached[meetID]
	bwdNode := bwdReached[meetID]

	fwdStates, _ := fwdNode.Path()
	bwdStates, _ := bwdNode.Path()

	ids := make([]string, 0, len(fwdStates)+len(bwdStates)-1)
	for _, s := range fwdStates {
		ids = append(ids, s.ID())
	}
	for i := len(bwdStates) - 2; i >= 0; i-- {
		ids = append(ids, bwdStates[i].ID())
	}

	if o.Observer != nil {
		all := make([]string, 0, len(fwdExpanded)+len(bwdExpanded))
		all = append(all, fwdExpanded...)
		all = append(all, bwdExpanded...)
		o.Observer.Notify(search.TraceEvent{
			Kind:     search.EventGoalFound,
			StateID:  meetID,
			PathG:    bestTotal,
			Frontier: append(search.Snapshot(fwdFrontier), search.Snapshot(bwdFrontier)...),
			Expanded: all,
		})
	}

	return &Result{Found: true, PathIDs: ids, Cost: bestTotal, MeetNode: meetID}, nil
}

// expandSide generates children of n via lister and pushes improved
// entries into frontier/reached.
func expandSide(n *search.Node, lister search.ActionLister, frontier search.Frontier, reached map[string]*search.Node) {
	actions, err := lister.Actions(n.State)
	if err != nil {
		return
	}
	for _, a := range actions {
		next, err := a.Apply()
		if err != nil {
			continue
		}
		g := n.PathG + a.Cost()
		if cur, ok := reached[next.ID()]; ok && g >= cur.PathG {
			continue
		}
		child := &search.Node{State: next, Parent: n, Action: a, PathG: g, Depth: n.Depth + 1}
		reached[next.ID()] = child
		if frontier.Contains(next.ID()) {
			frontier.Remove(next.ID())
		}
		frontier.Push(child)
	}
}

// emitExpanded reports one side's expansion after its children have been
// queued, mirroring search.Run's notifyExpanded: frontier and expanded are
// this side's own, taken fresh so the Observer can retain them safely.
func emitExpanded(obs search.Observer, n *search.Node, dir search.Direction, frontier search.Frontier, expanded []string) {
	if obs == nil {
		return
	}
	expSnap := make([]string, len(expanded))
	copy(expSnap, expanded)
	obs.Notify(search.TraceEvent{
		Kind:      search.EventNodeExpanded,
		StateID:   n.State.ID(),
		Direction: dir,
		Depth:     n.Depth,
		PathG:     n.PathG,
		Frontier:  search.Snapshot(frontier),
		Expanded:  expSnap,
	})
}
