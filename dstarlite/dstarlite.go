package dstarlite

import "github.com/nvardanyan/pathtrace/geograph"

// New constructs a Planner for incremental shortest-path replanning from
// startID to goalID over g, using h as the (admissible, consistent)
// heuristic. It performs an initial computeShortestPath before returning.
func New(g *geograph.Graph, startID, goalID string, h Heuristic) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartNotFound
	}
	if !g.HasVertex(goalID) {
		return nil, ErrGoalNotFound
	}

	p := &Planner{
		g:           g,
		h:           h,
		pq:          newPriorityQueue(),
		startID:     startID,
		goalID:      goalID,
		lastStartID: startID,
		gScore:      make(map[string]float64),
		rhs:         make(map[string]float64),
	}

	p.rhs[goalID] = 0
	p.pq.Insert(goalID, p.calcKey(goalID))

	if err := p.computeShortestPath(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Planner) gOf(id string) float64 {
	if v, ok := p.gScore[id]; ok {
		return v
	}

	return inf
}

func (p *Planner) rhsOf(id string) float64 {
	if id == p.goalID {
		return 0
	}
	if v, ok := p.rhs[id]; ok {
		return v
	}

	return inf
}

func (p *Planner) calcKey(id string) key {
	m := min2(p.gOf(id), p.rhsOf(id))

	return key{k1: m + p.h(p.startID, id) + p.km, k2: m}
}

// updateVertex recomputes id's rhs from its successors (forward edges)
// and re-queues it if g and rhs disagree, dropping it from the queue if
// they now match — the core D*-Lite repair step.
func (p *Planner) updateVertex(id string) error {
	if id != p.goalID {
		best := inf
		edges, err := p.g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, e := range edges {
			succ := e.To
			if e.To == id && !e.Directed {
				succ = e.From
			}
			if succ == id {
				continue
			}
			if cand := e.Length + p.gOf(succ); cand < best {
				best = cand
			}
		}
		p.rhs[id] = best
	}

	p.pq.Remove(id)
	if p.gOf(id) != p.rhsOf(id) {
		p.pq.Insert(id, p.calcKey(id))
	}

	return nil
}

// computeShortestPath repairs g/rhs values until the start vertex is
// locally consistent and no queued key can beat it — the standard
// D*-Lite main loop.
func (p *Planner) computeShortestPath() error {
	for {
		top := p.pq.TopKey()
		startKey := p.calcKey(p.startID)
		if !top.less(startKey) && p.rhsOf(p.startID) == p.gOf(p.startID) {
			return nil
		}

		u, ok := p.pq.PopMin()
		if !ok {
			return nil
		}

		kNew := p.calcKey(u)
		kOld := top
		if kOld.less(kNew) {
			p.pq.Insert(u, kNew)
			continue
		}

		if p.gOf(u) > p.rhsOf(u) {
			p.gScore[u] = p.rhsOf(u)
			preds, err := p.predecessors(u)
			if err != nil {
				return err
			}
			for _, s := range preds {
				if err := p.updateVertex(s); err != nil {
					return err
				}
			}
		} else {
			p.gScore[u] = inf
			preds, err := p.predecessors(u)
			if err != nil {
				return err
			}
			preds = append(preds, u)
			for _, s := range preds {
				if err := p.updateVertex(s); err != nil {
					return err
				}
			}
		}
	}
}

// predecessors returns the vertices with a forward edge into id.
func (p *Planner) predecessors(id string) ([]string, error) {
	edges, err := p.g.ReverseNeighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		pred := e.From
		if e.From == id {
			pred = e.To
		}
		out = append(out, pred)
	}

	return out, nil
}

// UpdateEdge reports that eid's length has changed to newLength: both
// endpoints of the changed edge are updated, then computeShortestPath
// repairs the plan in a single pass.
func (p *Planner) UpdateEdge(eid string, newLength float64) error {
	e, err := p.g.GetEdge(eid)
	if err != nil {
		return ErrEdgeNotFound
	}
	if err := p.g.SetLength(eid, newLength); err != nil {
		return err
	}

	p.km += p.h(p.lastStartID, p.startID)
	p.lastStartID = p.startID

	if err := p.updateVertex(e.From); err != nil {
		return err
	}
	if err := p.updateVertex(e.To); err != nil {
		return err
	}

	return p.computeShortestPath()
}

// MoveStart advances the agent's current position to newStartID. Moving
// the start is what the km offset compensates for: the heuristic
// h(start, ·) changes every time start moves, but previously queued keys
// were computed against the old start, so km keeps them comparable.
func (p *Planner) MoveStart(newStartID string) error {
	if !p.g.HasVertex(newStartID) {
		return ErrStartNotFound
	}
	p.km += p.h(p.lastStartID, newStartID)
	p.lastStartID = newStartID
	p.startID = newStartID

	return p.computeShortestPath()
}

// Path reconstructs the current shortest path from the start vertex to
// the goal by greedily following the minimum g+cost successor at each
// step. Returns (nil, 0, false) if no path currently exists.
func (p *Planner) Path() ([]string, float64, bool) {
	if p.gOf(p.startID) == inf {
		return nil, 0, false
	}

	path := []string{p.startID}
	cur := p.startID
	totalCost := 0.0
	visited := map[string]bool{cur: true}

	for cur != p.goalID {
		edges, err := p.g.Neighbors(cur)
		if err != nil {
			return nil, 0, false
		}
		bestNext := ""
		bestVal := inf
		bestCost := 0.0
		for _, e := range edges {
			succ := e.To
			if e.To == cur && !e.Directed {
				succ = e.From
			}
			if succ == cur {
				continue
			}
			if cand := e.Length + p.gOf(succ); cand < bestVal {
				bestVal = cand
				bestNext = succ
				bestCost = e.Length
			}
		}
		if bestNext == "" || visited[bestNext] {
			return nil, 0, false
		}
		path = append(path, bestNext)
		totalCost += bestCost
		visited[bestNext] = true
		cur = bestNext
	}

	return path, totalCost, true
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}
