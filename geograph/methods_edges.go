// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism: Edges() returns edges sorted by Edge.ID asc; nextEdgeID() is
// monotonic and stable ("e" + decimal).
// Concurrency: mutations under muEdgeAdj write lock, reads under read lock.

package geograph

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// AddEdge creates a new edge between from and to with the given length in
// meters, optionally directed in a mixed graph. Endpoints are created
// automatically if absent.
//
//   - If Mixed()==false and opts contain WithEdgeDirected, returns
//     nothing special — overrides are simply ignored unless mixed mode
//     is enabled, mirroring the graph's global default.
//   - If length < 0, returns ErrBadLength.
//   - If from==to and Looped()==false, returns ErrLoopNotAllowed.
//   - If MultiEdges()==false and (from,to) already has an edge, returns
//     ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, length float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if length < 0 {
		return "", ErrBadLength
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)

	e := &Edge{ID: eid, From: from, To: to, Length: length, Directed: g.directed}
	if g.allowMixed {
		for _, opt := range opts {
			opt(e)
		}
	}
	if e.From == e.To && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// SetLength mutates the Length of an existing edge in place. This is the
// sole supported graph mutation during an in-flight D*-Lite search: edge
// costs change, but no vertex or edge is added or removed.
func (g *Graph) SetLength(eid string, length float64) error {
	if length < 0 {
		return ErrBadLength
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Length = length

	return nil
}

// RemoveEdge deletes one edge and its undirected mirror, if any.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns a copy of the Edge with the given id, or ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns all edges, sorted by ID ascending for determinism.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next monotonic edge identifier, "e1", "e2", ....
// Caller must already hold muEdgeAdj.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)

	return "e" + strconv.FormatUint(n, 10)
}

// ensureAdjacency makes sure adjacencyList[from][to] is a non-nil map.
// Caller must hold muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency deletes e from the adjacency list (both directions for
// undirected edges). Caller must hold muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	delete(g.adjacencyList[e.From][e.To], e.ID)
	if len(g.adjacencyList[e.From][e.To]) == 0 {
		delete(g.adjacencyList[e.From], e.To)
	}
	if !e.Directed && e.From != e.To {
		delete(g.adjacencyList[e.To][e.From], e.ID)
		if len(g.adjacencyList[e.To][e.From]) == 0 {
			delete(g.adjacencyList[e.To], e.From)
		}
	}
}
