// File: methods_adjacent.go
// Role: neighborhood APIs (Neighbors, NeighborIDs) and reverse-direction
// helpers used by bidirectional search.
// Determinism: Neighbors() sorts by Edge.ID asc; NeighborIDs() returns
// unique IDs sorted lexically.

package geograph

import "sort"

// Neighbors lists all edges touching id.
//   - Directed edges: only those with e.From==id.
//   - Undirected edges: both directions, but a loop appears once.
//
// Sorted by Edge.ID. Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// ReverseNeighbors lists all edges that terminate at id — i.e. edges a
// backward search expands along. For undirected edges this coincides with
// Neighbors; for directed edges it is the predecessor set (e.To==id).
// Used by bidirectional search's backward frontier.
func (g *Graph) ReverseNeighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, e := range g.edges {
		if e.Directed {
			if e.To == id {
				out = append(out, e)
			}
			continue
		}
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns unique, sorted vertex IDs adjacent to id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}
