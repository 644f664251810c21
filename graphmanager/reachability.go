package graphmanager

// disjointSet is a union-find over vertex ids with path compression and
// union by rank.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{parent: make(map[string]string, len(ids)), rank: make(map[string]int, len(ids))}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

func (ds *disjointSet) union(u, v string) {
	rootU, rootV := ds.find(u), ds.find(v)
	if rootU == rootV {
		return
	}
	if ds.rank[rootU] < ds.rank[rootV] {
		ds.parent[rootU] = rootV
	} else {
		ds.parent[rootV] = rootU
		if ds.rank[rootU] == ds.rank[rootV] {
			ds.rank[rootU]++
		}
	}
}

// Reachable reports whether startID and goalID lie in the same weakly
// connected component of graphID's undirected projection: every edge,
// directed or not, is treated as connecting its two endpoints.
func (m *Manager) Reachable(graphID, startID, goalID string) (bool, error) {
	g, _, err := m.Get(graphID)
	if err != nil {
		return false, err
	}
	if !g.HasVertex(startID) || !g.HasVertex(goalID) {
		return false, ErrNodeNotFound
	}
	if startID == goalID {
		return true, nil
	}

	ds := newDisjointSet(g.Vertices())
	for _, e := range g.Edges() {
		ds.union(e.From, e.To)
	}

	return ds.find(startID) == ds.find(goalID), nil
}
