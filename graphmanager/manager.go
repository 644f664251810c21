package graphmanager

import (
	"math"

	"github.com/nvardanyan/pathtrace/geograph"
)

// Register adds g to the manager under graphID, computing its metadata
// (node/edge counts, bounding box) once at registration time. Re-
// registering an existing graphID overwrites the previous entry.
func (m *Manager) Register(graphID, displayName, description string, g *geograph.Graph) error {
	meta := Metadata{
		GraphID:     graphID,
		DisplayName: displayName,
		Description: description,
		NodeCount:   g.VertexCount(),
		EdgeCount:   g.EdgeCount(),
	}
	meta.MinLat, meta.MaxLat, meta.MinLon, meta.MaxLon = boundingBox(g)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.graphs[graphID] = &entry{graph: g, meta: meta}

	return nil
}

// Get returns the graph and metadata registered under graphID.
func (m *Manager) Get(graphID string) (*geograph.Graph, Metadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.graphs[graphID]
	if !ok {
		return nil, Metadata{}, ErrGraphNotFound
	}

	return e.graph, e.meta, nil
}

// List returns metadata for every registered graph, sorted by graph id.
func (m *Manager) List() []Metadata {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Metadata, 0, len(m.graphs))
	for _, e := range m.graphs {
		out = append(out, e.meta)
	}
	sortMetadata(out)

	return out
}

func sortMetadata(ms []Metadata) {
	for i := 1; i < len(ms); i++ {
		for j := i; j > 0 && ms[j].GraphID < ms[j-1].GraphID; j-- {
			ms[j], ms[j-1] = ms[j-1], ms[j]
		}
	}
}

// boundingBox scans every vertex once for the min/max lat/lon. Returns
// all-zero if the graph has no vertices.
func boundingBox(g *geograph.Graph) (minLat, maxLat, minLon, maxLon float64) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat = math.Inf(1), math.Inf(-1)
	minLon, maxLon = math.Inf(1), math.Inf(-1)
	for _, id := range ids {
		v, err := g.GetVertex(id)
		if err != nil {
			continue
		}
		minLat = math.Min(minLat, v.Lat)
		maxLat = math.Max(maxLat, v.Lat)
		minLon = math.Min(minLon, v.Lon)
		maxLon = math.Max(maxLon, v.Lon)
	}

	return minLat, maxLat, minLon, maxLon
}
