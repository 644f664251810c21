package graphmanager

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nvardanyan/pathtrace/geograph"
)

// SerializeGraph builds the boundary's JSON shape for graphID:
// {graph_id, metadata, nodes: [{id, lat, lon}], edges: [{source, target, length}]}.
// Parallel edges between the same unordered pair collapse to a single
// emitted edge, keeping the cheapest one.
func (m *Manager) SerializeGraph(graphID string) ([]byte, error) {
	g, meta, err := m.Get(graphID)
	if err != nil {
		return nil, err
	}

	doc := []byte("{}")
	doc, err = sjson.SetBytes(doc, "graph_id", meta.GraphID)
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, "metadata.display_name", meta.DisplayName)
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, "metadata.description", meta.Description)
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, "metadata.node_count", meta.NodeCount)
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, "metadata.edge_count", meta.EdgeCount)
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, "metadata.bbox", []float64{meta.MinLat, meta.MaxLat, meta.MinLon, meta.MaxLon})
	if err != nil {
		return nil, err
	}

	doc, err = sjson.SetRawBytes(doc, "nodes", []byte("[]"))
	if err != nil {
		return nil, err
	}
	for _, id := range g.Vertices() {
		v, err := g.GetVertex(id)
		if err != nil {
			continue
		}
		node := []byte("{}")
		node, _ = sjson.SetBytes(node, "id", v.ID)
		node, _ = sjson.SetBytes(node, "lat", v.Lat)
		node, _ = sjson.SetBytes(node, "lon", v.Lon)
		doc, err = sjson.SetRawBytes(doc, "nodes.-1", node)
		if err != nil {
			return nil, err
		}
	}

	doc, err = sjson.SetRawBytes(doc, "edges", []byte("[]"))
	if err != nil {
		return nil, err
	}
	for _, e := range collapseParallel(g.Edges()) {
		edge := []byte("{}")
		edge, _ = sjson.SetBytes(edge, "source", e.From)
		edge, _ = sjson.SetBytes(edge, "target", e.To)
		edge, _ = sjson.SetBytes(edge, "length", e.Length)
		doc, err = sjson.SetRawBytes(doc, "edges.-1", edge)
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// collapseParallel keeps, for every unordered endpoint pair, only the
// cheapest edge — the multigraph-to-wire collapse the boundary requires.
func collapseParallel(edges []*geograph.Edge) []*geograph.Edge {
	best := make(map[string]*geograph.Edge)
	order := make([]string, 0, len(edges))
	for _, e := range edges {
		key := pairKey(e.From, e.To)
		cur, ok := best[key]
		if !ok {
			order = append(order, key)
			best[key] = e
			continue
		}
		if e.Length < cur.Length {
			best[key] = e
		}
	}

	out := make([]*geograph.Edge, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}

	return out
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}

	return a + "\x00" + b
}

// FindNodeFromJSON is FindNode for callers that already hold a raw JSON
// value for the node identifier (e.g. a request body field parsed
// upstream) rather than a Go string — common at a boundary that decodes
// requests generically before routing them to this module.
func (m *Manager) FindNodeFromJSON(graphID string, rawNodeIDField []byte) (string, error) {
	input := gjson.ParseBytes(rawNodeIDField).String()

	return m.FindNode(graphID, input)
}
