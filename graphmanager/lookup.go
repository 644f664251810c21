package graphmanager

import (
	"strconv"
	"strings"
)

// FindNode normalizes a caller-supplied node identifier against graphID's
// vertex set, trying in order:
//  1. direct equality against the in-graph id;
//  2. integer parse of input, then equality against the canonical decimal
//     form (handles OSM-style integer ids);
//  3. case-insensitive string match against every vertex id.
//
// Returns the original in-graph id (never the caller's raw input) so
// callers always key further lookups by the canonical form.
func (m *Manager) FindNode(graphID, input string) (string, error) {
	g, _, err := m.Get(graphID)
	if err != nil {
		return "", err
	}

	if g.HasVertex(input) {
		return input, nil
	}

	if n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64); err == nil {
		canonical := strconv.FormatInt(n, 10)
		if g.HasVertex(canonical) {
			return canonical, nil
		}
	}

	for _, id := range g.Vertices() {
		if strings.EqualFold(id, input) {
			return id, nil
		}
	}

	return "", ErrNodeNotFound
}

// ValidateNode reports whether nodeID resolves within graphID and, if so,
// returns its canonical id and coordinates.
func (m *Manager) ValidateNode(graphID, nodeID string) (NodeValidation, error) {
	g, _, err := m.Get(graphID)
	if err != nil {
		return NodeValidation{}, err
	}

	canonical, err := m.FindNode(graphID, nodeID)
	if err != nil {
		return NodeValidation{Valid: false, NodeID: nodeID}, nil
	}

	v, err := g.GetVertex(canonical)
	if err != nil {
		return NodeValidation{Valid: false, NodeID: nodeID}, nil
	}

	return NodeValidation{Valid: true, NodeID: canonical, Lat: v.Lat, Lon: v.Lon}, nil
}
