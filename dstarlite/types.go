// Package dstarlite implements D*-Lite, an incremental replanning search:
// it computes a shortest path once, then reacts to edge-cost changes
// (reported via UpdateEdge) by repairing only the affected region of the
// search instead of recomputing the whole path from scratch.
package dstarlite

import (
	"errors"

	"github.com/nvardanyan/pathtrace/geograph"
)

// Sentinel errors returned by New and UpdateEdge.
var (
	ErrNilGraph       = errors.New("dstarlite: graph is nil")
	ErrStartNotFound  = errors.New("dstarlite: start vertex not found")
	ErrGoalNotFound   = errors.New("dstarlite: goal vertex not found")
	ErrEdgeNotFound   = errors.New("dstarlite: edge not found")
)

// Heuristic estimates the remaining cost between two vertex ids. It must
// be admissible and consistent for D*-Lite's key ordering to remain
// correct across replans.
type Heuristic func(a, b string) float64

// key is D*-Lite's two-part priority: {min(g,rhs)+h+km, min(g,rhs)}. Two
// keys compare lexicographically.
type key struct {
	k1, k2 float64
}

func (a key) less(b key) bool {
	if a.k1 != b.k1 {
		return a.k1 < b.k1
	}

	return a.k2 < b.k2
}

func (a key) equal(b key) bool { return a.k1 == b.k1 && a.k2 == b.k2 }

// Planner holds the incremental state of a single D*-Lite run: g/rhs
// values per vertex, the priority queue, and the km monotone offset that
// lets the heuristic stay valid as the agent's start vertex moves.
type Planner struct {
	g   *geograph.Graph
	h   Heuristic
	pq  *priorityQueue

	startID, goalID string
	lastStartID     string
	km              float64

	gScore   map[string]float64
	rhs      map[string]float64
}
