// Package graphmanager holds a small, fixed set of named geograph.Graphs,
// normalizes node-id lookup across numeric and string keys, answers
// connectivity queries, and serializes graphs to the JSON shape an
// external boundary expects.
package graphmanager

import (
	"errors"
	"sync"

	"github.com/nvardanyan/pathtrace/geograph"
)

// Sentinel errors returned by Manager methods.
var (
	ErrGraphNotFound = errors.New("graphmanager: graph not found")
	ErrNodeNotFound  = errors.New("graphmanager: node not found")
)

// Metadata describes a registered graph for listing/display purposes.
type Metadata struct {
	GraphID     string
	DisplayName string
	Description string
	NodeCount   int
	EdgeCount   int
	MinLat      float64
	MaxLat      float64
	MinLon      float64
	MaxLon      float64
}

type entry struct {
	graph *geograph.Graph
	meta  Metadata
}

// Manager holds graph_id -> (graph, metadata). Registered graphs are
// treated as immutable by the manager itself; D*-Lite's in-place edge
// mutation happens through the caller's own *geograph.Graph reference and
// is the caller's responsibility to serialize against concurrent search.
type Manager struct {
	mu     sync.RWMutex
	graphs map[string]*entry
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{graphs: make(map[string]*entry)}
}

// NodeValidation is the result of ValidateNode.
type NodeValidation struct {
	Valid  bool
	NodeID string
	Lat    float64
	Lon    float64
}
