// Package bfs provides tunable options and error definitions for
// breadth-first search over a geograph.Graph, in both tree and graph
// modes.
package bfs

import (
	"context"
	"errors"

	"github.com/nvardanyan/pathtrace/search"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Observer receives node_expanded/goal_found trace events.
	Observer search.Observer

	// Graph selects ModeGraph (dedup via a reached set) instead of the
	// default ModeTree (every path explored, duplicates allowed).
	Graph bool
}

// DefaultOptions returns Options with context.Background(), no observer,
// and tree mode.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Observer: search.NopObserver,
		Graph:    false,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver attaches a trace observer.
func WithObserver(obs search.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithGraphMode selects graph-search semantics (a "reached" set prevents
// re-expansion) instead of the default tree-search semantics.
func WithGraphMode() Option {
	return func(o *Options) { o.Graph = true }
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Found reports whether the goal vertex was reached.
	Found bool
	// PathIDs is the vertex-id path start->...->goal, non-nil iff Found.
	PathIDs []string
	// Cost is the total path length in meters (BFS treats every edge as
	// unit cost for the layering guarantee, but Cost still reports the
	// real accumulated geograph.Edge.Length along the found path).
	Cost float64
}
