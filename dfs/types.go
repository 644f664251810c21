// Package dfs provides tunable options and error definitions for
// depth-first search over a geograph.Graph, in both tree and graph modes.
//
// Unlike bfs, dfs always tests for the goal at expansion time: DFS gives
// no shortest-path guarantee of any kind, so testing early at generation
// time would only change which (arbitrary, non-optimal) path is returned,
// not whether one is found.
package dfs

import (
	"context"
	"errors"

	"github.com/nvardanyan/pathtrace/search"
)

// Sentinel errors for DFS execution.
var (
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
	ErrGraphNil            = errors.New("dfs: graph is nil")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize DFS execution.
type Options struct {
	Ctx      context.Context
	Observer search.Observer
	Graph    bool
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

// WithGraphMode selects graph-search semantics instead of the default
// tree-search semantics.
func WithGraphMode() Option {
	return func(o *Options) { o.Graph = true }
}

// Result holds the outcome of a DFS traversal.
type Result struct {
	Found   bool
	PathIDs []string
	Cost    float64
}
