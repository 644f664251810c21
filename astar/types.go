// Package astar implements A* search over a geograph.Graph: like ucs, but
// the frontier is ordered by f(n) = g(n) + h(n), where h is an admissible
// heuristic estimating remaining cost to the goal.
//
// Complexity: O((V+E) log V), same as UCS — A* never does asymptotically
// worse, and does much better in practice with a good heuristic.
package astar

import (
	"context"
	"errors"

	"github.com/nvardanyan/pathtrace/search"
)

// Sentinel errors returned by Search.
var (
	ErrNilGraph           = errors.New("astar: graph is nil")
	ErrEmptySource        = errors.New("astar: source vertex ID is empty")
	ErrSourceNotFound     = errors.New("astar: source vertex not found in graph")
	ErrHeuristicRequired  = errors.New("astar: heuristic function is required")
)

// Heuristic estimates the remaining cost from the state with the given id
// to the goal. It must be admissible (never overestimate) for A* to
// guarantee an optimal path.
type Heuristic func(id string) float64

// Option configures A* via the functional-options idiom.
type Option func(*Options)

// Options configures the behavior of A*.
type Options struct {
	Ctx       context.Context
	Observer  search.Observer
	Heuristic Heuristic
}

// DefaultOptions returns Options with context.Background(), no observer,
// and no heuristic (Search requires one be set via WithHeuristic).
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Observer: search.NopObserver,
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

// WithHeuristic sets the admissible heuristic function A* requires.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Result holds the outcome of an A* search.
type Result struct {
	Found   bool
	PathIDs []string
	Cost    float64
}
