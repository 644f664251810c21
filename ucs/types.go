// Package ucs implements uniform-cost search over a geograph.Graph: the
// minimum-cost path from a single source vertex to a goal vertex, using a
// best-first frontier ordered by accumulated path cost g(n) and lazy
// deletion (no decrease-key) in the underlying heap.
//
// Complexity: O((V+E) log V).
package ucs

import (
	"context"
	"errors"

	"github.com/nvardanyan/pathtrace/search"
)

// Sentinel errors returned by Search.
var (
	ErrEmptySource    = errors.New("ucs: source vertex ID is empty")
	ErrNilGraph       = errors.New("ucs: graph is nil")
	ErrSourceNotFound = errors.New("ucs: source vertex not found in graph")
)

// Option configures UCS via the functional-options idiom.
type Option func(*Options)

// Options configures the behavior of uniform-cost search.
type Options struct {
	Ctx      context.Context
	Observer search.Observer
}

// DefaultOptions returns Options with context.Background() and no observer.
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

// Result holds the outcome of a uniform-cost search.
type Result struct {
	Found   bool
	PathIDs []string
	Cost    float64
}
