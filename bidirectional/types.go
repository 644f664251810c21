// Package bidirectional implements bidirectional uniform-cost search: a
// forward frontier from the start and a backward frontier from the goal
// expand simultaneously until they meet, typically exploring far fewer
// nodes than single-directional UCS on large graphs.
//
// Search stops as soon as min(g_min_fwd, g_min_bwd) >= C_best, where
// C_best is the best complete path found so far across the meeting
// point.
package bidirectional

import (
	"context"
	"errors"

	"github.com/nvardanyan/pathtrace/search"
)

// Sentinel errors returned by Search.
var (
	ErrNilGraph       = errors.New("bidirectional: graph is nil")
	ErrEmptySource    = errors.New("bidirectional: source vertex ID is empty")
	ErrSourceNotFound = errors.New("bidirectional: source vertex not found in graph")
	ErrGoalNotFound   = errors.New("bidirectional: goal vertex not found in graph")
)

// Option configures bidirectional search via the functional-options idiom.
type Option func(*Options)

// Options configures the behavior of bidirectional search.
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

// WithObserver attaches a trace observer; both the forward and backward
// frontiers' events are sent to the same observer, tagged via
// search.TraceEvent.Direction.
func WithObserver(obs search.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// Result holds the outcome of a bidirectional search.
type Result struct {
	Found    bool
	PathIDs  []string
	Cost     float64
	MeetNode string
}
