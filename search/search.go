// File: search.go
// Role: the generic Search runner the bfs, dfs, ucs, and astar packages
// drive with their own Frontier and GoalTestTiming (bidirectional drives
// its two frontiers directly instead).
// Tree mode and graph mode share a single loop, parameterized by Mode,
// differing only in whether expanded states are deduplicated.

package search

import (
	"context"
)

// Mode selects tree-search (revisits allowed, no "reached" dedup) or
// graph-search (a "reached" set of best-known-cost ids prevents
// re-expansion) semantics.
type Mode int

const (
	// ModeTree never deduplicates states: every path to a state is
	// explored, which can blow up on graphs with cycles but preserves
	// every distinct path for tree-mode BFS/DFS.
	ModeTree Mode = iota
	// ModeGraph tracks a "reached" map of best g(n) per state id and
	// never re-expands a state once a dominating path is known.
	ModeGraph
)

// GoalTestTiming controls whether IsGoal is checked when a node is
// generated (BFS's classic early-exit optimization, valid only when step
// costs are uniform) or only when it is popped for expansion (DFS, UCS,
// A*, where generation-time testing would be unsound or pointless).
type GoalTestTiming int

const (
	TestOnExpansion GoalTestTiming = iota
	TestOnGeneration
)

// Options configures a Run invocation.
type Options struct {
	Ctx            context.Context
	Observer       Observer
	Mode           Mode
	GoalTiming     GoalTestTiming
	MaxExpansions  int // 0 means unlimited
	direction      Direction
}

// Option configures Options via the functional-options idiom.
type Option func(*Options)

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver attaches a trace observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithMode selects tree or graph search semantics.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithGoalTiming selects when IsGoal is evaluated.
func WithGoalTiming(t GoalTestTiming) Option {
	return func(o *Options) { o.GoalTiming = t }
}

// WithMaxExpansions caps the number of node expansions, guarding runaway
// searches on malformed inputs; 0 (the default) means unlimited.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithDirection tags trace events with a Direction; only bidirectional
// search needs this, to distinguish its forward/backward frontiers.
func WithDirection(d Direction) Option {
	return func(o *Options) { o.direction = d }
}

// DefaultOptions returns Options with context.Background(), NopObserver,
// ModeGraph, and TestOnExpansion.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Observer:   NopObserver,
		Mode:       ModeGraph,
		GoalTiming: TestOnExpansion,
	}
}

// Run drives a generic state-space search from start until goal is
// satisfied, the frontier empties, or ctx is cancelled. lister expands a
// state into its available actions; frontier determines expansion order.
//
// Returns the goal Node (from which Path() reconstructs the solution), or
// (nil, false, nil) if the frontier was exhausted without finding a goal.
// A non-nil error indicates context cancellation or an ActionLister error.
func Run(start State, goal GoalTest, lister ActionLister, frontier Frontier, opts ...Option) (*Node, bool, error) {
	if start == nil {
		return nil, false, ErrNilState
	}
	if frontier == nil {
		return nil, false, ErrNilFrontier
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	root := &Node{State: start}

	// reached maps state id -> best known path cost, used only in
	// ModeGraph to avoid re-expanding dominated states.
	var reached map[string]float64
	if o.Mode == ModeGraph {
		reached = map[string]float64{start.ID(): 0}
	}

	expandedIDs := []string{}
	frontier.Push(root)

	if o.GoalTiming == TestOnGeneration && goal.IsGoal(root.State) {
		notifyGoal(o, root, frontier, expandedIDs)
		return root, true, nil
	}

	expansions := 0
	for {
		if cancelled(o.Ctx) {
			return nil, false, o.Ctx.Err()
		}

		n, ok := frontier.Pop()
		if !ok {
			return nil, false, nil
		}

		if o.Mode == ModeGraph {
			if best, seen := reached[n.State.ID()]; seen && n.PathG > best {
				// a cheaper path already won; this entry is stale
				continue
			}
		}

		if o.GoalTiming == TestOnExpansion && goal.IsGoal(n.State) {
			notifyGoal(o, n, frontier, expandedIDs)
			return n, true, nil
		}

		expansions++
		if o.MaxExpansions > 0 && expansions > o.MaxExpansions {
			return nil, false, nil
		}

		expandedIDs = append(expandedIDs, n.State.ID())
		expandedReport := expandedIDs
		if o.Mode == ModeTree {
			// Tree-mode search has no stable "expanded so far" set (the
			// same state may be expanded many times down different
			// branches); report the empty-set-plus-current shape instead.
			expandedReport = []string{n.State.ID()}
		}

		actions, err := lister.Actions(n.State)
		if err != nil {
			return nil, false, err
		}

		for _, a := range actions {
			next, err := a.Apply()
			if err != nil {
				return nil, false, err
			}
			g := n.PathG + a.Cost()

			if o.Mode == ModeGraph {
				if best, seen := reached[next.ID()]; seen && g >= best {
					continue
				}
				reached[next.ID()] = g
			}

			child := &Node{State: next, Parent: n, Action: a, PathG: g, Depth: n.Depth + 1}

			if o.GoalTiming == TestOnGeneration && goal.IsGoal(child.State) {
				notifyExpanded(o, n, frontier, expandedReport)
				notifyGoal(o, child, frontier, expandedIDs)
				return child, true, nil
			}

			if o.Mode == ModeGraph && frontier.Contains(next.ID()) {
				frontier.Remove(next.ID())
			}
			frontier.Push(child)
		}
		notifyExpanded(o, n, frontier, expandedReport)
	}
}

// Snapshot copies a Frontier's live state ids, in the frontier's own
// ordering. Run takes a fresh copy on every event so Observer
// implementations can retain it safely; other packages driving their own
// frontiers directly (bidirectional) use it the same way.
func Snapshot(f Frontier) []string {
	type idLister interface{ IDs() []string }
	if il, ok := f.(idLister); ok {
		return il.IDs()
	}

	return nil
}

func notifyExpanded(o Options, n *Node, f Frontier, expanded []string) {
	if o.Observer == nil {
		return
	}
	expSnap := make([]string, len(expanded))
	copy(expSnap, expanded)
	o.Observer.Notify(TraceEvent{
		Kind:      EventNodeExpanded,
		StateID:   n.State.ID(),
		Direction: o.direction,
		Depth:     n.Depth,
		PathG:     n.PathG,
		Frontier:  Snapshot(f),
		Expanded:  expSnap,
	})
}

func notifyGoal(o Options, n *Node, f Frontier, expanded []string) {
	if o.Observer == nil {
		return
	}
	if o.Mode == ModeTree {
		expanded = []string{n.State.ID()}
	}
	expSnap := make([]string, len(expanded))
	copy(expSnap, expanded)
	o.Observer.Notify(TraceEvent{
		Kind:      EventGoalFound,
		StateID:   n.State.ID(),
		Direction: o.direction,
		Depth:     n.Depth,
		PathG:     n.PathG,
		Frontier:  Snapshot(f),
		Expanded:  expSnap,
	})
}

// ErrCancelled is a convenience alias for context.Canceled, re-exported
// so callers can compare against a single name from this package.
var ErrCancelled = context.Canceled
