// File: observer.go
// Role: the trace/observer protocol external visualizers consume.
//
// Observer is a synchronous pure sink: Search calls it in-line at each
// expansion and never buffers events, so a slow observer simply slows the
// search rather than risking unbounded memory growth.

package search

// Direction distinguishes which frontier a bidirectional search event
// came from. Single-directional algorithms always report DirectionForward.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// TraceEvent is one step-by-step record of a search's progress, suitable
// for a visualizer to render incrementally.
type TraceEvent struct {
	// Kind is either "node_expanded" or "goal_found".
	Kind string
	// StateID is the id of the state being expanded, or the goal state's
	// id for a goal_found event.
	StateID string
	// Direction records which frontier produced this event (forward
	// search, or bidirectional's backward search).
	Direction Direction
	// Depth is the node's depth in the search tree (0 at the root).
	Depth int
	// PathG is the accumulated path cost to this node, if applicable.
	PathG float64
	// Frontier is a snapshot of the state ids currently in the frontier:
	// for node_expanded, taken after the node's children have been queued;
	// for goal_found, taken when the goal is detected.
	Frontier []string
	// Expanded is a snapshot of the state ids expanded so far (graph-mode),
	// or for tree-mode search just the current node — tree mode never
	// maintains a dedup set to report from.
	Expanded []string
}

const (
	EventNodeExpanded = "node_expanded"
	EventGoalFound    = "goal_found"
)

// Observer receives TraceEvents as a search progresses. Each event's
// Frontier/Expanded slices are fresh copies, so implementations may
// retain them beyond the call.
type Observer interface {
	Notify(TraceEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(TraceEvent)

// Notify implements Observer.
func (f ObserverFunc) Notify(e TraceEvent) { f(e) }

// NopObserver discards every event; it is the default when no Observer is
// supplied, so Search never needs to nil-check its observer.
var NopObserver Observer = ObserverFunc(func(TraceEvent) {})
