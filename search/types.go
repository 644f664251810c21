// Package search provides the generic state-space search abstraction all
// pathfinding algorithms in this module are built on: State/Action/
// GoalTest/Node/Frontier contracts, node-evaluation functions, and a
// trace/observer protocol for external visualizers.
package search

import (
	"context"
	"errors"
)

// Sentinel errors returned by the search kernel.
var (
	// ErrNilState is returned by Run when a nil start state is supplied.
	ErrNilState = errors.New("search: state is nil")

	// ErrNilFrontier is returned by Run when no Frontier is supplied.
	ErrNilFrontier = errors.New("search: frontier is nil")

	// ErrHeuristicRequired names the missing-heuristic condition for
	// informed algorithms. Nothing in this package returns it; astar.Search
	// reports its own astar.ErrHeuristicRequired.
	ErrHeuristicRequired = errors.New("search: heuristic function is required")
)

// State is a node in the search space. Implementations must have stable,
// comparable identity via ID(); two States with the same ID are considered
// the same search-space vertex (this is what makes graph-mode search's
// "reached" set work).
type State interface {
	// ID returns a stable identifier for this state.
	ID() string
}

// ReversibleState is an optional capability: a State space that can also
// enumerate the actions that lead *into* a state, which bidirectional
// search needs for its backward frontier.
type ReversibleState interface {
	State
	// ReverseActions returns the actions whose application from some
	// predecessor state reaches this state.
	ReverseActions() []Action
}

// Action is a single transition available from a State. Applying it
// yields the next State and the non-negative step cost.
type Action interface {
	// Cost is the non-negative cost of taking this action.
	Cost() float64
	// Apply returns the State reached by taking this action.
	Apply() (State, error)
	// Source returns the state this action originates from, so reverse
	// traversal (bidirectional search) can recover predecessors.
	Source() State
}

// ActionLister expands a State into its available Actions. The
// graphstate package implements this over a geograph.Graph.
type ActionLister interface {
	Actions(s State) ([]Action, error)
}

// GoalTest decides whether a State satisfies the search's goal.
type GoalTest interface {
	IsGoal(s State) bool
}

// GoalTestFunc adapts a function to the GoalTest interface.
type GoalTestFunc func(State) bool

// IsGoal implements GoalTest.
func (f GoalTestFunc) IsGoal(s State) bool { return f(s) }

// Node is one entry in the search tree: a State plus the bookkeeping
// needed to reconstruct a path and evaluate a frontier ordering.
//
// Parent is a direct pointer, not an arena index: the search tree is
// acyclic by construction, so Go's GC reclaims abandoned branches (e.g.
// pruned tree-search duplicates) without any extra bookkeeping.
type Node struct {
	State  State   // the state this node represents
	Parent *Node   // predecessor node, nil at the root
	Action Action  // action applied to Parent to reach State, nil at the root
	PathG  float64 // accumulated cost from the root to this node
	Depth  int     // number of actions from the root to this node
	seq    uint64  // insertion sequence, used as a frontier tie-break
}

// Path walks the parent chain from n back to the root and returns the
// list of states root→...→n, plus the list of actions taken, in order.
func (n *Node) Path() ([]State, []Action) {
	var states []State
	var actions []Action
	for cur := n; cur != nil; cur = cur.Parent {
		states = append(states, cur.State)
		if cur.Action != nil {
			actions = append(actions, cur.Action)
		}
	}
	// reverse both slices in place
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return states, actions
}

// NodeEvalFunc assigns a priority value to a Node for a best-first
// Frontier. Lower values are explored first.
type NodeEvalFunc func(*Node) float64

// UCSEval is the node-evaluation function for uniform-cost search: the
// accumulated path cost g(n).
func UCSEval(n *Node) float64 { return n.PathG }

// AStarEvalFunc builds the f(n) = g(n) + h(n) evaluation function for A*
// from a heuristic over States.
func AStarEvalFunc(h func(State) float64) NodeEvalFunc {
	return func(n *Node) float64 { return n.PathG + h(n.State) }
}

// cancelled reports whether ctx has been cancelled, without blocking.
func cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
