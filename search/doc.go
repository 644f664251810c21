// Package search implements the generic state-space search kernel shared
// by every pathfinding algorithm in this module.
//
// Under the hood:
//
//	types.go     — State, Action, GoalTest, Node, NodeEvalFunc
//	frontier.go  — Frontier capability + FIFO/LIFO/best-first implementations
//	observer.go  — TraceEvent, Observer, the trace/visualizer protocol
//	search.go    — Run, the generic tree/graph search loop
//
// An algorithm package (bfs, dfs, ucs, astar) supplies a State space (via
// graphstate), a Frontier ordering, and a GoalTestTiming, and Run drives
// the expansion loop, cancellation, and trace emission uniformly across
// all of them. bidirectional uses the same State and Frontier contracts
// but runs its own two-frontier loop rather than Run.
package search
