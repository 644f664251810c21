// Package pathtrace is an interactive pathfinding engine for weighted,
// geo-tagged road graphs.
//
// Given a graph, a start and goal node, an algorithm name, and (for
// informed algorithms) a heuristic name, it computes a path and can emit
// a step-by-step trace of node expansions for an external visualizer.
//
// Graphs live in geograph; the search kernel lives in search and its
// graph adapter graphstate; bfs, dfs, ucs, astar, bidirectional, and
// dstarlite are the concrete algorithms; registry and graphmanager
// expose them and named graphs by string key so a caller can select
// either at runtime. Kernel, in this package, binds all three together
// behind a single entry point that a session/HTTP façade can embed —
// this module implements the library side only; it does not serve HTTP,
// persist graphs to disk, or acquire graph data.
package pathtrace
