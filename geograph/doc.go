// Package geograph is the in-memory representation of a weighted,
// geo-tagged road network.
//
// Under the hood:
//
//	types.go            — Graph, Vertex, Edge, options, sentinel errors
//	methods_vertices.go — vertex lifecycle
//	methods_edges.go    — edge lifecycle, deterministic iteration
//	methods_adjacent.go — neighbor queries, forward and reverse
//
// Graph is thread-safe (muVert/muEdgeAdj), supports directed, undirected,
// and mixed-direction edges, optional self-loops, and optional parallel
// edges. Edge.Length is always ≥ 0 and represents a distance in meters;
// mutating it in place via SetLength is how an external caller reacts to
// a changed road condition without rebuilding the graph, which is the one
// mutation D*-Lite needs mid-search.
package geograph
