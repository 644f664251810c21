// Package graphstate is the seam between geograph.Graph and the search
// package: it implements search.State, search.ReversibleState, and
// search.ActionLister over graph vertices and edges, so bfs/dfs/ucs/astar/
// bidirectional expand vertices through the search contracts rather than
// walking geograph edges themselves. dstarlite does not use it.
package graphstate
