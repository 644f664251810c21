package geograph_test

import (
	"fmt"

	"github.com/nvardanyan/pathtrace/geograph"
)

// ExampleGraph_triangle builds a small triangular road network and lists
// the neighbors of one vertex in deterministic order.
func ExampleGraph_triangle() {
	g := geograph.NewGraph(geograph.WithDirected(false))
	_ = g.AddVertex("A", 40.18, 44.51)
	_ = g.AddVertex("B", 40.19, 44.52)
	_ = g.AddVertex("C", 40.17, 44.53)
	_, _ = g.AddEdge("A", "B", 120)
	_, _ = g.AddEdge("B", "C", 80)
	_, _ = g.AddEdge("A", "C", 200)

	ids, err := g.NeighborIDs("A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ids)
	// Output:
	// [B C]
}
