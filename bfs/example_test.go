package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/partgraph/bfs"
	"github.com/katalvlaran/partgraph/core"
)

// ExampleBFS walks a small undirected graph and prints levels and a path.
func ExampleBFS() {
	g, _ := core.NewFromEdges[int, core.None, core.None](core.Undirected,
		make([][]core.EdgeInit[int, core.None], 5), nil)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}} {
		_ = g.Join(e[0], e[1])
	}

	res, _ := bfs.BFS(g, 0)
	fmt.Println("order:", res.Order)
	fmt.Println("depth:", res.Depth)
	path, _ := res.PathTo(4)
	fmt.Println("path to 4:", path)

	// Output:
	// order: [0 1 2 3 4]
	// depth: [0 1 1 2 3]
	// path to 4: [0 1 3 4]
}
