// SPDX-License-Identifier: MIT

package layout_test

import (
	"fmt"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/layout"
)

func ExampleDecodeGraph() {
	doc := []byte(`
flavour: directed
nodes:
  - weight: a
    edges: [{target: 1, weight: 3}, {target: 2, weight: 1}]
  - weight: b
  - weight: c
    edges: [{target: 0, weight: 2}]
`)
	g, err := layout.DecodeGraph[float64, string, core.None](doc)
	if err != nil {
		fmt.Println(err)
		return
	}
	nbrs, _ := g.Neighbors(0)
	fmt.Println(g.Order(), g.Size(), g.StorageKind(), nbrs)
	// Output: 3 3 contiguous [1 2]
}
