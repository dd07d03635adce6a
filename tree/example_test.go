// SPDX-License-Identifier: MIT

package tree_test

import (
	"fmt"

	"github.com/katalvlaran/partgraph/tree"
)

func ExampleTree_Prune() {
	t, _ := tree.FromInitializer[int](tree.Symmetric, tree.Initializer[string]{
		Node: "root",
		Children: []tree.Initializer[string]{
			{Node: "left", Children: []tree.Initializer[string]{{Node: "leaf"}}},
			{Node: "right"},
		},
	})
	n, _ := t.Prune(1)
	kids, _ := t.Children(t.Root())
	w, _ := t.NodeWeight(kids[0])
	fmt.Println(n, t.Order(), w)
	// Output: 2 2 right
}
