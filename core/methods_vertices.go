// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: node lifecycle: AddNode, InsertNode, EraseNode, SwapNodes, SortNodes,
//       node weights, Clear.
// Determinism:
//   - Node indices are dense; insertion and erasure shift later indices by one.
// AI-HINT (file):
//   - Every index shift is mirrored into all stored targets and sources.
//   - Static storage rejects shape changes before touching anything.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/partgraph/alloc"
)

// AddNode appends an isolated node with a zero weight and returns its index.
func (g *Graph[W, N, M]) AddNode() (int, error) {
	var zero N

	return g.AddNodeWith(zero)
}

// AddNodeWith appends an isolated node with weight w and returns its index.
func (g *Graph[W, N, M]) AddNodeWith(w N) (int, error) {
	if err := g.edges.AddSlot(); err != nil {
		return Npos, fmt.Errorf("AddNode: %w", err)
	}
	g.nodes = alloc.Append(g.nodeAlloc, g.nodes, w)

	return g.Order() - 1, nil
}

// InsertNode inserts an isolated node with weight w at position k, clamped to
// Order(). Nodes at k and after move up by one; the index used is returned.
//
// Complexity: O(V + E).
func (g *Graph[W, N, M]) InsertNode(k int, w N) (int, error) {
	if err := g.requireDynamic("InsertNode"); err != nil {
		return Npos, err
	}
	if k < 0 {
		return Npos, nodeRangeError("InsertNode", k, g.Order())
	}
	k = min(k, g.Order())
	if err := g.edges.InsertSlot(k); err != nil {
		return Npos, fmt.Errorf("InsertNode: %w", err)
	}
	g.retarget(func(x int) int {
		if x >= k {
			return x + 1
		}

		return x
	})
	g.nodes = alloc.Insert(g.nodeAlloc, g.nodes, k, w)

	return k, nil
}

// EraseNode removes node k with every edge incident to it. Later nodes move
// down by one.
//
// Steps:
//  1. Drop each half-edge elsewhere whose partner lives at k; repair comps.
//  2. Remove partition k and its node weight.
//  3. Shift every stored index above k down by one.
//
// Complexity: O(V + E).
func (g *Graph[W, N, M]) EraseNode(k int) error {
	if err := g.checkNode("EraseNode", k); err != nil {
		return err
	}
	if err := g.requireDynamic("EraseNode"); err != nil {
		return err
	}
	for p := 0; p < g.Order(); p++ {
		if p == k {
			continue
		}
		view := g.view(p)
		var doomed []int
		for i := range view {
			if g.partner(p, &view[i]) == k {
				doomed = append(doomed, i)
			}
		}
		if len(doomed) == 0 {
			continue
		}
		for i := len(doomed) - 1; i >= 0; i-- {
			if _, err := g.edges.EraseAt(p, doomed[i]); err != nil {
				return fmt.Errorf("EraseNode: %w", err)
			}
		}
		g.reindex(p, shiftDown(doomed...))
	}
	if err := g.edges.EraseSlot(k); err != nil {
		return fmt.Errorf("EraseNode: %w", err)
	}
	g.nodes = alloc.Remove(g.nodes, k, k+1)
	g.retarget(func(x int) int {
		if x > k {
			return x - 1
		}

		return x
	})

	return nil
}

// SwapNodes exchanges the positions of nodes i and j, together with their
// weights and partitions. Edges keep pointing at the same logical nodes.
func (g *Graph[W, N, M]) SwapNodes(i, j int) error {
	if err := g.checkNode("SwapNodes", i); err != nil {
		return err
	}
	if err := g.checkNode("SwapNodes", j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	g.retarget(func(x int) int {
		switch x {
		case i:
			return j
		case j:
			return i
		default:
			return x
		}
	})
	if err := g.edges.SwapPartitions(i, j); err != nil {
		return fmt.Errorf("SwapNodes: %w", err)
	}
	g.nodes[i], g.nodes[j] = g.nodes[j], g.nodes[i]

	return nil
}

// SortNodes stably reorders nodes by weight using less, through SwapNodes.
//
// Complexity: O(V log V + V*(V + E)).
func (g *Graph[W, N, M]) SortNodes(less func(a, b N) bool) error {
	n := g.Order()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return less(g.nodes[order[a]], g.nodes[order[b]]) })

	at := make([]int, n)    // original node -> current position
	whose := make([]int, n) // current position -> original node
	for i := range at {
		at[i], whose[i] = i, i
	}
	for q, want := range order {
		from := at[want]
		if from == q {
			continue
		}
		if err := g.SwapNodes(q, from); err != nil {
			return fmt.Errorf("SortNodes: %w", err)
		}
		moved := whose[q]
		whose[q], whose[from] = want, moved
		at[want], at[moved] = q, from
	}

	return nil
}

// SetNodeWeight replaces the weight of node.
func (g *Graph[W, N, M]) SetNodeWeight(node int, w N) error {
	if err := g.checkNode("SetNodeWeight", node); err != nil {
		return err
	}
	g.nodes[node] = w

	return nil
}

// MutateNodeWeight applies fn to node's weight in place.
func (g *Graph[W, N, M]) MutateNodeWeight(node int, fn func(*N)) error {
	if err := g.checkNode("MutateNodeWeight", node); err != nil {
		return err
	}
	fn(&g.nodes[node])

	return nil
}

// Clear removes every node and edge.
func (g *Graph[W, N, M]) Clear() error {
	if err := g.edges.Clear(); err != nil {
		return fmt.Errorf("Clear: %w", err)
	}
	g.nodes = alloc.Shrink(g.nodeAlloc, g.nodes[:0])

	return nil
}

// Reserve pre-sizes the node containers for n nodes.
func (g *Graph[W, N, M]) Reserve(n int) {
	g.edges.ReservePartitions(n)
	g.nodes = alloc.Reserve(g.nodeAlloc, g.nodes, n)
}

// ShrinkToFit releases spare capacity.
func (g *Graph[W, N, M]) ShrinkToFit() {
	g.edges.ShrinkToFit()
	g.edges.ShrinkNumPartitionsToFit()
	g.nodes = alloc.Shrink(g.nodeAlloc, g.nodes)
}

// retarget rewrites every stored target and source through fn.
func (g *Graph[W, N, M]) retarget(fn func(int) int) {
	for u := 0; u < g.Order(); u++ {
		view := g.view(u)
		for i := range view {
			view[i].target = fn(view[i].target)
			if view[i].source != Npos {
				view[i].source = fn(view[i].source)
			}
		}
	}
}
