// SPDX-License-Identifier: MIT
// File: prune.go
// Role: subtree removal.
// AI-HINT (file):
//   - Forward and Symmetric trees find descendants with a BFS from the node.
//   - Backward trees cannot reach descendants by following edges; every
//     node's parent chain is scanned instead (memoised, O(V)).
//   - Nodes are erased highest index first so pending indices stay valid.

package tree

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/partgraph/bfs"
	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/partition"
)

// Prune removes node and all of its descendants. Pruning the root empties
// the tree. Returns the number of nodes removed.
func (t *Tree[W, N]) Prune(node int) (int, error) {
	if node < 0 || node >= t.Order() {
		return 0, fmt.Errorf("tree.Prune: node %d out of range - tree has %d node(s): %w",
			node, t.Order(), core.ErrOutOfRange)
	}
	if t.g.StorageKind() == partition.KindStatic {
		return 0, fmt.Errorf("tree.Prune: static storage cannot change shape: %w", core.ErrFixedCapacity)
	}
	doomed, err := t.Descendants(node)
	if err != nil {
		return 0, fmt.Errorf("tree.Prune: %w", err)
	}
	slices.Sort(doomed)
	for i := len(doomed) - 1; i >= 0; i-- {
		if err := t.g.EraseNode(doomed[i]); err != nil {
			return 0, fmt.Errorf("tree.Prune: %w", err)
		}
	}
	if _, hit := slices.BinarySearch(doomed, t.root); hit {
		t.root = Npos
	} else {
		below, _ := slices.BinarySearch(doomed, t.root)
		t.root -= below
	}

	return len(doomed), nil
}

// Descendants returns the nodes of node's subtree, node included.
// Forward and Symmetric trees report breadth-first order starting at node;
// Backward trees report index order.
func (t *Tree[W, N]) Descendants(node int) ([]int, error) {
	if t.dir == Backward {
		return t.scanDescendants(node)
	}
	var opts []bfs.Option
	if t.dir == Symmetric {
		parent, err := t.Parent(node)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != parent }))
	}
	res, err := bfs.BFS(t.g, node, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// scanDescendants marks every node whose parent chain reaches node.
func (t *Tree[W, N]) scanDescendants(node int) ([]int, error) {
	const (
		unknown = iota
		inside
		outside
	)
	n := t.Order()
	if node < 0 || node >= n {
		return nil, fmt.Errorf("node %d out of range - tree has %d node(s): %w", node, n, core.ErrOutOfRange)
	}
	state := make([]uint8, n)
	state[node] = inside
	if t.root != node && t.root != Npos {
		state[t.root] = outside
	}
	var chain []int
	for v := 0; v < n; v++ {
		chain = chain[:0]
		cur := v
		for state[cur] == unknown {
			chain = append(chain, cur)
			p, err := t.Parent(cur)
			if err != nil {
				return nil, err
			}
			if p == Npos {
				state[cur] = outside
				break
			}
			cur = p
		}
		for _, c := range chain {
			state[c] = state[cur]
		}
	}
	var out []int
	for v, s := range state {
		if s == inside {
			out = append(out, v)
		}
	}

	return out, nil
}
