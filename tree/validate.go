// SPDX-License-Identifier: MIT
// File: validate.go
// Role: structural self-check of a tree.
// AI-HINT (file):
//   - V-1 edges plus "every node reachable from the root" is a tree for
//     Forward and Symmetric; Backward instead needs one out-edge per
//     non-root node and no cycle.

package tree

import (
	"fmt"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/dfs"
)

// Validate reports whether the underlying graph is a tree rooted at Root()
// in the shape its link direction prescribes. Symmetric trees must also
// keep the root-ward half at offset 0. Failures wrap core.ErrInconsistent.
//
// Complexity: O(V + E).
func (t *Tree[W, N]) Validate() error {
	n := t.Order()
	if n == 0 {
		if t.root != Npos {
			return fmt.Errorf("tree.Validate: empty tree with root %d: %w", t.root, core.ErrInconsistent)
		}
		return nil
	}
	if t.root < 0 || t.root >= n {
		return fmt.Errorf("tree.Validate: root %d out of range - tree has %d node(s): %w", t.root, n, core.ErrInconsistent)
	}
	if t.Size() != n-1 {
		return fmt.Errorf("tree.Validate: %d edge(s) for %d node(s): %w", t.Size(), n, core.ErrInconsistent)
	}
	if t.dir == Backward {
		return t.validateBackward()
	}

	res, err := dfs.DFS(t.g, t.root)
	if err != nil {
		return fmt.Errorf("tree.Validate: %w", err)
	}
	for v := 0; v < n; v++ {
		if !res.Reached(v) {
			return fmt.Errorf("tree.Validate: node %d unreachable from root %d: %w", v, t.root, core.ErrInconsistent)
		}
		if t.dir != Symmetric || v == t.root {
			continue
		}
		e, err := t.g.Edge(v, 0)
		if err != nil {
			return fmt.Errorf("tree.Validate: %w", err)
		}
		if e.Target() != res.Parent[v] {
			return fmt.Errorf("tree.Validate: node %d: first edge leads to %d, parent is %d: %w",
				v, e.Target(), res.Parent[v], core.ErrInconsistent)
		}
	}

	return nil
}

func (t *Tree[W, N]) validateBackward() error {
	for v := 0; v < t.Order(); v++ {
		d, _ := t.g.Degree(v)
		want := 1
		if v == t.root {
			want = 0
		}
		if d != want {
			return fmt.Errorf("tree.Validate: node %d has %d parent edge(s), want %d: %w", v, d, want, core.ErrInconsistent)
		}
	}
	if _, err := dfs.TopologicalSort(t.g); err != nil {
		return fmt.Errorf("tree.Validate: %v: %w", err, core.ErrInconsistent)
	}

	return nil
}
