// SPDX-License-Identifier: MIT
// File: tree.go
// Role: Tree type, link directions, construction and rooted queries.
// Determinism:
//   - Children are reported in stored edge order (Forward, Symmetric) or in
//     node index order (Backward).
// AI-HINT (file):
//   - Symmetric trees keep the root-ward half at offset 0 of every non-root node.
//   - Backward trees store exactly one edge per non-root node: child→parent.

package tree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/partition"
)

// ErrRoot indicates a second root, or a non-root node on an empty tree.
var ErrRoot = errors.New("tree: a tree has exactly one root")

// Npos is the parent of the root.
const Npos = core.Npos

// LinkDir selects which edges connect a parent and its child.
type LinkDir int

const (
	// Forward stores parent→child only.
	Forward LinkDir = iota
	// Backward stores child→parent only.
	Backward
	// Symmetric stores an undirected parent–child edge.
	Symmetric
)

// String returns the lower-case link direction name.
func (d LinkDir) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Symmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("LinkDir(%d)", int(d))
	}
}

// ParseLinkDir is the inverse of String.
func ParseLinkDir(s string) (LinkDir, error) {
	for d := Forward; d <= Symmetric; d++ {
		if d.String() == s {
			return d, nil
		}
	}

	return 0, fmt.Errorf("ParseLinkDir: unknown link direction %q: %w", s, core.ErrInconsistent)
}

func (d LinkDir) flavour() core.Flavour {
	if d == Symmetric {
		return core.Undirected
	}

	return core.Directed
}

// Option configures the underlying graph.
type Option = core.GraphOption

// WithStorage selects the partition back-end of the underlying graph.
func WithStorage(kind partition.Kind) Option { return core.WithStorage(kind) }

// Tree is a rooted graph in which every node but the root has exactly one
// parent. W weighs the parent–child edges and N the nodes.
type Tree[W, N any] struct {
	dir  LinkDir
	g    *core.Graph[W, N, core.None]
	root int
}

// New returns an empty tree.
func New[W, N any](dir LinkDir, opts ...Option) (*Tree[W, N], error) {
	g, err := core.New[W, N, core.None](dir.flavour(), opts...)
	if err != nil {
		return nil, fmt.Errorf("tree.New: %w", err)
	}

	return &Tree[W, N]{dir: dir, g: g, root: Npos}, nil
}

// LinkDir returns the link direction.
func (t *Tree[W, N]) LinkDir() LinkDir { return t.dir }

// Order returns the number of nodes.
func (t *Tree[W, N]) Order() int { return t.g.Order() }

// Size returns the number of parent–child edges (Order()-1 when non-empty).
func (t *Tree[W, N]) Size() int { return t.g.Size() }

// Empty reports whether the tree has no nodes.
func (t *Tree[W, N]) Empty() bool { return t.g.Empty() }

// Root returns the root index, or Npos for an empty tree.
func (t *Tree[W, N]) Root() int { return t.root }

// Graph returns an independent copy of the underlying graph.
func (t *Tree[W, N]) Graph() *core.Graph[W, N, core.None] { return t.g.Clone() }

// NodeWeight returns the weight of node.
func (t *Tree[W, N]) NodeWeight(node int) (N, error) { return t.g.NodeWeight(node) }

// SetNodeWeight replaces the weight of node.
func (t *Tree[W, N]) SetNodeWeight(node int, w N) error { return t.g.SetNodeWeight(node, w) }

// AddNode appends a node under parent, joined by a zero-weight edge.
// parent == Npos creates the root and is only valid on an empty tree.
func (t *Tree[W, N]) AddNode(parent int, n N) (int, error) {
	var zero W

	return t.AddNodeWith(parent, n, zero)
}

// AddNodeWith is AddNode with an explicit edge weight.
func (t *Tree[W, N]) AddNodeWith(parent int, n N, w W) (int, error) {
	if err := t.checkParent("AddNode", parent); err != nil {
		return Npos, err
	}
	idx, err := t.g.AddNodeWith(n)
	if err != nil {
		return Npos, fmt.Errorf("tree.AddNode: %w", err)
	}
	if parent == Npos {
		t.root = idx

		return idx, nil
	}
	if err = t.link(parent, idx, w); err != nil {
		_ = t.g.EraseNode(idx)
		return Npos, fmt.Errorf("tree.AddNode: %w", err)
	}

	return idx, nil
}

// InsertNode inserts a node at index pos (clamped to Order()) under parent,
// which is given in the indexing before the insertion. Returns the index
// used.
func (t *Tree[W, N]) InsertNode(pos, parent int, n N) (int, error) {
	if err := t.checkParent("InsertNode", parent); err != nil {
		return Npos, err
	}
	k, err := t.g.InsertNode(pos, n)
	if err != nil {
		return Npos, fmt.Errorf("tree.InsertNode: %w", err)
	}
	if parent == Npos {
		t.root = k

		return k, nil
	}
	if t.root >= k {
		t.root++
	}
	if parent >= k {
		parent++
	}
	var zero W
	if err = t.link(parent, k, zero); err != nil {
		_ = t.g.EraseNode(k)
		if t.root > k {
			t.root--
		}
		return Npos, fmt.Errorf("tree.InsertNode: %w", err)
	}

	return k, nil
}

// Parent returns the parent of node, or Npos for the root.
//
// Complexity: O(1) for Backward and Symmetric, O(V + E) for Forward.
func (t *Tree[W, N]) Parent(node int) (int, error) {
	if _, err := t.g.Degree(node); err != nil {
		return Npos, fmt.Errorf("tree.Parent: %w", err)
	}
	if node == t.root {
		return Npos, nil
	}
	if t.dir != Forward {
		e, err := t.g.Edge(node, 0)
		if err != nil {
			return Npos, fmt.Errorf("tree.Parent: %w", err)
		}

		return e.Target(), nil
	}
	for u := 0; u < t.Order(); u++ {
		nbrs, _ := t.g.Neighbors(u)
		for _, v := range nbrs {
			if v == node {
				return u, nil
			}
		}
	}

	return Npos, fmt.Errorf("tree.Parent: node %d has no parent: %w", node, core.ErrInconsistent)
}

// Children returns the children of node.
//
// Complexity: O(deg) for Forward and Symmetric, O(V) for Backward.
func (t *Tree[W, N]) Children(node int) ([]int, error) {
	nbrs, err := t.g.Neighbors(node)
	if err != nil {
		return nil, fmt.Errorf("tree.Children: %w", err)
	}
	switch t.dir {
	case Forward:
		return nbrs, nil
	case Symmetric:
		if node != t.root {
			nbrs = nbrs[1:]
		}
		return nbrs, nil
	}
	var out []int
	for c := 0; c < t.Order(); c++ {
		if c == t.root {
			continue
		}
		if e, err := t.g.Edge(c, 0); err == nil && e.Target() == node {
			out = append(out, c)
		}
	}

	return out, nil
}

func (t *Tree[W, N]) checkParent(method string, parent int) error {
	if parent == Npos {
		if !t.Empty() {
			return fmt.Errorf("tree.%s: tree already has root %d: %w", method, t.root, ErrRoot)
		}

		return nil
	}
	if t.Empty() {
		return fmt.Errorf("tree.%s: parent %d given for an empty tree: %w", method, parent, ErrRoot)
	}
	if parent < 0 || parent >= t.Order() {
		return fmt.Errorf("tree.%s: parent %d out of range - tree has %d node(s): %w",
			method, parent, t.Order(), core.ErrOutOfRange)
	}

	return nil
}

// link joins parent and child according to the link direction. The child
// is always freshly created, so a Symmetric child gets its parent half at
// offset 0.
func (t *Tree[W, N]) link(parent, child int, w W) error {
	if t.dir == Forward {
		return t.g.JoinWith(parent, child, w)
	}

	return t.g.JoinWith(child, parent, w)
}
