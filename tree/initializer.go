// SPDX-License-Identifier: MIT
// File: initializer.go
// Role: nested literal form of a tree: construction and equivalence.
// Determinism:
//   - FromInitializer numbers nodes in depth-first pre-order, root = 0.

package tree

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/partgraph/core"
)

// Initializer is the nested literal of a (sub)tree.
type Initializer[N any] struct {
	Node     N                `yaml:"node" json:"node"`
	Children []Initializer[N] `yaml:"children,omitempty" json:"children,omitempty"`
}

// Count returns the number of nodes in the literal.
func (in Initializer[N]) Count() int {
	n := 1
	for _, c := range in.Children {
		n += c.Count()
	}

	return n
}

// FromInitializer builds a tree from a literal. Edges carry zero weights.
// The literal is laid out directly, so static storage works too.
func FromInitializer[W, N any](dir LinkDir, init Initializer[N], opts ...Option) (*Tree[W, N], error) {
	var (
		edges   [][]core.EdgeInit[W, core.None]
		weights []N
	)
	var walk func(in Initializer[N], parent int)
	walk = func(in Initializer[N], parent int) {
		self := len(edges)
		edges = append(edges, nil)
		weights = append(weights, in.Node)
		if parent != Npos {
			switch dir {
			case Forward:
				edges[parent] = append(edges[parent], core.EdgeInit[W, core.None]{Target: self, Comp: Npos})
			case Backward:
				edges[self] = append(edges[self], core.EdgeInit[W, core.None]{Target: parent, Comp: Npos})
			case Symmetric:
				edges[self] = append(edges[self], core.EdgeInit[W, core.None]{Target: parent, Comp: len(edges[parent])})
				edges[parent] = append(edges[parent], core.EdgeInit[W, core.None]{Target: self, Comp: 0})
			}
		}
		for _, c := range in.Children {
			walk(c, self)
		}
	}
	walk(init, Npos)

	g, err := core.NewFromEdges[W, N, core.None](dir.flavour(), edges, weights, opts...)
	if err != nil {
		return nil, fmt.Errorf("tree.FromInitializer: %w", err)
	}

	return &Tree[W, N]{dir: dir, g: g, root: 0}, nil
}

// FromForest builds a tree from at most one literal: an empty forest gives
// an empty tree, more than one root is rejected with ErrRoot.
func FromForest[W, N any](dir LinkDir, forest []Initializer[N], opts ...Option) (*Tree[W, N], error) {
	switch len(forest) {
	case 0:
		return New[W, N](dir, opts...)
	case 1:
		return FromInitializer[W, N](dir, forest[0], opts...)
	default:
		return nil, fmt.Errorf("tree.FromForest: %d roots: %w", len(forest), ErrRoot)
	}
}

// Forest returns t in the form accepted by FromForest: nil for an empty
// tree, otherwise a single literal rooted at Root().
func (t *Tree[W, N]) Forest() ([]Initializer[N], error) {
	if t.Empty() {
		return nil, nil
	}
	var walk func(node int) (Initializer[N], error)
	walk = func(node int) (Initializer[N], error) {
		w, err := t.g.NodeWeight(node)
		if err != nil {
			return Initializer[N]{}, err
		}
		kids, err := t.Children(node)
		if err != nil {
			return Initializer[N]{}, err
		}
		in := Initializer[N]{Node: w}
		for _, c := range kids {
			sub, err := walk(c)
			if err != nil {
				return Initializer[N]{}, err
			}
			in.Children = append(in.Children, sub)
		}

		return in, nil
	}
	root, err := walk(t.root)
	if err != nil {
		return nil, fmt.Errorf("tree.Forest: %w", err)
	}

	return []Initializer[N]{root}, nil
}

// Equivalent reports whether t matches init: same node weights, same
// number and order of children at every level. The root-ward edge is never
// counted as a child. The error wraps core.ErrNotEquivalent.
func (t *Tree[W, N]) Equivalent(init Initializer[N]) error {
	if t.Empty() {
		return fmt.Errorf("tree.Equivalent: tree is empty: %w", core.ErrNotEquivalent)
	}
	if n := init.Count(); n != t.Order() {
		return fmt.Errorf("tree.Equivalent: tree has %d node(s), literal has %d: %w",
			t.Order(), n, core.ErrNotEquivalent)
	}

	return t.equivalent(t.root, init, "root")
}

// EquivalentForest is Equivalent for the forest form accepted by FromForest.
func (t *Tree[W, N]) EquivalentForest(forest []Initializer[N]) error {
	switch {
	case len(forest) == 0 && t.Empty():
		return nil
	case len(forest) == 1:
		return t.Equivalent(forest[0])
	default:
		return fmt.Errorf("tree.EquivalentForest: %d root(s) against %d node(s): %w",
			len(forest), t.Order(), core.ErrNotEquivalent)
	}
}

func (t *Tree[W, N]) equivalent(node int, in Initializer[N], path string) error {
	w, err := t.g.NodeWeight(node)
	if err != nil {
		return fmt.Errorf("tree.Equivalent: %s: %w", path, err)
	}
	if !reflect.DeepEqual(w, in.Node) {
		return fmt.Errorf("tree.Equivalent: %s: node weight %v, want %v: %w", path, w, in.Node, core.ErrNotEquivalent)
	}
	kids, err := t.Children(node)
	if err != nil {
		return fmt.Errorf("tree.Equivalent: %s: %w", path, err)
	}
	if len(kids) != len(in.Children) {
		return fmt.Errorf("tree.Equivalent: %s: %d child(ren), want %d: %w",
			path, len(kids), len(in.Children), core.ErrNotEquivalent)
	}
	for i, c := range kids {
		if err := t.equivalent(c, in.Children[i], fmt.Sprintf("%s/%d", path, i)); err != nil {
			return err
		}
	}

	return nil
}
