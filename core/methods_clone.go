// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: value semantics: CloneEmpty, Clone, Assign, MoveFrom, Swap, Equal.
// Determinism:
//   - Clone preserves node order, edge order and every comp.
// AI-HINT (file):
//   - Copies never alias weight or meta-data cells of the source.
//   - Allocators follow the propagation rules of each buffer's allocator.

package core

import (
	"reflect"

	"github.com/katalvlaran/partgraph/alloc"
	"github.com/katalvlaran/partgraph/partition"
)

// CloneEmpty returns a graph with the same configuration and node weights
// but no edges.
//
// Complexity: O(V).
func (g *Graph[W, N, M]) CloneEmpty() *Graph[W, N, M] {
	store, _ := partition.From(g.edges.Kind(), make([][]Edge[W, M], g.Order()),
		partition.WithAllocator(g.edges.Allocator().SelectOnCopy()),
		partition.WithPartitionsAllocator(g.edges.PartitionsAllocator().SelectOnCopy()))
	clone := g.shell(store)
	clone.nodes = alloc.Clone(clone.nodeAlloc, g.nodes)

	return clone
}

// Clone returns a deep copy. Weight and meta-data cells are duplicated and
// re-shared between partner halves when sharing is on.
//
// Complexity: O(V + E).
func (g *Graph[W, N, M]) Clone() *Graph[W, N, M] {
	clone := g.shell(g.edges.CloneStorage())
	clone.detachCells()
	clone.nodes = alloc.Clone(clone.nodeAlloc, g.nodes)

	return clone
}

func (g *Graph[W, N, M]) shell(store partition.Storage[Edge[W, M]]) *Graph[W, N, M] {
	return &Graph[W, N, M]{
		flavour:       g.flavour,
		edges:         store,
		nodeAlloc:     g.nodeAlloc.SelectOnCopy(),
		sharedWeights: g.sharedWeights,
		sharedMeta:    g.sharedMeta,
	}
}

// Assign copy-assigns src into g. Both graphs must use the same storage
// kind; flavour and sharing follow src.
func (g *Graph[W, N, M]) Assign(src *Graph[W, N, M]) {
	if g == src {
		return
	}
	g.edges.AssignStorage(src.edges)
	g.flavour, g.sharedWeights, g.sharedMeta = src.flavour, src.sharedWeights, src.sharedMeta
	g.detachCells()
	g.nodes, g.nodeAlloc = alloc.AssignBuffer(g.nodeAlloc, src.nodeAlloc, g.nodes, src.nodes)
}

// MoveFrom move-assigns src into g; src is left empty but usable. Cells
// change hands without copying. Static storage cannot hand its buffers
// over, so moving out of a static graph copy-assigns and leaves src as it
// was.
func (g *Graph[W, N, M]) MoveFrom(src *Graph[W, N, M]) {
	if g == src {
		return
	}
	if src.edges.Kind() == partition.KindStatic {
		g.Assign(src)
		return
	}
	g.edges.MoveStorage(src.edges)
	g.flavour, g.sharedWeights, g.sharedMeta = src.flavour, src.sharedWeights, src.sharedMeta
	g.nodes, g.nodeAlloc, src.nodes = alloc.MoveBuffer(g.nodeAlloc, src.nodeAlloc, g.nodes, src.nodes)
}

// Swap exchanges the contents of g and other.
func (g *Graph[W, N, M]) Swap(other *Graph[W, N, M]) {
	g.edges.SwapStorage(other.edges)
	g.flavour, other.flavour = other.flavour, g.flavour
	g.sharedWeights, other.sharedWeights = other.sharedWeights, g.sharedWeights
	g.sharedMeta, other.sharedMeta = other.sharedMeta, g.sharedMeta
	g.nodes, other.nodes = other.nodes, g.nodes
	if g.nodeAlloc.Policy().PropagateOnSwap {
		g.nodeAlloc, other.nodeAlloc = other.nodeAlloc, g.nodeAlloc
	}
}

// Equal reports structural equality: same flavour, node weights, and the
// same half-edges in the same order with equal weights and meta-data.
func (g *Graph[W, N, M]) Equal(other *Graph[W, N, M]) bool {
	if g.flavour != other.flavour || len(g.nodes) != len(other.nodes) {
		return false
	}
	for i := range g.nodes {
		if !reflect.DeepEqual(g.nodes[i], other.nodes[i]) {
			return false
		}
	}

	return partition.EqualFunc(g.edges, other.edges, func(a, b Edge[W, M]) bool {
		return a.source == b.source && a.target == b.target && a.comp == b.comp &&
			reflect.DeepEqual(*a.weight, *b.weight) && reflect.DeepEqual(*a.meta, *b.meta)
	})
}
