// SPDX-License-Identifier: MIT
// File: api.go
// Role: constructors and the read-only facade: order, size, accessors, Stats.
// Determinism:
//   - Every accessor reflects stored order; nothing is sorted on read.
// AI-HINT (file):
//   - Accessors never mutate; index errors wrap ErrOutOfRange.

package core

import (
	"fmt"

	"github.com/katalvlaran/partgraph/alloc"
	"github.com/katalvlaran/partgraph/partition"
)

// New returns an empty graph of the given flavour.
func New[W, N, M any](f Flavour, opts ...GraphOption) (*Graph[W, N, M], error) {
	return NewFromEdges[W, N, M](f, nil, nil, opts...)
}

// NewFromEdges builds a graph from a literal: edges[u] lists the half-edges
// of node u in order. nodeWeights may be nil (zero weights); otherwise its
// length must equal len(edges).
//
// Validation runs before anything is allocated:
//   - a target (or DirectedEmbedded source) outside [0, len(edges)) wraps ErrOutOfRange;
//   - a comp outside the partner's partition wraps ErrOutOfRange and ErrInconsistent;
//   - self-partnered halves, unmatched partners or differing weights wrap ErrInconsistent.
func NewFromEdges[W, N, M any](f Flavour, edges [][]EdgeInit[W, M], nodeWeights []N, opts ...GraphOption) (*Graph[W, N, M], error) {
	cfg := newGraphConfig(opts)
	if err := validateEdges("NewFromEdges", f, edges, cfg.sharedMeta); err != nil {
		return nil, err
	}
	if nodeWeights != nil && len(nodeWeights) != len(edges) {
		return nil, fmt.Errorf("NewFromEdges: %d node weight(s) for %d node(s): %w",
			len(nodeWeights), len(edges), ErrInconsistent)
	}
	store, err := partition.From(cfg.kind, halfEdges(f, edges), cfg.storageOptions()...)
	if err != nil {
		return nil, fmt.Errorf("NewFromEdges: %w", err)
	}
	g := &Graph[W, N, M]{
		flavour:       f,
		edges:         store,
		nodeAlloc:     cfg.nodeAlloc,
		sharedWeights: cfg.sharedWeights,
		sharedMeta:    cfg.sharedMeta,
	}
	g.detachCells()
	if nodeWeights == nil {
		nodeWeights = make([]N, len(edges))
	}
	g.nodes = alloc.Clone(g.nodeAlloc, nodeWeights)

	return g, nil
}

// Flavour returns the storage flavour.
func (g *Graph[W, N, M]) Flavour() Flavour { return g.flavour }

// StorageKind returns the partition back-end in use.
func (g *Graph[W, N, M]) StorageKind() partition.Kind { return g.edges.Kind() }

// SharedWeights reports whether partner halves share one weight cell.
func (g *Graph[W, N, M]) SharedWeights() bool { return g.sharedWeights }

// SharedMetaData reports whether partner halves share one meta-data cell.
func (g *Graph[W, N, M]) SharedMetaData() bool { return g.sharedMeta }

// Order returns the number of nodes.
func (g *Graph[W, N, M]) Order() int { return g.edges.NumPartitions() }

// Size returns the number of edges: half-edges for Directed, half-edges/2
// otherwise.
func (g *Graph[W, N, M]) Size() int {
	if g.flavour.paired() {
		return g.edges.Size() / 2
	}

	return g.edges.Size()
}

// Empty reports whether the graph has no nodes.
func (g *Graph[W, N, M]) Empty() bool { return g.Order() == 0 }

// Degree returns the number of half-edges stored at node.
func (g *Graph[W, N, M]) Degree(node int) (int, error) {
	if err := g.checkNode("Degree", node); err != nil {
		return 0, err
	}

	return len(g.view(node)), nil
}

// Edges returns a copy of node's half-edges. The copies still refer to
// the graph's cells; use the Graph setters to change weights.
func (g *Graph[W, N, M]) Edges(node int) ([]Edge[W, M], error) {
	if err := g.checkNode("Edges", node); err != nil {
		return nil, err
	}

	return append([]Edge[W, M](nil), g.view(node)...), nil
}

// Edge returns the i-th half-edge of node.
func (g *Graph[W, N, M]) Edge(node, i int) (Edge[W, M], error) {
	if err := g.checkEdge("Edge", node, i); err != nil {
		return Edge[W, M]{}, err
	}

	return g.view(node)[i], nil
}

// Neighbors returns the nodes reached by following node's half-edges in
// stored order, respecting direction: incoming halves of a DirectedEmbedded
// node are skipped. Parallel edges and loops repeat targets.
func (g *Graph[W, N, M]) Neighbors(node int) ([]int, error) {
	if err := g.checkNode("Neighbors", node); err != nil {
		return nil, err
	}
	view := g.view(node)
	out := make([]int, 0, len(view))
	for i := range view {
		if view[i].Inverted(node) {
			continue
		}
		out = append(out, view[i].target)
	}

	return out, nil
}

// Partner returns the node and offset of the other half of (node, i).
// Directed graphs have no stored partner and report ErrInconsistent.
func (g *Graph[W, N, M]) Partner(node, i int) (int, int, error) {
	if err := g.checkEdge("Partner", node, i); err != nil {
		return Npos, Npos, err
	}
	if !g.flavour.paired() {
		return Npos, Npos, fmt.Errorf("Partner: directed graphs store one half per edge: %w", ErrInconsistent)
	}
	e := &g.view(node)[i]

	return g.partner(node, e), e.comp, nil
}

// NodeWeight returns the weight of node.
func (g *Graph[W, N, M]) NodeWeight(node int) (N, error) {
	if err := g.checkNode("NodeWeight", node); err != nil {
		var zero N
		return zero, err
	}

	return g.nodes[node], nil
}

// NodeWeights returns a copy of all node weights in node order.
func (g *Graph[W, N, M]) NodeWeights() []N { return append([]N(nil), g.nodes...) }

// CBeginEdges returns a read-only iterator to node's first half-edge.
func (g *Graph[W, N, M]) CBeginEdges(node int) (partition.ConstIterator[Edge[W, M]], error) {
	return g.edges.CBeginPartition(node)
}

// CEndEdges returns the read-only end iterator of node's half-edges.
func (g *Graph[W, N, M]) CEndEdges(node int) (partition.ConstIterator[Edge[W, M]], error) {
	return g.edges.CEndPartition(node)
}

// CRBeginEdges returns a reverse read-only iterator to node's last half-edge.
func (g *Graph[W, N, M]) CRBeginEdges(node int) (partition.ConstIterator[Edge[W, M]], error) {
	return g.edges.CRBeginPartition(node)
}

// CREndEdges returns the reverse read-only end iterator of node's half-edges.
func (g *Graph[W, N, M]) CREndEdges(node int) (partition.ConstIterator[Edge[W, M]], error) {
	return g.edges.CREndPartition(node)
}

// EdgeAllocator returns the allocator of the half-edge buffers.
func (g *Graph[W, N, M]) EdgeAllocator() alloc.Allocator { return g.edges.Allocator() }

// PartitionsAllocator returns the allocator of the partition bookkeeping.
func (g *Graph[W, N, M]) PartitionsAllocator() alloc.Allocator { return g.edges.PartitionsAllocator() }

// NodeAllocator returns the allocator of the node-weight buffer.
func (g *Graph[W, N, M]) NodeAllocator() alloc.Allocator { return g.nodeAlloc }

// GraphStats is a snapshot of structural counters.
type GraphStats struct {
	Flavour   Flavour
	Storage   partition.Kind
	Order     int
	Size      int
	HalfEdges int
	Loops     int
	MaxDegree int
}

// Stats returns a snapshot of structural counters.
//
// Complexity: O(V + E).
func (g *Graph[W, N, M]) Stats() GraphStats {
	st := GraphStats{
		Flavour:   g.flavour,
		Storage:   g.edges.Kind(),
		Order:     g.Order(),
		Size:      g.Size(),
		HalfEdges: g.edges.Size(),
	}
	for u := 0; u < st.Order; u++ {
		view := g.view(u)
		st.MaxDegree = max(st.MaxDegree, len(view))
		for i := range view {
			e := &view[i]
			if e.target == u && (e.source == Npos || e.source == u) {
				st.Loops++
			}
		}
	}
	if g.flavour.paired() {
		st.Loops /= 2
	}

	return st
}

func (g *Graph[W, N, M]) checkNode(method string, node int) error {
	if node < 0 || node >= g.Order() {
		return nodeRangeError(method, node, g.Order())
	}

	return nil
}

func (g *Graph[W, N, M]) checkEdge(method string, node, i int) error {
	if err := g.checkNode(method, node); err != nil {
		return err
	}
	if d := len(g.view(node)); i < 0 || i >= d {
		return edgeRangeError(method, node, i, d)
	}

	return nil
}

func (g *Graph[W, N, M]) requireDynamic(method string) error {
	if g.edges.Kind() == partition.KindStatic {
		return fmt.Errorf("%s: static storage cannot change shape: %w", method, ErrFixedCapacity)
	}

	return nil
}
