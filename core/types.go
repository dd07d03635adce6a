// SPDX-License-Identifier: MIT
// Package core defines the partitioned Graph, its Edge record, and the
// options and sentinel errors shared by every graph operation.
//
// This file declares Flavour, Edge, EdgeInit, Graph, GraphOption, sentinel
// errors, and the error helpers used by the method files.
//
// Errors:
//
//	ErrOutOfRange       - node or edge index outside the graph (alias of partition.ErrOutOfRange).
//	ErrInconsistent     - literal or argument would violate a graph invariant.
//	ErrEmbeddingOrder   - operation would reorder an embedded node's edges.
//	ErrFixedCapacity    - size-changing operation on static storage.
//	ErrNotEquivalent    - Equivalent found a difference.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/partgraph/alloc"
	"github.com/katalvlaran/partgraph/iterator"
	"github.com/katalvlaran/partgraph/partition"
)

// Sentinel errors for core graph operations.
var (
	// ErrOutOfRange indicates a node index, edge index, target or
	// complementary index outside its valid range.
	ErrOutOfRange = partition.ErrOutOfRange

	// ErrInconsistent indicates that a literal or call would leave the graph
	// in a state violating one of its structural rules.
	ErrInconsistent = errors.New("core: inconsistent graph")

	// ErrEmbeddingOrder indicates a reordering request on an embedded graph.
	ErrEmbeddingOrder = errors.New("core: edge order of an embedded graph is fixed")

	// ErrFixedCapacity indicates a size-changing call on static storage.
	ErrFixedCapacity = partition.ErrFixedCapacity

	// ErrNotEquivalent indicates that a graph differs from a reference literal.
	ErrNotEquivalent = errors.New("core: graph not equivalent")
)

// Npos marks "no index": the parent of a root, the comp of a directed edge.
const Npos = iterator.Npos

// Flavour selects how edges are stored.
type Flavour int

const (
	// Directed stores one half-edge per edge, at the source only.
	Directed Flavour = iota
	// Undirected stores one half-edge at each endpoint (two at a loop).
	Undirected
	// DirectedEmbedded stores both halves and records the true source,
	// so incoming edges are visible and cyclic order is meaningful.
	DirectedEmbedded
	// UndirectedEmbedded is Undirected with a meaningful cyclic order.
	UndirectedEmbedded
)

// String returns the canonical lower-case flavour name.
func (f Flavour) String() string {
	switch f {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	case DirectedEmbedded:
		return "directed_embedded"
	case UndirectedEmbedded:
		return "undirected_embedded"
	default:
		return fmt.Sprintf("Flavour(%d)", int(f))
	}
}

// ParseFlavour is the inverse of String.
func ParseFlavour(s string) (Flavour, error) {
	for f := Directed; f <= UndirectedEmbedded; f++ {
		if f.String() == s {
			return f, nil
		}
	}

	return 0, fmt.Errorf("ParseFlavour: unknown flavour %q: %w", s, ErrInconsistent)
}

// IsDirected reports whether edges have a direction.
func (f Flavour) IsDirected() bool { return f == Directed || f == DirectedEmbedded }

// IsEmbedded reports whether per-node edge order is significant.
func (f Flavour) IsEmbedded() bool { return f == DirectedEmbedded || f == UndirectedEmbedded }

// paired reports whether every edge is stored as two half-edges.
func (f Flavour) paired() bool { return f != Directed }

// None is the zero-size weight and meta-data type.
type None = struct{}

// Edge is one stored half-edge. Its fields are read through accessors; all
// mutation goes through Graph so partner halves stay consistent.
type Edge[W, M any] struct {
	source int // DirectedEmbedded only, otherwise Npos
	target int
	comp   int // Npos for Directed
	weight *W
	meta   *M
}

// Target returns the node this half-edge points at.
func (e Edge[W, M]) Target() int { return e.target }

// Source returns the true source of a DirectedEmbedded edge, Npos otherwise.
func (e Edge[W, M]) Source() int { return e.source }

// Comp returns the index of the partner half inside its partition, or Npos
// for Directed graphs.
func (e Edge[W, M]) Comp() int { return e.comp }

// Weight returns the edge weight.
func (e Edge[W, M]) Weight() W { return *e.weight }

// MetaData returns this half's meta-data.
func (e Edge[W, M]) MetaData() M { return *e.meta }

// Inverted reports whether a DirectedEmbedded half-edge is stored at its
// target (an incoming edge of node).
func (e Edge[W, M]) Inverted(node int) bool { return e.source != Npos && e.source != node }

// EdgeInit is the literal form of a half-edge used by NewFromEdges,
// Equivalent and EdgeInits. Source is only read for DirectedEmbedded and
// Comp is ignored for Directed.
type EdgeInit[W, M any] struct {
	Source   int
	Target   int
	Comp     int
	Weight   W
	MetaData M
}

// Graph is a sequence of nodes, each owning an ordered partition of
// half-edges, stored in a partition.Storage.
//
// Graph performs no internal locking; callers serialise access.
type Graph[W, N, M any] struct {
	flavour       Flavour
	edges         partition.Storage[Edge[W, M]]
	nodes         []N
	nodeAlloc     alloc.Allocator
	sharedWeights bool
	sharedMeta    bool
}

// GraphOption configures a Graph before construction.
type GraphOption func(*graphConfig)

type graphConfig struct {
	kind          partition.Kind
	edgeAlloc     alloc.Allocator
	partsAlloc    alloc.Allocator
	nodeAlloc     alloc.Allocator
	sharedWeights bool
	sharedMeta    bool
}

// DefaultStorage is the back-end used when WithStorage is not given.
const DefaultStorage = partition.KindContiguous

func newGraphConfig(opts []GraphOption) graphConfig {
	cfg := graphConfig{
		kind:       DefaultStorage,
		edgeAlloc:  alloc.Default(),
		partsAlloc: alloc.Default(),
		nodeAlloc:  alloc.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c graphConfig) storageOptions() []partition.Option {
	return []partition.Option{
		partition.WithAllocator(c.edgeAlloc),
		partition.WithPartitionsAllocator(c.partsAlloc),
	}
}

// WithStorage selects the partition back-end.
func WithStorage(kind partition.Kind) GraphOption {
	return func(c *graphConfig) { c.kind = kind }
}

// WithSharedWeights makes both halves of an edge share one weight cell.
// Without it each half owns a copy and setters update both.
func WithSharedWeights() GraphOption {
	return func(c *graphConfig) { c.sharedWeights = true }
}

// WithSharedMetaData makes both halves of an edge share one meta-data cell.
func WithSharedMetaData() GraphOption {
	return func(c *graphConfig) { c.sharedMeta = true }
}

// WithEdgeAllocator sets the allocator of the edge buffers. Panics on nil.
func WithEdgeAllocator(a alloc.Allocator) GraphOption {
	if a == nil {
		panic("core: WithEdgeAllocator(nil)")
	}

	return func(c *graphConfig) { c.edgeAlloc = a }
}

// WithPartitionsAllocator sets the allocator of the partition bookkeeping.
// Panics on nil.
func WithPartitionsAllocator(a alloc.Allocator) GraphOption {
	if a == nil {
		panic("core: WithPartitionsAllocator(nil)")
	}

	return func(c *graphConfig) { c.partsAlloc = a }
}

// WithNodeAllocator sets the allocator of the node-weight buffer. Panics on nil.
func WithNodeAllocator(a alloc.Allocator) GraphOption {
	if a == nil {
		panic("core: WithNodeAllocator(nil)")
	}

	return func(c *graphConfig) { c.nodeAlloc = a }
}

func nodeRangeError(method string, node, order int) error {
	return fmt.Errorf("%s: node index %d out of range - graph has %d node(s): %w",
		method, node, order, ErrOutOfRange)
}

func edgeRangeError(method string, node, i, degree int) error {
	return fmt.Errorf("%s: edge index %d out of range for node %d, which has %d edge(s): %w",
		method, i, node, degree, ErrOutOfRange)
}
