// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Visitation states of TopologicalSort.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// Npos marks "no parent" and "not reached".
const Npos = -1

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates that the start index is not a node.
	ErrStartOutOfRange = errors.New("dfs: start node out of range")

	// ErrCycleDetected indicates that TopologicalSort met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned by TopologicalSort for graphs whose edges
	// run both ways.
	ErrNotDirected = errors.New("dfs: graph is not directed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Graph is the read surface DFS needs. *core.Graph satisfies it.
type Graph interface {
	Order() int
	Neighbors(node int) ([]int, error)
}

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(node, depth int) error

	// OnExit is invoked after all descendants of a node are explored,
	// before the node is appended to Order.
	OnExit func(node int) error

	// MaxDepth, if > 0, stops descending below that depth. 0 disables the
	// limit.
	MaxDepth int

	// FilterNeighbor is called for each edge curr→neighbor; false skips it
	// and counts it in SkippedNeighbors.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal restarts from every unvisited node in index order,
	// covering disconnected components.
	FullTraversal bool

	err error
}

// DefaultOptions returns single-source traversal with no hooks, no depth
// limit and no filtering.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(node int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits the traversal depth.
//
//	d > 0: nodes deeper than d are never discovered
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every component, not only the one of start.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []int

	// Depth is each node's tree depth from its root, or Npos.
	Depth []int

	// Parent is each node's discoverer, or Npos for roots and unreached nodes.
	Parent []int

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Reached reports whether node was visited.
func (r *DFSResult) Reached(node int) bool {
	return node >= 0 && node < len(r.Depth) && r.Depth[node] != Npos
}
