// Package bfs provides tunable options and error definitions
// for breadth-first search over node-indexed graphs.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start index is not a node.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Npos marks "no parent" and "not reached".
const Npos = -1

// Graph is the read surface BFS needs. *core.Graph satisfies it.
type Graph interface {
	Order() int
	Neighbors(node int) ([]int, error)
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	OnEnqueue func(node, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(node, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor whose neighbor is still unseen.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit, no filtering
// and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: per node, its distance in edges from the start, or Npos.
//   - Parent: per node, its predecessor in the BFS tree, or Npos.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether node was visited.
func (r *BFSResult) Reached(node int) bool {
	return node >= 0 && node < len(r.Depth) && r.Depth[node] != Npos
}

// PathTo reconstructs the path from the start node to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; cur != Npos; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
