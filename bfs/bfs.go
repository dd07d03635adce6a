// Package bfs provides breadth-first search over node-indexed graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g Graph, start int, opts ...Option) (*BFSResult, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i], w.res.Parent[i] = Npos, Npos
	}

	w.enqueue(start, 0, Npos)

	return w.res, w.loop()
}

// enqueue marks node visited at depth d, records its parent, calls
// OnEnqueue and adds it to the queue.
func (w *walker) enqueue(node, d, parent int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.opts.OnEnqueue(node, d)
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor in stored edge order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.node)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.node, err)
	}
	for _, nbr := range neighbors {
		if nbr < 0 || nbr >= len(w.visited) || w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.node)
	}

	return nil
}

// isNil catches both a nil interface and a typed nil pointer.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
