// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/partgraph/core"
)

// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
var ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. nil is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// flavoured is implemented by *core.Graph; graphs that do not implement it
// are taken as directed.
type flavoured interface {
	Flavour() core.Flavour
}

type topoSorter struct {
	graph Graph
	ctx   context.Context
	state []uint8
	order []int
}

// TopologicalSort orders all nodes of g so that every edge u→v has u before
// v. Roots are tried in index order and edges in stored order, so the result
// is deterministic. A loop or any other cycle gives ErrCycleDetected; graphs
// of an undirected flavour give ErrNotDirected.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g Graph, options ...TopoOption) ([]int, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	if f, ok := g.(flavoured); ok && !f.Flavour().IsDirected() {
		return nil, fmt.Errorf("dfs.TopologicalSort: %s graph: %w", f.Flavour(), ErrNotDirected)
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}
	n := g.Order()
	t := &topoSorter{
		graph: g,
		ctx:   opts.ctx,
		state: make([]uint8, n),
		order: make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter) visit(node int) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[node] {
	case Gray:
		return fmt.Errorf("dfs.TopologicalSort: back edge into %d: %w", node, ErrCycleDetected)
	case Black:
		return nil
	}
	t.state[node] = Gray

	nbrs, err := t.graph.Neighbors(node)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nbr := range nbrs {
		if nbr < 0 || nbr >= len(t.state) {
			continue
		}
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[node] = Black
	t.order = append(t.order, node)

	return nil
}
