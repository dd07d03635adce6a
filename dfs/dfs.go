// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"reflect"
)

type walker struct {
	graph Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, following Neighbors in
// stored order. With WithFullTraversal start is ignored and every node is a
// candidate root in index order. On error the partial result is returned
// with an empty Order.
func DFS(g Graph, start int, opts ...Option) (*DFSResult, error) {
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
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i], w.res.Parent[i] = Npos, Npos
	}

	roots := []int{start}
	if o.FullTraversal {
		roots = make([]int, n)
		for i := range roots {
			roots[i] = i
		}
	}
	for _, r := range roots {
		if w.res.Reached(r) {
			continue
		}
		if err := w.traverse(r, 0, Npos); err != nil {
			w.res.Order = nil
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) traverse(node, depth, parent int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[node] = depth
	w.res.Parent[node] = parent
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(node, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", node, err)
		}
	}

	if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
		nbrs, err := w.graph.Neighbors(node)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", node, err)
		}
		for _, nbr := range nbrs {
			if nbr < 0 || nbr >= len(w.res.Depth) {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(node, nbr) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Reached(nbr) {
				continue
			}
			if err = w.traverse(nbr, depth+1, node); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(node); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", node, err)
		}
	}
	w.res.Order = append(w.res.Order, node)

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
