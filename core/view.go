// SPDX-License-Identifier: MIT
// File: view.go
// Role: non-mutating views: literal snapshots and induced subgraphs.
// Determinism:
//   - EdgeInits mirrors stored order exactly; NewFromEdges(EdgeInits()) is Equal.
// AI-HINT (file):
//   - Views never mutate the input graph.
//   - InducedSubgraph keeps surviving nodes in their relative order.

package core

import "fmt"

// EdgeInits returns the graph as a literal accepted by NewFromEdges.
//
// Complexity: O(V + E).
func (g *Graph[W, N, M]) EdgeInits() [][]EdgeInit[W, M] {
	out := make([][]EdgeInit[W, M], g.Order())
	for u := range out {
		view := g.view(u)
		out[u] = make([]EdgeInit[W, M], len(view))
		for i, e := range view {
			out[u][i] = EdgeInit[W, M]{
				Source:   e.source,
				Target:   e.target,
				Comp:     e.comp,
				Weight:   *e.weight,
				MetaData: *e.meta,
			}
		}
	}

	return out
}

// InducedSubgraph returns a copy of g restricted to the nodes with
// keep[i] == true and the edges between them. keep must have one entry per
// node.
//
// Complexity: O(V*(V + E)).
func InducedSubgraph[W, N, M any](g *Graph[W, N, M], keep []bool) (*Graph[W, N, M], error) {
	if len(keep) != g.Order() {
		return nil, fmt.Errorf("InducedSubgraph: %d keep flag(s) for %d node(s): %w",
			len(keep), g.Order(), ErrInconsistent)
	}
	out := g.Clone()
	for k := len(keep) - 1; k >= 0; k-- {
		if keep[k] {
			continue
		}
		if err := out.EraseNode(k); err != nil {
			return nil, fmt.Errorf("InducedSubgraph: %w", err)
		}
	}

	return out, nil
}
