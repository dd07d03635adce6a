// SPDX-License-Identifier: MIT
// File: validate.go
// Role: literal validation for NewFromEdges, cell wiring, and Equivalent.
// Determinism:
//   - Literals are scanned node by node, edge by edge; the first violation wins.
// AI-HINT (file):
//   - A comp outside the partner partition matches both ErrOutOfRange and
//     ErrInconsistent under errors.Is.

package core

import (
	"fmt"
	"reflect"
)

// validateEdges checks every structural rule of a literal before anything
// is allocated.
func validateEdges[W, M any](method string, f Flavour, edges [][]EdgeInit[W, M], sharedMeta bool) error {
	n := len(edges)
	for u, part := range edges {
		for i, e := range part {
			if e.Target < 0 || e.Target >= n {
				return fmt.Errorf("%s: node %d edge %d: target %d out of range - graph has %d node(s): %w",
					method, u, i, e.Target, n, ErrOutOfRange)
			}
			if !f.paired() {
				continue
			}
			p := e.Target
			if f == DirectedEmbedded {
				if e.Source < 0 || e.Source >= n {
					return fmt.Errorf("%s: node %d edge %d: source %d out of range - graph has %d node(s): %w",
						method, u, i, e.Source, n, ErrOutOfRange)
				}
				if e.Source != u && e.Target != u {
					return fmt.Errorf("%s: node %d edge %d: edge %d->%d does not touch its host node: %w",
						method, u, i, e.Source, e.Target, ErrInconsistent)
				}
				if e.Source != u {
					p = e.Source
				}
			}
			if e.Comp < 0 || e.Comp >= len(edges[p]) {
				return fmt.Errorf("%s: node %d edge %d: complementary index %d out of range for node %d, which has %d edge(s): %w: %w",
					method, u, i, e.Comp, p, len(edges[p]), ErrOutOfRange, ErrInconsistent)
			}
			if p == u && e.Comp == i {
				return fmt.Errorf("%s: node %d edge %d: half-edge is its own partner: %w",
					method, u, i, ErrInconsistent)
			}
			q := edges[p][e.Comp]
			qp := q.Target
			if f == DirectedEmbedded && q.Source != p {
				qp = q.Source
			}
			if qp != u || q.Comp != i {
				return fmt.Errorf("%s: node %d edge %d: partner at node %d index %d points to node %d index %d: %w",
					method, u, i, p, e.Comp, qp, q.Comp, ErrInconsistent)
			}
			if f == DirectedEmbedded && (q.Source != e.Source || q.Target != e.Target) {
				return fmt.Errorf("%s: node %d edge %d: halves disagree on direction: %w",
					method, u, i, ErrInconsistent)
			}
			if !reflect.DeepEqual(e.Weight, q.Weight) {
				return fmt.Errorf("%s: node %d edge %d: halves carry different weights: %w",
					method, u, i, ErrInconsistent)
			}
			if sharedMeta && !reflect.DeepEqual(e.MetaData, q.MetaData) {
				return fmt.Errorf("%s: node %d edge %d: halves carry different shared meta-data: %w",
					method, u, i, ErrInconsistent)
			}
		}
	}

	return nil
}

// halfEdges converts a validated literal into stored half-edges, each with
// fresh cells. detachCells wires sharing afterwards.
func halfEdges[W, M any](f Flavour, edges [][]EdgeInit[W, M]) [][]Edge[W, M] {
	out := make([][]Edge[W, M], len(edges))
	for u, part := range edges {
		out[u] = make([]Edge[W, M], len(part))
		for i, e := range part {
			h := Edge[W, M]{source: Npos, target: e.Target, comp: Npos}
			if f == DirectedEmbedded {
				h.source = e.Source
			}
			if f.paired() {
				h.comp = e.Comp
			}
			w, m := e.Weight, e.MetaData
			h.weight, h.meta = &w, &m
			out[u][i] = h
		}
	}

	return out
}

// detachCells gives every half-edge cells owned by g alone. With sharing on,
// the half visited second reuses the cell of the half visited first.
func (g *Graph[W, N, M]) detachCells() {
	for u := 0; u < g.edges.NumPartitions(); u++ {
		view := g.view(u)
		for i := range view {
			e := &view[i]
			p := g.partner(u, e)
			seen := g.flavour.paired() && (p < u || (p == u && e.comp < i))
			if g.sharedWeights && seen {
				e.weight = g.view(p)[e.comp].weight
			} else {
				w := *e.weight
				e.weight = &w
			}
			if g.sharedMeta && seen {
				e.meta = g.view(p)[e.comp].meta
			} else {
				m := *e.meta
				e.meta = &m
			}
		}
	}
}

// Equivalent reports whether g matches the literal edges (and nodeWeights
// when non-nil). The returned error wraps ErrNotEquivalent and names the
// first difference.
func (g *Graph[W, N, M]) Equivalent(edges [][]EdgeInit[W, M], nodeWeights []N) error {
	if g.Order() != len(edges) {
		return fmt.Errorf("Equivalent: graph has %d node(s), literal has %d: %w",
			g.Order(), len(edges), ErrNotEquivalent)
	}
	for u, part := range edges {
		view := g.view(u)
		if len(view) != len(part) {
			return fmt.Errorf("Equivalent: node %d has %d edge(s), literal has %d: %w",
				u, len(view), len(part), ErrNotEquivalent)
		}
		for i, want := range part {
			got := view[i]
			switch {
			case got.target != want.Target:
				return fmt.Errorf("Equivalent: node %d edge %d: target %d, want %d: %w",
					u, i, got.target, want.Target, ErrNotEquivalent)
			case g.flavour == DirectedEmbedded && got.source != want.Source:
				return fmt.Errorf("Equivalent: node %d edge %d: source %d, want %d: %w",
					u, i, got.source, want.Source, ErrNotEquivalent)
			case g.flavour.paired() && got.comp != want.Comp:
				return fmt.Errorf("Equivalent: node %d edge %d: comp %d, want %d: %w",
					u, i, got.comp, want.Comp, ErrNotEquivalent)
			case !reflect.DeepEqual(*got.weight, want.Weight):
				return fmt.Errorf("Equivalent: node %d edge %d: weight %v, want %v: %w",
					u, i, *got.weight, want.Weight, ErrNotEquivalent)
			case !reflect.DeepEqual(*got.meta, want.MetaData):
				return fmt.Errorf("Equivalent: node %d edge %d: meta-data %v, want %v: %w",
					u, i, *got.meta, want.MetaData, ErrNotEquivalent)
			}
		}
	}
	if nodeWeights == nil {
		return nil
	}
	if len(nodeWeights) != len(g.nodes) {
		return fmt.Errorf("Equivalent: %d node weight(s), literal has %d: %w",
			len(g.nodes), len(nodeWeights), ErrNotEquivalent)
	}
	for i, w := range nodeWeights {
		if !reflect.DeepEqual(g.nodes[i], w) {
			return fmt.Errorf("Equivalent: node %d weight %v, want %v: %w",
				i, g.nodes[i], w, ErrNotEquivalent)
		}
	}

	return nil
}
