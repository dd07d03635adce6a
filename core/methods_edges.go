// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: edge lifecycle: Join, InsertJoin, EraseEdge, SwapEdges, SortEdges,
//       plus edge weight and meta-data setters.
// Determinism:
//   - Join appends: the new half goes last at each endpoint; a loop's halves
//     are adjacent, the u-half first.
// AI-HINT (file):
//   - Paired flavours: every op restores comp symmetry before returning.
//   - Failures are reported before the first mutation (strong guarantee).
//   - Embedded flavours refuse SortEdges (ErrEmbeddingOrder).

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/partgraph/partition"
)

// Join appends an edge u→v (or u–v) with a zero weight.
func (g *Graph[W, N, M]) Join(u, v int, meta ...M) error {
	var zero W

	return g.JoinWith(u, v, zero, meta...)
}

// JoinWith appends an edge u→v (or u–v) with weight w. meta may hold up to
// two values: meta[0] for the half at u, meta[1] for the half at v. A
// single value is used for both halves; with shared meta-data only meta[0]
// is stored.
//
// Complexity: O(1) amortized (plus partition shifting on contiguous storage).
func (g *Graph[W, N, M]) JoinWith(u, v int, w W, meta ...M) error {
	if err := g.checkJoin("Join", u, v, meta); err != nil {
		return err
	}
	degU := len(g.view(u))
	e1, e2 := g.newHalves(u, v, w, meta)
	if !g.flavour.paired() {
		return wrap("Join", g.edges.PushBackToPartition(u, e1))
	}
	if u == v {
		e1.comp, e2.comp = degU+1, degU
	} else {
		e1.comp, e2.comp = len(g.view(v)), degU
	}
	if err := g.edges.PushBackToPartition(u, e1); err != nil {
		return fmt.Errorf("Join: %w", err)
	}
	if err := g.edges.PushBackToPartition(v, e2); err != nil {
		_, _ = g.edges.EraseAt(u, degU)
		return fmt.Errorf("Join: %w", err)
	}

	return nil
}

// InsertJoin inserts an edge with a zero weight; see InsertJoinWith.
func (g *Graph[W, N, M]) InsertJoin(u, pu, v, pv int, meta ...M) error {
	var zero W

	return g.InsertJoinWith(u, pu, v, pv, zero, meta...)
}

// InsertJoinWith inserts an edge whose u-half lands at offset pu of u and,
// for paired flavours, whose v-half lands at offset pv of v. For a loop pv
// is read after the u-half is in place, so it ranges over [0, deg(u)+1].
// Directed graphs ignore pv.
//
// Steps:
//  1. Insert the u-half; repair comps of u.
//  2. Insert the v-half; repair comps of v.
//  3. Wire the two new halves to each other.
func (g *Graph[W, N, M]) InsertJoinWith(u, pu, v, pv int, w W, meta ...M) error {
	if err := g.checkJoin("InsertJoin", u, v, meta); err != nil {
		return err
	}
	degU, degV := len(g.view(u)), len(g.view(v))
	if pu < 0 || pu > degU {
		return edgeRangeError("InsertJoin", u, pu, degU)
	}
	e1, e2 := g.newHalves(u, v, w, meta)
	if !g.flavour.paired() {
		_, err := g.edges.InsertAt(u, pu, e1)
		return wrap("InsertJoin", err)
	}
	if u == v {
		degV++
	}
	if pv < 0 || pv > degV {
		return edgeRangeError("InsertJoin", v, pv, degV)
	}

	if _, err := g.edges.InsertAt(u, pu, e1); err != nil {
		return fmt.Errorf("InsertJoin: %w", err)
	}
	g.reindex(u, shiftUp(pu), pu)
	if _, err := g.edges.InsertAt(v, pv, e2); err != nil {
		// only reachable if the back-end rejects growth after accepting the
		// first half; undo it so u is left as it was
		_, _ = g.edges.EraseAt(u, pu)
		g.reindex(u, shiftDown(pu))
		return fmt.Errorf("InsertJoin: %w", err)
	}
	if u == v {
		if pv <= pu {
			pu++
		}
		g.reindex(v, shiftUp(pv), pu, pv)
	} else {
		g.reindex(v, shiftUp(pv), pv)
	}
	g.view(u)[pu].comp = pv
	g.view(v)[pv].comp = pu

	return nil
}

// EraseEdge removes the i-th half-edge of u together with its partner.
//
// Complexity: O(deg(u) + deg(partner)) plus partition shifting.
func (g *Graph[W, N, M]) EraseEdge(u, i int) error {
	if err := g.checkEdge("EraseEdge", u, i); err != nil {
		return err
	}
	if err := g.requireDynamic("EraseEdge"); err != nil {
		return err
	}
	e := g.view(u)[i]
	if !g.flavour.paired() {
		_, err := g.edges.EraseAt(u, i)
		return wrap("EraseEdge", err)
	}
	p, c := g.partner(u, &e), e.comp
	if p == u {
		lo, hi := min(i, c), max(i, c)
		if _, err := g.edges.EraseAt(u, hi); err != nil {
			return fmt.Errorf("EraseEdge: %w", err)
		}
		if _, err := g.edges.EraseAt(u, lo); err != nil {
			return fmt.Errorf("EraseEdge: %w", err)
		}
		g.reindex(u, shiftDown(lo, hi))

		return nil
	}
	if _, err := g.edges.EraseAt(u, i); err != nil {
		return fmt.Errorf("EraseEdge: %w", err)
	}
	g.reindex(u, shiftDown(i))
	if _, err := g.edges.EraseAt(p, c); err != nil {
		return fmt.Errorf("EraseEdge: %w", err)
	}
	g.reindex(p, shiftDown(c))

	return nil
}

// EraseEdgeAt is EraseEdge addressed by a forward iterator into node's edges.
func (g *Graph[W, N, M]) EraseEdgeAt(node int, it partition.ConstIterator[Edge[W, M]]) error {
	i, err := g.offsetOf("EraseEdgeAt", node, it)
	if err != nil {
		return err
	}

	return g.EraseEdge(node, i)
}

// SwapEdges exchanges the i-th and j-th half-edges of node. Allowed for
// every flavour; on embedded graphs this is how cyclic order is edited.
func (g *Graph[W, N, M]) SwapEdges(node, i, j int) error {
	if err := g.checkEdge("SwapEdges", node, i); err != nil {
		return err
	}
	if err := g.checkEdge("SwapEdges", node, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	view := g.view(node)
	view[i], view[j] = view[j], view[i]
	g.reindex(node, func(o int) int {
		switch o {
		case i:
			return j
		case j:
			return i
		default:
			return o
		}
	})

	return nil
}

// SortEdges reorders node's half-edges by less. Embedded flavours return
// ErrEmbeddingOrder.
func (g *Graph[W, N, M]) SortEdges(node int, less func(a, b Edge[W, M]) bool) error {
	return g.sortEdges("SortEdges", node, less, sort.Slice)
}

// StableSortEdges is SortEdges keeping equal half-edges in order.
func (g *Graph[W, N, M]) StableSortEdges(node int, less func(a, b Edge[W, M]) bool) error {
	return g.sortEdges("StableSortEdges", node, less, sort.SliceStable)
}

func (g *Graph[W, N, M]) sortEdges(method string, node int, less func(a, b Edge[W, M]) bool,
	sorter func(x any, less func(i, j int) bool)) error {
	if err := g.checkNode(method, node); err != nil {
		return err
	}
	if g.flavour.IsEmbedded() {
		return fmt.Errorf("%s: %s graph: %w", method, g.flavour, ErrEmbeddingOrder)
	}
	view := g.view(node)
	perm := make([]int, len(view))
	for i := range perm {
		perm[i] = i
	}
	sorter(perm, func(a, b int) bool { return less(view[perm[a]], view[perm[b]]) })

	old := append([]Edge[W, M](nil), view...)
	newPos := make([]int, len(view))
	for q, o := range perm {
		view[q] = old[o]
		newPos[o] = q
	}
	g.reindex(node, func(o int) int { return newPos[o] })

	return nil
}

// SetEdgeWeight sets the weight of (node, i). With independent weights the
// partner half is updated too.
func (g *Graph[W, N, M]) SetEdgeWeight(node, i int, w W) error {
	return g.MutateEdgeWeight(node, i, func(p *W) { *p = w })
}

// MutateEdgeWeight applies fn to the weight of (node, i) and propagates the
// result to an independent partner cell.
func (g *Graph[W, N, M]) MutateEdgeWeight(node, i int, fn func(*W)) error {
	if err := g.checkEdge("MutateEdgeWeight", node, i); err != nil {
		return err
	}
	e := &g.view(node)[i]
	fn(e.weight)
	if g.flavour.paired() && !g.sharedWeights {
		other := g.view(g.partner(node, e))[e.comp].weight
		*other = *e.weight
	}

	return nil
}

// SetEdgeMetaData sets the meta-data of (node, i). Independent meta-data
// leaves the partner untouched.
func (g *Graph[W, N, M]) SetEdgeMetaData(node, i int, m M) error {
	return g.MutateEdgeMetaData(node, i, func(p *M) { *p = m })
}

// MutateEdgeMetaData applies fn to the meta-data cell of (node, i).
func (g *Graph[W, N, M]) MutateEdgeMetaData(node, i int, fn func(*M)) error {
	if err := g.checkEdge("MutateEdgeMetaData", node, i); err != nil {
		return err
	}
	fn(g.view(node)[i].meta)

	return nil
}

// SetEdgeWeightAt is SetEdgeWeight addressed by a forward iterator.
func (g *Graph[W, N, M]) SetEdgeWeightAt(node int, it partition.ConstIterator[Edge[W, M]], w W) error {
	i, err := g.offsetOf("SetEdgeWeightAt", node, it)
	if err != nil {
		return err
	}

	return g.SetEdgeWeight(node, i, w)
}

// MutateEdgeWeightAt is MutateEdgeWeight addressed by a forward iterator.
func (g *Graph[W, N, M]) MutateEdgeWeightAt(node int, it partition.ConstIterator[Edge[W, M]], fn func(*W)) error {
	i, err := g.offsetOf("MutateEdgeWeightAt", node, it)
	if err != nil {
		return err
	}

	return g.MutateEdgeWeight(node, i, fn)
}

// SetEdgeMetaDataAt is SetEdgeMetaData addressed by a forward iterator.
func (g *Graph[W, N, M]) SetEdgeMetaDataAt(node int, it partition.ConstIterator[Edge[W, M]], m M) error {
	i, err := g.offsetOf("SetEdgeMetaDataAt", node, it)
	if err != nil {
		return err
	}

	return g.SetEdgeMetaData(node, i, m)
}

// MutateEdgeMetaDataAt is MutateEdgeMetaData addressed by a forward iterator.
func (g *Graph[W, N, M]) MutateEdgeMetaDataAt(node int, it partition.ConstIterator[Edge[W, M]], fn func(*M)) error {
	i, err := g.offsetOf("MutateEdgeMetaDataAt", node, it)
	if err != nil {
		return err
	}

	return g.MutateEdgeMetaData(node, i, fn)
}

func (g *Graph[W, N, M]) checkJoin(method string, u, v int, meta []M) error {
	if err := g.checkNode(method, u); err != nil {
		return err
	}
	if err := g.checkNode(method, v); err != nil {
		return err
	}
	if len(meta) > 2 {
		return fmt.Errorf("%s: %d meta-data values, at most 2 allowed: %w", method, len(meta), ErrInconsistent)
	}
	if g.flavour.paired() {
		return g.requireDynamic(method)
	}

	return nil
}

// newHalves builds the two halves of u→v with cells wired per the sharing
// policy. The second half is unused for Directed graphs.
func (g *Graph[W, N, M]) newHalves(u, v int, w W, meta []M) (Edge[W, M], Edge[W, M]) {
	var m1, m2 M
	switch len(meta) {
	case 1:
		m1, m2 = meta[0], meta[0]
	case 2:
		m1, m2 = meta[0], meta[1]
	}
	w1, w2 := w, w
	e1 := Edge[W, M]{source: Npos, target: v, comp: Npos, weight: &w1, meta: &m1}
	e2 := Edge[W, M]{source: Npos, target: u, comp: Npos, weight: &w2, meta: &m2}
	switch g.flavour {
	case DirectedEmbedded:
		e1.source, e2.source = u, u
		e2.target = v
	case Directed:
		return e1, e2
	}
	if g.sharedWeights {
		e2.weight = e1.weight
	}
	if g.sharedMeta {
		e2.meta = e1.meta
	}

	return e1, e2
}

func (g *Graph[W, N, M]) offsetOf(method string, node int, it partition.ConstIterator[Edge[W, M]]) (int, error) {
	begin, err := g.edges.CBeginPartition(node)
	if err != nil {
		return Npos, fmt.Errorf("%s: %w", method, err)
	}
	if it.Aux().Index() != node || it.Reversed() {
		return Npos, fmt.Errorf("%s: iterator does not address node %d: %w", method, node, ErrInconsistent)
	}

	return it.Pos() - begin.Pos(), nil
}

func wrap(method string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", method, err)
}
