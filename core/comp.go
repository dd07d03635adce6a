// SPDX-License-Identifier: MIT
// File: comp.go
// Role: complementary-index bookkeeping shared by every mutating operation.
// AI-HINT (file):
//   - After any reordering inside partition u, reindex(u, ...) restores
//     comp symmetry in O(deg(u)) by writing each partner's comp.
//   - Loops keep both halves in u, so their comps are translated with remap
//     instead of being written through the partner.

package core

import "slices"

// partner returns the node holding the other half of e, which is stored in
// partition u.
func (g *Graph[W, N, M]) partner(u int, e *Edge[W, M]) int {
	if g.flavour == DirectedEmbedded && e.source != u {
		return e.source
	}

	return e.target
}

// view returns partition u; u must already be validated.
func (g *Graph[W, N, M]) view(u int) []Edge[W, M] {
	v, _ := g.edges.Partition(u)

	return v
}

// reindex restores comp symmetry for partition u after its half-edges moved.
// remap translates an old offset in u to the new one and is only consulted
// for loops. Offsets listed in fresh are skipped; the caller wires them.
func (g *Graph[W, N, M]) reindex(u int, remap func(old int) int, fresh ...int) {
	if !g.flavour.paired() {
		return
	}
	view := g.view(u)
	for q := range view {
		if slices.Contains(fresh, q) {
			continue
		}
		e := &view[q]
		p := g.partner(u, e)
		if p == u {
			e.comp = remap(e.comp)

			continue
		}
		g.view(p)[e.comp].comp = q
	}
}

// shiftUp maps offsets after an insertion at pos.
func shiftUp(pos int) func(int) int {
	return func(o int) int {
		if o >= pos {
			return o + 1
		}

		return o
	}
}

// shiftDown maps offsets after the erasure of the given (sorted) offsets.
func shiftDown(erased ...int) func(int) int {
	return func(o int) int {
		n := 0
		for _, x := range erased {
			if x < o {
				n++
			}
		}

		return o - n
	}
}
