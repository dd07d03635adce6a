// SPDX-License-Identifier: MIT
// Package core_test verifies mutation contracts: every operation must leave
// partner halves pointing at each other.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/partition"
)

func TestDirected_AddNodeThenJoin(t *testing.T) {
	for _, kind := range dynamicKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g := mustGraph(t, core.Directed, [][]ei{{half(N1, core.Npos, Weight0)}, {}}, core.WithStorage(kind))

			idx, err := g.AddNode()
			require.NoError(t, err)
			require.Equal(t, N2, idx)
			require.NoError(t, g.Join(N2, N1))

			requireEquivalent(t, g, [][]ei{
				{half(N1, core.Npos, Weight0)},
				{},
				{half(N1, core.Npos, Weight0)},
			})
			require.Equal(t, 2, g.Size())
		})
	}
}

func TestUndirected_EraseEdgeRemovesBothHalves(t *testing.T) {
	for _, kind := range dynamicKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g := mustGraph(t, core.Undirected, [][]ei{{half(N1, 0, Weight0)}, {half(N0, 0, Weight0)}}, core.WithStorage(kind))
			require.NoError(t, g.EraseEdge(N0, 0))
			requireEquivalent(t, g, [][]ei{{}, {}})
			require.Zero(t, g.Size())
		})
	}
}

// joined builds 0-1 (w1), 1-2 (w2) and a loop at 1 (w3) through Join.
func joined(t *testing.T, kind partition.Kind) *graph {
	t.Helper()
	g, err := core.New[float64, core.None, core.None](core.Undirected, core.WithStorage(kind))
	require.NoError(t, err)
	for range 3 {
		_, err = g.AddNode()
		require.NoError(t, err)
	}
	require.NoError(t, g.JoinWith(N0, N1, Weight1))
	require.NoError(t, g.JoinWith(N1, N2, Weight2))
	require.NoError(t, g.JoinWith(N1, N1, Weight3))

	return g
}

func TestUndirected_Join(t *testing.T) {
	for _, kind := range dynamicKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g := joined(t, kind)
			requireEquivalent(t, g, [][]ei{
				{half(N1, 0, Weight1)},
				{half(N0, 0, Weight1), half(N2, 0, Weight2), half(N1, 3, Weight3), half(N1, 2, Weight3)},
				{half(N1, 1, Weight2)},
			})
			require.Equal(t, 3, g.Size())
		})
	}
}

func TestUndirected_EraseLoopThenShift(t *testing.T) {
	for _, kind := range dynamicKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g := joined(t, kind)
			require.NoError(t, g.EraseEdge(N1, 3))
			requireEquivalent(t, g, [][]ei{
				{half(N1, 0, Weight1)},
				{half(N0, 0, Weight1), half(N2, 0, Weight2)},
				{half(N1, 1, Weight2)},
			})

			require.NoError(t, g.EraseEdge(N1, 0))
			requireEquivalent(t, g, [][]ei{
				{},
				{half(N2, 0, Weight2)},
				{half(N1, 0, Weight2)},
			})
		})
	}
}

func TestInsertJoin_BetweenNodes(t *testing.T) {
	for _, kind := range dynamicKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g := mustGraph(t, core.Undirected, [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}}, core.WithStorage(kind))
			require.NoError(t, g.InsertJoinWith(N0, 0, N1, 1, Weight2))
			requireEquivalent(t, g, [][]ei{
				{half(N1, 1, Weight2), half(N1, 0, Weight1)},
				{half(N0, 1, Weight1), half(N0, 0, Weight2)},
			})
		})
	}
}

func TestInsertJoin_Loop(t *testing.T) {
	for _, kind := range dynamicKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g := mustGraph(t, core.Undirected, [][]ei{{half(N0, 1, Weight1), half(N0, 0, Weight1)}}, core.WithStorage(kind))
			require.NoError(t, g.InsertJoinWith(N0, 1, N0, 0, Weight2))
			requireEquivalent(t, g, [][]ei{{
				half(N0, 2, Weight2), half(N0, 3, Weight1), half(N0, 0, Weight2), half(N0, 1, Weight1),
			}})
		})
	}
}

func TestInsertJoin_RejectsBadOffsets(t *testing.T) {
	g := mustGraph(t, core.Undirected, [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}})
	before := g.Clone()

	require.ErrorIs(t, g.InsertJoin(N0, 2, N1, 0), core.ErrOutOfRange)
	require.ErrorIs(t, g.InsertJoin(N0, 0, N1, 2), core.ErrOutOfRange)
	require.ErrorIs(t, g.InsertJoin(N0, 0, N2, 0), core.ErrOutOfRange)
	require.True(t, g.Equal(before))
}

func TestSwapEdges(t *testing.T) {
	g := mustGraph(t, core.UndirectedEmbedded, [][]ei{
		{half(N1, 0, Weight1), half(N2, 0, Weight2)},
		{half(N0, 0, Weight1)},
		{half(N0, 1, Weight2)},
	})
	require.NoError(t, g.SwapEdges(N0, 0, 1))
	requireEquivalent(t, g, [][]ei{
		{half(N2, 0, Weight2), half(N1, 0, Weight1)},
		{half(N0, 1, Weight1)},
		{half(N0, 0, Weight2)},
	})

	loop := mustGraph(t, core.Undirected, [][]ei{{half(N0, 1, Weight1), half(N0, 0, Weight1)}})
	require.NoError(t, loop.SwapEdges(N0, 0, 1))
	requireEquivalent(t, loop, [][]ei{{half(N0, 1, Weight1), half(N0, 0, Weight1)}})

	require.ErrorIs(t, g.SwapEdges(N0, 0, 2), core.ErrOutOfRange)
}

func TestSortEdges(t *testing.T) {
	lit := [][]ei{
		{half(N1, 0, Weight3), half(N2, 0, Weight1), half(N3, 0, Weight2)},
		{half(N0, 0, Weight3)},
		{half(N0, 1, Weight1)},
		{half(N0, 2, Weight2)},
	}
	byWeight := func(a, b core.Edge[float64, core.None]) bool { return a.Weight() < b.Weight() }

	g := mustGraph(t, core.Undirected, lit)
	require.NoError(t, g.SortEdges(N0, byWeight))
	requireEquivalent(t, g, [][]ei{
		{half(N2, 0, Weight1), half(N3, 0, Weight2), half(N1, 0, Weight3)},
		{half(N0, 2, Weight3)},
		{half(N0, 0, Weight1)},
		{half(N0, 1, Weight2)},
	})

	s := mustGraph(t, core.Undirected, lit)
	require.NoError(t, s.StableSortEdges(N0, byWeight))
	require.True(t, s.Equal(g))

	e := mustGraph(t, core.UndirectedEmbedded, lit)
	require.ErrorIs(t, e.SortEdges(N0, byWeight), core.ErrEmbeddingOrder)
	requireEquivalent(t, e, lit)
}

func TestEraseNode_Undirected(t *testing.T) {
	for _, kind := range dynamicKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g, err := core.New[float64, core.None, core.None](core.Undirected, core.WithStorage(kind))
			require.NoError(t, err)
			for range 3 {
				_, err = g.AddNode()
				require.NoError(t, err)
			}
			require.NoError(t, g.JoinWith(N0, N1, Weight1))
			require.NoError(t, g.JoinWith(N1, N2, Weight2))
			require.NoError(t, g.JoinWith(N2, N0, Weight3))
			require.NoError(t, g.JoinWith(N1, N1, Weight7))
			requireConsistent(t, g)

			require.NoError(t, g.EraseNode(N0))
			requireEquivalent(t, g, [][]ei{
				{half(N1, 0, Weight2), half(N0, 2, Weight7), half(N0, 1, Weight7)},
				{half(N0, 0, Weight2)},
			})
			require.ErrorIs(t, g.EraseNode(N2), core.ErrOutOfRange)
		})
	}
}

func TestDirectedEmbedded_JoinAndEraseNode(t *testing.T) {
	g, err := core.NewFromEdges[float64, core.None, core.None](core.DirectedEmbedded, [][]ei{{}, {}, {}}, nil)
	require.NoError(t, err)
	require.NoError(t, g.JoinWith(N0, N1, Weight1))
	require.NoError(t, g.JoinWith(N2, N0, Weight2))
	requireEquivalent(t, g, [][]ei{
		{arc(N0, N1, 0, Weight1), arc(N2, N0, 0, Weight2)},
		{arc(N0, N1, 0, Weight1)},
		{arc(N2, N0, 1, Weight2)},
	})

	in, err := g.Edge(N0, 1)
	require.NoError(t, err)
	require.True(t, in.Inverted(N0))
	out, err := g.Edge(N0, 0)
	require.NoError(t, err)
	require.False(t, out.Inverted(N0))

	require.NoError(t, g.EraseNode(N1))
	requireEquivalent(t, g, [][]ei{
		{arc(N1, N0, 0, Weight2)},
		{arc(N1, N0, 0, Weight2)},
	})
}

func TestInsertNode(t *testing.T) {
	g := mustGraph(t, core.Undirected, [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}})

	k, err := g.InsertNode(N1, core.None{})
	require.NoError(t, err)
	require.Equal(t, N1, k)
	requireEquivalent(t, g, [][]ei{{half(N2, 0, Weight1)}, {}, {half(N0, 0, Weight1)}})

	k, err = g.InsertNode(99, core.None{})
	require.NoError(t, err)
	require.Equal(t, N3, k)
	require.Equal(t, 4, g.Order())

	_, err = g.InsertNode(-1, core.None{})
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestSwapNodes(t *testing.T) {
	g := mustGraph(t, core.Undirected, [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}, {}})
	require.NoError(t, g.SwapNodes(N1, N2))
	requireEquivalent(t, g, [][]ei{{half(N2, 0, Weight1)}, {}, {half(N0, 0, Weight1)}})

	require.NoError(t, g.SwapNodes(N0, N0))
	require.ErrorIs(t, g.SwapNodes(N0, N4), core.ErrOutOfRange)
}

func TestSortNodes(t *testing.T) {
	g, err := core.NewFromEdges[float64, string, string](core.Undirected, [][]tagEI{{}, {}, {}}, []string{"c", "a", "b"})
	require.NoError(t, err)
	require.NoError(t, g.Join(N0, N1))
	require.NoError(t, g.Join(N1, N2))

	require.NoError(t, g.SortNodes(func(a, b string) bool { return a < b }))
	require.Equal(t, []string{"a", "b", "c"}, g.NodeWeights())
	requireConsistent(t, g)

	// old node 1 ("a") is now node 0 and still reaches old 0 and old 2
	edges, err := g.Edges(N0)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	require.Equal(t, N2, edges[0].Target())
	require.Equal(t, N1, edges[1].Target())
}

func TestEdgeWeights_PartnerSeesUpdate(t *testing.T) {
	lit := [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}}
	for name, opts := range map[string][]core.GraphOption{
		"independent": nil,
		"shared":      {core.WithSharedWeights()},
	} {
		t.Run(name, func(t *testing.T) {
			g := mustGraph(t, core.Undirected, lit, opts...)
			require.NoError(t, g.SetEdgeWeight(N0, 0, Weight7))
			requireEquivalent(t, g, [][]ei{{half(N1, 0, Weight7)}, {half(N0, 0, Weight7)}})

			require.NoError(t, g.MutateEdgeWeight(N1, 0, func(w *float64) { *w *= 2 }))
			requireEquivalent(t, g, [][]ei{{half(N1, 0, 2*Weight7)}, {half(N0, 0, 2*Weight7)}})

			require.ErrorIs(t, g.SetEdgeWeight(N1, 1, Weight0), core.ErrOutOfRange)
		})
	}
}

func TestEdgeMetaData_Policies(t *testing.T) {
	nodes := [][]tagEI{{}, {}}

	g, err := core.NewFromEdges[float64, string, string](core.Undirected, nodes, nil)
	require.NoError(t, err)
	require.NoError(t, g.JoinWith(N0, N1, Weight1, "out", "in"))
	require.NoError(t, g.SetEdgeMetaData(N0, 0, "changed"))
	requireEquivalent(t, g, [][]tagEI{
		{{Target: N1, Comp: 0, Weight: Weight1, MetaData: "changed"}},
		{{Target: N0, Comp: 0, Weight: Weight1, MetaData: "in"}},
	})

	s, err := core.NewFromEdges[float64, string, string](core.Undirected, nodes, nil, core.WithSharedMetaData())
	require.NoError(t, err)
	require.NoError(t, s.JoinWith(N0, N1, Weight1, "both"))
	require.NoError(t, s.MutateEdgeMetaData(N1, 0, func(m *string) { *m += "!" }))
	e, err := s.Edge(N0, 0)
	require.NoError(t, err)
	require.Equal(t, "both!", e.MetaData())

	require.ErrorIs(t, s.JoinWith(N0, N1, Weight1, "a", "b", "c"), core.ErrInconsistent)
}

func TestNodeWeights(t *testing.T) {
	g, err := core.NewFromEdges[float64, int, core.None](core.Directed, [][]ei{{}, {}}, []int{5, 6})
	require.NoError(t, err)

	require.NoError(t, g.SetNodeWeight(N0, 9))
	require.NoError(t, g.MutateNodeWeight(N1, func(w *int) { *w++ }))
	w, err := g.NodeWeight(N1)
	require.NoError(t, err)
	require.Equal(t, 7, w)
	require.Equal(t, []int{9, 7}, g.NodeWeights())

	idx, err := g.AddNodeWith(11)
	require.NoError(t, err)
	require.Equal(t, N2, idx)
	require.NoError(t, g.EraseNode(N0))
	require.Equal(t, []int{7, 11}, g.NodeWeights())

	_, err = g.NodeWeight(N2)
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestStatic_RejectsShapeChanges(t *testing.T) {
	lit := [][]ei{{half(N1, 0, Weight1), half(N1, 1, Weight2)}, {half(N0, 0, Weight1), half(N0, 1, Weight2)}}
	g := mustGraph(t, core.UndirectedEmbedded, lit, core.WithStorage(partition.KindStatic))
	before := g.Clone()

	require.ErrorIs(t, g.Join(N0, N1), core.ErrFixedCapacity)
	require.ErrorIs(t, g.EraseEdge(N0, 0), core.ErrFixedCapacity)
	require.ErrorIs(t, g.EraseNode(N0), core.ErrFixedCapacity)
	_, err := g.AddNode()
	require.ErrorIs(t, err, core.ErrFixedCapacity)
	_, err = g.InsertNode(N0, core.None{})
	require.ErrorIs(t, err, core.ErrFixedCapacity)
	require.True(t, g.Equal(before))

	require.NoError(t, g.SetEdgeWeight(N0, 1, Weight3))
	require.NoError(t, g.SwapEdges(N0, 0, 1))
	requireEquivalent(t, g, [][]ei{
		{half(N1, 1, Weight3), half(N1, 0, Weight1)},
		{half(N0, 1, Weight1), half(N0, 0, Weight3)},
	})
}

func TestEraseEdgeAt_ByIterator(t *testing.T) {
	for _, kind := range dynamicKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g := joined(t, kind)
			first, err := g.CBeginEdges(N1)
			require.NoError(t, err)
			last, err := g.CEndEdges(N1)
			require.NoError(t, err)
			require.Equal(t, 4, last.Pos()-first.Pos())

			require.NoError(t, g.SetEdgeWeightAt(N1, first.Next(), Weight7))
			require.NoError(t, g.EraseEdgeAt(N1, first.Add(1)))
			requireEquivalent(t, g, [][]ei{
				{half(N1, 0, Weight1)},
				{half(N0, 0, Weight1), half(N1, 2, Weight3), half(N1, 1, Weight3)},
				{},
			})

			other, err := g.CBeginEdges(N0)
			require.NoError(t, err)
			require.ErrorIs(t, g.EraseEdgeAt(N1, other), core.ErrInconsistent)
		})
	}
}

func TestEdgeCellsAt_ByIterator(t *testing.T) {
	for _, kind := range dynamicKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g, err := core.NewFromEdges[float64, string, string](core.Undirected, [][]tagEI{{}, {}}, nil,
				core.WithStorage(kind))
			require.NoError(t, err)
			require.NoError(t, g.JoinWith(N0, N1, Weight1, "u", "v"))
			it, err := g.CBeginEdges(N1)
			require.NoError(t, err)

			require.NoError(t, g.MutateEdgeWeightAt(N1, it, func(w *float64) { *w += Weight2 }))
			require.NoError(t, g.SetEdgeMetaDataAt(N1, it, "x"))
			require.NoError(t, g.MutateEdgeMetaDataAt(N1, it, func(m *string) { *m += "!" }))
			requireEquivalent(t, g, [][]tagEI{
				{{Source: core.Npos, Target: N1, Comp: 0, Weight: Weight3, MetaData: "u"}},
				{{Source: core.Npos, Target: N0, Comp: 0, Weight: Weight3, MetaData: "x!"}},
			})

			other, err := g.CBeginEdges(N0)
			require.NoError(t, err)
			require.ErrorIs(t, g.SetEdgeMetaDataAt(N1, other, "y"), core.ErrInconsistent)
			require.ErrorIs(t, g.MutateEdgeWeightAt(N1, other, func(*float64) {}), core.ErrInconsistent)
			require.ErrorIs(t, g.MutateEdgeMetaDataAt(N1, other, func(*string) {}), core.ErrInconsistent)
		})
	}
}

func TestClear(t *testing.T) {
	g := joined(t, partition.KindBucketed)
	require.NoError(t, g.Clear())
	require.True(t, g.Empty())
	require.Zero(t, g.Size())
}
