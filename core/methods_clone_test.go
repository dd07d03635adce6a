// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partgraph/alloc"
	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/partition"
)

func TestClone_Independent(t *testing.T) {
	for _, kind := range dynamicKinds() {
		for name, opts := range map[string][]core.GraphOption{
			"independent": {core.WithStorage(kind)},
			"shared":      {core.WithStorage(kind), core.WithSharedWeights(), core.WithSharedMetaData()},
		} {
			t.Run(kind.String()+"/"+name, func(t *testing.T) {
				g, err := core.New[float64, core.None, core.None](core.Undirected, opts...)
				require.NoError(t, err)
				_, _ = g.AddNode()
				_, _ = g.AddNode()
				require.NoError(t, g.JoinWith(N0, N1, Weight1))
				require.NoError(t, g.JoinWith(N1, N1, Weight2))

				cp := g.Clone()
				require.True(t, cp.Equal(g))
				require.Equal(t, g.SharedWeights(), cp.SharedWeights())

				require.NoError(t, cp.SetEdgeWeight(N1, 0, Weight7))
				requireConsistent(t, cp)
				e, err := cp.Edge(N0, 0)
				require.NoError(t, err)
				require.Equal(t, Weight7, e.Weight())

				requireEquivalent(t, g, [][]ei{
					{half(N1, 0, Weight1)},
					{half(N0, 0, Weight1), half(N1, 2, Weight2), half(N1, 1, Weight2)},
				})
				require.False(t, cp.Equal(g))
			})
		}
	}
}

func TestCloneEmpty(t *testing.T) {
	g, err := core.NewFromEdges[float64, int, core.None](core.Undirected,
		[][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}}, []int{4, 5}, core.WithStorage(partition.KindStatic))
	require.NoError(t, err)

	e := g.CloneEmpty()
	require.Equal(t, 2, e.Order())
	require.Zero(t, e.Size())
	require.Equal(t, []int{4, 5}, e.NodeWeights())
	require.Equal(t, partition.KindStatic, e.StorageKind())
}

func TestAssignMoveSwap(t *testing.T) {
	a := mustGraph(t, core.Undirected, [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}})
	b := mustGraph(t, core.Undirected, [][]ei{{}})

	b.Assign(a)
	require.True(t, b.Equal(a))
	require.NoError(t, b.SetEdgeWeight(N0, 0, Weight3))
	requireEquivalent(t, a, [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}})

	c := mustGraph(t, core.Undirected, nil)
	c.MoveFrom(b)
	requireEquivalent(t, c, [][]ei{{half(N1, 0, Weight3)}, {half(N0, 0, Weight3)}})
	require.True(t, b.Empty())

	c.Swap(a)
	requireEquivalent(t, c, [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}})
	requireEquivalent(t, a, [][]ei{{half(N1, 0, Weight3)}, {half(N0, 0, Weight3)}})
}

func TestAssign_NodeAllocatorPropagation(t *testing.T) {
	srcAlloc := alloc.NewCounting(alloc.Policy{PropagateOnCopy: true, PropagateOnSwap: true})
	dstAlloc := alloc.NewCounting(alloc.Policy{PropagateOnCopy: true, PropagateOnSwap: true})

	src, err := core.NewFromEdges[float64, int, core.None](core.Directed, [][]ei{{}, {}}, []int{1, 2},
		core.WithNodeAllocator(srcAlloc))
	require.NoError(t, err)
	dst, err := core.NewFromEdges[float64, int, core.None](core.Directed, [][]ei{{}}, []int{9},
		core.WithNodeAllocator(dstAlloc))
	require.NoError(t, err)

	dst.Assign(src)
	require.Same(t, srcAlloc, dst.NodeAllocator())
	require.Equal(t, []int{1, 2}, dst.NodeWeights())
	require.Zero(t, dstAlloc.Live())

	other, err := core.NewFromEdges[float64, int, core.None](core.Directed, [][]ei{{}}, []int{3},
		core.WithNodeAllocator(dstAlloc))
	require.NoError(t, err)
	dst.Swap(other)
	require.Same(t, dstAlloc, dst.NodeAllocator())
	require.Same(t, srcAlloc, other.NodeAllocator())
}

func TestEdgeInits_RoundTrip(t *testing.T) {
	for _, f := range []core.Flavour{core.Directed, core.Undirected, core.DirectedEmbedded, core.UndirectedEmbedded} {
		t.Run(f.String(), func(t *testing.T) {
			g, err := core.New[float64, core.None, core.None](f)
			require.NoError(t, err)
			for range 3 {
				_, _ = g.AddNode()
			}
			require.NoError(t, g.JoinWith(N0, N1, Weight1))
			require.NoError(t, g.JoinWith(N2, N0, Weight2))
			require.NoError(t, g.JoinWith(N2, N2, Weight3))

			back, err := core.NewFromEdges[float64, core.None, core.None](f, g.EdgeInits(), g.NodeWeights())
			require.NoError(t, err)
			require.True(t, back.Equal(g))
		})
	}
}

func TestInducedSubgraph(t *testing.T) {
	g := joined(t, DefaultKind)
	sub, err := core.InducedSubgraph(g, []bool{false, true, true})
	require.NoError(t, err)
	requireEquivalent(t, sub, [][]ei{
		{half(N1, 0, Weight2), half(N0, 2, Weight3), half(N0, 1, Weight3)},
		{half(N0, 0, Weight2)},
	})
	require.Equal(t, 3, g.Size(), "source untouched")

	_, err = core.InducedSubgraph(g, []bool{true})
	require.ErrorIs(t, err, core.ErrInconsistent)
}

func TestStatic_AssignMoveSwap(t *testing.T) {
	lit := [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}}
	static := core.WithStorage(partition.KindStatic)
	newStatic := func(edges [][]ei, nodes []int) *core.Graph[float64, int, core.None] {
		g, err := core.NewFromEdges[float64, int, core.None](core.Undirected, edges, nodes, static)
		require.NoError(t, err)
		return g
	}

	src := newStatic(lit, []int{4, 5})
	dst := newStatic([][]ei{{}}, []int{9})
	dst.MoveFrom(src)
	requireEquivalent(t, dst, lit)
	require.Equal(t, []int{4, 5}, dst.NodeWeights())

	// fixed buffers cannot change hands: the source keeps its contents
	require.Equal(t, 2, src.Order())
	w, err := src.NodeWeight(N0)
	require.NoError(t, err)
	require.Equal(t, 4, w)
	requireEquivalent(t, src, lit)

	require.NoError(t, dst.SetEdgeWeight(N0, 0, Weight7))
	requireEquivalent(t, src, lit)
	requireEquivalent(t, dst, [][]ei{{half(N1, 0, Weight7)}, {half(N0, 0, Weight7)}})

	cp := newStatic([][]ei{{}, {}, {}}, nil)
	cp.Assign(src)
	require.True(t, cp.Equal(src))
	require.NoError(t, cp.SetEdgeWeight(N1, 0, Weight3))
	requireEquivalent(t, src, lit)

	cp.Swap(dst)
	requireEquivalent(t, cp, [][]ei{{half(N1, 0, Weight7)}, {half(N0, 0, Weight7)}})
	requireEquivalent(t, dst, [][]ei{{half(N1, 0, Weight3)}, {half(N0, 0, Weight3)}})
	require.Equal(t, []int{4, 5}, cp.NodeWeights())
}

func TestValueSemantics_StorageAllocators(t *testing.T) {
	lit := [][]ei{{half(N1, 0, Weight1)}, {half(N0, 0, Weight1)}}
	for _, kind := range dynamicKinds() {
		for _, p := range []alloc.Policy{{}, {PropagateOnCopy: true, PropagateOnMove: true, PropagateOnSwap: true}} {
			name := kind.String() + "/none"
			if p.PropagateOnCopy {
				name = kind.String() + "/all"
			}
			t.Run(name, func(t *testing.T) {
				srcE, srcP := alloc.NewCounting(p), alloc.NewCounting(p)
				dstE, dstP := alloc.NewCounting(p), alloc.NewCounting(p)
				build := func(edges [][]ei, e, parts *alloc.Counting) *graph {
					return mustGraph(t, core.Undirected, edges, core.WithStorage(kind),
						core.WithEdgeAllocator(e), core.WithPartitionsAllocator(parts))
				}

				src := build(lit, srcE, srcP)
				dst := build([][]ei{{}}, dstE, dstP)
				dst.Assign(src)
				requireEquivalent(t, dst, lit)
				require.Equal(t, p.PropagateOnCopy, dst.EdgeAllocator().Equal(srcE))
				require.Equal(t, p.PropagateOnCopy, dst.PartitionsAllocator().Equal(srcP))

				moved := build(nil, dstE, dstP)
				moved.MoveFrom(src)
				requireEquivalent(t, moved, lit)
				require.True(t, src.Empty())
				require.Equal(t, p.PropagateOnMove, moved.EdgeAllocator().Equal(srcE))
				require.Equal(t, p.PropagateOnMove, moved.PartitionsAllocator().Equal(srcP))

				for _, g := range []*graph{src, dst, moved} {
					require.NoError(t, g.Clear())
				}
				for _, a := range []*alloc.Counting{srcE, srcP, dstE, dstP} {
					require.Zero(t, a.Live())
				}
			})
		}
	}
}

func TestShrinkToFit_TrimsPartitions(t *testing.T) {
	parts := alloc.NewCounting(alloc.Policy{})
	g := mustGraph(t, core.Undirected, [][]ei{{}, {}},
		core.WithStorage(partition.KindContiguous), core.WithPartitionsAllocator(parts))
	g.Reserve(16)
	require.Equal(t, 16, parts.Live())

	g.ShrinkToFit()
	require.Equal(t, 2, parts.Live())
	require.Equal(t, 2, g.Order())
}
