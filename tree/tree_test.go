// SPDX-License-Identifier: MIT

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/partition"
	"github.com/katalvlaran/partgraph/tree"
)

type (
	ti   = tree.Initializer[string]
	strT = tree.Tree[float64, string]
)

var allDirs = []tree.LinkDir{tree.Forward, tree.Backward, tree.Symmetric}

// sample is
//
//	r
//	├── a
//	│   ├── c
//	│   └── d
//	└── b
func sample() ti {
	return ti{Node: "r", Children: []ti{
		{Node: "a", Children: []ti{{Node: "c"}, {Node: "d"}}},
		{Node: "b"},
	}}
}

func growSample(t *testing.T, dir tree.LinkDir) *strT {
	t.Helper()
	tr, err := tree.New[float64, string](dir)
	require.NoError(t, err)
	r, err := tr.AddNode(tree.Npos, "r")
	require.NoError(t, err)
	a, err := tr.AddNode(r, "a")
	require.NoError(t, err)
	_, err = tr.AddNode(r, "b")
	require.NoError(t, err)
	_, err = tr.AddNode(a, "c")
	require.NoError(t, err)
	_, err = tr.AddNode(a, "d")
	require.NoError(t, err)

	return tr
}

func TestLinkDir_StringRoundTrip(t *testing.T) {
	for _, d := range allDirs {
		got, err := tree.ParseLinkDir(d.String())
		require.NoError(t, err)
		require.Equal(t, d, got)
	}
	_, err := tree.ParseLinkDir("up")
	require.ErrorIs(t, err, core.ErrInconsistent)
}

func TestAddNode_RootRules(t *testing.T) {
	for _, dir := range allDirs {
		t.Run(dir.String(), func(t *testing.T) {
			tr, err := tree.New[float64, string](dir)
			require.NoError(t, err)
			require.Equal(t, tree.Npos, tr.Root())

			_, err = tr.AddNode(0, "orphan")
			require.ErrorIs(t, err, tree.ErrRoot)

			r, err := tr.AddNode(tree.Npos, "r")
			require.NoError(t, err)
			require.Equal(t, 0, r)

			_, err = tr.AddNode(tree.Npos, "second root")
			require.ErrorIs(t, err, tree.ErrRoot)
			_, err = tr.AddNode(5, "x")
			require.ErrorIs(t, err, core.ErrOutOfRange)
			require.Equal(t, 1, tr.Order())
		})
	}
}

func TestGrow_MatchesInitializer(t *testing.T) {
	for _, dir := range allDirs {
		t.Run(dir.String(), func(t *testing.T) {
			tr := growSample(t, dir)
			require.NoError(t, tr.Equivalent(sample()))
			require.Equal(t, 5, tr.Order())
			require.Equal(t, 4, tr.Size())

			kids, err := tr.Children(1)
			require.NoError(t, err)
			require.Equal(t, []int{3, 4}, kids)
			p, err := tr.Parent(4)
			require.NoError(t, err)
			require.Equal(t, 1, p)
			p, err = tr.Parent(0)
			require.NoError(t, err)
			require.Equal(t, tree.Npos, p)

			other := sample()
			other.Children[0].Children[1].Node = "e"
			require.ErrorIs(t, tr.Equivalent(other), core.ErrNotEquivalent)
			require.ErrorIs(t, tr.Equivalent(ti{Node: "r"}), core.ErrNotEquivalent)
		})
	}
}

func TestFromInitializer(t *testing.T) {
	for _, dir := range allDirs {
		for _, kind := range []partition.Kind{partition.KindContiguous, partition.KindBucketed, partition.KindStatic} {
			t.Run(dir.String()+"/"+kind.String(), func(t *testing.T) {
				tr, err := tree.FromInitializer[float64](dir, sample(), tree.WithStorage(kind))
				require.NoError(t, err)
				require.NoError(t, tr.Equivalent(sample()))
				require.Equal(t, 0, tr.Root())
				require.Equal(t, 4, tr.Size())
			})
		}
	}
}

func TestFromForest(t *testing.T) {
	empty, err := tree.FromForest[float64, string](tree.Symmetric, nil)
	require.NoError(t, err)
	require.True(t, empty.Empty())
	require.NoError(t, empty.EquivalentForest(nil))

	one, err := tree.FromForest[float64](tree.Backward, []ti{sample()})
	require.NoError(t, err)
	require.NoError(t, one.EquivalentForest([]ti{sample()}))
	require.ErrorIs(t, one.EquivalentForest(nil), core.ErrNotEquivalent)

	_, err = tree.FromForest[float64](tree.Forward, []ti{{Node: "x"}, {Node: "y"}})
	require.ErrorIs(t, err, tree.ErrRoot)
}

func TestPrune(t *testing.T) {
	for _, dir := range allDirs {
		t.Run(dir.String(), func(t *testing.T) {
			tr := growSample(t, dir)

			removed, err := tr.Prune(1)
			require.NoError(t, err)
			require.Equal(t, 3, removed)
			require.NoError(t, tr.Equivalent(ti{Node: "r", Children: []ti{{Node: "b"}}}))
			require.Equal(t, 0, tr.Root())
			require.NoError(t, tr.Validate())

			removed, err = tr.Prune(0)
			require.NoError(t, err)
			require.Equal(t, 2, removed)
			require.True(t, tr.Empty())
			require.Equal(t, tree.Npos, tr.Root())
			require.NoError(t, tr.Validate())

			_, err = tr.Prune(0)
			require.ErrorIs(t, err, core.ErrOutOfRange)
		})
	}
}

func TestPrune_Leaf(t *testing.T) {
	for _, dir := range allDirs {
		t.Run(dir.String(), func(t *testing.T) {
			tr := growSample(t, dir)
			removed, err := tr.Prune(3)
			require.NoError(t, err)
			require.Equal(t, 1, removed)
			require.NoError(t, tr.Equivalent(ti{Node: "r", Children: []ti{
				{Node: "a", Children: []ti{{Node: "d"}}},
				{Node: "b"},
			}}))
		})
	}
}

func TestPrune_StaticRejected(t *testing.T) {
	tr, err := tree.FromInitializer[float64](tree.Symmetric, sample(), tree.WithStorage(partition.KindStatic))
	require.NoError(t, err)
	_, err = tr.Prune(2)
	require.ErrorIs(t, err, core.ErrFixedCapacity)
	require.NoError(t, tr.Equivalent(sample()))
	require.NoError(t, tr.Validate())
}

func TestInsertNode(t *testing.T) {
	for _, dir := range allDirs {
		t.Run(dir.String(), func(t *testing.T) {
			tr := growSample(t, dir)
			// new child of "b" (index 2) placed at index 0
			k, err := tr.InsertNode(0, 2, "z")
			require.NoError(t, err)
			require.Equal(t, 0, k)
			require.Equal(t, 1, tr.Root())

			require.NoError(t, tr.Equivalent(ti{Node: "r", Children: []ti{
				{Node: "a", Children: []ti{{Node: "c"}, {Node: "d"}}},
				{Node: "b", Children: []ti{{Node: "z"}}},
			}}))
			p, err := tr.Parent(0)
			require.NoError(t, err)
			require.Equal(t, 3, p)
			require.NoError(t, tr.Validate())
		})
	}
}

func TestGraphCopy(t *testing.T) {
	tr := growSample(t, tree.Symmetric)
	g := tr.Graph()
	require.Equal(t, core.Undirected, g.Flavour())
	require.NoError(t, g.EraseNode(0))
	require.Equal(t, 5, tr.Order(), "tree untouched by edits to the copy")
}

func TestForest_RoundTrip(t *testing.T) {
	for _, dir := range allDirs {
		t.Run(dir.String(), func(t *testing.T) {
			tr := growSample(t, dir)
			forest, err := tr.Forest()
			require.NoError(t, err)
			require.Equal(t, []ti{sample()}, forest)

			back, err := tree.FromForest[float64](dir, forest)
			require.NoError(t, err)
			require.NoError(t, back.Equivalent(sample()))
		})
	}
	empty, err := tree.New[float64, string](tree.Forward)
	require.NoError(t, err)
	forest, err := empty.Forest()
	require.NoError(t, err)
	require.Nil(t, forest)
}
