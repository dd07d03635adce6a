package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/dfs"
)

func TestTopologicalSort_DAG(t *testing.T) {
	order, err := dfs.TopologicalSort(diamond(t, core.Directed))
	require.NoError(t, err)
	require.Equal(t, []int{4, 0, 2, 1, 3}, order)

	order, err = dfs.TopologicalSort(build(t, core.DirectedEmbedded, 3, [2]int{2, 1}, [2]int{1, 0}))
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, order)

	order, err = dfs.TopologicalSort(build(t, core.Directed, 0))
	require.NoError(t, err)
	require.Empty(t, order)
}

func TestTopologicalSort_Rejects(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(build(t, core.Directed, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}))
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort(build(t, core.Directed, 2, [2]int{1, 1}))
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	for _, f := range []core.Flavour{core.Undirected, core.UndirectedEmbedded} {
		_, err = dfs.TopologicalSort(build(t, f, 2, [2]int{0, 1}))
		require.ErrorIs(t, err, dfs.ErrNotDirected, f.String())
	}
}

func TestTopologicalSort_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(diamond(t, core.Directed), dfs.WithCancelContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
