package dfs_test

import (
	"testing"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/dfs"
)

// BenchmarkDFS_Chain measures DFS on a directed chain.
func BenchmarkDFS_Chain(b *testing.B) {
	const n = 10000
	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := build(b, core.Directed, n, edges...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkTopologicalSort_Chain measures TopologicalSort on the same chain.
func BenchmarkTopologicalSort_Chain(b *testing.B) {
	const n = 10000
	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := build(b, core.Directed, n, edges...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g)
	}
}
