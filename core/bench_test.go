// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/partition"
)

const benchNodes = 128

func benchGraph(b *testing.B, f core.Flavour, kind partition.Kind) *graph {
	b.Helper()
	g, err := core.New[float64, core.None, core.None](f, core.WithStorage(kind))
	if err != nil {
		b.Fatal(err)
	}
	for range benchNodes {
		if _, err = g.AddNode(); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

func benchJoin(b *testing.B, kind partition.Kind) {
	g := benchGraph(b, core.Undirected, kind)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.JoinWith(i%benchNodes, (i*7)%benchNodes, float64(i))
	}
}

// BenchmarkJoin_Contiguous measures undirected joins on the flat layout.
func BenchmarkJoin_Contiguous(b *testing.B) { benchJoin(b, partition.KindContiguous) }

// BenchmarkJoin_Bucketed measures undirected joins on per-node buckets.
func BenchmarkJoin_Bucketed(b *testing.B) { benchJoin(b, partition.KindBucketed) }

// BenchmarkJoinErase measures a join immediately undone, which exercises the
// partner re-indexing on both endpoints.
func BenchmarkJoinErase(b *testing.B) {
	g := benchGraph(b, core.Undirected, partition.KindBucketed)
	for u := 0; u < benchNodes; u++ {
		_ = g.Join(u, (u+1)%benchNodes)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := i % benchNodes
		_ = g.Join(u, (u+3)%benchNodes)
		d, _ := g.Degree(u)
		_ = g.EraseEdge(u, d-1)
	}
}

// BenchmarkClone measures a deep copy with shared weights.
func BenchmarkClone(b *testing.B) {
	g, err := core.New[float64, core.None, core.None](core.Undirected, core.WithSharedWeights())
	if err != nil {
		b.Fatal(err)
	}
	for range benchNodes {
		_, _ = g.AddNode()
	}
	for u := 0; u < benchNodes; u++ {
		_ = g.Join(u, (u+1)%benchNodes)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
