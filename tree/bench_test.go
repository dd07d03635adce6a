// SPDX-License-Identifier: MIT

package tree_test

import (
	"testing"

	"github.com/katalvlaran/partgraph/tree"
)

const benchNodes = 1 << 10

func BenchmarkPrune(b *testing.B) {
	for _, dir := range allDirs {
		b.Run(dir.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				t, _ := tree.New[float64, int](dir)
				_, _ = t.AddNode(tree.Npos, 0)
				for k := 1; k < benchNodes; k++ {
					_, _ = t.AddNode((k-1)/2, k)
				}
				b.StartTimer()
				_, _ = t.Prune(1)
			}
		})
	}
}
