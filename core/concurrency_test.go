// Package core_test verifies that graphs without shared state can be used
// from separate goroutines: clones share no cells with their source, and
// read-only access needs no locking.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partgraph/core"
)

const (
	nClones   = 16
	nReaders  = 32
	nPerClone = 50
)

// TestConcurrentClonesMutate mutates independent clones on separate
// goroutines and checks the source is untouched.
func TestConcurrentClonesMutate(t *testing.T) {
	src, err := core.New[float64, core.None, core.None](core.Undirected, core.WithSharedWeights())
	require.NoError(t, err)
	for range 4 {
		_, err = src.AddNode()
		require.NoError(t, err)
	}
	require.NoError(t, src.JoinWith(N0, N1, Weight1))
	require.NoError(t, src.JoinWith(N2, N3, Weight2))
	want := src.EdgeInits()

	clones := make([]*graph, nClones)
	for i := range clones {
		clones[i] = src.Clone()
	}
	var wg sync.WaitGroup
	errs := make([]error, nClones)
	wg.Add(nClones)
	for i := range clones {
		go func(id int) {
			defer wg.Done()
			g := clones[id]
			for k := 0; k < nPerClone && errs[id] == nil; k++ {
				errs[id] = g.JoinWith(k%4, (k+id)%4, float64(k))
			}
			if errs[id] == nil {
				errs[id] = g.SetEdgeWeight(N0, 0, float64(id))
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "clone %d", i)
		requireConsistent(t, clones[i])
		require.Equal(t, 2+nPerClone, clones[i].Size())
	}
	requireEquivalent(t, src, want)
}

// TestConcurrentReaders walks one graph from many goroutines.
func TestConcurrentReaders(t *testing.T) {
	g := joined(t, DefaultKind)
	var wg sync.WaitGroup
	sums := make([]int, nReaders)
	wg.Add(nReaders)
	for r := 0; r < nReaders; r++ {
		go func(id int) {
			defer wg.Done()
			for u := 0; u < g.Order(); u++ {
				edges, _ := g.Edges(u)
				for _, e := range edges {
					sums[id] += e.Target()
				}
			}
		}(r)
	}
	wg.Wait()
	for _, s := range sums {
		require.Equal(t, sums[0], s)
	}
}
