// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and assertions shared by the core tests.
//
// Purpose:
//   - Name the node indices and weights used in literals (no magic numbers).
//   - Check comp symmetry through the public API after every mutation.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/partition"
)

// Node indices used across core tests.
const (
	N0 = 0
	N1 = 1
	N2 = 2
	N3 = 3
	N4 = 4
)

// Edge weights used across core tests.
const (
	Weight0  = 0.0
	WeightH  = 0.5
	Weight1  = 1.0
	Weight2  = 2.0
	Weight3  = 3.0
	Weight7  = 7.0
	WeightNg = -1.0
)

type (
	ei     = core.EdgeInit[float64, core.None]
	graph  = core.Graph[float64, core.None, core.None]
	tagged = core.Graph[float64, string, string]
	tagEI  = core.EdgeInit[float64, string]
)

// dynamicKinds lists the back-ends that support every mutation.
func dynamicKinds() []partition.Kind {
	return []partition.Kind{partition.KindContiguous, partition.KindBucketed}
}

func mustGraph(t *testing.T, f core.Flavour, edges [][]ei, opts ...core.GraphOption) *graph {
	t.Helper()
	g, err := core.NewFromEdges[float64, core.None, core.None](f, edges, nil, opts...)
	require.NoError(t, err)
	requireConsistent(t, g)

	return g
}

// requireEquivalent asserts g matches the literal and stays consistent.
func requireEquivalent[W, N, M any](t *testing.T, g *core.Graph[W, N, M], want [][]core.EdgeInit[W, M]) {
	t.Helper()
	require.NoError(t, g.Equivalent(want, nil))
	requireConsistent(t, g)
}

// requireConsistent checks targets, partner round-trips and weight
// agreement for every stored half-edge.
func requireConsistent[W, N, M any](t *testing.T, g *core.Graph[W, N, M]) {
	t.Helper()
	stored := 0
	for u := 0; u < g.Order(); u++ {
		edges, err := g.Edges(u)
		require.NoError(t, err)
		stored += len(edges)
		for i, e := range edges {
			require.GreaterOrEqual(t, e.Target(), 0)
			require.Less(t, e.Target(), g.Order())
			if g.Flavour() == core.Directed {
				require.Equal(t, core.Npos, e.Comp())
				continue
			}
			p, c, err := g.Partner(u, i)
			require.NoError(t, err)
			back, backC, err := g.Partner(p, c)
			require.NoError(t, err)
			require.Equal(t, [2]int{u, i}, [2]int{back, backC}, "partner of (%d,%d) does not point back", u, i)
			other, err := g.Edge(p, c)
			require.NoError(t, err)
			require.Equal(t, e.Weight(), other.Weight(), "halves of (%d,%d) disagree on weight", u, i)
			if u == p {
				require.NotEqual(t, i, c)
			}
		}
	}
	if g.Flavour() == core.Directed {
		require.Equal(t, stored, g.Size())
	} else {
		require.Equal(t, stored, 2*g.Size())
	}
}

// half builds an undirected (or Directed, comp ignored) literal half-edge.
func half(target, comp int, w float64) ei {
	return ei{Source: core.Npos, Target: target, Comp: comp, Weight: w}
}

// arc builds a DirectedEmbedded literal half-edge.
func arc(source, target, comp int, w float64) ei {
	return ei{Source: source, Target: target, Comp: comp, Weight: w}
}

func targets(t *testing.T, g *graph, node int) []int {
	t.Helper()
	edges, err := g.Edges(node)
	require.NoError(t, err)
	out := make([]int, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Target())
	}

	return out
}

// DefaultKind is the storage used when a test does not vary it.
const DefaultKind = core.DefaultStorage
