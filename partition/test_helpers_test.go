// SPDX-License-Identifier: MIT
// Package partition_test contains shared fixtures for the storage back-ends.

package partition_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partgraph/partition"
)

// Common partition indices and values (avoid magic numbers in test bodies).
const (
	P0 = 0
	P1 = 1
	P2 = 2

	Val0 = 0
	Val1 = 1
	Val2 = 2
	Val3 = 3
	Val4 = 4
	Val5 = 5
	Val9 = 9
)

// backend builds a dynamic storage from a nested literal.
type backend struct {
	name string
	make func(parts [][]int, opts ...partition.Option) partition.Storage[int]
}

// dynamicBackends lists the back-ends supporting the full mutation set.
func dynamicBackends() []backend {
	return []backend{
		{
			name: "contiguous",
			make: func(parts [][]int, opts ...partition.Option) partition.Storage[int] {
				return partition.NewContiguousFrom(parts, opts...)
			},
		},
		{
			name: "bucketed",
			make: func(parts [][]int, opts ...partition.Option) partition.Storage[int] {
				return partition.NewBucketedFrom(parts, opts...)
			},
		},
	}
}

// requireContents asserts s holds want and that the size invariants hold.
func requireContents(t *testing.T, s partition.Storage[int], want [][]int) {
	t.Helper()
	got := partition.Snapshot(s)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, partition.Equivalent(s, want))
	requireSizeInvariants(t, s)
}

// requireSizeInvariants checks Size == Σ partition sizes and that the
// iterator distance of every partition equals its size.
func requireSizeInvariants(t *testing.T, s partition.Storage[int]) {
	t.Helper()
	total := 0
	for i := 0; i < s.NumPartitions(); i++ {
		n, err := s.SizeOfPartition(i)
		require.NoError(t, err)
		total += n

		b, err := s.CBeginPartition(i)
		require.NoError(t, err)
		e, err := s.CEndPartition(i)
		require.NoError(t, err)
		require.Equal(t, n, distance(b, e))

		rb, err := s.CRBeginPartition(i)
		require.NoError(t, err)
		re, err := s.CREndPartition(i)
		require.NoError(t, err)
		require.Equal(t, n, distance(rb, re))
	}
	require.Equal(t, total, s.Size())
}

func distance(first, last partition.ConstIterator[int]) int {
	n := 0
	for it := first; !it.Equal(last); it = it.Next() {
		n++
	}

	return n
}

// collect walks [first,last) and returns the visited values.
func collect(first, last partition.ConstIterator[int]) []int {
	var out []int
	for it := first; !it.Equal(last); it = it.Next() {
		out = append(out, it.Get())
	}

	return out
}
