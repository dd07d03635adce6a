package iterator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partgraph/iterator"
)

const partitionTwo = 2

func newInts(vals ...int) iterator.SliceSource[int] {
	return iterator.SliceSource[int](vals)
}

func TestIterator_ForwardArithmetic(t *testing.T) {
	src := newInts(10, 20, 30, 40)
	it := iterator.New[int](src, 0, iterator.Identity[int]{}, iterator.NewPartitionIndex(partitionTwo))

	require.Equal(t, 10, *it.Get())
	require.Equal(t, 30, *it.At(2))
	require.Equal(t, 20, *it.Next().Get())
	require.Equal(t, 40, *it.Add(3).Get())
	require.Equal(t, 30, *it.Add(3).Prev().Get())
	require.Equal(t, 20, *it.Add(3).Sub(2).Get())

	end := it.Add(len(src))
	require.Equal(t, len(src), iterator.Distance(it, end))
	require.Equal(t, -len(src), iterator.Distance(end, it))
	require.Equal(t, partitionTwo, end.Aux().Index(), "aux payload survives arithmetic")
}

func TestIterator_MutationThroughIdentity(t *testing.T) {
	src := newInts(1, 2, 3)
	it := iterator.New[int](src, 1, iterator.Identity[int]{}, iterator.NewPartitionIndex(0))

	*it.Get() = 7
	*it.Ptr() += 1
	require.Equal(t, []int{1, 8, 3}, []int(src))
}

func TestIterator_Comparisons(t *testing.T) {
	src := newInts(1, 2, 3)
	a := iterator.New[int](src, 0, iterator.Value[int]{}, iterator.NewPartitionIndex(0))
	b := iterator.New[int](src, 2, iterator.Value[int]{}, iterator.NewPartitionIndex(1))

	require.True(t, a.Less(b))
	require.True(t, a.LessEqual(b))
	require.True(t, b.Greater(a))
	require.True(t, b.GreaterEqual(a))
	require.False(t, a.Equal(b))
	require.Equal(t, -1, a.Compare(b))

	// Aux payload does not take part in equality.
	c := iterator.New[int](src, 2, iterator.Value[int]{}, iterator.NewPartitionIndex(5))
	require.True(t, b.Equal(c))
	require.Equal(t, 0, b.Compare(c))
}

func TestIterator_Reverse(t *testing.T) {
	src := newInts(1, 2, 3)
	rb := iterator.NewReverse[int](src, len(src), iterator.Value[int]{}, iterator.NewPartitionIndex(0))
	re := iterator.NewReverse[int](src, 0, iterator.Value[int]{}, iterator.NewPartitionIndex(0))

	var got []int
	for it := rb; !it.Equal(re); it = it.Next() {
		got = append(got, it.Get())
	}
	require.Equal(t, []int{3, 2, 1}, got)
	require.Equal(t, len(src), iterator.Distance(rb, re))
	require.True(t, rb.Less(re))
	require.True(t, rb.Reversed())
	require.Equal(t, 2, rb.At(1))

	// Base().Prev() addresses the same element as the reverse iterator.
	require.Equal(t, rb.Get(), rb.Base().Prev().Get())
}

func TestIterator_Convert(t *testing.T) {
	src := newInts(4, 5)
	mut := iterator.New[int](src, 1, iterator.Identity[int]{}, iterator.NewPartitionIndex(3))
	c := iterator.Convert(mut, iterator.Value[int]{})

	require.Equal(t, 5, c.Get())
	require.Equal(t, mut.Pos(), c.Pos())
	require.Equal(t, 3, c.Aux().Index())

	*mut.Get() = 9
	require.Equal(t, 9, c.Get(), "const view observes mutation through the mutable one")
}

func TestIterator_FuncDereferencer(t *testing.T) {
	type cell struct{ w float64 }
	src := iterator.SliceSource[cell]{{w: 0.5}, {w: 1.5}}
	unwrap := iterator.Func[cell, float64](func(p *cell) float64 { return p.w })
	it := iterator.New[cell](src, 0, unwrap, iterator.NewPartitionIndex(0))

	require.InDelta(t, 0.5, it.Get(), 0)
	require.InDelta(t, 1.5, it.At(1), 0)
}
