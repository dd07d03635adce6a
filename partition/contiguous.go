// SPDX-License-Identifier: MIT
// File: contiguous.go
// Role: Contiguous: one flat element buffer plus cumulative end offsets.
// Determinism:
//   - Partition i spans data[offsets[i-1]:offsets[i]] with offsets[-1] == 0.
// Concurrency:
//   - Not safe for concurrent mutation; callers serialize externally.
// AI-HINT (file):
//   - Iterator positions are global offsets into data.
//   - Every element insert/erase shifts all later offsets by one.

package partition

import (
	"github.com/katalvlaran/partgraph/alloc"
	"github.com/katalvlaran/partgraph/iterator"
)

// Contiguous stores all partitions back to back in one buffer. It favours
// cache locality and bulk iteration; inserting into an early partition
// shifts the tail of the buffer.
type Contiguous[T any] struct {
	data    []T
	offsets []int

	alloc      alloc.Allocator
	partsAlloc alloc.Allocator
	rangeCheck bool
}

// contiguousSource exposes the flat buffer to iterators. It holds the
// container, not the slice, so iterators observe reallocations.
type contiguousSource[T any] struct {
	c *Contiguous[T]
}

func (s contiguousSource[T]) Elem(pos int) *T { return &s.c.data[pos] }

// NewContiguous returns an empty container.
func NewContiguous[T any](opts ...Option) *Contiguous[T] {
	o := newOptions(opts...)

	return &Contiguous[T]{alloc: o.alloc, partsAlloc: o.partsAlloc, rangeCheck: o.rangeCheck}
}

// NewContiguousFrom builds a container holding parts, one partition per
// inner slice. Both buffers are allocated once, at exact size.
func NewContiguousFrom[T any](parts [][]T, opts ...Option) *Contiguous[T] {
	c := NewContiguous[T](opts...)
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	c.data = alloc.Reserve(c.alloc, c.data, total)
	c.offsets = alloc.Reserve(c.partsAlloc, c.offsets, len(parts))
	for _, p := range parts {
		c.data = append(c.data, p...)
		c.offsets = append(c.offsets, len(c.data))
	}

	return c
}

// Kind implements Storage.
func (c *Contiguous[T]) Kind() Kind { return KindContiguous }

// lo returns the first global position of partition i.
func (c *Contiguous[T]) lo(i int) int {
	if i == 0 {
		return 0
	}

	return c.offsets[i-1]
}

// hi returns one past the last global position of partition i.
func (c *Contiguous[T]) hi(i int) int { return c.offsets[i] }

func (c *Contiguous[T]) checkPartition(method string, i int) error {
	if c.rangeCheck && (i < 0 || i >= len(c.offsets)) {
		return partitionRangeError(method, i, len(c.offsets))
	}

	return nil
}

// NumPartitions returns the number of partitions.
func (c *Contiguous[T]) NumPartitions() int { return len(c.offsets) }

// Size returns the total number of elements.
func (c *Contiguous[T]) Size() int { return len(c.data) }

// Empty reports whether there are no partitions.
func (c *Contiguous[T]) Empty() bool { return len(c.offsets) == 0 }

// SizeOfPartition returns the number of elements in partition i.
func (c *Contiguous[T]) SizeOfPartition(i int) (int, error) {
	if err := c.checkPartition("SizeOfPartition", i); err != nil {
		return 0, err
	}

	return c.hi(i) - c.lo(i), nil
}

// Partition returns a live view of partition i.
func (c *Contiguous[T]) Partition(i int) ([]T, error) {
	if err := c.checkPartition("Partition", i); err != nil {
		return nil, err
	}
	lo, hi := c.lo(i), c.hi(i)

	return c.data[lo:hi:hi], nil
}

func (c *Contiguous[T]) iter(i, pos int) Iterator[T] {
	return iterator.New[T](contiguousSource[T]{c}, pos, iterator.Identity[T]{}, iterator.NewPartitionIndex(i))
}

func (c *Contiguous[T]) riter(i, pos int) Iterator[T] {
	return iterator.NewReverse[T](contiguousSource[T]{c}, pos, iterator.Identity[T]{}, iterator.NewPartitionIndex(i))
}

func (c *Contiguous[T]) citer(i, pos int) ConstIterator[T] {
	return iterator.New[T](contiguousSource[T]{c}, pos, iterator.Value[T]{}, iterator.NewPartitionIndex(i))
}

func (c *Contiguous[T]) criter(i, pos int) ConstIterator[T] {
	return iterator.NewReverse[T](contiguousSource[T]{c}, pos, iterator.Value[T]{}, iterator.NewPartitionIndex(i))
}

// BeginPartition returns a mutable iterator to the first element of partition i.
func (c *Contiguous[T]) BeginPartition(i int) (Iterator[T], error) {
	if err := c.checkPartition("BeginPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return c.iter(i, c.lo(i)), nil
}

// EndPartition returns a mutable iterator one past the last element of partition i.
func (c *Contiguous[T]) EndPartition(i int) (Iterator[T], error) {
	if err := c.checkPartition("EndPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return c.iter(i, c.hi(i)), nil
}

// RBeginPartition returns a mutable reverse iterator to the last element of partition i.
func (c *Contiguous[T]) RBeginPartition(i int) (Iterator[T], error) {
	if err := c.checkPartition("RBeginPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return c.riter(i, c.hi(i)), nil
}

// REndPartition returns the mutable reverse end of partition i.
func (c *Contiguous[T]) REndPartition(i int) (Iterator[T], error) {
	if err := c.checkPartition("REndPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return c.riter(i, c.lo(i)), nil
}

// CBeginPartition is the const form of BeginPartition.
func (c *Contiguous[T]) CBeginPartition(i int) (ConstIterator[T], error) {
	if err := c.checkPartition("CBeginPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return c.citer(i, c.lo(i)), nil
}

// CEndPartition is the const form of EndPartition.
func (c *Contiguous[T]) CEndPartition(i int) (ConstIterator[T], error) {
	if err := c.checkPartition("CEndPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return c.citer(i, c.hi(i)), nil
}

// CRBeginPartition is the const form of RBeginPartition.
func (c *Contiguous[T]) CRBeginPartition(i int) (ConstIterator[T], error) {
	if err := c.checkPartition("CRBeginPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return c.criter(i, c.hi(i)), nil
}

// CREndPartition is the const form of REndPartition.
func (c *Contiguous[T]) CREndPartition(i int) (ConstIterator[T], error) {
	if err := c.checkPartition("CREndPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return c.criter(i, c.lo(i)), nil
}

// AddSlot appends an empty partition.
func (c *Contiguous[T]) AddSlot() error {
	c.offsets = alloc.Append(c.partsAlloc, c.offsets, len(c.data))

	return nil
}

// InsertSlot inserts an empty partition before partition i. An index at or
// past the end appends.
func (c *Contiguous[T]) InsertSlot(i int) error {
	if i >= len(c.offsets) {
		return c.AddSlot()
	}
	if err := c.checkPartition("InsertSlot", i); err != nil {
		return err
	}
	c.offsets = alloc.Insert(c.partsAlloc, c.offsets, i, c.lo(i))

	return nil
}

// EraseSlot removes partition i together with its elements.
func (c *Contiguous[T]) EraseSlot(i int) error {
	if err := c.checkPartition("EraseSlot", i); err != nil {
		return err
	}
	lo, hi := c.lo(i), c.hi(i)
	c.data = alloc.Remove(c.data, lo, hi)
	c.offsets = alloc.Remove(c.offsets, i, i+1)
	shiftOffsets(c.offsets[i:], lo-hi)

	return nil
}

// SwapPartitions exchanges the contents of partitions i and j. Swapping a
// partition with itself is a no-op.
func (c *Contiguous[T]) SwapPartitions(i, j int) error {
	if err := c.checkPartition("SwapPartitions", i); err != nil {
		return err
	}
	if err := c.checkPartition("SwapPartitions", j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	if i > j {
		i, j = j, i
	}
	li, lj := c.lo(i), c.lo(j)
	lenI, lenJ := c.hi(i)-li, c.hi(j)-lj
	swapSpans(c.data[li:c.hi(j)], lenI, lenJ)
	shiftOffsets(c.offsets[i:j], lenJ-lenI)

	return nil
}

// PushBackToPartition appends v to partition i.
func (c *Contiguous[T]) PushBackToPartition(i int, v T) error {
	if err := c.checkPartition("PushBackToPartition", i); err != nil {
		return err
	}
	c.data = alloc.Insert(c.alloc, c.data, c.hi(i), v)
	shiftOffsets(c.offsets[i:], 1)

	return nil
}

// InsertAt inserts v at offset k of partition i (0 ≤ k ≤ size) and
// returns an iterator to it. v is taken by value, so inserting a copy of
// an element of the same container is safe.
func (c *Contiguous[T]) InsertAt(i, k int, v T) (Iterator[T], error) {
	if err := c.checkPartition("InsertAt", i); err != nil {
		return Iterator[T]{}, err
	}
	lo, hi := c.lo(i), c.hi(i)
	if k < 0 || lo+k > hi {
		return Iterator[T]{}, offsetRangeError("InsertAt", i, k, hi-lo)
	}
	c.data = alloc.Insert(c.alloc, c.data, lo+k, v)
	shiftOffsets(c.offsets[i:], 1)

	return c.iter(i, lo+k), nil
}

// InsertToPartition inserts v before pos, in pos's partition.
func (c *Contiguous[T]) InsertToPartition(pos ConstIterator[T], v T) (Iterator[T], error) {
	i := pos.Aux().Index()
	if err := c.checkPartition("InsertToPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return c.InsertAt(i, pos.Pos()-c.lo(i), v)
}

// EraseAt removes the element at offset k of partition i and returns an
// iterator to the element that followed it.
func (c *Contiguous[T]) EraseAt(i, k int) (Iterator[T], error) {
	if err := c.checkPartition("EraseAt", i); err != nil {
		return Iterator[T]{}, err
	}
	lo, hi := c.lo(i), c.hi(i)
	if k < 0 || lo+k >= hi {
		return Iterator[T]{}, offsetRangeError("EraseAt", i, k, hi-lo)
	}
	c.data = alloc.Remove(c.data, lo+k, lo+k+1)
	shiftOffsets(c.offsets[i:], -1)

	return c.iter(i, lo+k), nil
}

// EraseFromPartition removes the element at pos.
func (c *Contiguous[T]) EraseFromPartition(pos ConstIterator[T]) (Iterator[T], error) {
	i := pos.Aux().Index()
	if err := c.checkPartition("EraseFromPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return c.EraseAt(i, pos.Pos()-c.lo(i))
}

// EraseRange removes [first, last). Both iterators must belong to the same
// partition, else ErrInvalidRange.
func (c *Contiguous[T]) EraseRange(first, last ConstIterator[T]) (Iterator[T], error) {
	i := first.Aux().Index()
	if err := checkSamePartition("EraseRange", i, last.Aux().Index()); err != nil {
		return Iterator[T]{}, err
	}
	if err := c.checkPartition("EraseRange", i); err != nil {
		return Iterator[T]{}, err
	}
	lo, hi := c.lo(i), c.hi(i)
	a, b := first.Pos(), last.Pos()
	if a < lo || b > hi || a > b {
		return Iterator[T]{}, rangeBoundsError("EraseRange", i, a-lo, b-lo, hi-lo)
	}
	c.data = alloc.Remove(c.data, a, b)
	shiftOffsets(c.offsets[i:], a-b)

	return c.iter(i, a), nil
}

// Reserve ensures room for n elements in the flat buffer.
func (c *Contiguous[T]) Reserve(n int) { c.data = alloc.Reserve(c.alloc, c.data, n) }

// Capacity returns the capacity of the flat buffer.
func (c *Contiguous[T]) Capacity() int { return cap(c.data) }

// ReservePartitions ensures room for n partitions.
func (c *Contiguous[T]) ReservePartitions(n int) {
	c.offsets = alloc.Reserve(c.partsAlloc, c.offsets, n)
}

// NumPartitionsCapacity returns the capacity of the offsets buffer.
func (c *Contiguous[T]) NumPartitionsCapacity() int { return cap(c.offsets) }

// ShrinkNumPartitionsToFit trims the offsets buffer.
func (c *Contiguous[T]) ShrinkNumPartitionsToFit() {
	c.offsets = alloc.Shrink(c.partsAlloc, c.offsets)
}

// ShrinkToFit trims the flat buffer.
func (c *Contiguous[T]) ShrinkToFit() { c.data = alloc.Shrink(c.alloc, c.data) }

// Clear removes all partitions and releases both buffers.
func (c *Contiguous[T]) Clear() error {
	alloc.Release(c.alloc, c.data)
	alloc.Release(c.partsAlloc, c.offsets)
	c.data, c.offsets = nil, nil

	return nil
}

// Allocator returns the element buffer strategy.
func (c *Contiguous[T]) Allocator() alloc.Allocator { return c.alloc }

// PartitionsAllocator returns the offsets buffer strategy.
func (c *Contiguous[T]) PartitionsAllocator() alloc.Allocator { return c.partsAlloc }

// RangeChecked reports whether partition indices are validated.
func (c *Contiguous[T]) RangeChecked() bool { return c.rangeCheck }
