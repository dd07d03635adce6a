// SPDX-License-Identifier: MIT
// File: bucketed.go
// Role: Bucketed: one independently allocated buffer ("bucket") per partition.
// Determinism:
//   - Bucket order is partition order; iterator positions are local to a bucket.
// Concurrency:
//   - Not safe for concurrent mutation; callers serialize externally.
// AI-HINT (file):
//   - Slot operations move bucket pointers only; element buffers never shift
//     across partitions.
//   - An iterator follows its bucket through SwapPartitions.

package partition

import (
	"github.com/katalvlaran/partgraph/alloc"
	"github.com/katalvlaran/partgraph/iterator"
)

type bucket[T any] struct {
	elems []T
}

func (b *bucket[T]) Elem(pos int) *T { return &b.elems[pos] }

// Bucketed stores each partition in its own buffer. Mutating one node's
// partition never moves another partition's data.
type Bucketed[T any] struct {
	buckets []*bucket[T]

	alloc      alloc.Allocator
	partsAlloc alloc.Allocator
	rangeCheck bool
}

// NewBucketed returns an empty container.
func NewBucketed[T any](opts ...Option) *Bucketed[T] {
	o := newOptions(opts...)

	return &Bucketed[T]{alloc: o.alloc, partsAlloc: o.partsAlloc, rangeCheck: o.rangeCheck}
}

// NewBucketedFrom builds a container holding parts. The bucket array and
// each non-empty bucket are allocated once, at exact size.
func NewBucketedFrom[T any](parts [][]T, opts ...Option) *Bucketed[T] {
	b := NewBucketed[T](opts...)
	b.buckets = alloc.Reserve(b.partsAlloc, b.buckets, len(parts))
	for _, p := range parts {
		b.buckets = append(b.buckets, &bucket[T]{elems: alloc.Clone(b.alloc, p)})
	}

	return b
}

// Kind implements Storage.
func (b *Bucketed[T]) Kind() Kind { return KindBucketed }

func (b *Bucketed[T]) checkPartition(method string, i int) error {
	if b.rangeCheck && (i < 0 || i >= len(b.buckets)) {
		return partitionRangeError(method, i, len(b.buckets))
	}

	return nil
}

// NumPartitions returns the number of buckets.
func (b *Bucketed[T]) NumPartitions() int { return len(b.buckets) }

// Size returns the total number of elements across buckets.
func (b *Bucketed[T]) Size() int {
	n := 0
	for _, bk := range b.buckets {
		n += len(bk.elems)
	}

	return n
}

// Empty reports whether there are no buckets.
func (b *Bucketed[T]) Empty() bool { return len(b.buckets) == 0 }

// SizeOfPartition returns the number of elements in bucket i.
func (b *Bucketed[T]) SizeOfPartition(i int) (int, error) {
	if err := b.checkPartition("SizeOfPartition", i); err != nil {
		return 0, err
	}

	return len(b.buckets[i].elems), nil
}

// Partition returns a live view of bucket i.
func (b *Bucketed[T]) Partition(i int) ([]T, error) {
	if err := b.checkPartition("Partition", i); err != nil {
		return nil, err
	}
	e := b.buckets[i].elems

	return e[:len(e):len(e)], nil
}

func (b *Bucketed[T]) iter(i, pos int) Iterator[T] {
	return iterator.New[T](b.buckets[i], pos, iterator.Identity[T]{}, iterator.NewPartitionIndex(i))
}

func (b *Bucketed[T]) riter(i, pos int) Iterator[T] {
	return iterator.NewReverse[T](b.buckets[i], pos, iterator.Identity[T]{}, iterator.NewPartitionIndex(i))
}

func (b *Bucketed[T]) citer(i, pos int) ConstIterator[T] {
	return iterator.New[T](b.buckets[i], pos, iterator.Value[T]{}, iterator.NewPartitionIndex(i))
}

func (b *Bucketed[T]) criter(i, pos int) ConstIterator[T] {
	return iterator.NewReverse[T](b.buckets[i], pos, iterator.Value[T]{}, iterator.NewPartitionIndex(i))
}

// BeginPartition returns a mutable iterator to the first element of bucket i.
func (b *Bucketed[T]) BeginPartition(i int) (Iterator[T], error) {
	if err := b.checkPartition("BeginPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return b.iter(i, 0), nil
}

// EndPartition returns a mutable iterator one past the end of bucket i.
func (b *Bucketed[T]) EndPartition(i int) (Iterator[T], error) {
	if err := b.checkPartition("EndPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return b.iter(i, len(b.buckets[i].elems)), nil
}

// RBeginPartition returns a mutable reverse iterator to the last element of bucket i.
func (b *Bucketed[T]) RBeginPartition(i int) (Iterator[T], error) {
	if err := b.checkPartition("RBeginPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return b.riter(i, len(b.buckets[i].elems)), nil
}

// REndPartition returns the mutable reverse end of bucket i.
func (b *Bucketed[T]) REndPartition(i int) (Iterator[T], error) {
	if err := b.checkPartition("REndPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return b.riter(i, 0), nil
}

// CBeginPartition is the const form of BeginPartition.
func (b *Bucketed[T]) CBeginPartition(i int) (ConstIterator[T], error) {
	if err := b.checkPartition("CBeginPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return b.citer(i, 0), nil
}

// CEndPartition is the const form of EndPartition.
func (b *Bucketed[T]) CEndPartition(i int) (ConstIterator[T], error) {
	if err := b.checkPartition("CEndPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return b.citer(i, len(b.buckets[i].elems)), nil
}

// CRBeginPartition is the const form of RBeginPartition.
func (b *Bucketed[T]) CRBeginPartition(i int) (ConstIterator[T], error) {
	if err := b.checkPartition("CRBeginPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return b.criter(i, len(b.buckets[i].elems)), nil
}

// CREndPartition is the const form of REndPartition.
func (b *Bucketed[T]) CREndPartition(i int) (ConstIterator[T], error) {
	if err := b.checkPartition("CREndPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return b.criter(i, 0), nil
}

// AddSlot appends an empty bucket.
func (b *Bucketed[T]) AddSlot() error {
	b.buckets = alloc.Append(b.partsAlloc, b.buckets, &bucket[T]{})

	return nil
}

// InsertSlot inserts an empty bucket before bucket i; past the end appends.
func (b *Bucketed[T]) InsertSlot(i int) error {
	if i >= len(b.buckets) {
		return b.AddSlot()
	}
	if err := b.checkPartition("InsertSlot", i); err != nil {
		return err
	}
	b.buckets = alloc.Insert(b.partsAlloc, b.buckets, i, &bucket[T]{})

	return nil
}

// EraseSlot removes bucket i and releases its buffer.
func (b *Bucketed[T]) EraseSlot(i int) error {
	if err := b.checkPartition("EraseSlot", i); err != nil {
		return err
	}
	alloc.Release(b.alloc, b.buckets[i].elems)
	b.buckets = alloc.Remove(b.buckets, i, i+1)

	return nil
}

// SwapPartitions exchanges buckets i and j in O(1).
func (b *Bucketed[T]) SwapPartitions(i, j int) error {
	if err := b.checkPartition("SwapPartitions", i); err != nil {
		return err
	}
	if err := b.checkPartition("SwapPartitions", j); err != nil {
		return err
	}
	b.buckets[i], b.buckets[j] = b.buckets[j], b.buckets[i]

	return nil
}

// PushBackToPartition appends v to bucket i.
func (b *Bucketed[T]) PushBackToPartition(i int, v T) error {
	if err := b.checkPartition("PushBackToPartition", i); err != nil {
		return err
	}
	bk := b.buckets[i]
	bk.elems = alloc.Append(b.alloc, bk.elems, v)

	return nil
}

// InsertAt inserts v at offset k of bucket i (0 ≤ k ≤ size).
func (b *Bucketed[T]) InsertAt(i, k int, v T) (Iterator[T], error) {
	if err := b.checkPartition("InsertAt", i); err != nil {
		return Iterator[T]{}, err
	}
	bk := b.buckets[i]
	if k < 0 || k > len(bk.elems) {
		return Iterator[T]{}, offsetRangeError("InsertAt", i, k, len(bk.elems))
	}
	bk.elems = alloc.Insert(b.alloc, bk.elems, k, v)

	return b.iter(i, k), nil
}

// InsertToPartition inserts v before pos, in pos's bucket.
func (b *Bucketed[T]) InsertToPartition(pos ConstIterator[T], v T) (Iterator[T], error) {
	return b.InsertAt(pos.Aux().Index(), pos.Pos(), v)
}

// EraseAt removes the element at offset k of bucket i.
func (b *Bucketed[T]) EraseAt(i, k int) (Iterator[T], error) {
	if err := b.checkPartition("EraseAt", i); err != nil {
		return Iterator[T]{}, err
	}
	bk := b.buckets[i]
	if k < 0 || k >= len(bk.elems) {
		return Iterator[T]{}, offsetRangeError("EraseAt", i, k, len(bk.elems))
	}
	bk.elems = alloc.Remove(bk.elems, k, k+1)

	return b.iter(i, k), nil
}

// EraseFromPartition removes the element at pos.
func (b *Bucketed[T]) EraseFromPartition(pos ConstIterator[T]) (Iterator[T], error) {
	return b.EraseAt(pos.Aux().Index(), pos.Pos())
}

// EraseRange removes [first, last) from a single bucket.
func (b *Bucketed[T]) EraseRange(first, last ConstIterator[T]) (Iterator[T], error) {
	i := first.Aux().Index()
	if err := checkSamePartition("EraseRange", i, last.Aux().Index()); err != nil {
		return Iterator[T]{}, err
	}
	if err := b.checkPartition("EraseRange", i); err != nil {
		return Iterator[T]{}, err
	}
	bk := b.buckets[i]
	lo, hi := first.Pos(), last.Pos()
	if lo < 0 || hi > len(bk.elems) || lo > hi {
		return Iterator[T]{}, rangeBoundsError("EraseRange", i, lo, hi, len(bk.elems))
	}
	bk.elems = alloc.Remove(bk.elems, lo, hi)

	return b.iter(i, lo), nil
}

// ReservePartition ensures bucket i can hold n elements.
func (b *Bucketed[T]) ReservePartition(i, n int) error {
	if err := b.checkPartition("ReservePartition", i); err != nil {
		return err
	}
	bk := b.buckets[i]
	bk.elems = alloc.Reserve(b.alloc, bk.elems, n)

	return nil
}

// PartitionCapacity returns the capacity of bucket i, or 0 when i is out
// of range.
func (b *Bucketed[T]) PartitionCapacity(i int) int {
	if i < 0 || i >= len(b.buckets) {
		return 0
	}

	return cap(b.buckets[i].elems)
}

// ShrinkPartitionToFit trims bucket i.
func (b *Bucketed[T]) ShrinkPartitionToFit(i int) error {
	if err := b.checkPartition("ShrinkPartitionToFit", i); err != nil {
		return err
	}
	bk := b.buckets[i]
	bk.elems = alloc.Shrink(b.alloc, bk.elems)

	return nil
}

// ReservePartitions ensures the bucket array can hold n buckets.
func (b *Bucketed[T]) ReservePartitions(n int) {
	b.buckets = alloc.Reserve(b.partsAlloc, b.buckets, n)
}

// NumPartitionsCapacity returns the capacity of the bucket array.
func (b *Bucketed[T]) NumPartitionsCapacity() int { return cap(b.buckets) }

// ShrinkNumPartitionsToFit trims the bucket array.
func (b *Bucketed[T]) ShrinkNumPartitionsToFit() {
	b.buckets = alloc.Shrink(b.partsAlloc, b.buckets)
}

// ShrinkToFit trims every bucket.
func (b *Bucketed[T]) ShrinkToFit() {
	for _, bk := range b.buckets {
		bk.elems = alloc.Shrink(b.alloc, bk.elems)
	}
}

// Clear removes all buckets and releases every buffer.
func (b *Bucketed[T]) Clear() error {
	b.releaseBuckets()
	alloc.Release(b.partsAlloc, b.buckets)
	b.buckets = nil

	return nil
}

func (b *Bucketed[T]) releaseBuckets() {
	for _, bk := range b.buckets {
		alloc.Release(b.alloc, bk.elems)
		bk.elems = nil
	}
}

// Allocator returns the bucket buffer strategy.
func (b *Bucketed[T]) Allocator() alloc.Allocator { return b.alloc }

// PartitionsAllocator returns the bucket array strategy.
func (b *Bucketed[T]) PartitionsAllocator() alloc.Allocator { return b.partsAlloc }

// RangeChecked reports whether partition indices are validated.
func (b *Bucketed[T]) RangeChecked() bool { return b.rangeCheck }
