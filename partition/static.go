// SPDX-License-Identifier: MIT
// File: static.go
// Role: Static: fixed partition count and fixed total element count.
// Determinism:
//   - Shape is fixed at construction; only element values and the split of
//     elements between partitions (via SwapPartitions) can change.
// AI-HINT (file):
//   - Offsets are stored in the caller-chosen unsigned index type I.
//   - Size-changing operations return ErrFixedCapacity, never panic.

package partition

import (
	"fmt"

	"github.com/katalvlaran/partgraph/alloc"
	"github.com/katalvlaran/partgraph/iterator"
)

// Unsigned is the set of index types a Static container may use.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Static is a fixed-shape partitioned container: both buffers are sized
// exactly once at construction and never reallocate.
type Static[T any, I Unsigned] struct {
	data       []T
	offsets    []I
	rangeCheck bool
}

type staticSource[T any, I Unsigned] struct {
	s *Static[T, I]
}

func (src staticSource[T, I]) Elem(pos int) *T { return &src.s.data[pos] }

// NewStatic builds a container with exactly numPartitions partitions and
// numElements elements, filled from parts. A mismatching literal yields
// ErrInconsistentInit; an element count not representable by I yields
// ErrOutOfRange. Allocator options are ignored.
func NewStatic[T any, I Unsigned](numPartitions, numElements int, parts [][]T, opts ...Option) (*Static[T, I], error) {
	o := newOptions(opts...)
	var maxIndex I
	maxIndex = ^maxIndex
	if numElements < 0 || uint64(numElements) > uint64(maxIndex) {
		return nil, fmt.Errorf("NewStatic: %d elements exceed index type capacity %d: %w",
			numElements, uint64(maxIndex), ErrOutOfRange)
	}
	if len(parts) != numPartitions {
		return nil, fmt.Errorf("NewStatic: %d partitions supplied, %d expected: %w",
			len(parts), numPartitions, ErrInconsistentInit)
	}
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	if total != numElements {
		return nil, fmt.Errorf("NewStatic: %d elements supplied, %d expected: %w",
			total, numElements, ErrInconsistentInit)
	}

	s := &Static[T, I]{
		data:       make([]T, 0, numElements),
		offsets:    make([]I, 0, numPartitions),
		rangeCheck: o.rangeCheck,
	}
	for _, p := range parts {
		s.data = append(s.data, p...)
		s.offsets = append(s.offsets, I(len(s.data)))
	}

	return s, nil
}

// Kind implements Storage.
func (s *Static[T, I]) Kind() Kind { return KindStatic }

func (s *Static[T, I]) lo(i int) int {
	if i == 0 {
		return 0
	}

	return int(s.offsets[i-1])
}

func (s *Static[T, I]) hi(i int) int { return int(s.offsets[i]) }

func (s *Static[T, I]) checkPartition(method string, i int) error {
	if s.rangeCheck && (i < 0 || i >= len(s.offsets)) {
		return partitionRangeError(method, i, len(s.offsets))
	}

	return nil
}

func fixed(method string) error {
	return fmt.Errorf("%s: %w", method, ErrFixedCapacity)
}

// NumPartitions returns the fixed partition count.
func (s *Static[T, I]) NumPartitions() int { return len(s.offsets) }

// Size returns the fixed element count.
func (s *Static[T, I]) Size() int { return len(s.data) }

// Empty reports whether the container has no partitions.
func (s *Static[T, I]) Empty() bool { return len(s.offsets) == 0 }

// SizeOfPartition returns the number of elements in partition i.
func (s *Static[T, I]) SizeOfPartition(i int) (int, error) {
	if err := s.checkPartition("SizeOfPartition", i); err != nil {
		return 0, err
	}

	return s.hi(i) - s.lo(i), nil
}

// Partition returns a live view of partition i.
func (s *Static[T, I]) Partition(i int) ([]T, error) {
	if err := s.checkPartition("Partition", i); err != nil {
		return nil, err
	}
	lo, hi := s.lo(i), s.hi(i)

	return s.data[lo:hi:hi], nil
}

func (s *Static[T, I]) iter(i, pos int, rev bool) Iterator[T] {
	src := staticSource[T, I]{s}
	if rev {
		return iterator.NewReverse[T](src, pos, iterator.Identity[T]{}, iterator.NewPartitionIndex(i))
	}

	return iterator.New[T](src, pos, iterator.Identity[T]{}, iterator.NewPartitionIndex(i))
}

func (s *Static[T, I]) citer(i, pos int, rev bool) ConstIterator[T] {
	src := staticSource[T, I]{s}
	if rev {
		return iterator.NewReverse[T](src, pos, iterator.Value[T]{}, iterator.NewPartitionIndex(i))
	}

	return iterator.New[T](src, pos, iterator.Value[T]{}, iterator.NewPartitionIndex(i))
}

// BeginPartition returns a mutable iterator to the first element of partition i.
func (s *Static[T, I]) BeginPartition(i int) (Iterator[T], error) {
	if err := s.checkPartition("BeginPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return s.iter(i, s.lo(i), false), nil
}

// EndPartition returns a mutable iterator one past partition i.
func (s *Static[T, I]) EndPartition(i int) (Iterator[T], error) {
	if err := s.checkPartition("EndPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return s.iter(i, s.hi(i), false), nil
}

// RBeginPartition returns a mutable reverse iterator to the last element of partition i.
func (s *Static[T, I]) RBeginPartition(i int) (Iterator[T], error) {
	if err := s.checkPartition("RBeginPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return s.iter(i, s.hi(i), true), nil
}

// REndPartition returns the mutable reverse end of partition i.
func (s *Static[T, I]) REndPartition(i int) (Iterator[T], error) {
	if err := s.checkPartition("REndPartition", i); err != nil {
		return Iterator[T]{}, err
	}

	return s.iter(i, s.lo(i), true), nil
}

// CBeginPartition is the const form of BeginPartition.
func (s *Static[T, I]) CBeginPartition(i int) (ConstIterator[T], error) {
	if err := s.checkPartition("CBeginPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return s.citer(i, s.lo(i), false), nil
}

// CEndPartition is the const form of EndPartition.
func (s *Static[T, I]) CEndPartition(i int) (ConstIterator[T], error) {
	if err := s.checkPartition("CEndPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return s.citer(i, s.hi(i), false), nil
}

// CRBeginPartition is the const form of RBeginPartition.
func (s *Static[T, I]) CRBeginPartition(i int) (ConstIterator[T], error) {
	if err := s.checkPartition("CRBeginPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return s.citer(i, s.hi(i), true), nil
}

// CREndPartition is the const form of REndPartition.
func (s *Static[T, I]) CREndPartition(i int) (ConstIterator[T], error) {
	if err := s.checkPartition("CREndPartition", i); err != nil {
		return ConstIterator[T]{}, err
	}

	return s.citer(i, s.lo(i), true), nil
}

// AddSlot always fails: the partition count is fixed.
func (s *Static[T, I]) AddSlot() error { return fixed("AddSlot") }

// InsertSlot always fails: the partition count is fixed.
func (s *Static[T, I]) InsertSlot(int) error { return fixed("InsertSlot") }

// EraseSlot always fails: the partition count is fixed.
func (s *Static[T, I]) EraseSlot(int) error { return fixed("EraseSlot") }

// SwapPartitions exchanges partitions i and j; the total is preserved.
func (s *Static[T, I]) SwapPartitions(i, j int) error {
	if err := s.checkPartition("SwapPartitions", i); err != nil {
		return err
	}
	if err := s.checkPartition("SwapPartitions", j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	if i > j {
		i, j = j, i
	}
	li, lj := s.lo(i), s.lo(j)
	lenI, lenJ := s.hi(i)-li, s.hi(j)-lj
	swapSpans(s.data[li:s.hi(j)], lenI, lenJ)
	shiftOffsets(s.offsets[i:j], lenJ-lenI)

	return nil
}

// PushBackToPartition always fails: the element count is fixed.
func (s *Static[T, I]) PushBackToPartition(int, T) error { return fixed("PushBackToPartition") }

// InsertAt always fails: the element count is fixed.
func (s *Static[T, I]) InsertAt(int, int, T) (Iterator[T], error) {
	return Iterator[T]{}, fixed("InsertAt")
}

// InsertToPartition always fails: the element count is fixed.
func (s *Static[T, I]) InsertToPartition(ConstIterator[T], T) (Iterator[T], error) {
	return Iterator[T]{}, fixed("InsertToPartition")
}

// EraseAt always fails: the element count is fixed.
func (s *Static[T, I]) EraseAt(int, int) (Iterator[T], error) {
	return Iterator[T]{}, fixed("EraseAt")
}

// EraseFromPartition always fails: the element count is fixed.
func (s *Static[T, I]) EraseFromPartition(ConstIterator[T]) (Iterator[T], error) {
	return Iterator[T]{}, fixed("EraseFromPartition")
}

// EraseRange always fails: the element count is fixed.
func (s *Static[T, I]) EraseRange(ConstIterator[T], ConstIterator[T]) (Iterator[T], error) {
	return Iterator[T]{}, fixed("EraseRange")
}

// ReservePartitions is a no-op.
func (s *Static[T, I]) ReservePartitions(int) {}

// NumPartitionsCapacity equals NumPartitions.
func (s *Static[T, I]) NumPartitionsCapacity() int { return len(s.offsets) }

// ShrinkNumPartitionsToFit is a no-op.
func (s *Static[T, I]) ShrinkNumPartitionsToFit() {}

// ShrinkToFit is a no-op.
func (s *Static[T, I]) ShrinkToFit() {}

// Clear always fails: the shape is fixed.
func (s *Static[T, I]) Clear() error { return fixed("Clear") }

// Allocator returns Default: Static never reallocates.
func (s *Static[T, I]) Allocator() alloc.Allocator { return alloc.Default() }

// PartitionsAllocator returns Default.
func (s *Static[T, I]) PartitionsAllocator() alloc.Allocator { return alloc.Default() }

// RangeChecked reports whether partition indices are validated.
func (s *Static[T, I]) RangeChecked() bool { return s.rangeCheck }

// Clone returns an independent copy with the same shape.
func (s *Static[T, I]) Clone() *Static[T, I] {
	return &Static[T, I]{
		data:       append(make([]T, 0, len(s.data)), s.data...),
		offsets:    append(make([]I, 0, len(s.offsets)), s.offsets...),
		rangeCheck: s.rangeCheck,
	}
}

// Assign copies src's contents into s.
func (s *Static[T, I]) Assign(src *Static[T, I]) {
	if s == src {
		return
	}
	s.data = append(s.data[:0], src.data...)
	s.offsets = append(s.offsets[:0], src.offsets...)
}

// Equal reports element-wise equality, partition by partition.
func (s *Static[T, I]) Equal(other Storage[T]) bool { return Equal[T](s, other) }

// CloneStorage implements Storage.
func (s *Static[T, I]) CloneStorage() Storage[T] { return s.Clone() }

// AssignStorage implements Storage.
func (s *Static[T, I]) AssignStorage(src Storage[T]) { s.Assign(mustKind[*Static[T, I]](src)) }

// MoveStorage copies src: fixed buffers cannot change hands, so src keeps
// its contents. The copy is shallow; callers holding pointers in T must
// detach them.
func (s *Static[T, I]) MoveStorage(src Storage[T]) { s.Assign(mustKind[*Static[T, I]](src)) }

// SwapStorage exchanges contents with other.
func (s *Static[T, I]) SwapStorage(other Storage[T]) {
	o := mustKind[*Static[T, I]](other)
	s.data, o.data = o.data, s.data
	s.offsets, o.offsets = o.offsets, s.offsets
}
