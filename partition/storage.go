// SPDX-License-Identifier: MIT
// File: storage.go
// Role: the Storage capability interface, iterator aliases, back-end Kind,
//       and the equality/equivalence helpers written against Storage.
// Determinism:
//   - Equal/Equivalent walk partitions and elements in index order.

package partition

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/partgraph/alloc"
	"github.com/katalvlaran/partgraph/iterator"
)

// Iterator walks one partition with mutable access (*T).
type Iterator[T any] = iterator.Iterator[T, *T, iterator.PartitionIndex]

// ConstIterator walks one partition with value access (T).
type ConstIterator[T any] = iterator.Iterator[T, T, iterator.PartitionIndex]

// Kind names a storage back-end.
type Kind int

const (
	// KindContiguous is the flat buffer + offsets back-end.
	KindContiguous Kind = iota
	// KindBucketed is the one-buffer-per-partition back-end.
	KindBucketed
	// KindStatic is the fixed-shape back-end.
	KindStatic
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindContiguous:
		return "contiguous"
	case KindBucketed:
		return "bucketed"
	case KindStatic:
		return "static"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind is the inverse of String.
func ParseKind(s string) (Kind, error) {
	for k := KindContiguous; k <= KindStatic; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind: unknown storage kind %q: %w", s, ErrInconsistentInit)
}

// Storage is the operation contract shared by Contiguous, Bucketed and
// Static. The graph layer is written against it.
//
// Partition indices are validated when range checks are enabled; every
// accessor then reports ErrOutOfRange for i outside [0, NumPartitions()).
type Storage[T any] interface {
	Kind() Kind

	NumPartitions() int
	Size() int
	Empty() bool
	SizeOfPartition(i int) (int, error)
	// Partition returns a live, capacity-clipped view of partition i.
	// Writes through the view are visible in the container; the view is
	// invalidated by any structural mutation.
	Partition(i int) ([]T, error)

	BeginPartition(i int) (Iterator[T], error)
	EndPartition(i int) (Iterator[T], error)
	RBeginPartition(i int) (Iterator[T], error)
	REndPartition(i int) (Iterator[T], error)
	CBeginPartition(i int) (ConstIterator[T], error)
	CEndPartition(i int) (ConstIterator[T], error)
	CRBeginPartition(i int) (ConstIterator[T], error)
	CREndPartition(i int) (ConstIterator[T], error)

	AddSlot() error
	InsertSlot(i int) error
	EraseSlot(i int) error
	SwapPartitions(i, j int) error

	PushBackToPartition(i int, v T) error
	InsertAt(i, k int, v T) (Iterator[T], error)
	InsertToPartition(pos ConstIterator[T], v T) (Iterator[T], error)
	EraseAt(i, k int) (Iterator[T], error)
	EraseFromPartition(pos ConstIterator[T]) (Iterator[T], error)
	EraseRange(first, last ConstIterator[T]) (Iterator[T], error)

	ReservePartitions(n int)
	NumPartitionsCapacity() int
	ShrinkNumPartitionsToFit()
	ShrinkToFit()
	Clear() error

	Allocator() alloc.Allocator
	PartitionsAllocator() alloc.Allocator
	RangeChecked() bool

	// CloneStorage copy-constructs an independent container.
	CloneStorage() Storage[T]
	// AssignStorage copy-assigns src into the receiver. src must have the
	// same Kind; a mismatch is a programmer error and panics.
	AssignStorage(src Storage[T])
	// MoveStorage move-assigns src into the receiver, leaving src empty.
	MoveStorage(src Storage[T])
	// SwapStorage exchanges contents with other (same Kind).
	SwapStorage(other Storage[T])
}

// Equal reports whether a and b hold the same number of partitions with
// element-wise equal contents, in order. Back-ends may differ.
func Equal[T any](a, b Storage[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return reflect.DeepEqual(x, y) })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b Storage[T], eq func(x, y T) bool) bool {
	if a.NumPartitions() != b.NumPartitions() || a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.NumPartitions(); i++ {
		pa, _ := a.Partition(i)
		pb, _ := b.Partition(i)
		if len(pa) != len(pb) {
			return false
		}
		for k := range pa {
			if !eq(pa[k], pb[k]) {
				return false
			}
		}
	}

	return true
}

// Equivalent compares s against a nested literal: one inner slice per
// partition. It returns nil on a match, or an error wrapping
// ErrNotEquivalent that names the first mismatch.
func Equivalent[T any](s Storage[T], want [][]T) error {
	return EquivalentFunc(s, want, func(x, y T) bool { return reflect.DeepEqual(x, y) })
}

// EquivalentFunc is Equivalent with a caller-supplied element comparison.
func EquivalentFunc[T any](s Storage[T], want [][]T, eq func(got, want T) bool) error {
	if s.NumPartitions() != len(want) {
		return fmt.Errorf("partition count: got %d, want %d: %w",
			s.NumPartitions(), len(want), ErrNotEquivalent)
	}
	for i, w := range want {
		got, _ := s.Partition(i)
		if len(got) != len(w) {
			return fmt.Errorf("partition %d size: got %d, want %d: %w", i, len(got), len(w), ErrNotEquivalent)
		}
		for k := range w {
			if !eq(got[k], w[k]) {
				return fmt.Errorf("partition %d element %d: got %v, want %v: %w",
					i, k, got[k], w[k], ErrNotEquivalent)
			}
		}
	}

	return nil
}

// Snapshot copies the contents of s into a nested slice.
func Snapshot[T any](s Storage[T]) [][]T {
	out := make([][]T, s.NumPartitions())
	for i := range out {
		p, _ := s.Partition(i)
		out[i] = append([]T{}, p...)
	}

	return out
}

// New builds an empty container of the given kind. KindStatic is not
// constructible empty and yields ErrFixedCapacity.
func New[T any](kind Kind, opts ...Option) (Storage[T], error) {
	switch kind {
	case KindContiguous:
		return NewContiguous[T](opts...), nil
	case KindBucketed:
		return NewBucketed[T](opts...), nil
	default:
		return nil, fmt.Errorf("New(%s): %w", kind, ErrFixedCapacity)
	}
}

// From builds a container of the given kind from a nested literal. For
// KindStatic the shape is taken from the literal itself.
func From[T any](kind Kind, parts [][]T, opts ...Option) (Storage[T], error) {
	switch kind {
	case KindContiguous:
		return NewContiguousFrom(parts, opts...), nil
	case KindBucketed:
		return NewBucketedFrom(parts, opts...), nil
	case KindStatic:
		total := 0
		for _, p := range parts {
			total += len(p)
		}
		s, err := NewStatic[T, uint32](len(parts), total, parts, opts...)
		if err != nil {
			return nil, err
		}

		return s, nil
	default:
		return nil, fmt.Errorf("From(%s): unknown kind: %w", kind, ErrInconsistentInit)
	}
}
