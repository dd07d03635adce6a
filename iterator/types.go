// SPDX-License-Identifier: MIT
// File: types.go
// Role: policy interfaces (Source, Dereferencer) and the PartitionIndex payload.

package iterator

// Npos marks "no position": an absent partition, parent or partner index.
const Npos = -1

// Source provides random access to the elements walked by an Iterator.
// Implementations return a pointer into live storage; the pointer stays valid
// until the next structural mutation of that storage.
type Source[T any] interface {
	Elem(pos int) *T
}

// Dereferencer transforms a pointer to an underlying element into the value
// handed to callers.
type Dereferencer[T, R any] interface {
	Deref(p *T) R
}

// Identity dereferences to the element pointer itself (mutable access).
type Identity[T any] struct{}

// Deref returns p unchanged.
func (Identity[T]) Deref(p *T) *T { return p }

// Value dereferences to a copy of the element (const access).
type Value[T any] struct{}

// Deref returns *p.
func (Value[T]) Deref(p *T) T { return *p }

// Func adapts a plain function to the Dereferencer interface.
type Func[T, R any] func(p *T) R

// Deref calls f(p).
func (f Func[T, R]) Deref(p *T) R { return f(p) }

// PartitionIndex is the auxiliary payload recording which partition an
// iterator walks. It is carried through arithmetic and ignored by comparisons.
type PartitionIndex struct {
	index int
}

// NewPartitionIndex returns the payload for partition i.
func NewPartitionIndex(i int) PartitionIndex {
	return PartitionIndex{index: i}
}

// Index returns the partition index, or Npos for a detached iterator.
func (p PartitionIndex) Index() int {
	return p.index
}

// SliceSource exposes a plain slice as a Source. It is mostly useful for
// tests and for adapting ad-hoc buffers.
type SliceSource[T any] []T

// Elem returns &s[pos].
func (s SliceSource[T]) Elem(pos int) *T { return &s[pos] }
