// SPDX-License-Identifier: MIT
// File: contiguous_value.go
// Role: regular semantics for Contiguous: Clone, Assign, MoveFrom, Swap, Equal.
// AI-HINT (file):
//   - Each buffer follows its own allocator's Policy independently.

package partition

import "github.com/katalvlaran/partgraph/alloc"

// Clone returns an independent copy. Each non-empty buffer is allocated
// exactly once through src.Allocator().SelectOnCopy().
func (c *Contiguous[T]) Clone() *Contiguous[T] {
	out := &Contiguous[T]{
		alloc:      c.alloc.SelectOnCopy(),
		partsAlloc: c.partsAlloc.SelectOnCopy(),
		rangeCheck: c.rangeCheck,
	}
	out.data = alloc.Clone(out.alloc, c.data)
	out.offsets = alloc.Clone(out.partsAlloc, c.offsets)

	return out
}

// Assign copy-assigns src into c.
func (c *Contiguous[T]) Assign(src *Contiguous[T]) {
	if c == src {
		return
	}
	c.data, c.alloc = alloc.AssignBuffer(c.alloc, src.alloc, c.data, src.data)
	c.offsets, c.partsAlloc = alloc.AssignBuffer(c.partsAlloc, src.partsAlloc, c.offsets, src.offsets)
}

// MoveFrom move-assigns src into c; src is left empty but usable.
func (c *Contiguous[T]) MoveFrom(src *Contiguous[T]) {
	if c == src {
		return
	}
	c.data, c.alloc, src.data = alloc.MoveBuffer(c.alloc, src.alloc, c.data, src.data)
	c.offsets, c.partsAlloc, src.offsets = alloc.MoveBuffer(c.partsAlloc, src.partsAlloc, c.offsets, src.offsets)
}

// Swap exchanges contents with other; allocators follow PropagateOnSwap.
func (c *Contiguous[T]) Swap(other *Contiguous[T]) {
	c.data, other.data = other.data, c.data
	c.offsets, other.offsets = other.offsets, c.offsets
	if c.alloc.Policy().PropagateOnSwap {
		c.alloc, other.alloc = other.alloc, c.alloc
	}
	if c.partsAlloc.Policy().PropagateOnSwap {
		c.partsAlloc, other.partsAlloc = other.partsAlloc, c.partsAlloc
	}
}

// Equal reports element-wise equality, partition by partition.
func (c *Contiguous[T]) Equal(other Storage[T]) bool { return Equal[T](c, other) }

// CloneStorage implements Storage.
func (c *Contiguous[T]) CloneStorage() Storage[T] { return c.Clone() }

// AssignStorage implements Storage.
func (c *Contiguous[T]) AssignStorage(src Storage[T]) { c.Assign(mustKind[*Contiguous[T]](src)) }

// MoveStorage implements Storage.
func (c *Contiguous[T]) MoveStorage(src Storage[T]) { c.MoveFrom(mustKind[*Contiguous[T]](src)) }

// SwapStorage implements Storage.
func (c *Contiguous[T]) SwapStorage(other Storage[T]) { c.Swap(mustKind[*Contiguous[T]](other)) }

func mustKind[S any, T any](s Storage[T]) S {
	out, ok := s.(S)
	if !ok {
		panic("partition: storage kind mismatch")
	}

	return out
}
