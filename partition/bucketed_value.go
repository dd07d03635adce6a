// SPDX-License-Identifier: MIT
// File: bucketed_value.go
// Role: regular semantics for Bucketed: Clone, Assign, MoveFrom, Swap, Equal.

package partition

import "github.com/katalvlaran/partgraph/alloc"

// Clone returns an independent copy: one allocation for the bucket array
// plus one per non-empty bucket.
func (b *Bucketed[T]) Clone() *Bucketed[T] {
	out := &Bucketed[T]{
		alloc:      b.alloc.SelectOnCopy(),
		partsAlloc: b.partsAlloc.SelectOnCopy(),
		rangeCheck: b.rangeCheck,
	}
	out.buckets = alloc.Clone(out.partsAlloc, b.buckets)
	for i, bk := range b.buckets {
		out.buckets[i] = &bucket[T]{elems: alloc.Clone(out.alloc, bk.elems)}
	}

	return out
}

// Assign copy-assigns src into b, reusing bucket capacity where the
// allocators allow it.
func (b *Bucketed[T]) Assign(src *Bucketed[T]) {
	if b == src {
		return
	}
	b.copyFrom(src, b.alloc.Policy().PropagateOnCopy, b.partsAlloc.Policy().PropagateOnCopy)
}

// copyFrom replaces b's contents with copies of src's. The adopt flags
// decide whether b takes over src's allocators first.
func (b *Bucketed[T]) copyFrom(src *Bucketed[T], adoptElems, adoptParts bool) {
	if adoptElems {
		if !b.alloc.Equal(src.alloc) {
			b.releaseBuckets()
		}
		b.alloc = src.alloc
	}
	if adoptParts {
		if !b.partsAlloc.Equal(src.partsAlloc) {
			b.releaseBuckets()
			alloc.Release(b.partsAlloc, b.buckets)
			b.buckets = nil
		}
		b.partsAlloc = src.partsAlloc
	}

	n := len(src.buckets)
	for k := n; k < len(b.buckets); k++ {
		alloc.Release(b.alloc, b.buckets[k].elems)
	}
	if len(b.buckets) > n {
		clear(b.buckets[n:])
		b.buckets = b.buckets[:n]
	} else {
		b.buckets = alloc.Reserve(b.partsAlloc, b.buckets, n)
		for len(b.buckets) < n {
			b.buckets = append(b.buckets, &bucket[T]{})
		}
	}
	for k, sb := range src.buckets {
		b.buckets[k].elems = alloc.AssignInto(b.alloc, b.buckets[k].elems, sb.elems)
	}
}

// MoveFrom move-assigns src into b; src is left empty but usable. The
// bucket array and the bucket buffers are decided independently: each
// changes hands when its allocator propagates on move or the two
// allocators are Equal, and is copied into b's own buffers otherwise.
func (b *Bucketed[T]) MoveFrom(src *Bucketed[T]) {
	if b == src {
		return
	}
	elemsMove := b.alloc.Policy().PropagateOnMove
	partsMove := b.partsAlloc.Policy().PropagateOnMove
	if !elemsMove && !b.alloc.Equal(src.alloc) {
		for k, sb := range src.buckets {
			var dst []T
			if k < len(b.buckets) {
				dst, b.buckets[k].elems = b.buckets[k].elems, nil
			}
			moved := alloc.AssignInto(b.alloc, dst, sb.elems)
			alloc.Release(src.alloc, sb.elems)
			sb.elems = moved
		}
	}
	b.releaseBuckets()
	if elemsMove {
		b.alloc = src.alloc
	}

	if partsMove || b.partsAlloc.Equal(src.partsAlloc) {
		alloc.Release(b.partsAlloc, b.buckets)
		b.buckets = src.buckets
		if partsMove {
			b.partsAlloc = src.partsAlloc
		}
	} else {
		b.buckets = alloc.AssignInto(b.partsAlloc, b.buckets, src.buckets)
		alloc.Release(src.partsAlloc, src.buckets)
	}
	src.buckets = nil
}

// Swap exchanges contents with other; allocators follow PropagateOnSwap.
func (b *Bucketed[T]) Swap(other *Bucketed[T]) {
	b.buckets, other.buckets = other.buckets, b.buckets
	if b.alloc.Policy().PropagateOnSwap {
		b.alloc, other.alloc = other.alloc, b.alloc
	}
	if b.partsAlloc.Policy().PropagateOnSwap {
		b.partsAlloc, other.partsAlloc = other.partsAlloc, b.partsAlloc
	}
}

// Equal reports element-wise equality, partition by partition.
func (b *Bucketed[T]) Equal(other Storage[T]) bool { return Equal[T](b, other) }

// CloneStorage implements Storage.
func (b *Bucketed[T]) CloneStorage() Storage[T] { return b.Clone() }

// AssignStorage implements Storage.
func (b *Bucketed[T]) AssignStorage(src Storage[T]) { b.Assign(mustKind[*Bucketed[T]](src)) }

// MoveStorage implements Storage.
func (b *Bucketed[T]) MoveStorage(src Storage[T]) { b.MoveFrom(mustKind[*Bucketed[T]](src)) }

// SwapStorage implements Storage.
func (b *Bucketed[T]) SwapStorage(other Storage[T]) { b.Swap(mustKind[*Bucketed[T]](other)) }
