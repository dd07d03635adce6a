// SPDX-License-Identifier: MIT
// Package partition provides partitioned sequence containers: an ordered
// collection of partitions, each an ordered sequence of elements of type T.
// The graph layer in package core stores one partition of half-edges per
// node on top of these containers.
//
// Three back-ends satisfy the Storage interface:
//
//   - Contiguous: one flat buffer plus cumulative end offsets. Partition i
//     spans [offsets[i-1], offsets[i]). Favours cache locality and bulk
//     iteration; inserting into an early partition shifts the buffer tail.
//   - Bucketed: one buffer per partition. Favours cheap per-partition
//     mutation; erasing or inserting a partition moves only bucket handles.
//   - Static: fixed partition count and total element count, chosen at
//     construction, with a caller-chosen unsigned index type. Size-changing
//     operations return ErrFixedCapacity.
//
// Partition indices are stable across element insert/erase and shift when
// whole partitions are inserted or erased before them. Every accessor taking
// a partition index reports ErrOutOfRange for an invalid index unless range
// checks were disabled with WithRangeCheck(false).
//
// Iterators are iterator.Iterator values carrying an iterator.PartitionIndex.
// Any structural mutation (element or slot insert/erase) invalidates
// iterators and Partition views into the affected partition and, for the
// Contiguous and Static back-ends, into every later partition.
//
// Memory strategy: element buffers and partition bookkeeping buffers have
// independent alloc.Allocator handles; Clone, Assign, MoveFrom and Swap
// follow each handle's propagation policy.
//
// Errors:
//
//	ErrOutOfRange       - partition index or offset out of bounds.
//	ErrInvalidRange     - erase range spanning partitions or out of order.
//	ErrInconsistentInit - static initializer with the wrong shape.
//	ErrFixedCapacity    - size-changing operation on a Static container.
//	ErrNotEquivalent    - Equivalent found a mismatch.
package partition
