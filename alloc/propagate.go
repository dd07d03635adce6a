// SPDX-License-Identifier: MIT
// File: propagate.go
// Role: copy/move assignment of a single buffer under the propagation rules.

package alloc

// AssignBuffer copy-assigns src into dst. When dstA propagates on copy it
// adopts srcA first. It returns the new dst buffer and the allocator that
// now owns it.
func AssignBuffer[T any](dstA, srcA Allocator, dst, src []T) ([]T, Allocator) {
	if dstA.Policy().PropagateOnCopy && !dstA.Equal(srcA) {
		Release(dstA, dst)

		return Clone(srcA, src), srcA
	}
	if dstA.Policy().PropagateOnCopy {
		dstA = srcA
	}

	return AssignInto(dstA, dst, src), dstA
}

// MoveBuffer move-assigns src into dst. Buffers change hands when dstA
// propagates on move or the allocators are Equal; otherwise the elements
// are copied into dst's own buffer and src's buffer is released. It
// returns the new dst buffer, its allocator and what remains of src (nil).
func MoveBuffer[T any](dstA, srcA Allocator, dst, src []T) ([]T, Allocator, []T) {
	if dstA.Policy().PropagateOnMove || dstA.Equal(srcA) {
		Release(dstA, dst)
		if dstA.Policy().PropagateOnMove {
			dstA = srcA
		}

		return src, dstA, nil
	}
	out := AssignInto(dstA, dst, src)
	Release(srcA, src)

	return out, dstA, nil
}
