// SPDX-License-Identifier: MIT
// File: buffers.go
// Role: buffer helpers. Every reallocation done by a container goes through
//       one of these so the Allocator sees exactly one event per buffer.
// Determinism:
//   - Growth is geometric (doubling) starting from the requested size.

package alloc

import "slices"

// Reserve returns s with capacity at least n, reallocating exactly once if
// needed. Length and contents are preserved.
func Reserve[T any](a Allocator, s []T, n int) []T {
	if n <= cap(s) {
		return s
	}
	out := make([]T, len(s), n)
	a.Allocate(n)
	copy(out, s)
	Release(a, s)

	return out
}

// Grow returns s with room for at least extra more elements, doubling the
// capacity when a reallocation is required.
func Grow[T any](a Allocator, s []T, extra int) []T {
	need := len(s) + extra
	if need <= cap(s) {
		return s
	}

	return Reserve(a, s, max(need, 2*cap(s)))
}

// Append appends vals to s, growing through a.
func Append[T any](a Allocator, s []T, vals ...T) []T {
	s = Grow(a, s, len(vals))

	return append(s, vals...)
}

// Insert inserts v at position i of s, growing through a.
func Insert[T any](a Allocator, s []T, i int, v T) []T {
	s = Grow(a, s, 1)

	return slices.Insert(s, i, v)
}

// Remove deletes s[i:j]; the vacated tail is zeroed. No allocation happens.
func Remove[T any](s []T, i, j int) []T {
	return slices.Delete(s, i, j)
}

// Shrink reallocates s to an exact fit. An empty slice is released.
func Shrink[T any](a Allocator, s []T) []T {
	if len(s) == cap(s) {
		return s
	}
	if len(s) == 0 {
		Release(a, s)

		return nil
	}
	out := make([]T, len(s))
	a.Allocate(len(s))
	copy(out, s)
	Release(a, s)

	return out
}

// Clone returns an exact-fit copy of s allocated through a. A nil result is
// returned for an empty input so that no allocation is recorded.
func Clone[T any](a Allocator, s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	a.Allocate(len(s))
	copy(out, s)

	return out
}

// Release reports the release of s's buffer to a.
func Release[T any](a Allocator, s []T) {
	if cap(s) > 0 {
		a.Deallocate(cap(s))
	}
}

// AssignInto copies src into dst, reusing dst's buffer when it is large
// enough. dst's previous contents are discarded.
func AssignInto[T any](a Allocator, dst, src []T) []T {
	if cap(dst) < len(src) {
		Release(a, dst)
		dst = nil
		if len(src) > 0 {
			dst = make([]T, 0, len(src))
			a.Allocate(len(src))
		}
	}
	clear(dst[:cap(dst)])
	dst = dst[:len(src)]
	copy(dst, src)

	return dst
}
