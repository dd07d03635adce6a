// SPDX-License-Identifier: MIT
// File: iterator.go
// Role: the Iterator adaptor and its random-access operations.
// Determinism:
//   - All operations are pure functions of (pos, reversed); no hidden state.
// Concurrency:
//   - Iterators are values; concurrent reads are safe as long as the
//     underlying storage is not mutated.

package iterator

// Iterator composes a base position over a Source with a dereference
// transform D and an auxiliary payload A.
//
// For a forward iterator the element under the cursor is src.Elem(pos);
// for a reverse iterator it is src.Elem(pos-1).
type Iterator[T, R, A any] struct {
	src      Source[T]
	pos      int
	deref    Dereferencer[T, R]
	aux      A
	reversed bool
}

// New returns a forward iterator positioned at pos.
func New[T, R, A any](src Source[T], pos int, d Dereferencer[T, R], aux A) Iterator[T, R, A] {
	return Iterator[T, R, A]{src: src, pos: pos, deref: d, aux: aux}
}

// NewReverse returns a reverse iterator whose base position is pos; it
// dereferences the element at pos-1.
func NewReverse[T, R, A any](src Source[T], pos int, d Dereferencer[T, R], aux A) Iterator[T, R, A] {
	return Iterator[T, R, A]{src: src, pos: pos, deref: d, aux: aux, reversed: true}
}

// Convert rebinds the dereference transform of it, keeping its base position,
// direction and auxiliary payload. The usual use is mutable → const.
func Convert[T, R1, R2, A any](it Iterator[T, R1, A], d Dereferencer[T, R2]) Iterator[T, R2, A] {
	return Iterator[T, R2, A]{src: it.src, pos: it.pos, deref: d, aux: it.aux, reversed: it.reversed}
}

// index maps the base position plus an offset to a Source position.
func (it Iterator[T, R, A]) index(n int) int {
	if it.reversed {
		return it.pos - 1 - n
	}

	return it.pos + n
}

// Get dereferences the iterator.
func (it Iterator[T, R, A]) Get() R {
	return it.deref.Deref(it.src.Elem(it.index(0)))
}

// Ptr returns a pointer to the underlying element, bypassing the
// dereference transform.
func (it Iterator[T, R, A]) Ptr() *T {
	return it.src.Elem(it.index(0))
}

// At dereferences the element n steps away.
func (it Iterator[T, R, A]) At(n int) R {
	return it.deref.Deref(it.src.Elem(it.index(n)))
}

// Add returns the iterator moved n steps forward in its own direction.
func (it Iterator[T, R, A]) Add(n int) Iterator[T, R, A] {
	if it.reversed {
		it.pos -= n
	} else {
		it.pos += n
	}

	return it
}

// Sub returns the iterator moved n steps backwards in its own direction.
func (it Iterator[T, R, A]) Sub(n int) Iterator[T, R, A] { return it.Add(-n) }

// Next is Add(1).
func (it Iterator[T, R, A]) Next() Iterator[T, R, A] { return it.Add(1) }

// Prev is Sub(1).
func (it Iterator[T, R, A]) Prev() Iterator[T, R, A] { return it.Add(-1) }

// Distance returns the number of steps from first to last.
func Distance[T, R, A any](first, last Iterator[T, R, A]) int {
	if first.reversed {
		return first.pos - last.pos
	}

	return last.pos - first.pos
}

// Compare returns -1, 0 or +1 as it is before, at or after other.
func (it Iterator[T, R, A]) Compare(other Iterator[T, R, A]) int {
	d := Distance(other, it)
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both iterators share a base position.
func (it Iterator[T, R, A]) Equal(other Iterator[T, R, A]) bool { return it.pos == other.pos }

// Less reports it < other.
func (it Iterator[T, R, A]) Less(other Iterator[T, R, A]) bool { return it.Compare(other) < 0 }

// LessEqual reports it <= other.
func (it Iterator[T, R, A]) LessEqual(other Iterator[T, R, A]) bool { return it.Compare(other) <= 0 }

// Greater reports it > other.
func (it Iterator[T, R, A]) Greater(other Iterator[T, R, A]) bool { return it.Compare(other) > 0 }

// GreaterEqual reports it >= other.
func (it Iterator[T, R, A]) GreaterEqual(other Iterator[T, R, A]) bool {
	return it.Compare(other) >= 0
}

// Pos returns the base position.
func (it Iterator[T, R, A]) Pos() int { return it.pos }

// Aux returns the auxiliary payload.
func (it Iterator[T, R, A]) Aux() A { return it.aux }

// Reversed reports whether the iterator walks backwards.
func (it Iterator[T, R, A]) Reversed() bool { return it.reversed }

// Base returns the forward iterator sharing this iterator's base position.
// For a reverse iterator r, r.Base().Prev() dereferences the same element
// as r.
func (it Iterator[T, R, A]) Base() Iterator[T, R, A] {
	it.reversed = false

	return it
}

// Source returns the element provider the iterator walks.
func (it Iterator[T, R, A]) Source() Source[T] { return it.src }
