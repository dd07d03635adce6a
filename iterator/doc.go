// SPDX-License-Identifier: MIT
// Package iterator provides a random-access iterator adaptor that composes
// a base position over a Source with two small policies:
//
//   - a Dereferencer, deciding what a caller sees when the iterator is
//     dereferenced (a mutable pointer, a value copy, an unwrapped weight...);
//   - an auxiliary payload carried through all arithmetic, such as the
//     PartitionIndex recording which partition an element belongs to.
//
// Iterator is a small value type: every "mutating" step (Next, Prev, Add,
// Sub) returns a new iterator, so iterators can be freely copied.
//
// Comparison and distance use only the base position; the auxiliary payload
// is carried but never compared. Reverse iterators dereference the element
// just before their base position and walk towards the front, mirroring the
// usual reverse-iterator convention.
//
// No bounds checks happen here: containers validate partition indices
// before handing out iterators, and a Source is free to panic on a bad
// position.
//
// Quick example:
//
//	it := iterator.New[int](src, 0, iterator.Identity[int]{}, iterator.NewPartitionIndex(0))
//	*it.Get() = 42             // mutable access
//	c := iterator.Convert(it, iterator.Value[int]{})
//	fmt.Println(c.Get())       // 42
package iterator
