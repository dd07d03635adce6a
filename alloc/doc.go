// SPDX-License-Identifier: MIT
// Package alloc expresses an allocation strategy for the partitioned
// containers: a small handle that is notified of every buffer allocation and
// release, and that carries the propagation policy applied when a container
// is copied, moved or swapped.
//
// Go memory is garbage collected, so an Allocator never hands out memory
// itself. Containers grow their buffers exclusively through the helpers in
// this package (Reserve, Grow, Append, Insert, Shrink, Clone, Release) which
// report each event to the Allocator. Counting is the instrumented strategy
// used to verify the propagation contract; Default is the zero-cost one.
//
// Propagation contract (per container operation):
//
//	Clone   (copy construct)  uses src.SelectOnCopy().
//	Assign  (copy assign)     adopts src's allocator iff Policy.PropagateOnCopy.
//	MoveFrom(move assign)     adopts src's allocator iff Policy.PropagateOnMove;
//	                          otherwise steals buffers only when allocators
//	                          are Equal, else copies element-wise.
//	Swap                      exchanges allocators iff Policy.PropagateOnSwap.
package alloc
