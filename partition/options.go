// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options shared by all back-ends.
// AI-HINT (file):
//   - Options are resolved once at construction; containers never consult
//     globals afterwards.
//   - Nil allocators are a programmer error and panic in the constructor.

package partition

import "github.com/katalvlaran/partgraph/alloc"

// DefaultRangeCheck is the default for WithRangeCheck: accessors validate
// partition indices and report ErrOutOfRange.
const DefaultRangeCheck = true

// Option customizes a container before construction.
type Option func(*options)

type options struct {
	alloc      alloc.Allocator
	partsAlloc alloc.Allocator
	rangeCheck bool
}

func newOptions(opts ...Option) options {
	o := options{
		alloc:      alloc.Default(),
		partsAlloc: alloc.Default(),
		rangeCheck: DefaultRangeCheck,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithAllocator sets the strategy for element buffers.
// Panics on nil.
func WithAllocator(a alloc.Allocator) Option {
	if a == nil {
		panic("partition: WithAllocator(nil)")
	}

	return func(o *options) { o.alloc = a }
}

// WithPartitionsAllocator sets the strategy for the partition bookkeeping
// buffer (offsets for Contiguous, the bucket array for Bucketed).
// Panics on nil.
func WithPartitionsAllocator(a alloc.Allocator) Option {
	if a == nil {
		panic("partition: WithPartitionsAllocator(nil)")
	}

	return func(o *options) { o.partsAlloc = a }
}

// WithRangeCheck toggles partition index validation. With checks disabled,
// an invalid index is not reported as ErrOutOfRange and typically panics
// with a runtime index error instead; callers opting out accept that.
func WithRangeCheck(enabled bool) Option {
	return func(o *options) { o.rangeCheck = enabled }
}
