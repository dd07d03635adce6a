// SPDX-License-Identifier: MIT
// File: alloc.go
// Role: Allocator interface, Policy, the Default and Counting strategies.

package alloc

import "sync/atomic"

// Policy holds the three propagation traits of an allocation strategy.
type Policy struct {
	PropagateOnCopy bool
	PropagateOnMove bool
	PropagateOnSwap bool
}

// Allocator is notified of buffer allocations and releases made by a
// container, and decides how it propagates between containers.
type Allocator interface {
	// Allocate records one allocation of a buffer with capacity n.
	Allocate(n int)
	// Deallocate records the release of a buffer with capacity n.
	Deallocate(n int)
	// Policy returns the propagation traits.
	Policy() Policy
	// Equal reports whether buffers obtained from a may be released via
	// other, i.e. whether the two strategies are interchangeable.
	Equal(other Allocator) bool
	// SelectOnCopy returns the allocator a copy-constructed container uses.
	SelectOnCopy() Allocator
}

type defaultAllocator struct{}

func (defaultAllocator) Allocate(int)   {}
func (defaultAllocator) Deallocate(int) {}
func (defaultAllocator) Policy() Policy { return Policy{PropagateOnMove: true} }
func (defaultAllocator) Equal(other Allocator) bool {
	_, ok := other.(defaultAllocator)

	return ok
}
func (d defaultAllocator) SelectOnCopy() Allocator { return d }

// Default returns the stateless strategy: always equal, propagates on move
// only, records nothing.
func Default() Allocator { return defaultAllocator{} }

// OrDefault returns a, or Default() when a is nil.
func OrDefault(a Allocator) Allocator {
	if a == nil {
		return Default()
	}

	return a
}

// Stats is the shared counter block behind a Counting allocator. Copies of
// a Counting allocator share one Stats and therefore compare Equal.
type Stats struct {
	allocations   atomic.Int64
	deallocations atomic.Int64
	live          atomic.Int64
}

// Counting is an instrumented allocation strategy. It counts allocation and
// deallocation events; two Counting values are Equal iff they share Stats.
type Counting struct {
	stats  *Stats
	policy Policy
}

// NewCounting returns a Counting allocator with fresh counters.
func NewCounting(p Policy) *Counting {
	return &Counting{stats: &Stats{}, policy: p}
}

// Allocate implements Allocator.
func (c *Counting) Allocate(n int) {
	c.stats.allocations.Add(1)
	c.stats.live.Add(int64(n))
}

// Deallocate implements Allocator.
func (c *Counting) Deallocate(n int) {
	c.stats.deallocations.Add(1)
	c.stats.live.Add(-int64(n))
}

// Policy implements Allocator.
func (c *Counting) Policy() Policy { return c.policy }

// Equal implements Allocator.
func (c *Counting) Equal(other Allocator) bool {
	o, ok := other.(*Counting)

	return ok && o.stats == c.stats
}

// SelectOnCopy implements Allocator: copies share the counters.
func (c *Counting) SelectOnCopy() Allocator { return c }

// Allocations returns the number of allocation events so far.
func (c *Counting) Allocations() int { return int(c.stats.allocations.Load()) }

// Deallocations returns the number of deallocation events so far.
func (c *Counting) Deallocations() int { return int(c.stats.deallocations.Load()) }

// Live returns the total capacity currently held from this allocator.
func (c *Counting) Live() int { return int(c.stats.live.Load()) }

// Snapshot returns (allocations, deallocations).
func (c *Counting) Snapshot() (int, int) { return c.Allocations(), c.Deallocations() }
