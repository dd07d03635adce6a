// SPDX-License-Identifier: MIT
// File: errors.go
// Role: sentinel errors shared by every storage back-end.

package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a partition index or an in-partition offset
	// outside the container's current bounds.
	ErrOutOfRange = errors.New("partition: index out of range")

	// ErrInvalidRange indicates an element range whose ends lie in different
	// partitions, or whose ends are out of order.
	ErrInvalidRange = errors.New("partition: invalid element range")

	// ErrInconsistentInit indicates an initializer that does not match the
	// container's fixed shape (static back-end only).
	ErrInconsistentInit = errors.New("partition: inconsistent initialization")

	// ErrFixedCapacity indicates a size-changing operation on a back-end whose
	// partition count and element count are fixed at construction.
	ErrFixedCapacity = errors.New("partition: operation changes a fixed-capacity container")

	// ErrNotEquivalent is returned by Equivalent when contents differ from
	// the expected nested literal.
	ErrNotEquivalent = errors.New("partition: contents not equivalent")
)

// partitionRangeError formats the canonical out-of-range message for a
// partition index.
func partitionRangeError(method string, i, n int) error {
	return fmt.Errorf("%s: partition index %d out of range [0,%d): %w", method, i, n, ErrOutOfRange)
}

// offsetRangeError formats the canonical out-of-range message for an offset
// inside partition i.
func offsetRangeError(method string, i, k, size int) error {
	return fmt.Errorf("%s: offset %d out of range for partition %d of size %d: %w",
		method, k, i, size, ErrOutOfRange)
}
