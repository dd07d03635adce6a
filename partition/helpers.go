// SPDX-License-Identifier: MIT
// File: helpers.go
// Role: small index helpers shared by the flat back-ends.

package partition

import (
	"fmt"
	"slices"
)

// swapSpans rearranges s = [A | M | B], where len(A) == lenA and
// len(B) == lenB, into [B | M | A] in place.
func swapSpans[T any](s []T, lenA, lenB int) {
	n := len(s)
	slices.Reverse(s)
	// s is now [rev B | rev M | rev A].
	slices.Reverse(s[:lenB])
	slices.Reverse(s[lenB : n-lenA])
	slices.Reverse(s[n-lenA:])
}

// shiftOffsets adds d to every offset.
func shiftOffsets[I ~int | Unsigned](offsets []I, d int) {
	for k := range offsets {
		offsets[k] = I(int(offsets[k]) + d)
	}
}

func checkSamePartition(method string, i, j int) error {
	if i != j {
		return fmt.Errorf("%s: iterators span partitions %d and %d: %w", method, i, j, ErrInvalidRange)
	}

	return nil
}

func rangeBoundsError(method string, i, a, b, size int) error {
	return fmt.Errorf("%s: range [%d,%d) invalid for partition %d of size %d: %w",
		method, a, b, i, size, ErrInvalidRange)
}
