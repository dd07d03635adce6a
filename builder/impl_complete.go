// SPDX-License-Identifier: MIT
// File: impl_complete.go
// Role: Complete(n) and CompleteBipartite(n1, n2).
// Determinism:
//   - Pairs are emitted in lexicographic (i, j) order.

package builder

import "fmt"

// Complete returns a Constructor for K_n (n ≥ 1).
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodComplete, n, ErrTooFewVertices)
		}
		base, err := addNodes(g, MethodComplete, labels(cfg, 0, n)...)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = joinSym(g, cfg, MethodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}. Left nodes are
// labelled leftPrefix+i and come first, right nodes rightPrefix+j.
//
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left, err := addNodes(g, MethodCompleteBipartite, prefixed(cfg.leftPrefix, n1)...)
		if err != nil {
			return err
		}
		right, err := addNodes(g, MethodCompleteBipartite, prefixed(cfg.rightPrefix, n2)...)
		if err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = joinSym(g, cfg, MethodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
