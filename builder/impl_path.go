// SPDX-License-Identifier: MIT
// File: impl_path.go
// Role: Path(n) and Cycle(n).
// Determinism:
//   - Edges are emitted i→i+1 in increasing i; Cycle closes with (n-1)→0.
//   - Neither mirrors arcs on directed flavours.

package builder

import "fmt"

// Path returns a Constructor for the simple path P_n (n ≥ MinPathNodes).
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, MethodPath, n, false)
	}
}

// Cycle returns a Constructor for the simple cycle C_n (n ≥ MinCycleNodes).
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, MethodCycle, n, true)
	}
}

func ring(g *Graph, cfg builderConfig, method string, n int, closed bool) error {
	base, err := addNodes(g, method, labels(cfg, 0, n)...)
	if err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err = join(g, method, base+i-1, base+i, cfg.weight()); err != nil {
			return err
		}
	}
	if closed {
		return join(g, method, base+n-1, base, cfg.weight())
	}

	return nil
}
