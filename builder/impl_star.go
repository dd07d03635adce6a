// SPDX-License-Identifier: MIT
// File: impl_star.go
// Role: Star(n) and Wheel(n), both with a CenterVertexID hub.

package builder

import "fmt"

// Star returns a Constructor for a hub plus n-1 leaves (n ≥ MinStarNodes).
// The hub is created first; leaves are labelled idFn(1..n-1).
//
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		hub, err := addNodes(g, MethodStar, CenterVertexID)
		if err != nil {
			return err
		}
		first, err := addNodes(g, MethodStar, labels(cfg, 1, n-1)...)
		if err != nil {
			return err
		}

		return spokes(g, cfg, MethodStar, hub, first, n-1)
	}
}

// Wheel returns a Constructor for W_n = C_{n-1} + hub (n ≥ MinWheelNodes).
// The rim is built first, so the hub is the last node.
//
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		rim := g.Order()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		hub, err := addNodes(g, MethodWheel, CenterVertexID)
		if err != nil {
			return err
		}

		return spokes(g, cfg, MethodWheel, hub, rim, n-1)
	}
}

// spokes joins hub to nodes first .. first+count-1 in index order.
func spokes(g *Graph, cfg builderConfig, method string, hub, first, count int) error {
	for i := 0; i < count; i++ {
		if err := joinSym(g, cfg, method, hub, first+i); err != nil {
			return err
		}
	}

	return nil
}
