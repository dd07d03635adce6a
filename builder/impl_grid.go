// SPDX-License-Identifier: MIT
// File: impl_grid.go
// Role: Grid(rows, cols), a 4-neighbourhood lattice.
// Determinism:
//   - Nodes are row-major and labelled "r,c" regardless of the ID scheme.
//   - Per cell, the right edge is emitted before the down edge.

package builder

import "fmt"

// Grid returns a Constructor for a rows×cols grid (each ≥ MinGridDim).
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		ids := make([]string, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids = append(ids, fmt.Sprintf(gridIDFmt, r, c))
			}
		}
		base, err := addNodes(g, MethodGrid, ids...)
		if err != nil {
			return err
		}
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = joinSym(g, cfg, MethodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = joinSym(g, cfg, MethodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
