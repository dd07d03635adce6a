// SPDX-License-Identifier: MIT
// File: impl_random_sparse.go
// Role: RandomSparse(n, p), an Erdős–Rényi G(n, p) sample without loops.
// Determinism:
//   - Candidate pairs are visited in lexicographic order and each consumes
//     exactly one rng draw, so a fixed seed reproduces the graph.
// AI-HINT (file):
//   - Directed flavours sample every ordered pair (i, j), i ≠ j; the others
//     sample unordered pairs i < j.
//   - p == 0 and p == 1 need no rng.

package builder

import "fmt"

// RandomSparse returns a Constructor sampling each candidate edge with
// probability p.
//
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		base, err := addNodes(g, MethodRandomSparse, labels(cfg, 0, n)...)
		if err != nil {
			return err
		}

		directed := g.Flavour().IsDirected()
		hit := func() bool {
			switch {
			case cfg.rng == nil:
				return p == MaxProbability
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err = join(g, MethodRandomSparse, base+i, base+j, cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
