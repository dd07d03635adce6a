// SPDX-License-Identifier: MIT
// File: api.go
// Role: BuildGraph orchestrator, Constructor type, Apply helper.
// Determinism:
//   - Same flavour, options, seed and constructor order ⇒ identical graphs.
// AI-HINT (file):
//   - Constructors append fresh nodes after the current order, so composing
//     several in one BuildGraph yields their disjoint union.
//   - Static storage is supported: the fixture is grown on dynamic storage
//     and frozen once through core.NewFromEdges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/partition"
)

// Graph is the fixture type: float64 edge weights, string node labels.
type Graph = core.Graph[float64, string, core.None]

// Constructor appends one topology to g. Implementations validate their
// parameters before touching g and return sentinel errors wrapped with the
// method name.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates an empty graph of flavour f with gopts, resolves bopts
// and applies cons in order. The first constructor error is returned
// wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor, plus O(V + E) to freeze a static
// result.
func BuildGraph(f core.Flavour, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g, err := core.New[float64, string, core.None](f, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	frozen := g.StorageKind() == partition.KindStatic
	if frozen {
		grow := append(append([]core.GraphOption(nil), gopts...), core.WithStorage(core.DefaultStorage))
		if g, err = core.New[float64, string, core.None](f, grow...); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if !frozen {
		return g, nil
	}
	out, err := core.NewFromEdges[float64, string, core.None](f, g.EdgeInits(), g.NodeWeights(), gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: freeze: %w", err)
	}

	return out, nil
}

// Apply runs a single constructor against an existing graph.
func Apply(g *Graph, c Constructor, opts ...BuilderOption) error {
	if g == nil || c == nil {
		return fmt.Errorf("Apply: nil graph or constructor: %w", ErrConstructFailed)
	}

	return c(g, newBuilderConfig(opts...))
}
