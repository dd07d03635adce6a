// SPDX-License-Identifier: MIT
// File: graph.go
// Role: graph documents.
// Determinism:
//   - Nodes and half-edges are written in stored order; EncodeGraph of the
//     same graph is byte-stable.
// AI-HINT (file):
//   - GraphDoc.Graph funnels through core.NewFromEdges; never build a graph
//     from a document any other way, or validation is skipped.

package layout

import (
	"fmt"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/partition"
)

// GraphDoc is the document form of a core.Graph.
type GraphDoc[W, N, M any] struct {
	Flavour        string             `yaml:"flavour" json:"flavour"`
	Storage        string             `yaml:"storage,omitempty" json:"storage,omitempty"`
	SharedWeights  bool               `yaml:"shared_weights,omitempty" json:"shared_weights,omitempty"`
	SharedMetaData bool               `yaml:"shared_meta_data,omitempty" json:"shared_meta_data,omitempty"`
	Nodes          []NodeDoc[W, N, M] `yaml:"nodes" json:"nodes"`
}

// NodeDoc is one node: its weight and its half-edges in stored order.
type NodeDoc[W, N, M any] struct {
	Weight N               `yaml:"weight,omitempty" json:"weight,omitempty"`
	Edges  []EdgeDoc[W, M] `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// EdgeDoc is one half-edge. Source is set for directed_embedded graphs
// only, Comp for every flavour but directed.
type EdgeDoc[W, M any] struct {
	Source   *int `yaml:"source,omitempty" json:"source,omitempty"`
	Target   int  `yaml:"target" json:"target"`
	Comp     *int `yaml:"comp,omitempty" json:"comp,omitempty"`
	Weight   W    `yaml:"weight,omitempty" json:"weight,omitempty"`
	MetaData M    `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// FromGraph snapshots g as a document.
//
// Complexity: O(V + E).
func FromGraph[W, N, M any](g *core.Graph[W, N, M]) GraphDoc[W, N, M] {
	doc := GraphDoc[W, N, M]{
		Flavour:        g.Flavour().String(),
		Storage:        g.StorageKind().String(),
		SharedWeights:  g.SharedWeights(),
		SharedMetaData: g.SharedMetaData(),
		Nodes:          make([]NodeDoc[W, N, M], g.Order()),
	}
	weights := g.NodeWeights()
	for u, part := range g.EdgeInits() {
		doc.Nodes[u].Weight = weights[u]
		for _, e := range part {
			ed := EdgeDoc[W, M]{Target: e.Target, Weight: e.Weight, MetaData: e.MetaData}
			if g.Flavour() == core.DirectedEmbedded {
				ed.Source = intPtr(e.Source)
			}
			if g.Flavour() != core.Directed {
				ed.Comp = intPtr(e.Comp)
			}
			doc.Nodes[u].Edges = append(doc.Nodes[u].Edges, ed)
		}
	}

	return doc
}

// Graph builds the graph described by d. opts are applied after the
// document's own storage and sharing settings.
func (d GraphDoc[W, N, M]) Graph(opts ...core.GraphOption) (*core.Graph[W, N, M], error) {
	f, err := core.ParseFlavour(d.Flavour)
	if err != nil {
		return nil, fmt.Errorf("GraphDoc.Graph: %w", err)
	}
	var gopts []core.GraphOption
	if d.Storage != "" {
		kind, err := partition.ParseKind(d.Storage)
		if err != nil {
			return nil, fmt.Errorf("GraphDoc.Graph: %w", err)
		}
		gopts = append(gopts, core.WithStorage(kind))
	}
	if d.SharedWeights {
		gopts = append(gopts, core.WithSharedWeights())
	}
	if d.SharedMetaData {
		gopts = append(gopts, core.WithSharedMetaData())
	}
	gopts = append(gopts, opts...)

	edges := make([][]core.EdgeInit[W, M], len(d.Nodes))
	weights := make([]N, len(d.Nodes))
	for u, n := range d.Nodes {
		weights[u] = n.Weight
		edges[u] = make([]core.EdgeInit[W, M], len(n.Edges))
		for i, e := range n.Edges {
			edges[u][i] = core.EdgeInit[W, M]{
				Source:   intOr(e.Source, core.Npos),
				Target:   e.Target,
				Comp:     intOr(e.Comp, core.Npos),
				Weight:   e.Weight,
				MetaData: e.MetaData,
			}
		}
	}
	g, err := core.NewFromEdges[W, N, M](f, edges, weights, gopts...)
	if err != nil {
		return nil, fmt.Errorf("GraphDoc.Graph: %w", err)
	}

	return g, nil
}

// EncodeGraph renders g as a document.
func EncodeGraph[W, N, M any](g *core.Graph[W, N, M], opts ...Option) ([]byte, error) {
	out, err := newConfig(opts).marshal(FromGraph(g))
	if err != nil {
		return nil, fmt.Errorf("EncodeGraph: %w", err)
	}

	return out, nil
}

// DecodeGraph parses and validates a graph document.
func DecodeGraph[W, N, M any](data []byte, opts ...Option) (*core.Graph[W, N, M], error) {
	cfg := newConfig(opts)
	var doc GraphDoc[W, N, M]
	if err := cfg.unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("DecodeGraph: %w", err)
	}
	g, err := doc.Graph(cfg.graph...)
	if err != nil {
		return nil, fmt.Errorf("DecodeGraph: %w", err)
	}

	return g, nil
}

func intPtr(v int) *int { return &v }

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}

	return *p
}
