// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/katalvlaran/partgraph/tree"
)

// TreeDoc is the document form of a tree. Edge weights are not recorded;
// decoded trees carry zero edge weights.
type TreeDoc[N any] struct {
	Link   string                `yaml:"link" json:"link"`
	Forest []tree.Initializer[N] `yaml:"forest,omitempty" json:"forest,omitempty"`
}

// EncodeTree renders t as a document.
func EncodeTree[W, N any](t *tree.Tree[W, N], opts ...Option) ([]byte, error) {
	forest, err := t.Forest()
	if err != nil {
		return nil, fmt.Errorf("EncodeTree: %w", err)
	}
	out, err := newConfig(opts).marshal(TreeDoc[N]{Link: t.LinkDir().String(), Forest: forest})
	if err != nil {
		return nil, fmt.Errorf("EncodeTree: %w", err)
	}

	return out, nil
}

// DecodeTree parses a tree document. A forest with more than one root is
// rejected with tree.ErrRoot.
func DecodeTree[W, N any](data []byte, opts ...Option) (*tree.Tree[W, N], error) {
	cfg := newConfig(opts)
	var doc TreeDoc[N]
	if err := cfg.unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("DecodeTree: %w", err)
	}
	dir, err := tree.ParseLinkDir(doc.Link)
	if err != nil {
		return nil, fmt.Errorf("DecodeTree: %w", err)
	}
	t, err := tree.FromForest[W, N](dir, doc.Forest, cfg.graph...)
	if err != nil {
		return nil, fmt.Errorf("DecodeTree: %w", err)
	}

	return t, nil
}
