// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
)

// addNodes appends one node per label and returns the index of the first.
func addNodes(g *Graph, method string, labels ...string) (int, error) {
	base := g.Order()
	for _, l := range labels {
		if _, err := g.AddNodeWith(l); err != nil {
			return base, fmt.Errorf("%s: AddNode(%s): %w", method, l, err)
		}
	}

	return base, nil
}

// labels renders n labels with cfg.idFn starting at index from.
func labels(cfg builderConfig, from, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.idFn(from + i)
	}

	return out
}

// prefixed returns prefix+"0" .. prefix+"n-1".
func prefixed(prefix string, n int) []string {
	return labels(builderConfig{idFn: SymbolNumberIDFn(prefix)}, 0, n)
}

// join emits a single u→v edge of weight w.
func join(g *Graph, method string, u, v int, w float64) error {
	if err := g.JoinWith(u, v, w); err != nil {
		return fmt.Errorf("%s: Join(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// joinSym emits u–v with one weight draw; directed flavours also receive
// v→u with the same weight unless mirroring is off.
func joinSym(g *Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weight()
	if err := join(g, method, u, v, w); err != nil {
		return err
	}
	if g.Flavour().IsDirected() && cfg.mirror {
		return join(g, method, v, u, w)
	}

	return nil
}
