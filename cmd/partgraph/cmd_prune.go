// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/partgraph/layout"
)

func newPruneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prune FILE NODE",
		Short: "Remove a subtree from a tree document",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			node, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("prune: node %q: %w", args[1], err)
			}
			data, format, err := a.read(args[0])
			if err != nil {
				return err
			}
			t, err := layout.DecodeTree[float64, any](data, layout.WithFormat(format))
			if err != nil {
				return err
			}
			removed, err := t.Prune(node)
			if err != nil {
				return err
			}
			if err = t.Validate(); err != nil {
				return err
			}
			a.log.Info("pruned", "node", node, "removed", removed, "left", t.Order())

			if format, err = a.outputFormat(format); err != nil {
				return err
			}
			out, err := layout.EncodeTree(t, layout.WithFormat(format))
			if err != nil {
				return err
			}

			return a.write(out)
		},
	}
}
