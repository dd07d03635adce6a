// SPDX-License-Identifier: MIT
// File: cmd_traverse.go
// Role: depth-first commands over graph documents.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/partgraph/dfs"
)

func newDFSCmd(a *app) *cobra.Command {
	var (
		maxDepth int
		all      bool
	)
	cmd := &cobra.Command{
		Use:   "dfs FILE [START]",
		Short: "Print the depth-first finish order from START, or over every component with --all",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := 0
			if len(args) == 2 {
				var err error
				if start, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("dfs: start %q: %w", args[1], err)
				}
			}
			g, _, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			opts := []dfs.Option{dfs.WithContext(cmd.Context()), dfs.WithMaxDepth(maxDepth)}
			if all {
				opts = append(opts, dfs.WithFullTraversal())
			}
			res, err := dfs.DFS(g, start, opts...)
			if err != nil {
				return err
			}
			a.log.Debug("depth-first traversal", "reached", len(res.Order), "order", g.Order())
			for _, v := range res.Order {
				if _, err = fmt.Fprintf(a.out, "%d\tdepth=%d\tparent=%d\n", v, res.Depth[v], res.Parent[v]); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "do not descend below this depth (0 = unlimited)")
	cmd.Flags().BoolVar(&all, "all", false, "restart from every unvisited node")

	return cmd
}

func newTopoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topo FILE",
		Short: "Print a topological order of a directed graph, one node per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(cmd.Context()))
			if err != nil {
				return err
			}
			for _, v := range order {
				if _, err = fmt.Fprintln(a.out, v); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
