// SPDX-License-Identifier: MIT
// File: cmd_graph.go
// Role: read-only and transforming commands over graph documents.

package main

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/partgraph/bfs"
	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/layout"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a graph document is consistent",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, _, err := a.readGraph(args[0])
			if err != nil {
				a.log.Error("document rejected", "path", args[0], "err", err)
				return err
			}
			a.log.Info("document valid", "path", args[0], "order", g.Order(), "size", g.Size())
			_, err = fmt.Fprintf(a.out, "ok: %s graph, %d node(s), %d edge(s)\n", g.Flavour(), g.Order(), g.Size())

			return err
		},
	}
}

// statsDoc is the printed form of core.GraphStats.
type statsDoc struct {
	Flavour   string `yaml:"flavour" json:"flavour"`
	Storage   string `yaml:"storage" json:"storage"`
	Order     int    `yaml:"order" json:"order"`
	Size      int    `yaml:"size" json:"size"`
	HalfEdges int    `yaml:"half_edges" json:"half_edges"`
	Loops     int    `yaml:"loops" json:"loops"`
	MaxDegree int    `yaml:"max_degree" json:"max_degree"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print structural counters of a graph document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, format, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			st := g.Stats()
			doc := statsDoc{
				Flavour:   st.Flavour.String(),
				Storage:   st.Storage.String(),
				Order:     st.Order,
				Size:      st.Size,
				HalfEdges: st.HalfEdges,
				Loops:     st.Loops,
				MaxDegree: st.MaxDegree,
			}
			if format, err = a.outputFormat(format); err != nil {
				return err
			}
			var out []byte
			if format == layout.FormatJSON {
				out, err = json.MarshalIndent(doc, "", "  ")
				out = append(out, '\n')
			} else {
				out, err = yaml.Marshal(doc)
			}
			if err != nil {
				return err
			}

			return a.write(out)
		},
	}
}

func newInduceCmd(a *app) *cobra.Command {
	var keep []int
	cmd := &cobra.Command{
		Use:   "induce FILE --keep N[,N...]",
		Short: "Write the subgraph induced by the kept nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, format, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			flags := make([]bool, g.Order())
			for _, k := range keep {
				if k < 0 || k >= g.Order() {
					return fmt.Errorf("induce: node %d out of range - graph has %d node(s): %w",
						k, g.Order(), core.ErrOutOfRange)
				}
				flags[k] = true
			}
			sub, err := core.InducedSubgraph(g, flags)
			if err != nil {
				return err
			}
			a.log.Info("induced subgraph", "order", sub.Order(), "size", sub.Size())

			return a.writeGraph(sub, format)
		},
	}
	cmd.Flags().IntSliceVar(&keep, "keep", nil, "node indices to keep")
	_ = cmd.MarkFlagRequired("keep")

	return cmd
}

func newBFSCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "bfs FILE START",
		Short: "Print the breadth-first visit order from START",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bfs: start %q: %w", args[1], err)
			}
			g, _, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, start, bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			for _, v := range res.Order {
				if _, err = fmt.Fprintf(a.out, "%d\tdepth=%d\tparent=%d\n", v, res.Depth[v], res.Parent[v]); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop expanding beyond this depth (0 = unlimited)")

	return cmd
}
