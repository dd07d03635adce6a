// SPDX-License-Identifier: MIT
// File: cmd_generate.go
// Role: `generate`, a front end for the builder constructors.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/partgraph/builder"
	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/layout"
	"github.com/katalvlaran/partgraph/partition"
)

// topology describes one generate target: its argument count and how to
// turn parsed sizes into a constructor.
type topology struct {
	args int
	make func(sizes []int, prob float64) builder.Constructor
}

var topologies = map[string]topology{
	"path":      {1, func(s []int, _ float64) builder.Constructor { return builder.Path(s[0]) }},
	"cycle":     {1, func(s []int, _ float64) builder.Constructor { return builder.Cycle(s[0]) }},
	"star":      {1, func(s []int, _ float64) builder.Constructor { return builder.Star(s[0]) }},
	"wheel":     {1, func(s []int, _ float64) builder.Constructor { return builder.Wheel(s[0]) }},
	"complete":  {1, func(s []int, _ float64) builder.Constructor { return builder.Complete(s[0]) }},
	"bipartite": {2, func(s []int, _ float64) builder.Constructor { return builder.CompleteBipartite(s[0], s[1]) }},
	"grid":      {2, func(s []int, _ float64) builder.Constructor { return builder.Grid(s[0], s[1]) }},
	"random":    {1, func(s []int, p float64) builder.Constructor { return builder.RandomSparse(s[0], p) }},
}

var idSchemes = map[string]builder.IDFn{
	"decimal": builder.DefaultIDFn,
	"symbol":  builder.SymbolIDFn,
	"excel":   builder.ExcelColumnIDFn,
	"hex":     builder.HexIDFn,
	"alnum":   builder.AlphanumericIDFn,
}

type generateFlags struct {
	flavour   string
	storage   string
	ids       string
	seed      int64
	prob      float64
	minWeight float64
	maxWeight float64
	noMirror  bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var fl generateFlags
	cmd := &cobra.Command{
		Use:   "generate TOPOLOGY SIZE [SIZE]",
		Short: "Write a fixture graph (path, cycle, star, wheel, complete, bipartite, grid, random)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			top, ok := topologies[args[0]]
			if !ok {
				return fmt.Errorf("generate: unknown topology %q", args[0])
			}
			if len(args)-1 != top.args {
				return fmt.Errorf("generate: %s takes %d size(s), got %d", args[0], top.args, len(args)-1)
			}
			sizes := make([]int, top.args)
			for i := range sizes {
				n, err := strconv.Atoi(args[i+1])
				if err != nil {
					return fmt.Errorf("generate: size %q: %w", args[i+1], err)
				}
				sizes[i] = n
			}
			f, err := core.ParseFlavour(fl.flavour)
			if err != nil {
				return err
			}
			kind, err := partition.ParseKind(fl.storage)
			if err != nil {
				return err
			}
			idFn, ok := idSchemes[fl.ids]
			if !ok {
				return fmt.Errorf("generate: unknown id scheme %q", fl.ids)
			}

			if fl.minWeight < 0 || fl.maxWeight < 0 {
				return fmt.Errorf("generate: weights must be ≥ 0, got [%g, %g]", fl.minWeight, fl.maxWeight)
			}
			bopts := []builder.BuilderOption{builder.WithIDScheme(idFn), builder.WithMirroredArcs(!fl.noMirror)}
			if cmd.Flags().Changed("seed") {
				bopts = append(bopts, builder.WithSeed(fl.seed))
			}
			if fl.maxWeight > fl.minWeight {
				bopts = append(bopts, builder.WithUniformWeight(fl.minWeight, fl.maxWeight))
			} else {
				bopts = append(bopts, builder.WithConstantWeight(fl.minWeight))
			}
			g, err := builder.BuildGraph(f, []core.GraphOption{core.WithStorage(kind)}, bopts, top.make(sizes, fl.prob))
			if err != nil {
				return err
			}
			a.log.Info("generated", "topology", args[0], "flavour", f, "order", g.Order(), "size", g.Size())

			format, err := a.outputFormat(layout.DefaultFormat)
			if err != nil {
				return err
			}
			data, err := layout.EncodeGraph(g, layout.WithFormat(format))
			if err != nil {
				return err
			}

			return a.write(data)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&fl.flavour, "flavour", core.Undirected.String(), "graph flavour")
	flags.StringVar(&fl.storage, "storage", core.DefaultStorage.String(), "storage kind: contiguous, bucketed, static")
	flags.StringVar(&fl.ids, "ids", "decimal", "node label scheme: decimal, symbol, excel, hex, alnum")
	flags.Int64Var(&fl.seed, "seed", 0, "rng seed for random topologies and weights")
	flags.Float64Var(&fl.prob, "prob", 0.5, "edge probability of the random topology")
	flags.Float64Var(&fl.minWeight, "min-weight", builder.DefaultEdgeWeight, "edge weight, or lower bound with --max-weight")
	flags.Float64Var(&fl.maxWeight, "max-weight", 0, "upper bound of uniform edge weights")
	flags.BoolVar(&fl.noMirror, "no-mirror", false, "skip reverse arcs on directed flavours")

	return cmd
}
