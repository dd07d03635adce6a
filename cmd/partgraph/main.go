// SPDX-License-Identifier: MIT

// Command partgraph inspects and transforms partitioned graph documents:
// validate and summarise graphs, generate fixtures, prune trees, take
// induced subgraphs and run breadth-first searches.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
