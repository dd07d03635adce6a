// Package layout encodes partitions, graphs and trees as nested-list
// documents in YAML (gopkg.in/yaml.v3) or JSON (github.com/goccy/go-json).
//
// A graph document lists one entry per node in index order; each entry
// holds the node weight and the node's half-edges in stored order:
//
//	flavour: undirected
//	storage: contiguous
//	nodes:
//	  - weight: a
//	    edges:
//	      - {target: 1, comp: 0, weight: 2.5}
//	  - weight: b
//	    edges:
//	      - {target: 0, comp: 0, weight: 2.5}
//
// comp is omitted for directed graphs and source appears only for
// directed_embedded ones. Decoding goes through core.NewFromEdges, so a
// document is validated exactly like a literal and errors match the core
// sentinels.
//
// Tree documents use the nested Initializer form; partition documents are
// a plain list of lists.
package layout
