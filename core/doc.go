// Package core provides Graph, a partitioned graph whose nodes are dense
// integer indices and whose edges live in per-node partitions of a
// partition.Storage.
//
// Each node u owns an ordered list of half-edges. What a half-edge records
// depends on the Flavour:
//
//   - Directed: one half per edge, stored at the source; only Target is set.
//   - Undirected: one half at each endpoint, each knowing the offset (Comp)
//     of the other inside the other endpoint's partition. A loop stores both
//     halves in the same partition.
//   - DirectedEmbedded: like Undirected, but both halves also record the
//     true Source, so incoming edges are visible at the target.
//   - UndirectedEmbedded: like Undirected; the per-node order is a cyclic
//     embedding and may only change through SwapEdges.
//
// Consistency:
//
//	For every stored half (u, i) with partner node p and Comp c, the half at
//	(p, c) points back to (u, i). Every mutating method restores this before
//	returning, and reports failures before mutating anything.
//
// Weights and meta-data:
//
//	Edge weights (W) are identical on both halves. By default each half owns
//	a copy and setters update both; WithSharedWeights stores one cell per
//	edge instead. Meta-data (M) is per half unless WithSharedMetaData is
//	given. Node weights (N) are one per node. core.None is the zero-size
//	choice for any of the three.
//
// Storage (WithStorage):
//
//	partition.KindContiguous - one flat buffer, cache friendly scans.
//	partition.KindBucketed   - one buffer per node, cheap growth anywhere.
//	partition.KindStatic     - shape fixed at construction; weights and
//	                           SwapEdges still work, shape changes return
//	                           ErrFixedCapacity.
//
// Literals:
//
//	NewFromEdges takes [][]EdgeInit, one slice per node, and rejects
//	inconsistent input with ErrOutOfRange or ErrInconsistent. EdgeInits
//	returns the same form, and Equivalent compares a graph against it.
//
// Concurrency:
//
//	Graph does no locking. Concurrent reads are safe; any mutation needs
//	exclusive access. Clones share nothing with their source.
package core
