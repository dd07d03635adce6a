// Package partgraph is a partitioned-storage graph toolkit: graphs whose
// nodes are dense integer indices and whose edges live in per-node
// partitions of one storage back-end.
//
// 🚀 What is inside?
//
//	• iterator/  - partition index policy and the dereference/aux adaptor
//	• alloc/     - allocation strategy carried by every container
//	• partition/ - contiguous, bucketed and static partitioned sequences
//	• core/      - Graph in four flavours with complementary half-edges
//	• tree/      - rooted trees over core.Graph (forward, backward, symmetric)
//	• bfs/, dfs/ - traversals used for subtree and tree-shape checks
//	• builder/   - deterministic topology fixtures (path, star, grid, ...)
//	• layout/    - YAML/JSON documents for graphs, trees and partitions
//	• cmd/partgraph - CLI over layout documents
//
// Quick ASCII example (undirected, storage per node):
//
//	0───1        partition 0: [→1 c0, →2 c0]
//	│            partition 1: [→0 c0]
//	2            partition 2: [→0 c1]
//
// Every half-edge knows the offset ("comp") of its partner inside the
// partner's partition, so edge removal and node erasure stay O(degree).
//
//	go get github.com/katalvlaran/partgraph
package partgraph
