// Package dfs implements depth-first search and topological sort over
// node-indexed graphs. Any type with Order() and Neighbors(node) satisfies
// Graph; *core.Graph does for every flavour.
//
// DFS:
//
//	Single-source or forest (WithFullTraversal) traversal with pre-order
//	(OnVisit) and post-order (OnExit) hooks, cancellation, depth limiting
//	and neighbor filtering. DFSResult reports post-order, depth and parent
//	per node; unreached nodes carry Npos.
//
// TopologicalSort:
//
//	Reverse post-order of a White/Gray/Black walk. A Gray node met again
//	is a back edge and aborts with ErrCycleDetected. Undirected flavours
//	are rejected with ErrNotDirected because every edge is a two-cycle.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Both recurse once per tree level, so very deep paths use goroutine
// stack proportional to their length.
package dfs
