// Package bfs provides breadth-first search over node-indexed graphs such as
// core.Graph, returning unweighted shortest-path distances, parent links,
// and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per node distance from start (Npos if unreached)
//   - Parent: per node predecessor in the BFS tree (Npos for the start)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Direction
//
//	BFS follows whatever Graph.Neighbors reports. For core.Graph that is
//	every stored half-edge, except the incoming halves of a DirectedEmbedded
//	node, so directed graphs are walked forward only.
//
// Determinism
//
//	Neighbors are enqueued in stored edge order, so the visit sequence is
//	fully reproducible for a given graph.
//
// Complexity (V = Order, E = stored half-edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrStartOutOfRange  if start is not in [0, Order()).
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors        if Neighbors fails for any node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
