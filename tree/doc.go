// Package tree restricts core.Graph to rooted trees: one root, and one
// parent per other node.
//
// The LinkDir decides how a parent and child are connected:
//
//	Forward   - parent→child edge in a Directed graph; children are cheap,
//	            Parent scans the graph.
//	Backward  - child→parent edge in a Directed graph; Parent is cheap,
//	            Children and Prune scan every node's parent chain.
//	Symmetric - one undirected edge; the child's root-ward half always sits
//	            at offset 0 of its partition.
//
// Trees grow with AddNode(parent, w) and InsertNode(pos, parent, w), and
// shrink with Prune, which removes a whole subtree. Initializer is the
// nested literal form used by FromInitializer and Equivalent.
package tree
