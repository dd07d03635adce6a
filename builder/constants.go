// SPDX-License-Identifier: MIT

package builder

// Constructor names, used as error prefixes.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
)

// CenterVertexID labels the hub of Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes.
const (
	// MinCycleNodes: fewer nodes cannot close a ring without loops or parallel edges.
	MinCycleNodes = 3
	// MinPathNodes: a shorter path has no edges.
	MinPathNodes = 2
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a ring of at least MinCycleNodes plus the hub.
	MinWheelNodes = 4
	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1
	// MinPartitionSize is the smallest side of CompleteBipartite.
	MinPartitionSize = 1
	// MinRandomSparseNodes is the smallest RandomSparse order.
	MinRandomSparseNodes = 1
)

// DefaultEdgeWeight is the weight every edge gets without WithWeightFn.
const DefaultEdgeWeight float64 = 1

// Probability bounds of RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	gridIDFmt          = "%d,%d"
)
