// SPDX-License-Identifier: MIT
// File: errors.go
// Role: sentinel errors for the builder package.
// AI-HINT (file):
//   - Constructors wrap these with "Method: detail: %w"; branch with errors.Is.
//   - Errors from core (ErrFixedCapacity on static storage, ...) pass through
//     wrapped, so errors.Is against core sentinels also works.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied at all,
// e.g. a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
