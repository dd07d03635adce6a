// Package builder produces deterministic topology fixtures over core.Graph:
// paths, cycles, stars, wheels, complete and complete bipartite graphs,
// grids and G(n, p) samples.
//
// Fixtures use builder.Graph, a core.Graph with float64 edge weights and
// string node labels. Labels come from an IDFn (WithIDScheme and friends),
// weights from a WeightFn (WithWeightFn, WithUniformWeight, ...), and
// randomness from WithSeed or WithRand.
//
// BuildGraph applies constructors in order; every constructor appends fresh
// nodes, so BuildGraph(f, nil, nil, Path(3), Cycle(4)) is their disjoint
// union. On directed flavours the symmetric topologies (Star, Wheel,
// Complete, CompleteBipartite, Grid) also emit the reverse arc unless
// WithMirroredArcs(false) is given.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource and
// ErrConstructFailed, wrapped with the constructor name.
package builder
