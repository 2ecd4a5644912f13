// Package builder provides “functional‐options”‐style constructors for canonical
// topologies over *core.Graph[int]: paths, cycles, stars, complete graphs, grids
// and Erdős–Rényi random graphs.
//
// Every constructor knows its vertex count up front, so BuildGraph sizes the graph once
// (identity labels 0..n-1) and the constructor only emits edges, in a documented
// deterministic order. Weights come from a WeightFn fed by the configured *rand.Rand.
//
// The package offers the following key components:
//
//   - BuildGraph(gopts, bopts, cons): size, configure and populate one graph.
//   - BuilderOption: WithRand, WithSeed, WithWeightFn.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – IntegerWeightFn:   uniform integers in [min,max], convenient for readable fixtures.
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource)
//     for invalid build parameters, wrapped with the constructor's method name.
//   - Same seed, same graph: adjacency order and weights are reproducible.
//
// Builders are how tests and benchmarks obtain large inputs for Prim and Kruskal, and how
// `primmst generate` produces sample graph files.
package builder
