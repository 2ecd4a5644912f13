// Package dfs implements depth‑first search traversal, connected components and cycle
// detection on an undirected core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre‑order and post‑order hooks, cancellation via context.Context,
//     depth limiting and full (all‑component) traversal.
//   - Components: labels each vertex with its connected-component id.
//   - HasCycle: reports whether the multigraph contains a cycle; a self-loop or a pair
//     of parallel edges counts.
//
// Why:
//   - Checking that a Prim tree is a tree (acyclic, one component).
//   - Predicting how many roots Prim's forest mode will produce.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - NoParent: Parent value of roots and unvisited vertices
//   - DFSOptions: Context, OnVisit, OnExit, MaxDepth, FullTraversal
//   - DFSResult: post‑order, Depth, Parent, Visited
//
// Complexity:
//
//   - DFS, Components, HasCycle: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil                 graph pointer is nil
//   - *core.IndexOutOfRangeError  start index outside the graph
//   - context.Canceled            DFS canceled via context
//   - hook errors                 propagated from OnVisit or OnExit
package dfs
