// Package prim_kruskal computes Minimum Spanning Trees (MST) over an undirected, weighted
// *core.Graph: Prim’s algorithm as the primary entry point, Kruskal’s algorithm as an
// independent cross-check.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
// Algorithms Provided
//
//   - Prim(g, start) ([]int, error)
//
//   - Strategy: grow a single tree from start. Every vertex carries a key: the weight of the
//     lightest edge seen so far that connects it to the tree. A min-heap of (key, index) pairs
//     picks the next vertex. Keys are lowered lazily: a new entry is pushed and the old one is
//     left behind, to be skipped when popped because its vertex is already known.
//
//   - Result: a predecessor slice. pred[v] is v's parent; the start vertex and every vertex not
//     reachable from it hold NoPredecessor. WithForest() grows one tree per component instead.
//
//   - Determinism: heap ties break on the lower vertex index, so equal-cost inputs always
//     produce the same tree.
//
//   - Complexity: O(E log E) time, O(V + E) space (stale heap entries included).
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//
//   - Strategy: stable-sort all edges by weight and merge components with union-find.
//
//   - Complexity: O(E log E + α(V)·E).
//
// Helpers
//
//   - TreeEdges / TreeWeight expand a predecessor slice into edges and total weight.
//   - Roots counts the trees (and unreached vertices) in a predecessor slice.
//   - Compute dispatches on MSTOptions.Method and always returns edges plus weight.
//
// Error Conditions
//
//   - ErrNilGraph           – nil graph.
//   - *core.NoSuchLabelError – Prim start label not present (propagated unchanged).
//   - *core.IndexOutOfRangeError – PrimFromIndex start outside the graph.
//   - ErrDisconnected       – Kruskal, or Compute with MethodPrim, on a graph that does not span.
//   - ErrUnknownMethod      – Compute with an unrecognized Method.
//
// Prim is only meaningful for non-negative weights; build graphs with
// core.WithNonNegativeWeights() to enforce that at insertion time.
package prim_kruskal
