// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex hop distance, Unreached if never discovered
//   - Parent: per-vertex predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), MaxDepth limit, context cancellation.
//
// Why
//
//   - Prim reports vertices outside the start component as NoPredecessor without
//     signalling an error; Reachable lets callers check coverage explicitly.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so the visit sequence is
//	fully reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
