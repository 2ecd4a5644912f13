// Package dijkstra provides Dijkstra's single-source shortest-path algorithm over the
// index-based, undirected *core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to every reachable
//     vertex in O((V + E) log V) time.
//   - It shares the lazy decrease-key discipline with prim_kruskal.Prim: an improved
//     distance pushes a fresh heap entry and stale entries are skipped when popped.
//   - Ties between equal distances are broken by the smaller vertex index.
//
// Shortest-path tree vs. minimum spanning tree:
//
// For the triangle A–B(1), B–C(1), A–C(1.5) rooted at A, Prim keeps A–B and B–C
// (total 2) while the shortest-path tree keeps A–B and A–C (distance to C is 1.5).
//
// Options:
//
//   - Source(v):         required starting vertex index.
//   - WithReturnPath():  also return the predecessor slice (NoPredecessor for roots).
//   - WithMaxDistance(d): leave vertices farther than d at +Inf.
//
// Errors:
//
//   - ErrNoSource, ErrNilGraph, ErrNegativeWeight, ErrBadMaxDistance.
//   - *core.IndexOutOfRangeError for an invalid Source.
//
// Example:
//
//	g, _ := core.NewLabeledGraph(3, []string{"A", "B", "C"})
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(0, 2, 1.5)
//	dist, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	// dist == [0 1 1.5], prev == [-1 0 0]
package dijkstra
