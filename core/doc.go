// Package core provides a weighted, undirected graph stored as an adjacency list
// over dense vertex indices 0..n-1, with optional label data attached to each index.
//
// The Graph G = (V,E) has a vertex count fixed at construction:
//
//   - NewGraph(n) labels every vertex with its own index (identity labels).
//   - NewLabeledGraph(n, labels) attaches caller data; labels may also be filled
//     one slot at a time with AddLabel until the graph is full.
//
// Edges are undirected and weighted. AddEdge(u, v, w) appends (v,w) to u's list and
// (u,w) to v's list as two independent entries. Nothing is deduplicated: adding the same
// edge twice produces two parallel edges, and a self-loop appends two entries to one list.
// RemoveEdge(u, v) drops every entry between u and v.
//
// Core Methods:
//
//	// Labels
//	AddLabel(data L) (int, error)               // O(1)
//	Data(v int) (L, error)                      // O(1)
//	FindNode(label L) (int, error)              // O(n), first match by index
//
//	// Edges
//	AddEdge(u, v int, w float64) (bool, error)  // O(1) amortized
//	RemoveEdge(u, v int) (bool, error)          // O(deg(u)+deg(v))
//	AreNeighbors(u, v int) (bool, error)        // O(deg(u))
//	Weight(u, v int) (float64, bool, error)     // O(deg(u)), ok=false when absent
//
//	// Queries
//	Size() int
//	Vertices() iter.Seq[int]
//	Neighbors(v int) ([]Neighbor, error)        // snapshot copy
//	EdgeCount() int                             // counter, see RemoveEdge
//	Edges() []Edge                              // each undirected edge once
//	Stats() *GraphStats                         // counts, loops, parallels, weight range
//
//	// Copies
//	Clone() *Graph[L]                           // O(n+E), deep
//	CloneEmpty() *Graph[L]                      // O(n), labels only
//
// Errors:
//
//	*IndexOutOfRangeError – vertex index outside [0, n)         (errors.Is ErrIndexOutOfRange)
//	*GraphFullError       – AddLabel with every slot assigned   (errors.Is ErrGraphFull)
//	*NoSuchLabelError     – FindNode miss                       (errors.Is ErrNoSuchLabel)
//	*ConfigurationError   – n < 0 or len(labels) != n           (errors.Is ErrConfiguration)
//	ErrNegativeWeight     – negative weight under WithNonNegativeWeights
//
// A Graph performs no locking. Concurrent readers of an unchanging Graph are safe;
// callers that mutate one shared across goroutines must synchronize externally,
// or give each goroutine its own Clone.
package core
