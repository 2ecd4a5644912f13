// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Neighbor, Edge, GraphOption and the two constructors.
// Policy:
//   - Vertices are dense indices 0..n-1; n is fixed at construction.
//   - Labels are caller data attached to indices; lookups are linear.
//   - No locking: a Graph must not be mutated from several goroutines at once.

package core

// Neighbor is one adjacency entry: the far endpoint of an incident edge and its weight.
// An undirected edge u–v is stored as two independent Neighbor values, one in each list.
type Neighbor struct {
	// To is the index of the adjacent vertex.
	To int

	// Weight is the cost of the edge.
	Weight float64
}

// Edge is an undirected edge between From and To.
// Graph.Edges lists edges with From <= To; tree helpers use From as the parent.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *graphConfig)

// graphConfig holds construction-time policy flags shared by every label type.
type graphConfig struct {
	nonNegative bool // reject negative weights in AddEdge
}

// WithNonNegativeWeights makes AddEdge reject negative weights with ErrNegativeWeight.
// Prim and Dijkstra are only defined for non-negative weights; enabling this policy moves the
// check to insertion time.
func WithNonNegativeWeights() GraphOption {
	return func(c *graphConfig) { c.nonNegative = true }
}

// Graph is a weighted, undirected graph stored as an adjacency list over indices 0..n-1.
//
// labels[i] is the data attached to vertex i. next is the first slot AddLabel will fill.
// edges is a plain counter maintained by AddEdge/RemoveEdge, never recomputed from adj.
type Graph[L comparable] struct {
	cfg graphConfig

	n      int          // vertex count, immutable
	labels []L          // len(labels) == n
	next   int          // next free label slot
	adj    [][]Neighbor // adj[u] = entries incident to u, insertion order
	edges  int          // edge counter
}

// NewGraph creates a graph with n vertices labelled by their own index (identity labels).
// The label cursor starts at slot 0, so AddLabel overwrites the identity labels in order.
//
// Errors:
//   - *ConfigurationError if n < 0.
//
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph[int], error) {
	if n < 0 {
		return nil, &ConfigurationError{Reason: "negative vertex count"}
	}
	g := newGraph[int](n, opts)
	for i := range g.labels {
		g.labels[i] = i
	}

	return g, nil
}

// NewLabeledGraph creates a graph with n vertices carrying the given labels.
//
// If labels is nil, every slot holds the zero value of L and the cursor starts at 0.
// Otherwise len(labels) must equal n; the labels are copied and the graph is full,
// so any further AddLabel returns *GraphFullError.
//
// Errors:
//   - *ConfigurationError if n < 0 or len(labels) != n.
//
// Complexity: O(n).
func NewLabeledGraph[L comparable](n int, labels []L, opts ...GraphOption) (*Graph[L], error) {
	if n < 0 {
		return nil, &ConfigurationError{Reason: "negative vertex count"}
	}
	if labels != nil && len(labels) != n {
		return nil, &ConfigurationError{Reason: labelMismatch(len(labels), n)}
	}
	g := newGraph[L](n, opts)
	if labels != nil {
		copy(g.labels, labels)
		g.next = n
	}

	return g, nil
}

// newGraph allocates storage and applies options; labels are left at their zero value.
func newGraph[L comparable](n int, opts []GraphOption) *Graph[L] {
	g := &Graph[L]{
		n:      n,
		labels: make([]L, n),
		adj:    make([][]Neighbor, n),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}
