// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone keeps every adjacency list in insertion order and carries the edge counter
//     and label cursor verbatim, including a counter skewed by unmatched removals.

package core

// CloneEmpty returns a new Graph with identical configuration, labels and label cursor,
// but no edges.
//
// Complexity: O(n).
func (g *Graph[L]) CloneEmpty() *Graph[L] {
	clone := &Graph[L]{
		cfg:    g.cfg,
		n:      g.n,
		labels: make([]L, g.n),
		next:   g.next,
		adj:    make([][]Neighbor, g.n),
	}
	copy(clone.labels, g.labels)

	return clone
}

// Clone returns a deep copy of the Graph: configuration, labels, adjacency and counter.
// Mutating the clone never affects g.
//
// Complexity: O(n + E).
func (g *Graph[L]) Clone() *Graph[L] {
	clone := g.CloneEmpty()
	for u, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		clone.adj[u] = append(make([]Neighbor, 0, len(list)), list...)
	}
	clone.edges = g.edges

	return clone
}
