// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency snapshots.

package core

// Neighbors returns a copy of v's adjacency entries in insertion order.
// Mutating the returned slice never affects the graph.
//
// Errors:
//   - *IndexOutOfRangeError if v is not a vertex.
//
// Complexity: O(deg(v)).
func (g *Graph[L]) Neighbors(v int) ([]Neighbor, error) {
	if err := g.Validate(v); err != nil {
		return nil, err
	}
	out := make([]Neighbor, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}
