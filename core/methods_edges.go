// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/AreNeighbors/Weight/EdgeCount/Edges.
// Determinism:
//   - Adjacency lists keep insertion order; Edges() is ordered by (From, insertion order).
// Policy:
//   - Indices are validated (u first, then v) before any mutation.
//   - Parallel edges are never merged; each AddEdge appends two fresh entries.
//   - edges is a counter: +1 per AddEdge, -1 per RemoveEdge, whatever was removed.

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts an undirected edge u–v with weight w.
//
// Steps:
//  1. Validate u, then v.
//  2. Under WithNonNegativeWeights, reject w < 0.
//  3. Append (v,w) to adj[u] and (u,w) to adj[v]; for u == v both land in adj[u].
//  4. Increment the edge counter.
//
// Errors:
//   - *IndexOutOfRangeError naming the first invalid index.
//   - ErrNegativeWeight (wrapped) when the non-negative policy is enabled.
//
// Complexity: O(1) amortized.
func (g *Graph[L]) AddEdge(u, v int, w float64) (bool, error) {
	if err := g.validatePair(u, v); err != nil {
		return false, err
	}
	if g.cfg.nonNegative && w < 0 {
		return false, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, u, v, w)
	}

	g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Neighbor{To: u, Weight: w})
	g.edges++

	return true, nil
}

// RemoveEdge removes every edge between u and v, parallel edges included.
//
// The edge counter is decremented by exactly one per call, even when several parallel
// edges (or none at all) were removed. The boolean result reports that the indices were
// valid; it does not report whether an edge existed.
//
// Errors:
//   - *IndexOutOfRangeError naming the first invalid index.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph[L]) RemoveEdge(u, v int) (bool, error) {
	if err := g.validatePair(u, v); err != nil {
		return false, err
	}

	g.adj[u] = slices.DeleteFunc(g.adj[u], func(nb Neighbor) bool { return nb.To == v })
	if u != v {
		g.adj[v] = slices.DeleteFunc(g.adj[v], func(nb Neighbor) bool { return nb.To == u })
	}
	g.edges--

	return true, nil
}

// AreNeighbors reports whether adj[u] holds an entry pointing to v.
//
// Errors:
//   - *IndexOutOfRangeError naming the first invalid index.
//
// Complexity: O(deg(u)).
func (g *Graph[L]) AreNeighbors(u, v int) (bool, error) {
	_, ok, err := g.Weight(u, v)

	return ok, err
}

// Weight returns the weight of the first entry in adj[u] pointing to v.
// ok is false when there is no such edge; that is a result, not an error.
//
// Errors:
//   - *IndexOutOfRangeError naming the first invalid index.
//
// Complexity: O(deg(u)).
func (g *Graph[L]) Weight(u, v int) (w float64, ok bool, err error) {
	if err = g.validatePair(u, v); err != nil {
		return 0, false, err
	}
	for _, nb := range g.adj[u] {
		if nb.To == v {
			return nb.Weight, true, nil
		}
	}

	return 0, false, nil
}

// EdgeCount returns the edge counter.
func (g *Graph[L]) EdgeCount() int { return g.edges }

// Edges lists every undirected edge once, with From <= To.
//
// An entry (u→v) is emitted from adj[u] when u < v. A self-loop stores two entries in adj[u],
// so every second one is emitted. Output order is (From ascending, insertion order).
//
// Complexity: O(n + E).
func (g *Graph[L]) Edges() []Edge {
	// the counter may be negative after unmatched RemoveEdge calls
	out := make([]Edge, 0, max(g.edges, 0))
	for u, list := range g.adj {
		loops := 0
		for _, nb := range list {
			switch {
			case nb.To > u:
				out = append(out, Edge{From: u, To: nb.To, Weight: nb.Weight})
			case nb.To == u:
				loops++
				if loops%2 == 0 {
					out = append(out, Edge{From: u, To: u, Weight: nb.Weight})
				}
			}
		}
	}

	return out
}
