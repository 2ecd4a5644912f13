// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex identity and label queries: AddLabel/Size/Vertices/Data/FindNode/Labels/Degree.
// Determinism:
//   - Vertices() yields 0..n-1 ascending.
//   - FindNode() returns the lowest index carrying the label.

package core

import "iter"

// Validate returns *IndexOutOfRangeError unless 0 <= v < Size().
// Algorithm packages that accept raw indices call it before touching the graph.
//
// Complexity: O(1).
func (g *Graph[L]) Validate(v int) error {
	if v < 0 || v >= g.n {
		return &IndexOutOfRangeError{Low: 0, High: g.n, Actual: v}
	}

	return nil
}

// validatePair checks u first, then v, so the error names the first offending argument.
func (g *Graph[L]) validatePair(u, v int) error {
	if err := g.Validate(u); err != nil {
		return err
	}

	return g.Validate(v)
}

// AddLabel stores data in the next free label slot and returns that slot's index.
//
// Errors:
//   - *GraphFullError if every slot has been assigned.
//
// Complexity: O(1).
func (g *Graph[L]) AddLabel(data L) (int, error) {
	if g.next == g.n {
		return 0, &GraphFullError{Size: g.n}
	}
	idx := g.next
	g.labels[idx] = data
	g.next++

	return idx, nil
}

// Size returns the number of vertices.
func (g *Graph[L]) Size() int { return g.n }

// Vertices returns a restartable sequence over the vertex indices 0..Size()-1.
func (g *Graph[L]) Vertices() iter.Seq[int] {
	n := g.n
	return func(yield func(int) bool) {
		for v := 0; v < n; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Data returns the label attached to vertex v.
//
// Errors:
//   - *IndexOutOfRangeError if v is not a vertex.
func (g *Graph[L]) Data(v int) (L, error) {
	if err := g.Validate(v); err != nil {
		var zero L
		return zero, err
	}

	return g.labels[v], nil
}

// FindNode returns the index of the first vertex, by index order, whose label equals label.
//
// Errors:
//   - *NoSuchLabelError if no vertex carries label.
//
// Complexity: O(n).
func (g *Graph[L]) FindNode(label L) (int, error) {
	for i, l := range g.labels {
		if l == label {
			return i, nil
		}
	}

	return 0, &NoSuchLabelError{Label: label}
}

// Labels returns a copy of all label slots in index order.
func (g *Graph[L]) Labels() []L {
	out := make([]L, g.n)
	copy(out, g.labels)

	return out
}

// Degree returns the number of adjacency entries of v.
// A self-loop contributes two entries; parallel edges each count.
func (g *Graph[L]) Degree(v int) (int, error) {
	if err := g.Validate(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}
