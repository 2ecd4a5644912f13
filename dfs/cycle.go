// Package dfs provides connected components and cycle detection for undirected multigraphs.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// Components labels every vertex with the id of its connected component.
// Ids are assigned 0, 1, ... in order of each component's smallest vertex index.
//
// A graph is connected exactly when count == 1; Prim in forest mode produces one tree
// (one NoPredecessor root) per component.
//
// Complexity: O(V + E).
func Components[L comparable](g *core.Graph[L]) (comp []int, count int, err error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	comp = make([]int, g.Size())
	for v := range comp {
		comp[v] = -1
	}
	for v := range g.Vertices() {
		if comp[v] != -1 {
			continue
		}
		id := count
		count++
		if _, err = DFS(g, v, WithOnVisit(func(u, _ int) error {
			comp[u] = id
			return nil
		})); err != nil {
			return nil, 0, fmt.Errorf("dfs: Components: %w", err)
		}
	}

	return comp, count, nil
}

// HasCycle reports whether g contains a cycle. In an undirected multigraph a self-loop or
// a pair of parallel edges already forms a cycle.
//
// The walk skips exactly one adjacency entry back to the parent (the tree edge itself);
// any other entry reaching a Gray or Black vertex closes a cycle.
//
// Complexity: O(V + E).
func HasCycle[L comparable](g *core.Graph[L]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	state := make([]int, g.Size())
	for v := range g.Vertices() {
		if state[v] != White {
			continue
		}
		found, err := visitCycle(g, v, NoParent, state)
		if err != nil {
			return false, fmt.Errorf("dfs: HasCycle: %w", err)
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}

// visitCycle colours v Gray, explores it and reports the first cycle found.
func visitCycle[L comparable](g *core.Graph[L], v, parent int, state []int) (bool, error) {
	state[v] = Gray
	nbs, err := g.Neighbors(v)
	if err != nil {
		return false, err
	}
	skippedParent := false
	for _, nb := range nbs {
		if nb.To == parent && !skippedParent {
			skippedParent = true
			continue
		}
		if state[nb.To] != White {
			return true, nil
		}
		found, err := visitCycle(g, nb.To, v, state)
		if err != nil || found {
			return found, err
		}
	}
	state[v] = Black

	return false, nil
}
