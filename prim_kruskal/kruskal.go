package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/primgraph/core"
)

// Kruskal computes a minimum spanning tree by scanning edges in ascending weight and keeping
// each edge that joins two different components. It serves as an independent cross-check for
// Prim: both must agree on the total weight of a connected graph.
//
// Edges of equal weight keep their core.Graph.Edges order, so the result is deterministic.
// Self-loops never join two components and are skipped.
//
// Errors:
//   - ErrNilGraph if graph is nil.
//   - ErrDisconnected if the graph is empty or does not span all vertices.
//
// Complexity: O(E log E) for the sort, near-linear union-find afterwards.
func Kruskal[L comparable](graph *core.Graph[L]) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	n := graph.Size()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}

	candidates := slices.DeleteFunc(graph.Edges(), func(e core.Edge) bool { return e.From == e.To })
	slices.SortStableFunc(candidates, func(a, b core.Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	sets := newDisjointSet(n)
	tree := make([]core.Edge, 0, n-1)
	var total float64
	for _, e := range candidates {
		if len(tree) == n-1 {
			break
		}
		if !sets.union(e.From, e.To) {
			continue
		}
		tree = append(tree, e)
		total += e.Weight
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// disjointSet is a union-find forest with path halving and union by size.
type disjointSet struct {
	parent []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), size: make([]int, n)}
	for v := range ds.parent {
		ds.parent[v] = v
		ds.size[v] = 1
	}

	return ds
}

func (ds *disjointSet) find(v int) int {
	for ds.parent[v] != v {
		ds.parent[v] = ds.parent[ds.parent[v]]
		v = ds.parent[v]
	}

	return v
}

// union merges the sets holding u and v and reports whether they were distinct.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.size[ru] < ds.size[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	ds.size[ru] += ds.size[rv]

	return true
}
