// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree over an undirected, weighted *core.Graph from a start label using a
// lazy min-heap and reports the result as a predecessor slice.
package prim_kruskal

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/primgraph/core"
)

// Prim computes a Minimum Spanning Tree of g grown from the vertex labelled start.
//
// The result pred has len(pred) == g.Size(); pred[v] is the index of v's parent in the tree,
// or NoPredecessor for the start vertex and for every vertex not reached.
//
// Error Conditions:
//   - ErrNilGraph            : if g is nil.
//   - *core.NoSuchLabelError : if no vertex carries start (propagated from FindNode).
//
// Steps:
//  1. Resolve start to an index with g.FindNode.
//  2. For every vertex: known=false, cost=+Inf, pred=NoPredecessor; push (+Inf, v).
//  3. cost[start]=0; push an extra (0, start) entry.
//  4. Until |V|+1 entries have been taken, or until the heap is empty:
//     a. Pop the minimum (cost, index) entry u. Skip it if u is already known (stale entry);
//     stale pops do not count toward the |V|+1 bound.
//     b. A +Inf pop means the start component is exhausted: stop, unless Forest is set.
//     c. Mark u known. For each neighbor (adj, w) of u with adj unknown and w < cost[adj]:
//     cost[adj]=w, pred[adj]=u, push (w, adj). The old entry for adj stays in the heap.
//  5. Return pred.
//
// The key of a vertex is the weight of its best connecting edge, not a path length.
//
// Because only fresh pops are counted, a burst of stale entries can never end the run early:
// every vertex reachable from start is taken and its edges relaxed.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[L comparable](g *core.Graph[L], start L, opts ...Option) ([]int, error) {
	// 1. Validate graph and resolve the start label.
	if g == nil {
		return nil, ErrNilGraph
	}
	s, err := g.FindNode(start)
	if err != nil {
		return nil, err
	}

	return runPrim(g, s, buildOptions(opts))
}

// PrimFromIndex is Prim with the start given as a vertex index.
//
// Error Conditions:
//   - ErrNilGraph               : if g is nil.
//   - *core.IndexOutOfRangeError: if start is not a vertex of g.
func PrimFromIndex[L comparable](g *core.Graph[L], start int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.Validate(start); err != nil {
		return nil, err
	}

	return runPrim(g, start, buildOptions(opts))
}

// primRunner holds the mutable state of a single Prim execution.
type primRunner[L comparable] struct {
	g     *core.Graph[L] // The input graph; read-only within Prim.
	opts  Options
	known []bool    // known[v]: v has been taken into the tree
	cost  []float64 // cost[v]: lightest edge weight seen connecting v to the tree
	pred  []int     // pred[v]: tree parent of v
	pq    costPQ    // lazy heap of (cost, vertex)
}

func runPrim[L comparable](g *core.Graph[L], s int, opts Options) ([]int, error) {
	r := &primRunner[L]{g: g, opts: opts}
	r.init(s)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.pred, nil
}

// init seeds every vertex at +Inf and the start once more at 0.
func (r *primRunner[L]) init(s int) {
	n := r.g.Size()
	r.known = make([]bool, n)
	r.cost = make([]float64, n)
	r.pred = make([]int, n)
	r.pq = make(costPQ, 0, n+1)

	for v := range r.g.Vertices() {
		r.cost[v] = math.Inf(1)
		r.pred[v] = NoPredecessor
		r.pq = append(r.pq, costItem{cost: r.cost[v], vertex: v})
	}
	r.cost[s] = 0
	r.pq = append(r.pq, costItem{cost: 0, vertex: s})
	// seeds were appended directly; restore the heap invariant once
	heap.Init(&r.pq)
}

// process pops at most |V|+1 fresh entries; stale entries do not count toward the bound.
func (r *primRunner[L]) process() error {
	limit := r.g.Size() + 1
	log := r.opts.Logger
	for taken := 0; taken < limit && r.pq.Len() > 0; {
		item := heap.Pop(&r.pq).(costItem)
		u := item.vertex

		// Stale entry: u was already taken at a lower cost.
		if r.known[u] {
			log.Debug("prim: skip stale entry", "vertex", u, "cost", item.cost)
			continue
		}
		// Everything reachable from the start has been taken.
		if math.IsInf(item.cost, 1) && !r.opts.Forest {
			log.Debug("prim: start component exhausted", "vertex", u)
			break
		}

		r.known[u] = true
		taken++
		log.Debug("prim: take vertex", "vertex", u, "cost", item.cost, "pred", r.pred[u])

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers the key of every unknown neighbor of u reachable through a lighter edge.
func (r *primRunner[L]) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return err
	}
	for _, nb := range neighbors {
		if r.known[nb.To] || !(nb.Weight < r.cost[nb.To]) {
			continue
		}
		r.cost[nb.To] = nb.Weight
		r.pred[nb.To] = u
		// Lazy decrease-key: the previous entry for nb.To is left behind.
		heap.Push(&r.pq, costItem{cost: nb.Weight, vertex: nb.To})
		r.opts.Logger.Debug("prim: lower cost", "vertex", nb.To, "cost", nb.Weight, "pred", u)
	}

	return nil
}

// costItem is one heap entry; several may exist for the same vertex.
type costItem struct {
	cost   float64
	vertex int
}

// costPQ is a min-heap of costItem ordered by (cost, vertex) ascending.
type costPQ []costItem

func (pq costPQ) Len() int { return len(pq) }

// Less breaks cost ties by the lower vertex index, giving reproducible trees.
func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].vertex < pq[j].vertex
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(costItem)) }

func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
