// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra keys each vertex on the cumulative path cost dist[u] + w, where Prim keys it on
// the single edge weight w. On the same graph the two trees generally differ.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds stale entries under “lazy-decrease-key”.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/primgraph/core"
)

// Dijkstra computes shortest distances from the Source vertex to all other vertices of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: if ReturnPath, prev[v] == u means the shortest path to v goes through u;
//     NoPredecessor for the source and unreachable vertices. nil otherwise.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be set (ErrNoSource) and valid (*core.IndexOutOfRangeError).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra[L comparable](g *core.Graph[L], opts ...Option) ([]float64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !cfg.sourceSet {
		return nil, nil, ErrNoSource
	}
	if err := g.Validate(cfg.Source); err != nil {
		return nil, nil, err
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Run.
	n := g.Size()
	r := &runner[L]{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[L comparable] struct {
	g       *core.Graph[L] // The input graph; read-only within Dijkstra.
	options Options
	dist    []float64 // dist[v]: current best distance from Source
	prev    []int     // prev[v]: predecessor on the shortest path
	visited []bool    // visited[v]: distance finalized
	pq      nodePQ
}

// init sets dist=+Inf, prev=NoPredecessor everywhere and pushes Source at 0.
func (r *runner[L]) init() {
	for v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{v: r.options.Source, dist: 0})
}

// process is the core loop: extract the closest vertex and relax its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner[L]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.v

		// skip stale heap entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to u and attempts to improve distances to its neighbors.
func (r *runner[L]) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	for _, nb := range neighbors {
		newDist := r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[nb.To] {
			continue
		}
		r.dist[nb.To] = newDist
		r.prev[nb.To] = u
		// lazy decrease-key: the old entry stays and is skipped when popped
		heap.Push(&r.pq, nodeItem{v: nb.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	v    int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then vertex index.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].v < pq[j].v
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
