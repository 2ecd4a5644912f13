// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// Edge weights are ignored: BFS answers reachability and hop-count questions, such as
// whether a Prim tree covers every vertex reachable from its start.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[L comparable] struct {
	graph *core.Graph[L]
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from vertex start,
// applying any number of functional Options.
// Returns ErrGraphNil or *core.IndexOutOfRangeError for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[L comparable](g *core.Graph[L], start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(start); err != nil {
		return nil, err
	}

	n := g.Size()
	w := &walker[L]{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := range g.Vertices() {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// Reachable reports, per vertex, whether it is reachable from start.
func Reachable[L comparable](g *core.Graph[L], start int) ([]bool, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(res.Depth))
	for v := range out {
		out[v] = res.Reached(v)
	}

	return out, nil
}

// enqueue marks v discovered at depth d and records its parent.
func (w *walker[L]) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[L]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[L]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker[L]) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return err
	}
	for _, nb := range neighbors {
		// first time seen?
		if w.res.Depth[nb.To] == Unreached {
			w.enqueue(nb.To, nextDepth, item.v)
		}
	}

	return nil
}
