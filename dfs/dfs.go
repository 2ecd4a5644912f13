// Package dfs provides depth-first traversal of a core.Graph with pre/post hooks,
// cancellation and depth limits.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// dfsWalker encapsulates the mutable state of one traversal.
type dfsWalker[L comparable] struct {
	graph *core.Graph[L] // underlying graph
	opts  DFSOptions     // traversal options
	res   *DFSResult     // result collector
}

// DFS performs a depth-first traversal of g from start. Neighbors are explored in
// adjacency-list order; self-loop entries are ignored.
//
// With FullTraversal, start is visited first and every remaining unvisited vertex then
// starts a new tree, in index order.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - *core.IndexOutOfRangeError for an invalid start.
//   - ctx.Err() on cancellation and wrapped hook errors; the partial result is returned.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS[L comparable](g *core.Graph[L], start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if err := g.Validate(start); err != nil {
		return nil, err
	}

	n := g.Size()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for v := range g.Vertices() {
		res.Parent[v] = NoParent
	}
	walker := &dfsWalker[L]{graph: g, opts: dopts, res: res}

	if err := walker.traverse(start, 0); err != nil {
		return res, err
	}
	if dopts.FullTraversal {
		for v := range g.Vertices() {
			if res.Visited[v] {
				continue
			}
			if err := walker.traverse(v, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse visits v at depth, recurses into unvisited neighbors and appends v in post-order.
func (w *dfsWalker[L]) traverse(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
		}
		for _, nb := range nbs {
			if nb.To == v || w.res.Visited[nb.To] {
				continue
			}
			w.res.Parent[nb.To] = v
			if err = w.traverse(nb.To, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
