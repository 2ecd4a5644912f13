// Package dfs defines the options, states and result types for depth-first search
// over a core.Graph.
package dfs

import (
	"context"
	"errors"
)

// Vertex colouring used by the traversal and by HasCycle.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// NoParent is the Parent value of traversal roots and of unvisited vertices.
const NoParent = -1

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures DFS behavior via functional arguments.
type Option func(*DFSOptions)

// DFSOptions holds parameters and hooks for one traversal.
type DFSOptions struct {
	// Ctx allows cancellation; checked once per visited vertex.
	Ctx context.Context

	// OnVisit is called in pre-order with the vertex and its depth.
	OnVisit func(v, depth int) error

	// OnExit is called in post-order once every descendant is finished.
	OnExit func(v int) error

	// MaxDepth, if ≥ 0, stops descending below this depth. -1 means unlimited.
	MaxDepth int

	// FullTraversal restarts from every unvisited vertex in index order after the start tree
	// is finished, so the result covers every component.
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with a background context, no hooks and no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		OnVisit:       nil,
		OnExit:        nil,
		MaxDepth:      -1,
		FullTraversal: false,
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook; an error aborts the traversal.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit registers a post-order hook; an error aborts the traversal.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the traversal depth (inclusive). A negative limit disables it.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal visits every component, not only the start's.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult collects the outcome of a traversal.
//
//   - Order:   vertices in post-order (finish order).
//   - Depth:   depth in the DFS forest; meaningful only where Visited is true.
//   - Parent:  DFS-tree parent, or NoParent.
//   - Visited: whether each vertex was reached.
type DFSResult struct {
	Order   []int
	Depth   []int
	Parent  []int
	Visited []bool
}
