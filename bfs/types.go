package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation wraps every rejected option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the traversal never reached.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Unreached is the Depth and Parent value of vertices the traversal did not reach.
const Unreached = -1

// Option mutates BFSOptions. A rejected value is remembered and reported by BFS itself,
// so option constructors never fail.
type Option func(*BFSOptions)

// BFSOptions tunes a traversal.
type BFSOptions struct {
	Ctx context.Context // checked once per dequeued vertex

	// OnVisit runs as each vertex leaves the queue; an error stops the walk.
	OnVisit func(v int, depth int) error

	// MaxDepth > 0 keeps vertices deeper than MaxDepth out of the queue; 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions: background context, no depth limit, no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext cancels the walk when ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook. nil is ignored.
func WithOnVisit(fn func(v int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the hop depth (inclusive). 0 disables the bound; a negative d is
// reported as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult is the BFS tree rooted at Start. Order lists vertices in visit sequence;
// Depth and Parent are indexed by vertex and hold Unreached where nothing was found
// (Parent[Start] is Unreached too).
type BFSResult struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo returns the hop-shortest path Start..dest, or ErrNotReached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
