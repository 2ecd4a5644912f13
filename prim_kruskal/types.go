// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/primgraph/core"
)

// NoPredecessor marks the root of a tree, and any vertex never reached, in a predecessor slice.
const NoPredecessor = -1

// ErrNilGraph indicates a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates MSTOptions.Method is neither MethodPrim nor MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrPredecessorLength indicates a predecessor slice whose length differs from the graph size.
var ErrPredecessorLength = errors.New("prim_kruskal: predecessor length does not match graph size")

// ErrNotAnEdge indicates a predecessor link with no edge behind it in the graph.
var ErrNotAnEdge = errors.New("prim_kruskal: predecessor link is not an edge")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures a Prim run.
type Options struct {
	// Logger receives a debug trace of heap pops and cost updates. Never nil after
	// DefaultOptions; the default discards everything.
	Logger *slog.Logger

	// Forest keeps popping the +Inf seed entries once the start component is exhausted,
	// so every component grows its own tree (a minimum spanning forest). When false,
	// vertices unreachable from the start keep NoPredecessor.
	Forest bool
}

// Option configures Options.
type Option func(*Options)

// WithLogger routes the Prim debug trace to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithForest makes Prim span every component instead of stopping at the start component.
func WithForest() Option {
	return func(o *Options) {
		o.Forest = true
	}
}

// DefaultOptions returns Options with a discarding logger and Forest disabled.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Forest: false,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// MSTOptions configures which MST algorithm Compute runs, and for Prim, which label to start from.
//
// Fields:
//
//	Method string   : one of MethodPrim or MethodKruskal.
//	Root   L        : start label for Prim; ignored when Method == MethodKruskal.
//	Prim   []Option : extra options forwarded to Prim.
type MSTOptions[L comparable] struct {
	Method string
	Root   L
	Prim   []Option
}

// Compute selects and runs the MST algorithm based on opts.Method and returns the tree edges
// with their total weight.
//
//	– MethodKruskal: Kruskal(g).
//	– MethodPrim:    Prim(g, opts.Root), expanded with TreeEdges; a tree that does not reach
//	                 every vertex yields ErrDisconnected, matching Kruskal.
//	– Otherwise:     ErrUnknownMethod.
func Compute[L comparable](g *core.Graph[L], opts MSTOptions[L]) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		pred, err := Prim(g, opts.Root, opts.Prim...)
		if err != nil {
			return nil, 0, err
		}
		if Roots(pred) > 1 {
			return nil, 0, ErrDisconnected
		}
		edges, err := TreeEdges(g, pred)
		if err != nil {
			return nil, 0, err
		}

		return edges, sumWeights(edges), nil
	default:
		return nil, 0, ErrUnknownMethod
	}
}

func sumWeights(edges []core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
