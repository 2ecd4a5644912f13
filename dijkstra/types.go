// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// NoPredecessor is the prev value of the source and of unreachable vertices.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex index (must be set through the Source option and valid).
// ReturnPath  – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance – vertices farther than this are left at +Inf. Default +Inf (no cap).
type Options struct {
	Source      int
	ReturnPath  bool
	MaxDistance float64

	sourceSet bool
	err       error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.sourceSet = true
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative value is recorded and reported as ErrBadMaxDistance by Dijkstra.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with no source, no path and no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
