// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// api.go: public entry point for building graphs from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// Constructor describes one topology: its vertex count and how to emit its edges.
// Obtain one from Path, Cycle, Star, Complete, Grid or RandomSparse.
type Constructor struct {
	method string
	n      int
	err    error // parameter error, reported by BuildGraph
	emit   func(g *core.Graph[int], cfg builderConfig) error
}

// Method returns the constructor's canonical name (e.g. "Cycle").
func (c Constructor) Method() string { return c.method }

// Order returns the number of vertices the constructor produces.
func (c Constructor) Order() int { return c.n }

// BuildGraph creates a graph with cons.Order() identity-labelled vertices, applying gopts,
// and lets the constructor emit its edges using the configuration from bopts.
//
// Errors:
//   - The constructor's parameter error (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - ErrNeedRandSource if a stochastic constructor has no rng.
//   - Any core error from AddEdge (e.g. ErrNegativeWeight under WithNonNegativeWeights).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons Constructor) (*core.Graph[int], error) {
	if cons.emit == nil && cons.err == nil {
		return nil, fmt.Errorf("BuildGraph: zero Constructor: %w", ErrConstructFailed)
	}
	if cons.err != nil {
		return nil, cons.err
	}

	g, err := core.NewGraph(cons.n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cons.method, err)
	}
	cfg := newBuilderConfig(bopts...)
	if err = cons.emit(g, cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// addEdge draws a weight and adds u–v, wrapping failures with the method name.
func addEdge(g *core.Graph[int], cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d–%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// tooFew builds the parameter error shared by the deterministic constructors.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}
